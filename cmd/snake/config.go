package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the search order:
--config, ~/.tui-snake/configs/snake.yaml, ./configs/snake.yaml, then the
built-in defaults.

With --defaults the annotated built-in file is printed instead, which is a
good starting point for a custom config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultSnakeYAML())
		return
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
