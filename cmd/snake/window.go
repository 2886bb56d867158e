package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/desktop"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window at the configured canvas size.

Uses the same controls as the terminal version. The difficulty comes from
--difficulty or the configured default.

Examples:
  snake window
  snake window --scale 2 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	windowCmd.Flags().BoolVar(&flagWalls, "walls", false, "Start with wall wrap off")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with music off")
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per canvas pixel")
}

func runWindow(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fail("%v", err)
	}
	defer s.close()

	s.interval, err = s.cfg.StartInterval(config.DifficultyPreset(flagDifficulty))
	if err != nil {
		fail("%v", err)
	}

	// The window draws its HUD on the canvas
	game, err := s.createGame(flagWalls, flagMute, core.NopHUD{})
	if err != nil {
		fail("%v", err)
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if runErr := desktop.Run(game, cfg, desktop.Options{Scale: flagScale}); runErr != nil {
		s.close()
		fail("running window: %v", runErr)
	}
	s.logger.Info("finished", "score", game.State().Score)
}
