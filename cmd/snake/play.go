package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagWalls      bool
	flagMute       bool
	flagMono       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows     - Steer
  W          - Toggle wall wrap
  M          - Toggle music
  +/-        - Music volume
  R/Enter    - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 200 ms per step
  normal - 150 ms per step
  hard   - 100 ms per step

Without --difficulty a picker is shown first.

Examples:
  snake play
  snake play --difficulty hard
  snake play --walls --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWalls, "walls", false, "Start with wall wrap off")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with music off")
	playCmd.Flags().BoolVar(&flagMono, "mono", false, "Use the grayscale theme")
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fail("%v", err)
	}
	defer s.close()

	theme := tui.DefaultTheme()
	if flagMono {
		theme = tui.MonochromeTheme()
	}

	// Get terminal size early for the difficulty picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	preset := config.DifficultyPreset(flagDifficulty)
	if preset == "" {
		sel, selErr := tui.RunDifficultySelector(s.cfg, theme, width, height)
		if selErr != nil {
			fail("%v", selErr)
		}
		// User quit
		if sel == nil {
			return
		}
		preset = sel.Name
	}

	s.interval, err = s.cfg.StartInterval(preset)
	if err != nil {
		fail("%v", err)
	}

	hud := tui.NewStatusBar(variantTitle(flagWalls), theme)
	game, err := s.createGame(flagWalls, flagMute, hud)
	if err != nil {
		fail("%v", err)
	}

	box := s.cfg.Board.Box
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	opts := tui.Options{
		CellW: box / 2,
		CellH: box,
		HUD:   hud,
		Theme: theme,
	}
	if runErr := tui.Run(game, cfg, opts); runErr != nil {
		s.close()
		fail("running game: %v", runErr)
	}
	s.logger.Info("finished", "score", game.State().Score)
}

func variantTitle(walls bool) string {
	if walls {
		return "Snake (Walls)"
	}
	return "Snake"
}
