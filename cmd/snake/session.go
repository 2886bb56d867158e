package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger. Without --log-file logs are
// discarded so they never corrupt the terminal UI.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// openSound opens the audio device, falling back to silence when audio is
// disabled or no device is available.
func openSound(cfg config.SnakeConfig, logger *log.Logger) (core.Sound, func()) {
	if !cfg.Audio.Enabled {
		return core.NopSound{}, func() {}
	}
	dev, err := audio.Open(logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
		return core.NopSound{}, func() {}
	}
	return dev, func() {
		if err := dev.Close(); err != nil {
			logger.Debug("closing audio", "err", err)
		}
	}
}

// variantID picks the registered variant for the walls flag.
func variantID(walls bool) string {
	if walls {
		return "snake_walls"
	}
	return "snake"
}

// session is everything a frontend needs to run one game.
type session struct {
	cfg      config.SnakeConfig
	logger   *log.Logger
	interval time.Duration
	cleanup  []func()
}

func (s *session) close() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

// newSession loads config and logging shared by all frontends.
func newSession() (*session, error) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, cleanup: []func(){closeLog}}, nil
}

// createGame opens audio and instantiates the variant.
func (s *session) createGame(walls, muted bool, hud core.HUD) (registry.Game, error) {
	sound, closeSound := openSound(s.cfg, s.logger)
	s.cleanup = append(s.cleanup, closeSound)

	id := variantID(walls)
	game, err := registry.Create(id, registry.Env{
		Config:   s.cfg,
		Interval: s.interval,
		Muted:    muted,
		Sound:    sound,
		HUD:      hud,
		Logger:   s.logger,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("starting", "variant", id, "interval", s.interval, "seed", flagSeed)
	return game, nil
}
