package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/intruders/internal/config"
	"github.com/vovakirdan/intruders/internal/core"
	"github.com/vovakirdan/intruders/internal/games/intruders"
)

// session holds everything a frontend needs to start playing.
type session struct {
	settings config.Settings
	config   core.RuntimeConfig
	game     *intruders.Game
	logger   *log.Logger
	closeLog func()
}

// newSession loads settings, applies flag overrides and builds the game.
func newSession(cmd *cobra.Command, screenW, screenH int) (*session, error) {
	settings, err := config.LoadSettings(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		settings.FPS = flagFPS
	}
	if flags.Changed("seed") {
		settings.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		settings.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		settings.LogLevel = flagLogLevel
	}

	rules, err := config.LoadRules()
	if err != nil {
		return nil, err
	}

	logger, closeLog := openLogger(settings)

	return &session{
		settings: settings,
		config: core.RuntimeConfig{
			ScreenW:  screenW,
			ScreenH:  screenH,
			TickRate: settings.FPS,
			Seed:     settings.Seed,
		},
		game:     intruders.New(intruders.WithRules(rules), intruders.WithLogger(logger)),
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// openLogger opens the session log file. Logging is best-effort: when the
// file cannot be opened the game runs with a discarding logger.
func openLogger(s config.Settings) (*log.Logger, func()) {
	discard := log.New(io.Discard)
	if s.LogFile == "" {
		return discard, func() {}
	}

	path := config.ExpandHome(s.LogFile)
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "intruders",
	})

	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", s.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }
}
