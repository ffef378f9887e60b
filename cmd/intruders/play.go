package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/intruders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/D, Left/Right  - Move
  W/S, Up/Down     - Move up and down
  Space            - Set off a shockwave
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a press counts as held for
key_hold_ms (see the settings file).

Examples:
  intruders play
  intruders play --fps 30
  intruders play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := newSession(cmd, width, height)
	if err != nil {
		return err
	}
	defer s.closeLog()

	err = tui.Run(s.game, tui.Options{
		Config:  s.config,
		KeyHold: s.settings.KeyHold(),
		Logger:  s.logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	state := s.game.State()
	fmt.Printf("Points: %d  |  Wave: %d\n", state.Score, s.game.Wave())
	return nil
}
