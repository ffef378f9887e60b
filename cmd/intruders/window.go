package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/intruders/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  A/D, Left/Right  - Move
  W/S, Up/Down     - Move up and down
  Space            - Set off a shockwave
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit

Examples:
  intruders window
  intruders window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, 0, 0)
	if err != nil {
		return err
	}
	defer s.closeLog()

	return window.Run(s.game, window.Options{
		Config: s.config,
		Scale:  flagScale,
		Logger: s.logger,
	})
}
