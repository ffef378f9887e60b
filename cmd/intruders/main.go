// intruders is Galactic Intruders, a single-screen shooter for the terminal
// and the desktop.
//
// Usage:
//
//	intruders play     - Play in the terminal
//	intruders window   - Play in a desktop window
//	intruders waves    - Show the wave and missile tables
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to a settings YAML file
//	--log-file <path>     - Session log file (default: ~/.intruders/intruders.log)
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "intruders",
	Short: "Galactic Intruders - defend the base from falling missiles",
	Long: `Galactic Intruders is a single-screen shooter. Missiles fall toward
your base; set off shockwaves to destroy them before they hit.
Each wave brings faster, more damaging colors.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  waves    - Show the wave and missile tables

Examples:
  intruders play
  intruders play --seed 42
  intruders window --scale 1.5
  intruders waves`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to session log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(wavesCmd)
}
