package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/intruders/internal/config"
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Show the wave and missile tables",
	Long:  `Shows every missile color with its speed, points and damage, and the color odds for each wave.`,
	Args:  cobra.NoArgs,
	RunE:  runWaves,
}

func runWaves(cmd *cobra.Command, args []string) error {
	rules, err := config.LoadRules()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Missiles:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %5s  %6s  %6s\n", "Color", "Speed", "Points", "Damage")
	fmt.Fprintf(out, "  %-8s  %5s  %6s  %6s\n", "-----", "-----", "------", "------")
	for _, c := range rules.Colors {
		fmt.Fprintf(out, "  %-8s  %5.1f  %6d  %6d\n", c.Color, c.Speed, c.Points, c.Damage)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Waves:")
	fmt.Fprintln(out)
	for i, w := range rules.Waves {
		span := fmt.Sprintf("%d+", w.From)
		if i+1 < len(rules.Waves) && rules.Waves[i+1].From-1 > w.From {
			span = fmt.Sprintf("%d-%d", w.From, rules.Waves[i+1].From-1)
		} else if i+1 < len(rules.Waves) {
			span = fmt.Sprintf("%d", w.From)
		}

		odds := make([]string, len(w.Colors))
		for j, c := range w.Colors {
			odds[j] = fmt.Sprintf("%s %.0f%%", c, w.Weights[j]*100)
		}
		fmt.Fprintf(out, "  %-6s  %s\n", span, strings.Join(odds, ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "A new wave starts when the field is clear, up to wave %d.\n", rules.Session.MaxWave)
	return nil
}
