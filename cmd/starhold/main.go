// Command starhold runs the deterministic turn-based colony simulation.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "starhold",
		Short: "Starhold turn-based empire simulation",
		Long:  "Starhold simulates a persistent strategy empire: colony economies, science progression, and autonomous corporations, one deterministic turn at a time.",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "starhold.yaml", "path to config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newEventsCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
