package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/starhold/internal/config"
	"github.com/talgya/starhold/internal/persistence"
)

func newEventsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the most recent simulation events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			db, err := persistence.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			events, err := db.RecentEvents(limit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No events recorded yet.")
				return nil
			}
			for _, e := range events {
				fmt.Printf("[turn %d] %-8s %-12s %s: %s\n",
					e.Turn, e.Priority, e.Category, e.Title, e.Description)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum events to show")
	return cmd
}
