package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/milestone"
	"github.com/JenishBhuju/Clarity/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Open the interactive dashboard",
		Long: `Open the interactive dashboard.

The dashboard shows your transactions, running totals, limit warnings,
and milestone toasts. Keys:

  m          toggle table / category view
  t          cycle the type filter
  c          clear all filters
  J/K        move the selected category (category view)
  r          refresh
  q          quit`,
		RunE: runDashboard,
	}
}

func runDashboard(_ *cobra.Command, _ []string) error {
	session, durable, err := openStores()
	if err != nil {
		return err
	}
	client, err := authedClient(durable)
	if err != nil {
		return err
	}

	thresholds, err := milestoneThresholds()
	if err != nil {
		return err
	}
	if len(thresholds) > 0 {
		// Fail fast on a bad config instead of inside the dashboard.
		if _, err := milestone.NewDetector(thresholds, 0); err != nil {
			return fmt.Errorf("invalid milestones config: %w", err)
		}
	}

	err = tui.Run(tui.Config{
		Fetcher:    client,
		Session:    session,
		Durable:    durable,
		Thresholds: thresholds,
	})
	return friendlyAuthError(err)
}
