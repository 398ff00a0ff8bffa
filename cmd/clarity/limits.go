package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/limits"
	"github.com/JenishBhuju/Clarity/internal/model"
)

func limitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Manage spending limits",
		Long: `View and set spending limits.

The daily window covers today; the weekly window covers today and the
six previous days. A window turns yellow at 80% and red at 100%.`,
	}

	cmd.AddCommand(limitsSetCmd())
	cmd.AddCommand(limitsShowCmd())
	return cmd
}

func limitsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the daily and weekly limits",
		Long: `Set spending limits as decimal amounts. A limit of 0 disables that
window.

Examples:
  clarity limits set --daily 50 --weekly 300
  clarity limits set --daily 0`,
		RunE: runLimitsSet,
	}
	cmd.Flags().String("daily", "", "daily spending limit, e.g. 50.00 (0 disables)")
	cmd.Flags().String("weekly", "", "weekly spending limit, e.g. 300.00 (0 disables)")
	return cmd
}

func runLimitsSet(cmd *cobra.Command, _ []string) error {
	_, durable, err := openStores()
	if err != nil {
		return err
	}
	current, err := durable.LoadLimits()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("daily") {
		raw, _ := cmd.Flags().GetString("daily")
		cents, parseErr := model.ParseCents(raw)
		if parseErr != nil {
			return common.NewUserError(fmt.Sprintf("Invalid daily limit %q", raw), parseErr)
		}
		current.DailyCents = cents
	}
	if cmd.Flags().Changed("weekly") {
		raw, _ := cmd.Flags().GetString("weekly")
		cents, parseErr := model.ParseCents(raw)
		if parseErr != nil {
			return common.NewUserError(fmt.Sprintf("Invalid weekly limit %q", raw), parseErr)
		}
		current.WeeklyCents = cents
	}

	if err := durable.SaveLimits(current); err != nil {
		return common.NewUserError("Could not save limits", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Limits saved: daily %s, weekly %s",
		model.FormatCents(current.DailyCents), model.FormatCents(current.WeeklyCents))))
	return nil
}

func limitsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current spending against the limits",
		RunE:  runLimitsShow,
	}
}

func runLimitsShow(cmd *cobra.Command, _ []string) error {
	_, durable, err := openStores()
	if err != nil {
		return err
	}
	spendLimits, err := durable.LoadLimits()
	if err != nil {
		return err
	}

	client, err := authedClient(durable)
	if err != nil {
		return err
	}
	transactions, err := fetchTransactions(cmd.Context(), client, api.ListQuery{})
	if err != nil {
		return err
	}

	report := limits.Evaluate(transactions, spendLimits, time.Now())

	fmt.Println(cli.FormatTitle("Spending limits"))
	fmt.Println(cli.FormatLimitMeter("Daily ", report.Daily))
	fmt.Println(cli.FormatLimitMeter("Weekly", report.Weekly))
	return nil
}
