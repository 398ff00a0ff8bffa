package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/prefs"
	"github.com/JenishBhuju/Clarity/internal/stats"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List transactions using the current filters.

Filters set here persist for the rest of the session, so the dashboard
opens with the same view. Use --clear to drop all filters.`,
		RunE: runList,
	}

	cmd.Flags().String("type", "", "filter by type (income, expense)")
	cmd.Flags().String("category", "", "filter by category")
	cmd.Flags().String("from", "", "only transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "only transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear", false, "clear all saved filters first")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	session, durable, err := openStores()
	if err != nil {
		return err
	}

	state, err := session.Load()
	if err != nil {
		return err
	}

	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		state.Filter = prefs.FilterState{}
	}
	if cmd.Flags().Changed("type") {
		state.Filter.Type, _ = cmd.Flags().GetString("type")
	}
	if cmd.Flags().Changed("category") {
		state.Filter.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("from") {
		state.Filter.DateFrom, _ = cmd.Flags().GetString("from")
	}
	if cmd.Flags().Changed("to") {
		state.Filter.DateTo, _ = cmd.Flags().GetString("to")
	}
	if err := state.Filter.Validate(); err != nil {
		return err
	}
	if err := session.Save(state); err != nil {
		return fmt.Errorf("failed to save filters: %w", err)
	}

	client, err := authedClient(durable)
	if err != nil {
		return err
	}

	query := api.ListQuery{
		Type:     state.Filter.Type,
		Category: state.Filter.Category,
		DateFrom: state.Filter.DateFrom,
		DateTo:   state.Filter.DateTo,
	}
	transactions, err := fetchTransactions(cmd.Context(), client, query)
	if err != nil {
		return err
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions found.")
		return nil
	}

	fmt.Println(cli.FormatTitle("Transactions"))
	for _, t := range transactions {
		amount := model.FormatCents(mustCents(t))
		if t.Type == model.TypeIncome {
			amount = cli.IncomeStyle.Render("+" + amount)
		} else {
			amount = cli.ExpenseStyle.Render("-" + amount)
		}
		fmt.Printf("%6d  %s  %-16s %12s  %s\n", t.ID, t.Date, t.Category.Label(), amount, t.Description)
	}

	totals := stats.TotalsByType(transactions)
	fmt.Printf("\nIncome %s  Expense %s  Net %s\n",
		model.FormatCents(totals.Income),
		model.FormatCents(totals.Expense),
		model.FormatCents(totals.Net))
	return nil
}

// mustCents renders unparseable amounts as zero, matching how the
// aggregations treat them.
func mustCents(t model.Transaction) int64 {
	cents, _ := t.AmountCents()
	return cents
}
