package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/charts"
	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/stats"
)

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render charts of your finances",
	}
	cmd.AddCommand(chartTimeSeriesCmd())
	cmd.AddCommand(chartCategoriesCmd())
	return cmd
}

func chartTimeSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeseries",
		Short: "Render daily income and expense over time as a PNG",
		RunE:  runChartTimeSeries,
	}
	cmd.Flags().StringP("output", "o", "timeseries.png", "output file")
	return cmd
}

func runChartTimeSeries(cmd *cobra.Command, _ []string) error {
	transactions, err := chartData(cmd)
	if err != nil {
		return err
	}

	png, err := charts.RenderTimeSeries(stats.TimeSeries(transactions))
	if err != nil {
		if errors.Is(err, charts.ErrNotEnoughData) {
			return common.NewUserError("Not enough transactions to draw a time series (need at least two days)", nil)
		}
		return err
	}

	return writeChart(cmd, png)
}

func chartCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Render expense totals per category as a PNG",
		RunE:  runChartCategories,
	}
	cmd.Flags().StringP("output", "o", "categories.png", "output file")
	return cmd
}

func runChartCategories(cmd *cobra.Command, _ []string) error {
	transactions, err := chartData(cmd)
	if err != nil {
		return err
	}

	png, err := charts.RenderCategoryBreakdown(stats.CategoryBreakdown(transactions, model.TypeExpense))
	if err != nil {
		if errors.Is(err, charts.ErrNotEnoughData) {
			return common.NewUserError("No expenses to chart yet", nil)
		}
		return err
	}

	return writeChart(cmd, png)
}

func chartData(cmd *cobra.Command) ([]model.Transaction, error) {
	_, durable, err := openStores()
	if err != nil {
		return nil, err
	}
	client, err := authedClient(durable)
	if err != nil {
		return nil, err
	}
	return fetchTransactions(cmd.Context(), client, api.ListQuery{})
}

func writeChart(cmd *cobra.Command, png []byte) error {
	output, _ := cmd.Flags().GetString("output")
	if err := os.WriteFile(output, png, 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	fmt.Println(cli.FormatSuccess("Chart written to " + output))
	return nil
}
