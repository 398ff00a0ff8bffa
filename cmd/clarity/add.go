package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a new income or expense transaction.

Examples:
  clarity add --type expense --amount 12.50 --category food --description "Lunch"
  clarity add --type income --amount 2500 --category salary --date 2024-06-01`,
		RunE: runAdd,
	}

	cmd.Flags().String("type", string(model.TypeExpense), "transaction type (income, expense)")
	cmd.Flags().String("amount", "", "amount as a decimal, e.g. 12.50")
	cmd.Flags().String("category", string(model.CategoryOther), "category tag")
	cmd.Flags().String("description", "", "free-form description")
	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	draft, err := draftFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return common.NewUserError("Invalid transaction", err)
	}

	_, durable, err := openStores()
	if err != nil {
		return err
	}
	client, err := authedClient(durable)
	if err != nil {
		return err
	}

	created, err := client.CreateTransaction(cmd.Context(), draft)
	if err != nil {
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			return common.NewUserError("Backend rejected the transaction: "+vErr.Error(), nil)
		}
		return friendlyAuthError(err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (#%d)", created.Type, created.Amount, created.ID)))
	return nil
}

// draftFromFlags assembles a draft from the shared transaction flags.
// Used by both add and edit.
func draftFromFlags(cmd *cobra.Command) (model.Draft, error) {
	txType, _ := cmd.Flags().GetString("type")
	amount, _ := cmd.Flags().GetString("amount")
	category, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")
	date, _ := cmd.Flags().GetString("date")

	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}

	return model.Draft{
		Type:        model.TransactionType(txType),
		Amount:      amount,
		Category:    model.Category(category),
		Description: description,
		Date:        date,
	}, nil
}
