package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/model"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Long: `Replace a transaction's fields. Flags left unset keep the current
value from the backend.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("type", "", "transaction type (income, expense)")
	cmd.Flags().String("amount", "", "amount as a decimal, e.g. 12.50")
	cmd.Flags().String("category", "", "category tag")
	cmd.Flags().String("description", "", "free-form description")
	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("Invalid transaction id %q", args[0]), err)
	}

	_, durable, err := openStores()
	if err != nil {
		return err
	}
	client, err := authedClient(durable)
	if err != nil {
		return err
	}

	// Fetch the current version so unset flags keep their values. The
	// backend update is a full replace.
	transactions, err := client.ListTransactions(cmd.Context(), api.ListQuery{})
	if err != nil {
		return friendlyAuthError(err)
	}
	var current *model.Transaction
	for i := range transactions {
		if transactions[i].ID == id {
			current = &transactions[i]
			break
		}
	}
	if current == nil {
		return common.NewUserError(fmt.Sprintf("Transaction #%d not found", id), common.ErrNotFound)
	}

	draft := model.Draft{
		Type:        current.Type,
		Amount:      current.Amount,
		Category:    current.Category,
		Description: current.Description,
		Date:        current.Date,
	}
	if cmd.Flags().Changed("type") {
		v, _ := cmd.Flags().GetString("type")
		draft.Type = model.TransactionType(v)
	}
	if cmd.Flags().Changed("amount") {
		draft.Amount, _ = cmd.Flags().GetString("amount")
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		draft.Category = model.Category(v)
	}
	if cmd.Flags().Changed("description") {
		draft.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("date") {
		draft.Date, _ = cmd.Flags().GetString("date")
	}
	if err := draft.Validate(); err != nil {
		return common.NewUserError("Invalid transaction", err)
	}

	updated, err := client.UpdateTransaction(cmd.Context(), id, draft)
	if err != nil {
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			return common.NewUserError("Backend rejected the update: "+vErr.Error(), nil)
		}
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("Transaction #%d not found", id), err)
		}
		return friendlyAuthError(err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction #%d (%s %s)", updated.ID, updated.Type, updated.Amount)))
	return nil
}
