package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/common"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := client.DeleteTransaction(cmd.Context(), id); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return friendlyAuthError(err)
		}
		// The transaction is still there; tell the user plainly instead
		// of leaking backend internals.
		fmt.Println(cli.FormatError("Something went wrong deleting the transaction. It has not been removed."))
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction #%d", id)))
	return nil
}
