package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from
your bank. Each statement entry becomes a transaction on the backend.

Examples:
  # Import a single file
  clarity import-ofx ~/Downloads/checking_jan.qfx

  # Import everything from a directory
  clarity import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without uploading")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files", "file_count", len(allFiles), "dry_run", dryRun)

	parser := ofx.NewParser()
	ctx := cmd.Context()

	var drafts []model.Draft
	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			continue
		}

		parsed, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
			continue
		}
		if len(parsed) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(filePath))
			continue
		}

		slog.Info("Parsed file", "file", filepath.Base(filePath), "transactions", len(parsed))
		drafts = append(drafts, parsed...)
	}

	if len(drafts) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	if dryRun {
		fmt.Println(cli.FormatTitle("Dry run — nothing uploaded"))
		for _, d := range drafts {
			fmt.Printf("  %s  %-8s %-16s %12s  %s\n", d.Date, d.Type, d.Category.Label(), d.Amount, d.Description)
		}
		fmt.Printf("\n%d transactions would be imported.\n", len(drafts))
		return nil
	}

	_, durable, err := openStores()
	if err != nil {
		return err
	}
	client, err := authedClient(durable)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(drafts),
		progressbar.OptionSetDescription("Uploading transactions"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	imported := 0
	failed := 0
	for _, draft := range drafts {
		if err := draft.Validate(); err != nil {
			slog.Warn("Skipping invalid entry", "date", draft.Date, "amount", draft.Amount, "error", err)
			failed++
			_ = bar.Add(1)
			continue
		}
		if _, err := client.CreateTransaction(ctx, draft); err != nil {
			slog.Error("Failed to upload transaction", "date", draft.Date, "amount", draft.Amount, "error", err)
			failed++
			_ = bar.Add(1)
			continue
		}
		imported++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if failed > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Imported %d transactions, %d failed", imported, failed)))
		return nil
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions", imported)))
	return nil
}
