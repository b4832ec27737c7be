package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"reading-tracker/core/reconcile"
	"reading-tracker/feature/record"
	readingsync "reading-tracker/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunReconcile bool
	yesConfirm      bool
)

// reconcileCmd rebuilds the record from the archived raw payload.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Rebuild the reading record from the archived raw payload",
	Long: `Re-runs reconciliation on the last archived Kindle payload without
contacting Kindle, then replaces the saved record.

Examples:
  # Report only
  reconcile --dry-run

  # Replace the record without prompting
  reconcile --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Print the reconciliation report without saving")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Replace the record without confirmation")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	store := record.NewStore(cfg.Data, l)
	reconciler := reconcile.New(l)

	if dryRunReconcile {
		payload, err := store.LoadRaw()
		if err != nil {
			return err
		}
		_, rep := reconciler.Reconcile(payload)
		printReconcileReport(l, rep)
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmReplace(store.Path()) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	svc := readingsync.NewService(nil, reconciler, store, openMirror(ctx, cfg, l), l)
	res, err := svc.Rebuild(ctx)
	if err != nil {
		return err
	}
	printReconcileReport(l, res.Report)
	l.Info("Record rebuilt", zap.String("path", store.Path()), zap.Int("total_days", res.Record.TotalDays))
	return nil
}

// confirmReplace prompts the user for confirmation or uses the --yes flag.
func confirmReplace(path string) bool {
	if yesConfirm {
		return true
	}

	fmt.Printf("\nThis replaces %s. Type 'yes' to continue: ", path)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
