package cmd

import (
	"context"
	"time"

	"reading-tracker/core/config"
	"reading-tracker/core/database"
	"reading-tracker/core/reconcile"
	"reading-tracker/feature/history"
	"reading-tracker/feature/kindle"
	"reading-tracker/feature/record"
	"reading-tracker/feature/report"
	readingsync "reading-tracker/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderAfterSync bool

// syncCmd fetches the reading history and replaces the saved record.
var syncCmd = &cobra.Command{
	Use:   "sync [cookie]",
	Short: "Sync reading days from Kindle Reading Insights",
	Long: `Fetches the Reading Insights page and data document with the given
session cookie, reconciles them into reading days and replaces the saved record.

The cookie is taken from the first argument or the KINDLE_COOKIE variable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&renderAfterSync, "render", false, "Render the page after a successful sync")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	cookie := cfg.Kindle.Cookie
	if len(args) > 0 {
		cookie = args[0]
	}

	store := record.NewStore(cfg.Data, l)
	client := kindle.NewClient(cfg.Kindle, l)
	svc := readingsync.NewService(client, reconcile.New(l), store, openMirror(ctx, cfg, l), l)

	res, err := svc.Run(ctx, cookie)
	if err != nil {
		return err
	}
	printReconcileReport(l, res.Report)

	if renderAfterSync {
		renderer, err := report.NewRenderer(cfg.Report, l)
		if err != nil {
			return err
		}
		if _, err := renderer.RenderFile(res.Record, time.Now()); err != nil {
			return err
		}
	}

	l.Info("Kindle data synced successfully", zap.Int("total_days", res.Record.TotalDays))
	return nil
}

// openMirror connects the optional history mirror. Failures are logged and
// the sync continues without it.
func openMirror(ctx context.Context, cfg *config.Config, l *zap.Logger) readingsync.Mirror {
	if !cfg.Database.Enabled {
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}

	repo := history.NewRepository(db, l)
	if err := repo.Migrate(ctx); err != nil {
		l.Warn("History table migration failed", zap.Error(err))
		return nil
	}
	return repo
}

// printReconcileReport logs the outcome of a reconciliation.
func printReconcileReport(l *zap.Logger, r *reconcile.Report) {
	l.Info("Reconciliation report",
		zap.String("source", r.Source),
		zap.Int("days", r.Days),
		zap.Int("parse_warnings", r.CountKind(reconcile.ParseWarning)),
	)

	maxShow := 5
	shown := 0
	for _, w := range r.Warnings {
		if w.Kind != reconcile.ParseWarning {
			continue
		}
		if shown == maxShow {
			l.Info("Additional warnings not shown", zap.Int("count", r.CountKind(reconcile.ParseWarning)-maxShow))
			break
		}
		l.Info("Skipped entry", zap.String("source", w.Source), zap.String("value", w.Value))
		shown++
	}
}
