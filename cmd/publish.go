package cmd

import (
	"context"
	"fmt"

	"reading-tracker/core/storage"
	"reading-tracker/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	publishRaw  bool
	publishList bool
)

// publishCmd uploads the page and record to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the generated page and record to the storage bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		svc := publish.NewService(client, cfg.Storage, l)

		if publishList {
			keys, err := svc.List(ctx)
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		}

		files := []publish.File{
			{Path: cfg.Report.Output, Name: "index.html"},
			{Path: cfg.Data.RecordPath()},
		}
		if publishRaw {
			files = append(files, publish.File{Path: cfg.Data.RawPath()})
		}

		uploaded, err := svc.Publish(ctx, files...)
		if err != nil {
			return err
		}
		l.Info("Published reading page", zap.String("bucket", cfg.Storage.Bucket), zap.Int("objects", len(uploaded)))
		return nil
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishRaw, "include-raw", false, "Also upload the archived raw payload")
	publishCmd.Flags().BoolVar(&publishList, "list", false, "List published objects instead of uploading")
	RootCmd.AddCommand(publishCmd)
}
