package cmd

import (
	"time"

	"reading-tracker/feature/record"
	"reading-tracker/feature/report"

	"github.com/spf13/cobra"
)

var renderOutput string

// renderCmd generates the static page from the saved record.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate the reading page from the saved record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		if renderOutput != "" {
			cfg.Report.Output = renderOutput
		}

		rec, err := record.NewStore(cfg.Data, l).Load()
		if err != nil {
			return err
		}

		renderer, err := report.NewRenderer(cfg.Report, l)
		if err != nil {
			return err
		}
		_, err = renderer.RenderFile(rec, time.Now())
		return err
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (defaults to report.output)")
	RootCmd.AddCommand(renderCmd)
}
