package cmd

import (
	"fmt"
	"time"

	"reading-tracker/feature/record"
	"reading-tracker/feature/stats"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var statsJSON bool

// statsCmd prints the statistics of the saved record.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print reading statistics from the saved record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		rec, err := record.NewStore(cfg.Data, l).Load()
		if err != nil {
			return err
		}
		st := stats.Compute(rec.ReadingDays, time.Now())

		out := cmd.OutOrStdout()
		if statsJSON {
			data, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		fmt.Fprintf(out, "Total days:      %d\n", st.TotalDays)
		fmt.Fprintf(out, "This year:       %d\n", st.ThisYearDays)
		fmt.Fprintf(out, "This month:      %d\n", st.ThisMonthDays)
		fmt.Fprintf(out, "Current streak:  %d\n", st.CurrentStreak)
		fmt.Fprintf(out, "Longest streak:  %d\n", st.LongestStreak)
		if rec.LastUpdated != "" {
			fmt.Fprintf(out, "Last updated:    %s\n", rec.LastUpdatedDate())
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print statistics as JSON")
	RootCmd.AddCommand(statsCmd)
}
