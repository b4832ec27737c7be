// Package stats derives reading statistics and the calendar heatmap from the
// canonical reading days.
//
// Every function takes "now" as a parameter instead of reading the clock, so
// results depend only on their inputs. Day boundaries follow the wall clock of
// the location carried by now.
//
//   - Compute: total, this-year and this-month counts plus current and longest streaks.
//   - Heatmap: Monday-aligned weeks covering a trailing window (default 360 days).
//   - MonthLabels: column labels for the heatmap.
package stats
