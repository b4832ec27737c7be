// Package report renders the static reading page: stat tiles, a trailing
// calendar heatmap with month labels and the last sync date.
package report
