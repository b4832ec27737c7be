// Package reconcile turns a raw reading-activity payload into the canonical
// mapping of day -> read marker.
//
// The upstream account exposes reading history through several inconsistent
// channels depending on account state and API version. Each channel is handled
// by an Extractor, and the Reconciler tries them in priority order:
//
//  1. days_read: the explicit list of YYYY-MM-DD days (most complete).
//  2. current_daily_streak: {start, duration} expanded into consecutive days.
//  3. goal_info.titles_read: the completion day of each finished title.
//
// The first strategy that yields any day wins outright. A complete day list is
// never merged with approximate streak or title days, since that could fill gaps
// that are real.
//
// Malformed entries are skipped one by one and reported as ParseWarning. A run
// that produces nothing carries an EmptyResultWarning and an empty mapping; it
// is not an error.
//
// # Usage
//
//	r := reconcile.New(logger)
//	days, report := r.Reconcile(payload)
//	if report.Empty() {
//	    logger.Warn("No reading days found")
//	}
package reconcile
