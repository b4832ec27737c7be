// Package metrics exposes Prometheus metrics for the HTTP server: request
// counts and durations per route, page cache hits and misses, render
// durations and the size of the loaded record.
package metrics
