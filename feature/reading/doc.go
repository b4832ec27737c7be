// Package reading serves the saved reading record over HTTP: the rendered
// page at "/" and JSON statistics, heatmap and record under "/api/reading".
//
// The rendered page is cached for the configured TTL; concurrent cache misses
// share a single render.
package reading
