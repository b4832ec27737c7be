// Package logger provides a structured logging facility based on Zap.
//
// The CLI commands use the console encoding by default so sync summaries stay
// readable in a terminal; the HTTP server can switch to JSON for log shipping.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber context
// and attaches it to the log entry, so every line logged while serving a request
// can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Sync started")
package logger
