// Package server holds the HTTP server settings used by the start command.
package server
