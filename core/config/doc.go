// Package config provides configuration management for the reading tracker.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// section, so every key is registered and can be overridden by the matching
// upper-case environment variable (kindle.cookie -> KINDLE_COOKIE). The
// loaded sections are then checked against their `validate` tags.
//
// # Configuration Structure
//
//   - Kindle: session cookie, insights URL, request headers and timeout
//   - Data: directory and file names of the reading record and raw payload
//   - Report: output path, heatmap window and page title
//   - Server: HTTP port, API key, render cache TTL and metrics switch
//   - Storage: S3/MinIO credentials, bucket and key prefix for publishing
//   - Database: optional history mirror (mysql or sqlite)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Data.RecordPath())
package config
