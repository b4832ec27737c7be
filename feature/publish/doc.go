// Package publish uploads the generated page and reading record to an
// S3-compatible bucket.
package publish
