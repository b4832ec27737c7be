// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the generated page and reading record can be
// published to AWS S3 or a self-hosted MinIO bucket that serves static sites.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first publish.
//   - PutObject: Uploads content (with size and content type).
//   - ListObjects: Lists what is already published under the prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
