package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reading-tracker/core/storage"
	"reading-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_Publish(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, storage.Config{Bucket: "reading", Prefix: "/site/"}, zap.NewNop())

	page := writeTemp(t, "index.html", "<html></html>")
	rec := writeTemp(t, "reading_data.json", "{}")

	mockClient.On("BucketExists", mock.Anything, "reading").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "reading", "site/index.html", mock.Anything, int64(13),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "text/html; charset=utf-8" })).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("PutObject", mock.Anything, "reading", "site/data/reading.json", mock.Anything, int64(2),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })).
		Return(minio.UploadInfo{}, nil)

	out, err := svc.Publish(context.Background(), File{Path: page}, File{Path: rec, Name: "data/reading.json"})
	require.NoError(t, err)
	assert.Equal(t, []Uploaded{
		{Key: "site/index.html", Size: 13, ContentType: "text/html; charset=utf-8"},
		{Key: "site/data/reading.json", Size: 2, ContentType: "application/json"},
	}, out)
	mockClient.AssertExpectations(t)
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_PublishCreatesBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, storage.Config{Bucket: "reading", Region: "eu-west-1"}, nil)
	page := writeTemp(t, "index.html", "x")

	mockClient.On("BucketExists", mock.Anything, "reading").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "reading", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
	mockClient.On("PutObject", mock.Anything, "reading", "index.html", mock.Anything, int64(1), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	_, err := svc.Publish(context.Background(), File{Path: page})
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestService_PublishErrors(t *testing.T) {
	t.Run("Bucket check fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, storage.Config{Bucket: "reading"}, zap.NewNop())
		mockClient.On("BucketExists", mock.Anything, "reading").Return(false, errors.New("offline"))

		_, err := svc.Publish(context.Background(), File{Path: "unused"})
		assert.ErrorContains(t, err, "failed to check bucket")
	})

	t.Run("Missing file", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, storage.Config{Bucket: "reading"}, zap.NewNop())
		mockClient.On("BucketExists", mock.Anything, "reading").Return(true, nil)

		_, err := svc.Publish(context.Background(), File{Path: filepath.Join(t.TempDir(), "nope.html")})
		assert.ErrorContains(t, err, "failed to read")
	})

	t.Run("Upload fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, storage.Config{Bucket: "reading"}, zap.NewNop())
		page := writeTemp(t, "index.html", "x")
		mockClient.On("BucketExists", mock.Anything, "reading").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "reading", "index.html", mock.Anything, int64(1), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		out, err := svc.Publish(context.Background(), File{Path: page})
		assert.ErrorContains(t, err, "failed to upload index.html")
		assert.Empty(t, out)
	})
}

func TestService_List(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, storage.Config{Bucket: "reading", Prefix: "site"}, zap.NewNop())

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "site/index.html"}
	ch <- minio.ObjectInfo{Key: "site/reading_data.json"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "reading", minio.ListObjectsOptions{Prefix: "site/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))

	keys, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"site/index.html", "site/reading_data.json"}, keys)
}

func TestService_ListError(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, storage.Config{Bucket: "reading"}, zap.NewNop())

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("no such bucket")}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "reading", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := svc.List(context.Background())
	assert.ErrorContains(t, err, "no such bucket")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", ContentType("INDEX.HTML"))
	assert.Equal(t, "application/json", ContentType("reading_data.json"))
	assert.Equal(t, "application/zstd", ContentType("kindle_data.json.zst"))
	assert.Equal(t, "application/octet-stream", ContentType("notes"))
}
