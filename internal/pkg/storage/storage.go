package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNoSigner is returned from the presign methods when the backend has no
// signing credentials configured.
var ErrNoSigner = errors.New("storage: presign credentials not configured")

// Storage is the object-store surface the modules use. Buckets are plain
// names; where the object lives is a deployment decision made through the
// factory.
type Storage interface {
	io.Closer

	// PutObject streams r into bucket/key. Pass Size -1 when the length is
	// unknown up front.
	PutObject(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (ObjectInfo, error)

	// GetObject opens the object for reading. The caller closes the reader.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error)

	// StatObject fetches metadata without the body.
	StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error)

	// DeleteObject removes the object.
	DeleteObject(ctx context.Context, bucket, key string) error

	// ListObjects returns up to limit objects under prefix. limit <= 0 means
	// no cap.
	ListObjects(ctx context.Context, bucket, prefix string, limit int) ([]ObjectInfo, error)

	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)

	// PresignPut returns a time-limited upload URL.
	PresignPut(ctx context.Context, bucket, key string, opts PutOptions, expiry time.Duration) (string, error)
}

// PutOptions describes the object being written.
type PutOptions struct {
	// Size is the content length, or -1 when unknown.
	Size int64

	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the backend reports about a stored object.
type ObjectInfo struct {
	Bucket      string
	Key         string
	Size        int64
	ETag        string
	ContentType string
	Metadata    map[string]string
	UpdatedAt   time.Time
}
