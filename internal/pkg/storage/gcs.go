package storage

import (
	"context"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSOptions configures the Google Cloud Storage backend. An existing Client
// may be injected; otherwise one is created from ambient credentials. Signed
// URLs require GoogleAccessID and PrivateKey (a service account key).
type GCSOptions struct {
	Client         *gcs.Client
	GoogleAccessID string
	PrivateKey     []byte
}

// GCS implements Storage on Google Cloud Storage.
type GCS struct {
	client  *gcs.Client
	ownsCli bool
	signID  string
	signKey []byte
}

// NewGCS builds the GCS backend.
func NewGCS(ctx context.Context, opts GCSOptions) (*GCS, error) {
	client := opts.Client
	owns := false
	if client == nil {
		var err error
		client, err = gcs.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		owns = true
	}
	return &GCS{client: client, ownsCli: owns, signID: opts.GoogleAccessID, signKey: opts.PrivateKey}, nil
}

func (g *GCS) PutObject(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (ObjectInfo, error) {
	obj := g.client.Bucket(bucket).Object(key)
	w := obj.NewWriter(ctx)
	w.ContentType = opts.ContentType
	w.Metadata = opts.Metadata

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return ObjectInfo{}, err
	}
	if err := w.Close(); err != nil {
		return ObjectInfo{}, err
	}
	return g.objectInfo(bucket, w.Attrs()), nil
}

func (g *GCS) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error) {
	obj := g.client.Bucket(bucket).Object(key)
	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	rd, err := obj.NewReader(ctx)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	return rd, g.objectInfo(bucket, attrs), nil
}

func (g *GCS) StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error) {
	attrs, err := g.client.Bucket(bucket).Object(key).Attrs(ctx)
	if err != nil {
		return ObjectInfo{}, err
	}
	return g.objectInfo(bucket, attrs), nil
}

func (g *GCS) DeleteObject(ctx context.Context, bucket, key string) error {
	return g.client.Bucket(bucket).Object(key).Delete(ctx)
}

func (g *GCS) ListObjects(ctx context.Context, bucket, prefix string, limit int) ([]ObjectInfo, error) {
	it := g.client.Bucket(bucket).Objects(ctx, &gcs.Query{Prefix: prefix})

	var objects []ObjectInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			return objects, nil
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, g.objectInfo(bucket, attrs))
		if limit > 0 && len(objects) >= limit {
			return objects, nil
		}
	}
}

func (g *GCS) PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	return g.signedURL(bucket, key, "GET", "", expiry)
}

func (g *GCS) PresignPut(ctx context.Context, bucket, key string, opts PutOptions, expiry time.Duration) (string, error) {
	return g.signedURL(bucket, key, "PUT", opts.ContentType, expiry)
}

func (g *GCS) signedURL(bucket, key, method, contentType string, expiry time.Duration) (string, error) {
	if g.signID == "" || len(g.signKey) == 0 {
		return "", ErrNoSigner
	}
	return gcs.SignedURL(bucket, key, &gcs.SignedURLOptions{
		GoogleAccessID: g.signID,
		PrivateKey:     g.signKey,
		Method:         method,
		ContentType:    contentType,
		Expires:        time.Now().Add(expiry),
		Scheme:         gcs.SigningSchemeV4,
	})
}

func (g *GCS) Close() error {
	if g.ownsCli {
		return g.client.Close()
	}
	return nil
}

func (g *GCS) objectInfo(bucket string, attrs *gcs.ObjectAttrs) ObjectInfo {
	if attrs == nil {
		return ObjectInfo{Bucket: bucket}
	}
	return ObjectInfo{
		Bucket:      bucket,
		Key:         attrs.Name,
		Size:        attrs.Size,
		ETag:        attrs.Etag,
		ContentType: attrs.ContentType,
		Metadata:    attrs.Metadata,
		UpdatedAt:   attrs.Updated,
	}
}
