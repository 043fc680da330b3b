package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Driver names accepted by NewFromDriver, matching the storage.driver
// configuration key.
const (
	DriverS3    = "s3"
	DriverGCS   = "gcs"
	DriverMinIO = "minio"
)

// ErrUnknownDriver is returned for a driver name the factory does not know.
var ErrUnknownDriver = errors.New("storage: unknown driver")

// FactoryOptions carries the per-backend configuration blocks. Only the block
// for the selected driver is read.
type FactoryOptions struct {
	S3    S3Options
	GCS   GCSOptions
	MinIO MinIOOptions
}

// NewFromDriver builds the Storage backend for the named driver.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverS3:
		return NewS3(ctx, opts.S3)
	case DriverGCS:
		return NewGCS(ctx, opts.GCS)
	case DriverMinIO:
		return NewMinIO(opts.MinIO)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
