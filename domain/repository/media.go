package repository

import (
	"context"
	"io"
)

// IMediaStore is the opaque content-addressable media boundary: raw bytes in,
// stable public URL out. The core treats it as synchronous; its failures
// surface as upstream errors.
type IMediaStore interface {
	Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
}
