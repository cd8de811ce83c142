// Package storage publishes generated assets to object storage. R2Store talks
// to any S3 compatible endpoint (Cloudflare R2 in production); FileStore keeps
// objects on the local filesystem for development and tests.
package storage

import "context"

const (
	ContentTypeWebP   = "image/webp"
	DispositionInline = "inline"
)

// ObjectMeta carries the HTTP metadata stored alongside an object.
type ObjectMeta struct {
	ContentType        string
	ContentDisposition string
}

// ObjectStore writes objects and reports the URL they are reachable at.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, meta ObjectMeta) (string, error)
}
