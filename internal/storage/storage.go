// Package storage defines the blob store used for uploaded gallery media.
// Two implementations exist: local (a directory served over HTTP) and
// s3store (any S3-compatible bucket, e.g. Supabase Storage or MinIO).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrExists is returned by Put when the key is already taken.
var ErrExists = errors.New("object already exists")

// Object describes a blob to be written.
type Object struct {
	Key          string
	ContentType  string
	Size         int64
	CacheControl string
	Body         io.Reader
}

type Store interface {
	// Put writes the object. It never overwrites an existing key.
	Put(ctx context.Context, obj Object) error
	// URL returns the retrieval URL for key.
	URL(key string) string
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Kind names the backend for logs and the health endpoint.
	Kind() string
}

// NewKey builds a collision-free object key under prefix. The original
// filename only contributes its extension.
func NewKey(prefix, filename string, now time.Time) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(filename, "\\", "/")))
	if len(ext) > 10 || strings.ContainsAny(ext, " /?#%") {
		ext = ""
	}
	return fmt.Sprintf("%s/%d/%02d/%02d/%s%s",
		strings.Trim(prefix, "/"), now.Year(), now.Month(), now.Day(), uuid.NewString(), ext)
}
