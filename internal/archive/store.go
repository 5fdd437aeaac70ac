// Package archive stores generated QR images in S3 or on local disk.
package archive

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrNotFound is returned by Get when no object exists under the key.
var ErrNotFound = errors.New("archive: object not found")

// Store saves and loads binary objects by key.
type Store interface {
	// Put writes data under key, replacing any previous object.
	Put(ctx context.Context, key string, data []byte) error

	// Get reads the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the object stored under key. Deleting a missing object
	// is not an error.
	Delete(ctx context.Context, key string) error
}

// QRKey returns the archive key of a passport QR image. The image encodes a
// URL under baseURL, so the key carries a short digest of it and a changed
// base URL never serves an image pointing at the old host.
func QRKey(passportID, baseURL string) string {
	sum := sha256.Sum256([]byte(baseURL))
	return passportID + "-" + hex.EncodeToString(sum[:4]) + ".png"
}
