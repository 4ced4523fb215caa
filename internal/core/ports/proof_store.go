package ports

import (
	"context"
	"io"
	"time"
)

// ProofStore defines the contract for storing proof-of-payment images in an
// object store.
type ProofStore interface {
	// Put uploads a proof image and returns the object key it was stored
	// under.
	Put(ctx context.Context, orderNumber string, contentType string, body io.Reader) (string, error)

	// PresignGet returns a time-limited URL for downloading a stored proof.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes a stored proof.
	Delete(ctx context.Context, key string) error
}
