// Package s3 stores proof-of-payment images in an S3-compatible object
// store. Works against AWS S3 as well as MinIO and R2 via a custom endpoint.
package s3

import (
	"context"
	"fmt"
	"io"
	"mime"
	"time"

	"laundry/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ProofStoreAdapter implements ports.ProofStore on an S3 bucket.
// Keys are laid out as proofs/<order-number>/<random>.<ext> so one order can
// accumulate more than one proof without collisions.
type ProofStoreAdapter struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

// NewProofStoreAdapter creates a proof store backed by the given bucket.
func NewProofStoreAdapter(client *s3.Client, bucket string) *ProofStoreAdapter {
	return &ProofStoreAdapter{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
	}
}

// Put uploads a proof image and returns its object key.
func (a *ProofStoreAdapter) Put(
	ctx context.Context, orderNumber string, contentType string, body io.Reader,
) (string, error) {
	key := proofKey(orderNumber, contentType)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put proof object: %w", err)
	}

	return key, nil
}

// PresignGet returns a time-limited download URL for a stored proof.
func (a *ProofStoreAdapter) PresignGet(
	ctx context.Context, key string, expiry time.Duration,
) (string, error) {
	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("presign proof object: %w", err)
	}

	return req.URL, nil
}

// Delete removes a stored proof.
func (a *ProofStoreAdapter) Delete(ctx context.Context, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete proof object: %w", err)
	}

	return nil
}

func proofKey(orderNumber, contentType string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return fmt.Sprintf("proofs/%s/%s%s", orderNumber, uuid.NewString(), ext)
}

// Compile-time check
var _ ports.ProofStore = (*ProofStoreAdapter)(nil)
