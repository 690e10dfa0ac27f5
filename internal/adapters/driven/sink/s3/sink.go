// Package s3 provides an export sink uploading to Amazon S3 (or any
// S3-compatible endpoint configured through the AWS SDK environment).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Scheme is the URL scheme selecting this sink, as in s3://bucket/prefix.
const Scheme = "s3"

// Ensure Sink implements the interface.
var _ driven.ExportSink = (*Sink)(nil)

// PartSize is the multipart threshold. Exports below it are sent with a
// single PutObject.
const PartSize = 8 * 1024 * 1024

// API is the subset of the S3 client used by the sink: PutObject plus the
// multipart calls of large uploads.
type API = manager.UploadAPIClient

// Sink uploads exports as objects under a bucket prefix.
type Sink struct {
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// New creates a sink for bucket. The prefix may be empty.
func New(client API, bucket, prefix string) (*Sink, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: s3 client is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("%w: bucket is required", domain.ErrInvalidInput)
	}
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = PartSize
	})
	return &Sink{
		uploader: uploader,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
	}, nil
}

// NewFromURL builds a sink for a destination like s3://bucket/prefix using
// the default AWS credential chain.
func NewFromURL(ctx context.Context, dest string) (*Sink, error) {
	bucket, prefix, err := ParseURL(dest)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return New(s3.NewFromConfig(cfg), bucket, prefix)
}

// ParseURL splits s3://bucket/prefix into its bucket and prefix.
func ParseURL(dest string) (bucket, prefix string, err error) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", fmt.Errorf("%w: destination %q: %v", domain.ErrInvalidInput, dest, err)
	}
	if u.Scheme != Scheme || u.Host == "" {
		return "", "", fmt.Errorf("%w: destination %q is not s3://bucket[/prefix]", domain.ErrInvalidInput, dest)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}

// IsURL reports whether dest names an S3 destination.
func IsURL(dest string) bool {
	return strings.HasPrefix(dest, Scheme+"://")
}

// Write uploads the payload and returns its s3:// location.
func (s *Sink) Write(ctx context.Context, req driven.ExportRequest) (string, error) {
	if req.Key == "" {
		return "", fmt.Errorf("%w: empty export key", domain.ErrInvalidInput)
	}

	// Keys keep S3 semantics; no path cleaning.
	key := strings.TrimLeft(req.Key, "/")
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(req.Data),
		ContentLength: aws.Int64(int64(len(req.Data))),
	}
	if req.ContentType != "" {
		input.ContentType = aws.String(req.ContentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("put s3 object key=%q: %w", key, err)
	}
	return Scheme + "://" + s.bucket + "/" + key, nil
}
