// Package storage streams video attachments to an S3-compatible object
// store. It never talks to the exercise server; associating the resulting
// URL with an exercise is the caller's job.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/kwhalen/repbook/internal/config"
	"github.com/kwhalen/repbook/internal/domain"
)

// VideoStore implements domain.VideoStorage backed by an S3-compatible service
type VideoStore struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
	logger   *slog.Logger
}

// NewVideoStore configures an uploader targeting the provided object store
func NewVideoStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*VideoStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("video store: bucket is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if strings.TrimSpace(cfg.Endpoint) != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{
					URL:           cfg.Endpoint,
					SigningRegion: cfg.Region,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
		u.LeavePartsOnError = false
	})

	return &VideoStore{
		uploader: uploader,
		bucket:   cfg.Bucket,
		baseURL:  strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:   logger,
	}, nil
}

// Upload starts a transfer of size bytes read from r. The object key is
// derived from the owning exercise and the file's name; a short random
// prefix keeps re-uploads of the same file from colliding.
func (s *VideoStore) Upload(ctx context.Context, exerciseID int, filename string, r io.Reader, size int64) *domain.Transfer {
	ctx, cancel := context.WithCancel(ctx)
	transfer := domain.NewTransfer(cancel)

	key := fmt.Sprintf("videos/exercise_%d/%s_%s",
		exerciseID, uuid.NewString()[:8], filepath.Base(filename))

	go func() {
		body := &progressReader{
			r:      r,
			total:  size,
			report: transfer.ReportProgress,
		}

		s.logger.Info("starting video upload", "key", key, "size", size)

		_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   body,
			ACL:    s3types.ObjectCannedACLPublicRead,
		})
		if err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				s.logger.Info("video upload cancelled", "key", key)
				transfer.Fail(domain.ErrUploadCancelled)
				return
			}
			s.logger.Error("video upload failed", "key", key, "error", err)
			transfer.Fail(fmt.Errorf("upload %s: %w", key, err))
			return
		}

		url := key
		if s.baseURL != "" {
			url = fmt.Sprintf("%s/%s", s.baseURL, key)
		}

		s.logger.Info("video upload complete", "key", key, "url", url)
		transfer.Complete(url)
	}()

	return transfer
}
