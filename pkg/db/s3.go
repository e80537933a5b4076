package db

import (
	"context"
	"log/slog"

	"github.com/hatchdotlol/geosignup/pkg/util"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Objects *minio.Client

// InitS3 connects to minio and makes sure the document bucket exists.
func InitS3(ctx context.Context) error {
	cfg := util.Config.Minio

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	}

	var err error
	Objects, err = minio.New(cfg.Endpoint, opts)
	if err != nil {
		return err
	}

	exists, err := Objects.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		slog.Warn("MinIO endpoint is not available", "endpoint", cfg.Endpoint, "err", err)
		return nil
	}

	if !exists {
		if err := Objects.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
		slog.Info("Created document bucket", "bucket", cfg.Bucket)
	}

	return nil
}
