package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"intelliforms_backend/config"
	"intelliforms_backend/models"
	"intelliforms_backend/pkg/logging"
	"intelliforms_backend/utils"

	"github.com/minio/minio-go/v7"
)

type Service struct {
	Client        *minio.Client
	Config        *minio.Options
	Bucket        string
	StorageType   string
	URLExpiration time.Duration
}

func InitStorageService(cfg *config.Config) (*Service, error) {
	var minioClient *minio.Client
	var err error

	// local vs s3
	switch cfg.StorageType {
	case "minio":
		minioClient, err = utils.CreateMinIOClient(cfg)
	case "s3":
		minioClient, err = utils.CreateS3Client(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
	if err != nil {
		logging.Logger.Error("fail InitStorageService", "error", err)
		return nil, err
	}
	ss := &Service{
		Client:        minioClient,
		Config:        &minio.Options{Region: cfg.BucketRegion},
		Bucket:        cfg.BucketName,
		StorageType:   cfg.StorageType,
		URLExpiration: cfg.URLExpiration,
	}
	if err := ss.EnsureBucketExists(); err != nil {
		logging.Logger.Error("fail InitStorageService", "error", err)
		return nil, err
	}
	logging.Logger.Info("Storage service initialized",
		"type", cfg.StorageType,
		"bucket", cfg.BucketName,
		"region", cfg.BucketRegion,
	)

	return ss, nil
}

func (ss *Service) EnsureBucketExists() error {
	ctx := context.Background()
	exists, err := ss.Client.BucketExists(ctx, ss.Bucket)
	if err != nil {
		logging.Logger.Error("fail ensureBucketExists", "error", err)
		return err
	}
	if exists {
		return nil
	}
	err = ss.Client.MakeBucket(ctx, ss.Bucket, minio.MakeBucketOptions{
		Region: ss.Config.Region,
	})
	if err != nil {
		if ss.StorageType == "s3" {
			logging.Logger.Warn("Could not create S3 bucket (might exist or no permission)",
				"bucket", ss.Bucket, "error", err)
			return nil
		}
		logging.Logger.Error("fail ensureBucketExists", "error", err)
		return err
	}
	logging.Logger.Info("Bucket created successfully")
	return nil
}

func (ss *Service) BucketName() string {
	return ss.Bucket
}

// PresignedUpload issues a write-scoped POST policy credential for objectName,
// bound to contentType and a length range, valid for the configured window.
// No blob is created here; the credential only authorizes a future write.
func (ss *Service) PresignedUpload(ctx context.Context, objectName, contentType string, maxFileSize int64) (*models.PresignedPost, error) {
	expires := time.Now().Add(ss.URLExpiration)

	policy := minio.NewPostPolicy()
	if err := policy.SetBucket(ss.Bucket); err != nil {
		return nil, err
	}
	if err := policy.SetKey(objectName); err != nil {
		return nil, err
	}
	if err := policy.SetExpires(expires); err != nil {
		return nil, err
	}
	if maxFileSize > 0 {
		if err := policy.SetContentLengthRange(1, maxFileSize); err != nil {
			return nil, err
		}
	}
	if err := policy.SetContentType(contentType); err != nil {
		return nil, err
	}

	postURL, formData, err := ss.Client.PresignedPostPolicy(ctx, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned POST: %w", err)
	}

	return &models.PresignedPost{
		URL:     postURL.String(),
		Fields:  formData,
		Expires: expires,
	}, nil
}

// DownloadObject reads the full object into memory. An empty bucket means the
// service's own bucket.
func (ss *Service) DownloadObject(ctx context.Context, bucket, objectName string) ([]byte, error) {
	if bucket == "" {
		bucket = ss.Bucket
	}
	obj, err := ss.Client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, err
	}
	return data, nil
}
