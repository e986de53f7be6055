package services

import (
	"context"
	"fmt"
	"strings"

	"intelliforms_backend/config"
	"intelliforms_backend/models"
	"intelliforms_backend/pkg/apperrors"
	"intelliforms_backend/pkg/logging"
	"intelliforms_backend/utils"

	"github.com/google/uuid"
)

// UploadService issues signed upload grants and accepts upload notifications.
type UploadService struct {
	cfg     *config.Config
	storage ObjectStorage
	queue   MessageQueue
}

func NewUploadService(cfg *config.Config, storage ObjectStorage, queue MessageQueue) *UploadService {
	return &UploadService{
		cfg:     cfg,
		storage: storage,
		queue:   queue,
	}
}

// IssueUploadURL validates the request and asks the blob store for a
// write-scoped credential. No blob is created; the grant only authorizes a
// future write of fullFileName with the bound content type.
func (s *UploadService) IssueUploadURL(ctx context.Context, req models.UploadURLRequest) (*models.SignedUploadGrant, error) {
	baseName := strings.TrimSpace(req.FileName)
	if baseName == "" {
		return nil, fmt.Errorf("%w: fileName must not be empty", apperrors.ErrMissingParameter)
	}
	if strings.TrimSpace(req.FileExtension) == "" {
		return nil, fmt.Errorf("%w: fileExtension is required", apperrors.ErrMissingParameter)
	}
	mimeType, err := utils.MimeTypeFor(req.FileExtension)
	if err != nil {
		return nil, err
	}
	if req.FileSize != nil {
		if *req.FileSize <= 0 {
			return nil, fmt.Errorf("%w: fileSize must be a positive number", apperrors.ErrFileTooLarge)
		}
		if *req.FileSize > s.cfg.MaxFileSize {
			return nil, fmt.Errorf("%w: max %d MB", apperrors.ErrFileTooLarge, s.cfg.MaxFileSize/(1024*1024))
		}
	}

	fullFileName := baseName + utils.NormalizeExtension(req.FileExtension)

	post, err := s.storage.PresignedUpload(ctx, fullFileName, mimeType, s.cfg.MaxFileSize)
	if err != nil {
		logging.Logger.Error("fail PresignedUpload", "error", err, "file", fullFileName)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStore, err)
	}

	return &models.SignedUploadGrant{
		SignedURL:      post.URL,
		Fields:         post.Fields,
		FileName:       fullFileName,
		MimeType:       mimeType,
		ExpirationTime: post.Expires,
	}, nil
}

// Notify publishes an upload task onto the queue topic. Fire-and-forget: a
// nil error means "accepted for processing", not "processed".
func (s *UploadService) Notify(ctx context.Context, req models.NotifyRequest) (string, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return "", fmt.Errorf("%w: fileName is required", apperrors.ErrMissingParameter)
	}
	if strings.TrimSpace(req.Template) == "" {
		return "", fmt.Errorf("%w: template is required", apperrors.ErrMissingParameter)
	}
	if s.cfg.BucketName == "" || s.cfg.QueueTopic == "" {
		logging.Logger.Error("fail Notify: incomplete environment", "bucket", s.cfg.BucketName, "topic", s.cfg.QueueTopic)
		return "", fmt.Errorf("%w: BUCKET_NAME and QUEUE_TOPIC must be set", apperrors.ErrConfiguration)
	}

	task := models.UploadTask{
		MessageID: uuid.New().String(),
		FileName:  req.FileName,
		Template:  req.Template,
		Bucket:    s.cfg.BucketName,
	}
	if err := s.queue.PushToQueue(s.cfg.QueueTopic, task); err != nil {
		logging.Logger.Error("fail PushToQueue", "error", err, "file", req.FileName)
		return "", err
	}
	logging.Logger.Info("upload task queued",
		"message_id", task.MessageID,
		"file", task.FileName,
		"template", task.Template,
	)
	return task.MessageID, nil
}
