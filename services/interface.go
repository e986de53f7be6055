package services

import (
	"context"
	"time"

	"intelliforms_backend/models"
)

// MessageQueue is for the redis message queue
type MessageQueue interface {
	PushToQueue(queueName string, value interface{}) error
	PopFromQueue(ctx context.Context, queueName string, timeout time.Duration) (string, error)
}

// ObjectStorage covers what the upload and extraction paths need from the
// blob store.
type ObjectStorage interface {
	PresignedUpload(ctx context.Context, objectName, contentType string, maxFileSize int64) (*models.PresignedPost, error)
	DownloadObject(ctx context.Context, bucket, objectName string) ([]byte, error)
	BucketName() string
}

// TextCompleter sends a prompt to the generative model and returns raw text.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CommandRunner lets tests stub the tesseract binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}
