package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"intelliforms_backend/models"
)

type fakeStorage struct {
	objects    map[string][]byte
	presignErr error
	downErr    error

	lastObject      string
	lastContentType string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) PresignedUpload(_ context.Context, objectName, contentType string, _ int64) (*models.PresignedPost, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	f.lastObject = objectName
	f.lastContentType = contentType
	return &models.PresignedPost{
		URL:     "https://blob.local/" + objectName,
		Fields:  map[string]string{"key": objectName},
		Expires: time.Now().Add(15 * time.Minute),
	}, nil
}

func (f *fakeStorage) DownloadObject(_ context.Context, _, objectName string) ([]byte, error) {
	if f.downErr != nil {
		return nil, f.downErr
	}
	data, ok := f.objects[objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeStorage) BucketName() string { return "test-bucket" }

type queuedMessage struct {
	Topic string
	Task  models.UploadTask
}

type fakeQueue struct {
	pushed  []queuedMessage
	pushErr error
}

func (f *fakeQueue) PushToQueue(queueName string, value interface{}) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	// round-trip through JSON like the real queue does
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var task models.UploadTask
	if err := json.Unmarshal(raw, &task); err != nil {
		return err
	}
	f.pushed = append(f.pushed, queuedMessage{Topic: queueName, Task: task})
	return nil
}

func (f *fakeQueue) PopFromQueue(_ context.Context, _ string, _ time.Duration) (string, error) {
	return "", nil
}

type fakeCompleter struct {
	response string
	err      error

	calls      int
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeRunner struct {
	stdout string
	stderr string
	err    error

	lastName string
	lastArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.lastName = name
	f.lastArgs = args
	return []byte(f.stdout), []byte(f.stderr), f.err
}
