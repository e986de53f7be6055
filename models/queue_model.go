package models

// UploadTask is the queue message published by the notifier and consumed by
// the pipeline worker. MessageID is assigned at publish time; there is no
// delivery tracking beyond it.
type UploadTask struct {
	MessageID string `json:"messageId"`
	FileName  string `json:"fileName"`
	Template  string `json:"template"`
	Bucket    string `json:"bucket"`
}
