package models

import "time"

type UploadURLRequest struct {
	FileName      string `json:"fileName"`
	FileExtension string `json:"fileExtension"`
	// optional; pointer so a missing size can be told apart from zero
	FileSize *int64 `json:"fileSize,omitempty"`
}

// PresignedPost is what the blob store hands back for a policy upload.
type PresignedPost struct {
	URL     string
	Fields  map[string]string
	Expires time.Time
}

// SignedUploadGrant is returned to the client; it authorizes a single write
// of fullFileName with the bound content type until ExpirationTime.
type SignedUploadGrant struct {
	SignedURL      string            `json:"signedUrl"`
	Fields         map[string]string `json:"fields,omitempty"`
	FileName       string            `json:"fileName"`
	MimeType       string            `json:"mimeType"`
	ExpirationTime time.Time         `json:"expirationTime"`
}

type NotifyRequest struct {
	FileName string `json:"fileName"`
	Template string `json:"template"`
}

type TemplateInfo struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
