package utils

import (
	"fmt"
	"sort"
	"strings"

	"intelliforms_backend/pkg/apperrors"
)

// AllowedFileTypes is the upload allow-set and its fixed MIME mapping.
var AllowedFileTypes = map[string]string{
	".txt":  "text/plain",
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// NormalizeExtension lowercases ext and guarantees a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ext
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// MimeTypeFor resolves the MIME type for an allowed extension. Pure, no state.
func MimeTypeFor(ext string) (string, error) {
	mime, ok := AllowedFileTypes[NormalizeExtension(ext)]
	if !ok {
		return "", fmt.Errorf("%w: %q (allowed: %s)", apperrors.ErrInvalidExtension, ext, allowedList())
	}
	return mime, nil
}

func allowedList() string {
	keys := make([]string, 0, len(AllowedFileTypes))
	for k := range AllowedFileTypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
