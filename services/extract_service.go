package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"intelliforms_backend/pkg/apperrors"
	"intelliforms_backend/pkg/logging"

	"github.com/ledongthuc/pdf"
)

// ExtractService turns an uploaded blob into plain text. The strategy is
// picked from the file extension alone.
type ExtractService struct {
	storage       ObjectStorage
	runner        CommandRunner
	tesseractPath string
	lang          string
}

func NewExtractService(storage ObjectStorage, runner CommandRunner, tesseractPath, lang string) *ExtractService {
	return &ExtractService{
		storage:       storage,
		runner:        runner,
		tesseractPath: tesseractPath,
		lang:          lang,
	}
}

// Extract downloads the whole object into memory and extracts its text.
// Download and parse failures are wrapped so no partial text ever escapes.
func (s *ExtractService) Extract(ctx context.Context, bucket, fileName string) (string, error) {
	data, err := s.storage.DownloadObject(ctx, bucket, fileName)
	if err != nil {
		return "", fmt.Errorf("%w: download %s/%s: %v", apperrors.ErrExtraction, bucket, fileName, err)
	}
	return s.ExtractBuffer(ctx, fileName, data)
}

// ExtractBuffer dispatches on the extension after the last dot.
func (s *ExtractService) ExtractBuffer(ctx context.Context, fileName string, data []byte) (string, error) {
	ext, err := fileExtension(fileName)
	if err != nil {
		return "", err
	}

	switch ext {
	case "txt":
		return string(data), nil
	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("%w: pdf %s: %v", apperrors.ErrExtraction, fileName, err)
		}
		return text, nil
	case "doc", "docx":
		text, warnings, err := extractDocx(data)
		if err != nil {
			return "", fmt.Errorf("%w: word document %s: %v", apperrors.ErrExtraction, fileName, err)
		}
		for _, w := range warnings {
			logging.Logger.Warn("word extraction warning", "file", fileName, "warning", w)
		}
		return text, nil
	case "png", "jpg", "jpeg":
		text, err := s.extractImage(ctx, data, ext)
		if err != nil {
			return "", fmt.Errorf("%w: image %s: %v", apperrors.ErrExtraction, fileName, err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: %w: .%s", apperrors.ErrExtraction, apperrors.ErrUnsupportedFileType, ext)
	}
}

// fileExtension returns the lowercased extension after the last dot.
func fileExtension(fileName string) (string, error) {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return "", fmt.Errorf("%w: %w: %q", apperrors.ErrExtraction, apperrors.ErrMissingExtension, fileName)
	}
	return strings.ToLower(fileName[idx+1:]), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractImage runs tesseract OCR over a temp copy of the image. No detected
// text is not an error: the result is just empty.
func (s *ExtractService) extractImage(ctx context.Context, data []byte, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "ocr-*."+ext)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.runner.Run(ctx, s.tesseractPath, tmp.Name(), "stdout", "-l", s.lang)
	if err != nil {
		return "", fmt.Errorf("tesseract: %v: %s", err, stderr)
	}
	return strings.TrimSpace(string(stdout)), nil
}
