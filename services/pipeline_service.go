package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"intelliforms_backend/models"
	"intelliforms_backend/pkg/apperrors"
	"intelliforms_backend/pkg/logging"
)

// PipelineService sequences extraction and generation for one queued task.
// Terminal on first failure: no retries, no compensation, no dead-letter.
type PipelineService struct {
	extractService *ExtractService
	formService    *FormService
	maxPromptChars int
}

func NewPipelineService(extractService *ExtractService, formService *FormService, maxPromptChars int) *PipelineService {
	return &PipelineService{
		extractService: extractService,
		formService:    formService,
		maxPromptChars: maxPromptChars,
	}
}

// Process runs one queued upload task to completion. On success the result is
// logged only; writing it to a durable store is a future step.
func (s *PipelineService) Process(ctx context.Context, task models.UploadTask) error {
	if task.FileName == "" || task.Template == "" || task.Bucket == "" {
		logging.Logger.Error("invalid queue message",
			"stage", "decode", "message_id", task.MessageID, "task", fmt.Sprintf("%+v", task))
		return fmt.Errorf("%w: queue message needs fileName, template and bucket", apperrors.ErrMissingParameter)
	}

	logging.Logger.Info("processing started",
		"file", task.FileName, "template", task.Template, "message_id", task.MessageID)

	text, err := s.extractService.Extract(ctx, task.Bucket, task.FileName)
	if err != nil {
		logging.Logger.Error("fail Extract",
			"stage", "extract", "file", task.FileName, "error", err)
		return err
	}
	if strings.TrimSpace(text) == "" {
		logging.Logger.Warn("no text extracted, aborting",
			"stage", "extract", "file", task.FileName)
		return fmt.Errorf("%w: no text extracted from %s", apperrors.ErrExtraction, task.FileName)
	}

	form, err := s.formService.Generate(ctx, TruncateText(text, s.maxPromptChars), task.Template)
	if err != nil {
		logging.Logger.Error("fail Generate",
			"stage", "generate", "file", task.FileName, "error", err)
		return err
	}

	logging.Logger.Info("processing completed",
		"file", task.FileName, "form_title", form.Title, "fields", len(form.Fields))
	return nil
}

// GenerateFromBuffer is the synchronous flow: an in-memory file straight to a
// form, skipping the blob store and the queue.
func (s *PipelineService) GenerateFromBuffer(ctx context.Context, fileName string, data []byte, template string) (*models.FormSpec, error) {
	text, err := s.extractService.ExtractBuffer(ctx, fileName, data)
	if err != nil {
		return nil, err
	}
	return s.formService.Generate(ctx, TruncateText(text, s.maxPromptChars), template)
}

// TruncateText caps s at max characters without splitting a rune.
func TruncateText(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
