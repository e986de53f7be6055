package services

import (
	"context"
	"errors"
	"testing"

	"intelliforms_backend/models"
	"intelliforms_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFormJSON = `{
	"title": "Registro de Cliente",
	"fields": [
		{"id": "nombre", "label": "Nombre completo", "type": "text", "required": true},
		{"id": "email", "label": "Correo", "type": "email", "required": true},
		{"id": "plan", "label": "Plan", "type": "select", "required": false,
			"options": [
				{"value": "basico", "label": "Básico"},
				{"value": "premium", "label": "Premium"}
			]}
	]
}`

func TestGenerate(t *testing.T) {
	completer := &fakeCompleter{response: validFormJSON}
	svc := NewFormService(completer)

	form, err := svc.Generate(context.Background(), "some contract text", "moderna")
	require.NoError(t, err)

	assert.Equal(t, "Registro de Cliente", form.Title)
	require.Len(t, form.Fields, 3)
	assert.Equal(t, models.FieldSelect, form.Fields[2].Type)
	assert.Equal(t, 1, completer.calls)
	assert.Contains(t, completer.lastPrompt, "some contract text")
	assert.Contains(t, completer.lastPrompt, `"moderna"`)
	assert.Contains(t, completer.lastPrompt, "Return only the JSON")
}

func TestGenerate_FencedOutputEqualsUnfenced(t *testing.T) {
	svc := NewFormService(&fakeCompleter{response: validFormJSON})
	plain, err := svc.Generate(context.Background(), "text", "moderna")
	require.NoError(t, err)

	svc = NewFormService(&fakeCompleter{response: "```json\n" + validFormJSON + "\n```"})
	fenced, err := svc.Generate(context.Background(), "text", "moderna")
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
}

func TestGenerate_ProviderErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     error
	}{
		{"invalid key", "gemini API error: INVALID_ARGUMENT API_KEY_INVALID", apperrors.ErrInvalidAPIKey},
		{"quota", "gemini API error: RESOURCE_EXHAUSTED quota exceeded", apperrors.ErrQuotaExceeded},
		{"quota alt", "error QUOTA_EXCEEDED for project", apperrors.ErrQuotaExceeded},
		{"safety", "blocked due to SAFETY", apperrors.ErrContentBlocked},
		{"anything else", "connection reset by peer", apperrors.ErrGeneration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFormService(&fakeCompleter{err: errors.New(tt.provider)})
			_, err := svc.Generate(context.Background(), "text", "moderna")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseFormSpec_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", "here is your form: {", apperrors.ErrInvalidModelOutput},
		{"missing title", `{"fields": []}`, apperrors.ErrInvalidModelOutput},
		{"empty title", `{"title": "", "fields": []}`, apperrors.ErrInvalidModelOutput},
		{"missing fields", `{"title": "Form"}`, apperrors.ErrInvalidModelOutput},
		{"fields not an array", `{"title": "Form", "fields": {}}`, apperrors.ErrInvalidModelOutput},
		{
			"field missing label",
			`{"title": "Form", "fields": [{"id": "a", "type": "text"}]}`,
			apperrors.ErrInvalidFieldSpec,
		},
		{
			"field with unknown type",
			`{"title": "Form", "fields": [{"id": "a", "label": "A", "type": "date"}]}`,
			apperrors.ErrInvalidFieldSpec,
		},
		{
			"select without options",
			`{"title": "Form", "fields": [{"id": "a", "label": "A", "type": "select"}]}`,
			apperrors.ErrInvalidFieldOptions,
		},
		{
			"radio with empty option label",
			`{"title": "Form", "fields": [{"id": "a", "label": "A", "type": "radio",
				"options": [{"value": "x", "label": ""}]}]}`,
			apperrors.ErrInvalidFieldOptions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFormSpec([]byte(tt.raw))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseFormSpec_OptionsIgnoredForPlainFields(t *testing.T) {
	form, err := ParseFormSpec([]byte(`{"title": "Form", "fields": [
		{"id": "a", "label": "A", "type": "text"}
	]}`))
	require.NoError(t, err)
	assert.Empty(t, form.Fields[0].Options)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}
