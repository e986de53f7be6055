package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"intelliforms_backend/models"
	"intelliforms_backend/pkg/apperrors"
	"intelliforms_backend/pkg/logging"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// formShapeSchema only guards the top-level shape; the per-field checks below
// produce the finer-grained errors the callers rely on.
var formShapeSchema = jsonschema.MustCompileString("form.json", `{
	"type": "object",
	"required": ["title", "fields"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"fields": {"type": "array"}
	}
}`)

// FormService is the bridge to the generative model: it builds the prompt,
// parses the reply, and validates the resulting form. Provider errors are
// classified but never retried.
type FormService struct {
	completer TextCompleter
}

func NewFormService(completer TextCompleter) *FormService {
	return &FormService{completer: completer}
}

func (s *FormService) Generate(ctx context.Context, text, template string) (*models.FormSpec, error) {
	prompt := s.BuildPrompt(text, template)

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		logging.Logger.Error("fail Complete", "error", err, "template", template)
		return nil, classifyProviderError(err)
	}

	form, err := ParseFormSpec([]byte(StripCodeFence(raw)))
	if err != nil {
		logging.Logger.Error("fail ParseFormSpec", "error", err, "template", template)
		return nil, err
	}
	return form, nil
}

// BuildPrompt instructs the model to emit only a JSON object matching the
// FormSpec shape, with the document text and the template as context.
func (s *FormService) BuildPrompt(text, template string) string {
	var builder strings.Builder
	builder.WriteString("You are an expert form generator. Analyze the following text and return a JSON object describing the fields of a dynamic form.\n\n")
	builder.WriteString(fmt.Sprintf("Consider the template %q when generating the form.\n\n", template))
	builder.WriteString(`The JSON must have this exact structure:
{
  "title": "Form title",
  "fields": [
    {
      "id": "unique_identifier",
      "label": "Label shown to the user",
      "type": "text|email|number|textarea|select|radio|checkbox",
      "required": true|false,
      "placeholder": "Help text (optional)",
      "options": [
        {"value": "value1", "label": "Visible text 1"},
        {"value": "value2", "label": "Visible text 2"}
      ]
    }
  ]
}
The "options" list is only for select, radio and checkbox fields.

Instructions:
1. Generate a descriptive title for the form based on the text content.
2. Extract the main entities of the text and turn them into form fields.
3. Assign field types that fit the nature of the information:
   - "text" for names, surnames, addresses
   - "email" for email addresses
   - "number" for ages, quantities, phone numbers
   - "textarea" for comments and long descriptions
   - "select" for mutually exclusive options
   - "radio" for a small set of options (3-5)
   - "checkbox" for multiple selections
4. Mark as required the fields that are essential in context.
5. For selection fields, provide reasonable options based on the context.

Text to analyze:
"""
`)
	builder.WriteString(text)
	builder.WriteString("\n\"\"\"\n\nReturn only the JSON without any additional text, explanation or markdown formatting.")
	return builder.String()
}

// StripCodeFence removes a leading/trailing markdown code fence if present.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// ParseFormSpec validates in order: JSON parses at all, top-level shape, each
// field's structure, each selection field's options. On any failure the whole
// parse fails; no partial form is returned.
func ParseFormSpec(data []byte) (*models.FormSpec, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidModelOutput, err)
	}
	if err := formShapeSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidModelOutput, err)
	}

	var form models.FormSpec
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidModelOutput, err)
	}

	for i := range form.Fields {
		f := &form.Fields[i]
		if f.ID == "" || f.Label == "" || f.Type == "" {
			return nil, fmt.Errorf("%w: field %d is missing id, label or type", apperrors.ErrInvalidFieldSpec, i)
		}
		if !f.Type.Valid() {
			return nil, fmt.Errorf("%w: field %q has disallowed type %q", apperrors.ErrInvalidFieldSpec, f.ID, f.Type)
		}
		if f.Type.NeedsOptions() {
			if len(f.Options) == 0 {
				return nil, fmt.Errorf("%w: field %q needs a non-empty options list", apperrors.ErrInvalidFieldOptions, f.ID)
			}
			for j, opt := range f.Options {
				if opt.Value == "" || opt.Label == "" {
					return nil, fmt.Errorf("%w: option %d of field %q is missing value or label", apperrors.ErrInvalidFieldOptions, j, f.ID)
				}
			}
		}
	}
	return &form, nil
}

// classifyProviderError maps a provider failure onto the error taxonomy.
// Substring matching on the provider message is brittle but it is all the
// REST error body gives us.
func classifyProviderError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY_INVALID"):
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidAPIKey, err)
	case strings.Contains(msg, "QUOTA_EXCEEDED"), strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", apperrors.ErrQuotaExceeded, err)
	case strings.Contains(msg, "SAFETY"):
		return fmt.Errorf("%w: %v", apperrors.ErrContentBlocked, err)
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrGeneration, err)
	}
}
