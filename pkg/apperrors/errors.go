// Package apperrors holds the error taxonomy shared by the services and the
// HTTP boundary. Services wrap these sentinels with fmt.Errorf("%w: ...") so
// handlers can map them to status codes with errors.Is.
package apperrors

import "errors"

// Input validation errors (reported close to the boundary, HTTP 400).
var (
	ErrInvalidExtension    = errors.New("file extension not allowed")
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrMissingExtension    = errors.New("file has no extension")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Auth and configuration.
var (
	ErrUnauthorized  = errors.New("unauthorized: invalid API key")
	ErrConfiguration = errors.New("missing required configuration")
)

// External collaborators.
var (
	ErrStore      = errors.New("storage operation failed")
	ErrExtraction = errors.New("text extraction failed")
)

// Form generation: model output validation.
var (
	ErrInvalidModelOutput  = errors.New("model response is not a valid form")
	ErrInvalidFieldSpec    = errors.New("form field has an invalid structure")
	ErrInvalidFieldOptions = errors.New("form field needs valid options")
)

// Form generation: provider-side failures.
var (
	ErrInvalidAPIKey  = errors.New("generative API key is not valid")
	ErrQuotaExceeded  = errors.New("generative API quota exceeded")
	ErrContentBlocked = errors.New("content blocked by safety policies")
	ErrGeneration     = errors.New("form generation failed")
)

var clientErrors = []error{
	ErrInvalidExtension,
	ErrFileTooLarge,
	ErrMissingParameter,
	ErrMissingExtension,
	ErrUnsupportedFileType,
}

// IsClientError reports whether err was caused by bad client input.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
