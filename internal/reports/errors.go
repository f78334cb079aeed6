package reports

import "errors"

var (
	ErrNotFound      = errors.New("report not found")
	ErrNotConfigured = errors.New("LLM credential is not configured")
	ErrParse         = errors.New("failed to parse AI response")
	ErrPersist       = errors.New("failed to save report")
)
