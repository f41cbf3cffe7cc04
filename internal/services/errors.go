package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration     = errors.New("configuration error")
	ErrEmptyResponse     = errors.New("empty response from model")
	ErrMalformedResponse = errors.New("malformed response from model")
	ErrTransport         = errors.New("model request failed")
	ErrResumeRead        = errors.New("failed to read resume file")
	ErrInvalidInput      = errors.New("invalid input")
)

// FailureMessage is the only failure text shown to end users.
const FailureMessage = "Failed to analyze resume. Please try again."

// ReadFailureMessage is shown when the resume itself could not be read, so
// retrying with the same file will not help.
const ReadFailureMessage = "The resume file could not be read. Please check the file and upload it again."

// AnalysisError pairs a failure kind from the taxonomy with its cause.
type AnalysisError struct {
	Kind error
	Err  error
}

func (e *AnalysisError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *AnalysisError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newAnalysisError(kind error, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Err: err}
}

// IsConfigurationError reports whether err is fatal and must not be
// presented as a retryable analysis failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// UserMessage maps err to the text that may be shown to the end user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	case errors.Is(err, ErrResumeRead):
		return ReadFailureMessage
	case IsConfigurationError(err):
		return "Resume analysis is not configured. Please contact the administrator."
	default:
		return FailureMessage
	}
}
