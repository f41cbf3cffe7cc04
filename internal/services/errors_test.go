package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid input", err: fmt.Errorf("%w: Please upload a PDF, DOCX, or TXT file.", ErrInvalidInput), want: "Please upload a PDF, DOCX, or TXT file."},
		{name: "resume read", err: fmt.Errorf("%w: open /nonexistent/cv.pdf: no such file or directory", ErrResumeRead), want: ReadFailureMessage},
		{name: "resume read from analyzer", err: newAnalysisError(ErrResumeRead, errors.New("cv.pdf is empty")), want: ReadFailureMessage},
		{name: "configuration", err: newAnalysisError(ErrConfiguration, nil), want: "Resume analysis is not configured. Please contact the administrator."},
		{name: "transport", err: newAnalysisError(ErrTransport, errors.New("connection reset")), want: FailureMessage},
		{name: "unclassified", err: errors.New("boom"), want: FailureMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserMessage(tc.err))
		})
	}
}
