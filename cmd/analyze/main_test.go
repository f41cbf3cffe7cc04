package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/services"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunAnalyze_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	opts := &options{jobTitle: "Backend Engineer", jobDescription: "Build Go services"}
	err := runAnalyze(context.Background(), opts, writeFile(t, "cv.txt", "Jane Doe"))

	assert.ErrorIs(t, err, services.ErrConfiguration)
}

func TestRunAnalyze_RejectsBeforeCallingModel(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	testCases := []struct {
		name string
		opts *options
		file string
	}{
		{name: "unsupported extension", opts: &options{jobTitle: "t", jobDescription: "d"}, file: "cv.rtf"},
		{name: "missing description", opts: &options{jobTitle: "t"}, file: "cv.txt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := runAnalyze(context.Background(), tc.opts, writeFile(t, tc.file, "Jane Doe"))
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}
}

func TestRunAnalyze_DescriptionFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	opts := &options{jobTitle: "t", jobDescriptionFile: filepath.Join(t.TempDir(), "missing.txt")}
	err := runAnalyze(context.Background(), opts, writeFile(t, "cv.txt", "Jane Doe"))
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, services.UserMessage(err), "failed to read job description")

	opts.jobDescriptionFile = writeFile(t, "jd.txt", "Build Go services")
	err = runAnalyze(context.Background(), opts, writeFile(t, "cv.txt", "Jane Doe"))
	assert.ErrorIs(t, err, services.ErrConfiguration)
}

func TestNewRootCmd_RequiresResumeArgument(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--title", "Backend Engineer"})

	assert.Error(t, cmd.Execute())
}

func TestNewRootCmd_ReportsLocalFailures(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	testCases := []struct {
		name        string
		args        []string
		wantLog     string
		wantMessage string
	}{
		{
			name:        "missing resume",
			args:        []string{"/nonexistent/cv.pdf", "--title", "Backend Engineer", "--description", "Build Go services"},
			wantLog:     "/nonexistent/cv.pdf",
			wantMessage: services.ReadFailureMessage,
		},
		{
			name:        "missing description file",
			args:        []string{writeFile(t, "cv.txt", "Jane Doe"), "--title", "Backend Engineer", "--description-file", "/nonexistent/jd.txt"},
			wantLog:     "/nonexistent/jd.txt",
			wantMessage: "failed to read job description",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs.Reset()
			var stderr bytes.Buffer

			cmd := newRootCmd()
			cmd.SetArgs(tc.args)
			cmd.SetErr(&stderr)

			require.Error(t, cmd.Execute())
			assert.Contains(t, logs.String(), tc.wantLog)
			assert.Contains(t, logs.String(), "no such file or directory")
			assert.Contains(t, stderr.String(), tc.wantMessage)
			assert.NotContains(t, stderr.String(), services.FailureMessage)
		})
	}
}
