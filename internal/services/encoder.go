package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"os"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// ResumeEnvelope is the transport form of a resume: base64 payload plus
// its declared media type.
type ResumeEnvelope struct {
	Data     string
	MIMEType string

	// raw is the unencoded content when the envelope was built locally.
	raw []byte
}

// EncodeResume encodes the file content into an envelope. Empty content is
// an error, never an empty envelope.
func EncodeResume(file models.ResumeFile) (*ResumeEnvelope, error) {
	if len(file.Content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrResumeRead, displayName(file.Filename))
	}

	return &ResumeEnvelope{
		Data:     base64.StdEncoding.EncodeToString(file.Content),
		MIMEType: file.MIMEType,
		raw:      file.Content,
	}, nil
}

// Part converts the envelope into an inline-data part for the model request.
// Envelopes from EncodeResume reuse their raw bytes; others decode Data.
func (e *ResumeEnvelope) Part() (*genai.Part, error) {
	if len(e.raw) > 0 {
		return genai.NewPartFromBytes(e.raw, e.MIMEType), nil
	}

	data, err := base64.StdEncoding.DecodeString(StripDataURIPrefix(e.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode resume payload: %w", err)
	}
	return genai.NewPartFromBytes(data, e.MIMEType), nil
}

// StripDataURIPrefix drops a "data:<mime>;base64," prefix, leaving only the payload.
func StripDataURIPrefix(data string) string {
	data = strings.TrimSpace(data)
	if !strings.HasPrefix(data, "data:") {
		return data
	}
	if idx := strings.Index(data, ","); idx != -1 {
		return data[idx+1:]
	}
	return data
}

// DataURIMediaType returns the media type declared by a data URI, if any.
func DataURIMediaType(data string) string {
	data = strings.TrimSpace(data)
	if !strings.HasPrefix(data, "data:") {
		return ""
	}
	header := strings.TrimPrefix(data, "data:")
	if idx := strings.Index(header, ","); idx != -1 {
		header = header[:idx]
	}
	mediaType, _, _ := strings.Cut(header, ";")
	return mediaType
}

// DecodeResumeData decodes base64 or data-URI text back into raw bytes.
func DecodeResumeData(data string) ([]byte, error) {
	payload := StripDataURIPrefix(data)
	if payload == "" {
		return nil, fmt.Errorf("%w: resume data is empty", ErrResumeRead)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: resume data is not valid base64: %v", ErrResumeRead, err)
	}
	return raw, nil
}

// ReadResume reads at most maxSize+1 bytes so oversized files are detected
// without buffering them whole.
func ReadResume(r io.Reader, filename, mimeType string, maxSize int64) (models.ResumeFile, error) {
	limit := maxSize + 1
	if limit <= 0 {
		limit = math.MaxInt64
	}

	content, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return models.ResumeFile{}, fmt.Errorf("%w: %v", ErrResumeRead, err)
	}

	return models.ResumeFile{
		Filename: filename,
		MIMEType: mimeType,
		Content:  content,
	}, nil
}

func ReadResumeFromHeader(header *multipart.FileHeader, maxSize int64) (models.ResumeFile, error) {
	src, err := header.Open()
	if err != nil {
		return models.ResumeFile{}, fmt.Errorf("%w: %v", ErrResumeRead, err)
	}
	defer src.Close()

	return ReadResume(src, header.Filename, header.Header.Get("Content-Type"), maxSize)
}

func ReadResumeFromPath(path string, maxSize int64) (models.ResumeFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ResumeFile{}, fmt.Errorf("%w: %v", ErrResumeRead, err)
	}
	defer f.Close()

	return ReadResume(f, path, "", maxSize)
}

func displayName(filename string) string {
	if filename == "" {
		return "resume"
	}
	return filename
}
