package services

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypeText = "text/plain"
)

var extensionMIMETypes = map[string]string{
	".pdf":  MIMETypePDF,
	".docx": MIMETypeDOCX,
	".txt":  MIMETypeText,
}

type ValidatorService interface {
	ValidateRequest(req *models.AnalysisRequest) error
	ValidateResume(file *models.ResumeFile) error
}

type validatorService struct {
	maxFileSize int64
}

func NewValidatorService(maxFileSize int64) ValidatorService {
	return &validatorService{maxFileSize: maxFileSize}
}

// ValidateRequest checks the text fields and the resume. It normalizes
// req.Resume.MIMEType in place.
func (v *validatorService) ValidateRequest(req *models.AnalysisRequest) error {
	if strings.TrimSpace(req.JobTitle) == "" ||
		strings.TrimSpace(req.JobDescription) == "" ||
		len(req.Resume.Content) == 0 {
		return fmt.Errorf("%w: Please fill in all fields and upload a resume.", ErrInvalidInput)
	}

	return v.ValidateResume(&req.Resume)
}

func (v *validatorService) ValidateResume(file *models.ResumeFile) error {
	mimeType, ok := ResolveMIMEType(file.MIMEType, file.Filename)
	if !ok {
		return fmt.Errorf("%w: Please upload a PDF, DOCX, or TXT file.", ErrInvalidInput)
	}
	file.MIMEType = mimeType

	if file.Size() > v.maxFileSize {
		return fmt.Errorf("%w: File size must be less than %s.", ErrInvalidInput, formatSize(v.maxFileSize))
	}

	if len(file.Content) == 0 {
		return fmt.Errorf("%w: The uploaded file is empty.", ErrInvalidInput)
	}

	if err := checkContent(mimeType, file.Content); err != nil {
		return fmt.Errorf("%w: The uploaded file could not be read as %s: %v", ErrInvalidInput, typeLabel(mimeType), err)
	}

	return nil
}

// ResolveMIMEType normalizes the declared media type, falling back to the
// file extension when the declared one is missing or generic.
func ResolveMIMEType(declared, filename string) (string, bool) {
	mediaType := ""
	if declared != "" {
		parsed, _, err := mime.ParseMediaType(declared)
		if err != nil {
			return "", false
		}
		mediaType = strings.ToLower(parsed)
	}

	if mediaType == "" || mediaType == "application/octet-stream" {
		ext := strings.ToLower(filepath.Ext(filename))
		mediaType = extensionMIMETypes[ext]
	}

	switch mediaType {
	case MIMETypePDF, MIMETypeDOCX, MIMETypeText:
		return mediaType, true
	default:
		return "", false
	}
}

func checkContent(mimeType string, content []byte) (err error) {
	// the pdf and docx readers panic on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrupt file: %v", r)
		}
	}()

	switch mimeType {
	case MIMETypePDF:
		return checkPDF(content)
	case MIMETypeDOCX:
		return checkDOCX(content)
	case MIMETypeText:
		if !utf8.Valid(content) {
			return fmt.Errorf("text is not valid UTF-8")
		}
		return nil
	default:
		return fmt.Errorf("unsupported file type: %s", mimeType)
	}
}

func checkPDF(content []byte) error {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	if r.NumPage() == 0 {
		return fmt.Errorf("PDF has no pages")
	}

	return nil
}

func checkDOCX(content []byte) error {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return fmt.Errorf("failed to parse docx: %w", err)
	}
	return doc.Close()
}

func typeLabel(mimeType string) string {
	switch mimeType {
	case MIMETypePDF:
		return "PDF"
	case MIMETypeDOCX:
		return "DOCX"
	default:
		return "TXT"
	}
}

func formatSize(size int64) string {
	if size%(1024*1024) == 0 {
		return fmt.Sprintf("%dMB", size/(1024*1024))
	}
	return fmt.Sprintf("%d bytes", size)
}
