package models

type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// AnalyzeJSONRequest is the application/json variant of POST /analyze.
type AnalyzeJSONRequest struct {
	JobTitle       string           `json:"job_title"`
	JobDescription string           `json:"job_description"`
	KeySkills      string           `json:"key_skills"`
	Resume         *ResumeJSONInput `json:"resume"`
}

// ResumeJSONInput carries the file as base64 or as a data URI.
type ResumeJSONInput struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type AnalyzeResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Result *AnalysisResult `json:"result,omitempty"`
	Error  *string         `json:"error,omitempty"`
}
