package models

// AnalysisRequest is everything needed for one analysis round trip.
type AnalysisRequest struct {
	JobTitle       string
	JobDescription string
	KeySkills      string
	Resume         ResumeFile
}

// ResumeFile is the uploaded resume as received from the caller.
type ResumeFile struct {
	Filename string
	MIMEType string
	Content  []byte
}

func (f ResumeFile) Size() int64 {
	return int64(len(f.Content))
}

type AnalysisResult struct {
	MatchScore      int             `json:"matchScore"`
	Summary         string          `json:"summary"`
	Strengths       []string        `json:"strengths"`
	Improvements    []string        `json:"improvements"`
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
}

type KeywordAnalysis struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}
