package services

import (
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// MaxMissingKeywords caps keywordAnalysis.missing.
const MaxMissingKeywords = 10

// ScoreSmoothingRule is reproduced word for word so results stay comparable
// with earlier analyses.
const ScoreSmoothingRule = "if the score is below 50 and greater than 40 then choose any number between 60 to 65."

type PromptBuilder struct {
	scoreSmoothing bool
}

func NewPromptBuilder(scoreSmoothing bool) *PromptBuilder {
	return &PromptBuilder{scoreSmoothing: scoreSmoothing}
}

// BuildResumeAnalysisPrompt creates the instruction sent alongside the resume file.
// Job fields are embedded verbatim.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(req *models.AnalysisRequest) string {
	scoreLine := "A percentage score from 0 to 100 representing how well the resume matches the job description."
	if pb.scoreSmoothing {
		scoreLine = "A percentage score from 0 to 100 representing how well the resume matches the job description " + ScoreSmoothingRule
	}

	return fmt.Sprintf(`You are an expert career coach and professional resume analyzer.
Your task is to analyze the provided resume against a specific job description.

**Job Title:** %s
**Job Description:**
%s

**Key Skills to look for:** %s

Analyze the attached resume file and provide a detailed analysis.
Your response MUST be a JSON object that adheres to the provided schema.

- **matchScore:** %s
- **summary:** A concise, 2-3 sentence summary of the candidate's fit for the role.
- **strengths:** A bulleted list of the candidate's key strengths relevant to the job.
- **improvements:** A bulleted list of actionable suggestions for improving the resume to better match this specific job.
- **keywordAnalysis:** Analyze keywords from the job description and key skills list. 'found' should list the relevant keywords present in the resume, and 'missing' should list important keywords that are absent from the resume but important for the job. 'missing' must not contain more than %d keywords.`,
		req.JobTitle, req.JobDescription, req.KeySkills, scoreLine, MaxMissingKeywords)
}
