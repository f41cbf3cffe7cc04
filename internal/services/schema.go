package services

import "google.golang.org/genai"

// AnalysisResponseSchema is the output shape the model must conform to.
func AnalysisResponseSchema() *genai.Schema {
	stringList := func(description string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: description,
		}
	}

	missing := stringList("Important keywords absent from the resume.")
	missing.MaxItems = genai.Ptr[int64](MaxMissingKeywords)

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchScore": {
				Type:        genai.TypeInteger,
				Description: "Match score from 0 to 100.",
				Minimum:     genai.Ptr[float64](0),
				Maximum:     genai.Ptr[float64](100),
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "Brief summary of the candidate's fit.",
			},
			"strengths":    stringList("List of candidate's strengths."),
			"improvements": stringList("List of suggested improvements for the resume."),
			"keywordAnalysis": {
				Type:        genai.TypeObject,
				Description: "Analysis of keywords found and missing from the resume.",
				Properties: map[string]*genai.Schema{
					"found":   stringList("Relevant keywords present in the resume."),
					"missing": missing,
				},
				Required:         []string{"found", "missing"},
				PropertyOrdering: []string{"found", "missing"},
			},
		},
		Required:         []string{"matchScore", "summary", "strengths", "improvements", "keywordAnalysis"},
		PropertyOrdering: []string{"matchScore", "summary", "strengths", "improvements", "keywordAnalysis"},
	}
}
