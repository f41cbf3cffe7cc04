package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func TestPromptBuilder_BuildResumeAnalysisPrompt(t *testing.T) {
	req := &models.AnalysisRequest{
		JobTitle:       "Site Reliability Engineer",
		JobDescription: "Keep 99.9% uptime.\nOwn the **on-call** rotation.",
		KeySkills:      "Terraform, Prometheus",
	}

	t.Run("fields are embedded verbatim", func(t *testing.T) {
		prompt := NewPromptBuilder(true).BuildResumeAnalysisPrompt(req)

		assert.Contains(t, prompt, "**Job Title:** Site Reliability Engineer")
		assert.Contains(t, prompt, "Keep 99.9% uptime.\nOwn the **on-call** rotation.")
		assert.Contains(t, prompt, "**Key Skills to look for:** Terraform, Prometheus")
		for _, field := range []string{"matchScore", "summary", "strengths", "improvements", "keywordAnalysis"} {
			assert.Contains(t, prompt, "**"+field+":**")
		}
		assert.Contains(t, prompt, "not contain more than 10 keywords")
	})

	t.Run("score smoothing on", func(t *testing.T) {
		prompt := NewPromptBuilder(true).BuildResumeAnalysisPrompt(req)
		assert.Contains(t, prompt, ScoreSmoothingRule)
	})

	t.Run("score smoothing off", func(t *testing.T) {
		prompt := NewPromptBuilder(false).BuildResumeAnalysisPrompt(req)
		assert.NotContains(t, prompt, "between 60 to 65")
		assert.Contains(t, prompt, "A percentage score from 0 to 100")
	})

	t.Run("empty key skills", func(t *testing.T) {
		prompt := NewPromptBuilder(true).BuildResumeAnalysisPrompt(&models.AnalysisRequest{JobTitle: "t", JobDescription: "d"})
		assert.Contains(t, prompt, "**Key Skills to look for:** \n")
	})
}

func TestAnalysisResponseSchema(t *testing.T) {
	schema := AnalysisResponseSchema()

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"matchScore", "summary", "strengths", "improvements", "keywordAnalysis"}, schema.Required)
	assert.Len(t, schema.Properties, 5)

	assert.Equal(t, genai.TypeInteger, schema.Properties["matchScore"].Type)
	assert.Equal(t, genai.TypeString, schema.Properties["summary"].Type)
	for _, name := range []string{"strengths", "improvements"} {
		assert.Equal(t, genai.TypeArray, schema.Properties[name].Type)
		assert.Equal(t, genai.TypeString, schema.Properties[name].Items.Type)
	}

	keywords := schema.Properties["keywordAnalysis"]
	assert.Equal(t, genai.TypeObject, keywords.Type)
	assert.Equal(t, genai.TypeString, keywords.Properties["found"].Items.Type)
	missing := keywords.Properties["missing"]
	assert.Equal(t, genai.TypeString, missing.Items.Type)
	if assert.NotNil(t, missing.MaxItems) {
		assert.Equal(t, int64(MaxMissingKeywords), *missing.MaxItems)
	}
}
