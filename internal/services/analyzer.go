package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	// Analyze performs exactly one model round trip. Failures are
	// *AnalysisError values; check the kind with errors.Is.
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analyzerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(geminiService GeminiService, promptBuilder *PromptBuilder) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		promptBuilder: promptBuilder,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error) {
	requestID, _ := ctx.Value(RequestIDKey{}).(string)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	if a.geminiService == nil {
		return nil, newAnalysisError(ErrConfiguration, errors.New("gemini service is not configured"))
	}

	if req == nil {
		return nil, newAnalysisError(ErrInvalidInput, errors.New("analysis request is nil"))
	}

	envelope, err := EncodeResume(req.Resume)
	if err != nil {
		log.Printf("❌ [%s] Failed to encode resume: %v", requestID, err)
		return nil, newAnalysisError(ErrResumeRead, err)
	}

	resumePart, err := envelope.Part()
	if err != nil {
		log.Printf("❌ [%s] Failed to build resume part: %v", requestID, err)
		return nil, newAnalysisError(ErrResumeRead, err)
	}

	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(req)
	parts := []*genai.Part{resumePart, genai.NewPartFromText(prompt)}

	log.Printf("🤖 [%s] Analyzing resume %q (%s, %d bytes), prompt length: %d characters",
		requestID, req.Resume.Filename, envelope.MIMEType, len(req.Resume.Content), len(prompt))

	response, err := a.geminiService.GenerateJSON(ctx, parts, AnalysisResponseSchema())
	if err != nil {
		log.Printf("❌ [%s] Gemini request failed: %v", requestID, err)
		return nil, newAnalysisError(ErrTransport, err)
	}

	if strings.TrimSpace(response) == "" {
		log.Printf("❌ [%s] Empty response received from Gemini API", requestID)
		return nil, newAnalysisError(ErrEmptyResponse, nil)
	}

	result, err := ParseAnalysisResult(response)
	if err != nil {
		log.Printf("❌ [%s] Failed to parse analysis response: %v\nResponse: %s", requestID, err, response)
		return nil, newAnalysisError(ErrMalformedResponse, err)
	}

	log.Printf("✅ [%s] Analysis completed, match score: %d", requestID, result.MatchScore)
	return result, nil
}

// RequestIDKey carries a caller-supplied request id through the context.
type RequestIDKey struct{}

type rawAnalysisResult struct {
	MatchScore      *float64            `json:"matchScore"`
	Summary         *string             `json:"summary"`
	Strengths       *[]string           `json:"strengths"`
	Improvements    *[]string           `json:"improvements"`
	KeywordAnalysis *rawKeywordAnalysis `json:"keywordAnalysis"`
}

type rawKeywordAnalysis struct {
	Found   *[]string `json:"found"`
	Missing *[]string `json:"missing"`
}

// ParseAnalysisResult decodes and validates a model response. Any missing
// field, wrong type or out-of-range value rejects the whole response.
func ParseAnalysisResult(response string) (*models.AnalysisResult, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(extractJSON(response))))
	dec.DisallowUnknownFields()

	var raw rawAnalysisResult
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}

	switch {
	case raw.MatchScore == nil:
		return nil, missingField("matchScore")
	case raw.Summary == nil:
		return nil, missingField("summary")
	case raw.Strengths == nil:
		return nil, missingField("strengths")
	case raw.Improvements == nil:
		return nil, missingField("improvements")
	case raw.KeywordAnalysis == nil:
		return nil, missingField("keywordAnalysis")
	case raw.KeywordAnalysis.Found == nil:
		return nil, missingField("keywordAnalysis.found")
	case raw.KeywordAnalysis.Missing == nil:
		return nil, missingField("keywordAnalysis.missing")
	}

	score := *raw.MatchScore
	if score != math.Trunc(score) {
		return nil, fmt.Errorf("matchScore %v is not an integer", score)
	}
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("matchScore %v is outside [0, 100]", score)
	}

	missing := uniqueKeywords(*raw.KeywordAnalysis.Missing)
	if len(missing) > MaxMissingKeywords {
		return nil, fmt.Errorf("keywordAnalysis.missing has %d items, limit is %d", len(missing), MaxMissingKeywords)
	}

	return &models.AnalysisResult{
		MatchScore:   int(score),
		Summary:      strings.TrimSpace(*raw.Summary),
		Strengths:    nonEmpty(*raw.Strengths),
		Improvements: nonEmpty(*raw.Improvements),
		KeywordAnalysis: models.KeywordAnalysis{
			Found:   uniqueKeywords(*raw.KeywordAnalysis.Found),
			Missing: missing,
		},
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("required field %q is missing", name)
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func uniqueKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, keyword := range nonEmpty(keywords) {
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		out = append(out, keyword)
	}
	return out
}

// extractJSON strips a markdown code fence some models wrap around JSON.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
