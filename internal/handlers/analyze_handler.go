package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	validator   services.ValidatorService
	maxFileSize int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	validator services.ValidatorService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		validator:   validator,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var (
		req *models.AnalysisRequest
		err error
	)

	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		req, err = h.parseJSON(c)
	} else {
		req, err = h.parseMultipart(c)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": services.UserMessage(err),
		})
	}

	if err := h.validator.ValidateRequest(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": services.UserMessage(err),
		})
	}

	requestID := uuid.New().String()
	ctx := context.WithValue(c.UserContext(), services.RequestIDKey{}, requestID)

	result, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		log.Printf("❌ Analysis %s failed: %v", requestID, err)

		status := fiber.StatusBadGateway
		if services.IsConfigurationError(err) {
			status = fiber.StatusInternalServerError
		}

		message := services.UserMessage(err)
		return c.Status(status).JSON(models.AnalyzeResponse{
			ID:     requestID,
			Status: string(models.StatusFailed),
			Error:  &message,
		})
	}

	return c.JSON(models.AnalyzeResponse{
		ID:     requestID,
		Status: string(models.StatusCompleted),
		Result: result,
	})
}

func (h *AnalyzeHandler) parseMultipart(c *fiber.Ctx) (*models.AnalysisRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse multipart form", services.ErrInvalidInput)
	}

	req := &models.AnalysisRequest{
		JobTitle:       firstValue(form.Value["job_title"]),
		JobDescription: firstValue(form.Value["job_description"]),
		KeySkills:      firstValue(form.Value["key_skills"]),
	}

	resumeFiles, exists := form.File["resume"]
	if !exists || len(resumeFiles) == 0 {
		return req, nil
	}

	// oversized files are cut at maxFileSize+1 and rejected by the validator
	req.Resume, err = services.ReadResumeFromHeader(resumeFiles[0], h.maxFileSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}

	return req, nil
}

func (h *AnalyzeHandler) parseJSON(c *fiber.Ctx) (*models.AnalysisRequest, error) {
	var body models.AnalyzeJSONRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fmt.Errorf("%w: Invalid request payload", services.ErrInvalidInput)
	}

	req := &models.AnalysisRequest{
		JobTitle:       body.JobTitle,
		JobDescription: body.JobDescription,
		KeySkills:      body.KeySkills,
	}

	if body.Resume == nil || strings.TrimSpace(body.Resume.Data) == "" {
		return req, nil
	}

	content, err := services.DecodeResumeData(body.Resume.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}

	mimeType := body.Resume.MIMEType
	if mimeType == "" {
		mimeType = services.DataURIMediaType(body.Resume.Data)
	}

	req.Resume = models.ResumeFile{
		Filename: body.Resume.Filename,
		MIMEType: mimeType,
		Content:  content,
	}

	return req, nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
