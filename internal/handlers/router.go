package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the API routes onto app.
func RegisterRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler) {
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/analyze",
			},
		})
	})
}

// ErrorHandler renders errors escaping the handlers as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

// BodyLimit leaves room for the text fields and multipart framing around
// the largest accepted file.
func BodyLimit(maxFileSize int64) int {
	const formOverhead = 1024 * 1024
	if maxFileSize > (math.MaxInt32-formOverhead)/4*3 {
		return math.MaxInt32
	}
	// base64 JSON bodies are 4/3 the size of the file
	return int(maxFileSize*4/3) + formOverhead
}
