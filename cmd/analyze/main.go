package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type options struct {
	jobTitle           string
	jobDescription     string
	jobDescriptionFile string
	keySkills          string
	mimeType           string
	noScoreSmoothing   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "analyze <resume-file>",
		Short: "Analyze a resume against a job description",
		Long: `Analyze a PDF, DOCX or TXT resume against a job description and print
the fit assessment as JSON.

Example:
  analyze cv.pdf --title "Backend Engineer" --description-file jd.txt --skills "Go, PostgreSQL"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAnalyze(cmd.Context(), opts, args[0])
			if err != nil {
				log.Printf("❌ Analyze failed: %v", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "❌", services.UserMessage(err))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.jobTitle, "title", "", "Job title")
	cmd.Flags().StringVar(&opts.jobDescription, "description", "", "Job description text")
	cmd.Flags().StringVar(&opts.jobDescriptionFile, "description-file", "", "Read the job description from a file")
	cmd.Flags().StringVar(&opts.keySkills, "skills", "", "Comma separated key skills (optional)")
	cmd.Flags().StringVar(&opts.mimeType, "mime-type", "", "Media type of the resume (inferred from the extension if empty)")
	cmd.Flags().BoolVar(&opts.noScoreSmoothing, "no-score-smoothing", false, "Omit the 40-50 score smoothing instruction")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runAnalyze(ctx context.Context, opts *options, path string) error {
	cfg := config.Load()

	description := opts.jobDescription
	if opts.jobDescriptionFile != "" {
		data, err := os.ReadFile(opts.jobDescriptionFile)
		if err != nil {
			return fmt.Errorf("%w: failed to read job description: %w", services.ErrInvalidInput, err)
		}
		description = string(data)
	}

	resume, err := services.ReadResumeFromPath(path, cfg.Upload.MaxFileSize)
	if err != nil {
		return err
	}
	resume.MIMEType = opts.mimeType

	req := &models.AnalysisRequest{
		JobTitle:       opts.jobTitle,
		JobDescription: description,
		KeySkills:      opts.keySkills,
		Resume:         resume,
	}

	if err := services.NewValidatorService(cfg.Upload.MaxFileSize).ValidateRequest(req); err != nil {
		return err
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		return err
	}

	smoothing := cfg.Prompt.ScoreSmoothing && !opts.noScoreSmoothing
	analyzer := services.NewAnalyzerService(geminiService, services.NewPromptBuilder(smoothing))

	log.Printf("📄 Analyzing %s for %q", path, opts.jobTitle)
	result, err := analyzer.Analyze(ctx, req)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	fmt.Println(string(out))

	return nil
}
