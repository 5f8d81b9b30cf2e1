package render

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mfedotov/renderscope/pkg/db"
	"github.com/mfedotov/renderscope/pkg/gen"
	"github.com/mfedotov/renderscope/pkg/prompt"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// systemInstruction frames every generation call
const systemInstruction = "You are a photorealistic visualization engine for interior and product design. " +
	"You turn sketches and photos into faithful, high-end renders. Follow the instruction text precisely."

// analysisInstruction drives the scene analysis pre-pass
const analysisInstruction = "Describe this scene for a designer: layout, dominant materials, " +
	"lighting direction and the existing color palette. Keep it under 120 words, no preamble."

// Generator executes remote generation calls
type Generator interface {
	Generate(ctx context.Context, req gen.Request) (*gen.Result, error)
	Describe(ctx context.Context, img gen.Image, instruction string) (string, error)
}

// History persists render records and feedback. Implemented by db.DB and,
// when persistence is unconfigured, by NullHistory.
type History interface {
	CreateRender(ctx context.Context, render *db.Render) error
	UpdateFeedback(ctx context.Context, guid string, rating int, tags []string) error
}

// Request is one generation invocation: a source image plus style options
type Request struct {
	Image   gen.Image
	Options prompt.Options
}

// Response carries the render result. RecordID is empty when history is
// disabled or the history write failed, the render itself is still valid.
type Response struct {
	ImageData  []byte
	ImageMime  string
	Commentary string
	RecordID   string
}

// Service runs the generation pipeline: learning context, master prompt,
// retried remote call, history write.
type Service struct {
	generator Generator
	history   History
	prompts   *prompt.Builder
	retry     gen.RetryPolicy
	sanitizer *bluemonday.Policy
}

// NewService creates the render service
func NewService(generator Generator, history History, prompts *prompt.Builder, retry gen.RetryPolicy) *Service {
	return &Service{
		generator: generator,
		history:   history,
		prompts:   prompts,
		retry:     retry,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Render generates a photorealistic render for the request. The remote call
// is retried on transient overload per the configured policy. On success the
// composed prompt is persisted for future learning; a failed write degrades
// to an absent record id and never fails the render.
func (s *Service) Render(ctx context.Context, req Request) (*Response, error) {
	if len(req.Image.Data) == 0 {
		return nil, fmt.Errorf("source image is required")
	}

	opts := s.cleanOptions(req.Options)
	masterPrompt := s.prompts.Build(ctx, opts)

	result, err := gen.InvokeWithRetry(ctx, s.retry, func() (*gen.Result, error) {
		return s.generator.Generate(ctx, gen.Request{
			Images: []gen.Image{req.Image},
			Prompt: masterPrompt,
			System: systemInstruction,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("generate render: %w", err)
	}

	return &Response{
		ImageData:  result.ImageData,
		ImageMime:  result.ImageMime,
		Commentary: result.Text,
		RecordID:   s.saveHistory(ctx, opts, masterPrompt),
	}, nil
}

// Analyze runs the scene analysis pre-pass over a source image. The result
// can be fed back as the SceneAnalysis option of a later render request.
func (s *Service) Analyze(ctx context.Context, img gen.Image) (string, error) {
	if len(img.Data) == 0 {
		return "", fmt.Errorf("source image is required")
	}

	analysis, err := gen.InvokeWithRetry(ctx, s.retry, func() (string, error) {
		return s.generator.Describe(ctx, img, analysisInstruction)
	})
	if err != nil {
		return "", fmt.Errorf("analyze image: %w", err)
	}
	return analysis, nil
}

// SubmitFeedback attaches a user rating and tags to a past render. Unlike
// history writes this propagates failures, silently dropping a rating would
// corrupt the learning loop without the user knowing.
func (s *Service) SubmitFeedback(ctx context.Context, recordID string, rating int, tags []string) error {
	if recordID == "" {
		return fmt.Errorf("record id is required")
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	if err := s.history.UpdateFeedback(ctx, recordID, rating, s.cleanTags(tags)); err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}
	return nil
}

// saveHistory persists the composed prompt, returning the assigned record id
// or empty string when the write fails or history is disabled
func (s *Service) saveHistory(ctx context.Context, opts prompt.Options, masterPrompt string) string {
	rec := &db.Render{
		Category: opts.Category,
		Style:    opts.Style,
		Prompt:   masterPrompt,
	}
	if err := s.history.CreateRender(ctx, rec); err != nil {
		log.Printf("[WARN] failed to save render history: %v", err)
		return ""
	}
	return rec.GUID
}

// cleanOptions strips markup from the free-text fields before they reach the
// prompt, everything else passes through untouched
func (s *Service) cleanOptions(opts prompt.Options) prompt.Options {
	opts.Notes = strings.TrimSpace(s.sanitizer.Sanitize(opts.Notes))
	opts.SceneAnalysis = strings.TrimSpace(s.sanitizer.Sanitize(opts.SceneAnalysis))
	return opts
}

func (s *Service) cleanTags(tags []string) []string {
	var clean []string
	for _, tag := range tags {
		if t := strings.TrimSpace(s.sanitizer.Sanitize(tag)); t != "" {
			clean = append(clean, t)
		}
	}
	return clean
}
