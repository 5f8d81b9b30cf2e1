package gen

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/mfedotov/renderscope/pkg/config"
)

// Client wraps the Gemini API for image generation and scene analysis
type Client struct {
	client *genai.Client
	config config.GenAIConfig
}

// Image is a single inline image payload sent to or received from the model
type Image struct {
	Data     []byte
	MimeType string
}

// Request describes one generation call: source images in order, the composed
// instruction text and an optional system instruction.
type Request struct {
	Images []Image
	Prompt string
	System string
}

// Result holds the model output, either rendered image bytes or text
type Result struct {
	ImageData []byte
	ImageMime string
	Text      string
}

// NewClient creates a Gemini-backed generation client
func NewClient(ctx context.Context, cfg config.GenAIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("genai api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, config: cfg}, nil
}

// Generate executes a single image generation call. The response is scanned
// for the first inline image part; accompanying text is kept as commentary.
// A response without image data is a permanent failure (ErrNoImage).
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	contents := []*genai.Content{genai.NewContentFromParts(c.buildParts(req), genai.RoleUser)}

	genCfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	if req.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if c.config.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(float32(c.config.Temperature))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, contents, genCfg)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	result := &Result{}
	for _, part := range c.responseParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 && result.ImageData == nil {
			result.ImageData = part.InlineData.Data
			result.ImageMime = part.InlineData.MIMEType
			continue
		}
		if part.Text != "" {
			result.Text += part.Text
		}
	}

	if result.ImageData == nil {
		return nil, ErrNoImage
	}
	return result, nil
}

// Describe runs a text-modality call against the same model family to produce
// a scene analysis of the source image, used as a pre-pass before generation.
func (c *Client) Describe(ctx context.Context, img Image, instruction string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(img.Data, img.MimeType),
		genai.NewPartFromText(instruction),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	model := c.config.AnalysisModel
	if model == "" {
		model = c.config.Model
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("describe image: %w", err)
	}

	var text string
	for _, part := range c.responseParts(resp) {
		text += part.Text
	}
	if text == "" {
		return "", fmt.Errorf("empty analysis response")
	}
	return text, nil
}

// buildParts assembles ordered request parts: images first, then the prompt
func (c *Client) buildParts(req Request) []*genai.Part {
	parts := make([]*genai.Part, 0, len(req.Images)+1)
	for _, img := range req.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MimeType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	return parts
}

func (c *Client) responseParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}
