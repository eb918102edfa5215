// Package gemini provides an ImageGenerator implementation using Google's Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mhpenta/assetgen"
	"google.golang.org/genai"
)

// Model name constants - the actual API model names.
const (
	// APIModelNanoBanana2 is the actual API name for Gemini 3.1 Flash Image
	APIModelNanoBanana2 = "gemini-3.1-flash-image-preview"

	// APIModelNanoBananaPro is the actual API name for Gemini 3 Pro Image
	APIModelNanoBananaPro = "gemini-3-pro-image-preview"
)

// ErrEmptyResponse is returned when the model answers with no candidate content.
var ErrEmptyResponse = errors.New("empty response from model")

// GeminiGenerator implements ImageGenerator using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
}

// Ensure GeminiGenerator implements the interface.
var _ assetgen.ImageGenerator = (*GeminiGenerator)(nil)

// New creates a new GeminiGenerator from a ProviderConfig.
func New(ctx context.Context, config *assetgen.ProviderConfig) (*GeminiGenerator, error) {
	if config == nil {
		config = &assetgen.ProviderConfig{}
	}

	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  config.APIKey,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
	}, nil
}

// NewWithAPIKey creates a generator with an API key for Gemini API.
func NewWithAPIKey(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	return New(ctx, &assetgen.ProviderConfig{
		Provider: assetgen.ProviderGeminiAPI,
		APIKey:   apiKey,
	})
}

// Generate creates images from a text prompt.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, config *assetgen.GenerateConfig) (*assetgen.GenerateResult, error) {
	if err := assetgen.ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	if config == nil {
		config = assetgen.DefaultConfig()
	}

	modelName := g.resolveModel(config)

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, modelName, contents, buildGenerateContentConfig(config))
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return nil, rlErr
		}
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	return parseResult(result)
}

// Models returns the model definitions supported by this provider.
// The first model (NanoBanana2) is the default.
func (g *GeminiGenerator) Models() []assetgen.ModelInfo {
	return []assetgen.ModelInfo{
		NanoBanana2Info,
		NanoBananaProInfo,
	}
}

// Close releases any resources held by the generator.
func (g *GeminiGenerator) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

// resolveModel determines which API model name to use.
// Falls back to the first model (default) if none specified.
func (g *GeminiGenerator) resolveModel(config *assetgen.GenerateConfig) string {
	if config != nil && config.Model != "" && config.Model != assetgen.ModelDefault {
		return string(config.Model)
	}
	return g.Models()[0].APIModelName
}

// buildGenerateContentConfig converts our config to Gemini's GenerateContentConfig format.
func buildGenerateContentConfig(config *assetgen.GenerateConfig) *genai.GenerateContentConfig {
	modalities := config.ResponseModalities
	if len(modalities) == 0 {
		modalities = []assetgen.Modality{assetgen.ModalityText, assetgen.ModalityImage}
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: make([]string, 0, len(modalities)),
	}
	for _, m := range modalities {
		genConfig.ResponseModalities = append(genConfig.ResponseModalities, string(m))
	}

	// Only send image config when something was asked for
	if config.Size != assetgen.ImageSizeAuto || config.AspectRatio != assetgen.AspectRatioAuto {
		genConfig.ImageConfig = &genai.ImageConfig{
			ImageSize:   config.Size.String(),
			AspectRatio: config.AspectRatio.String(),
		}
	}

	if config.Temperature != nil {
		genConfig.Temperature = genai.Ptr(*config.Temperature)
	}

	return genConfig
}

// parseResult converts the first candidate of a Gemini response to our result type,
// keeping the parts in the order the model returned them.
func parseResult(result *genai.GenerateContentResponse) (*assetgen.GenerateResult, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}
	candidate := result.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		if candidate != nil && candidate.FinishReason != "" {
			return nil, fmt.Errorf("%w: finish reason %s", ErrEmptyResponse, candidate.FinishReason)
		}
		return nil, ErrEmptyResponse
	}

	genResult := &assetgen.GenerateResult{
		Parts:  make([]assetgen.Part, 0, len(candidate.Content.Parts)),
		Images: make([]assetgen.GeneratedImage, 0),
	}

	var thinkingParts []string
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}

		p := assetgen.Part{Text: part.Text, Thought: part.Thought}
		if part.InlineData != nil {
			p.Data = part.InlineData.Data
			p.MIMEType = part.InlineData.MIMEType
		}
		genResult.Parts = append(genResult.Parts, p)

		switch {
		case part.Thought && part.Text != "":
			thinkingParts = append(thinkingParts, part.Text)
		case part.Text != "":
			genResult.Text += part.Text
		}

		if p.IsImage() {
			genResult.Images = append(genResult.Images, assetgen.GeneratedImage{
				Data:     p.Data,
				MIMEType: p.MIMEType,
				Index:    len(genResult.Images),
			})
		}
	}

	if len(thinkingParts) > 0 {
		genResult.ThinkingContent = strings.Join(thinkingParts, "\n")
	}

	if result.UsageMetadata != nil {
		genResult.UsageMetadata = &assetgen.UsageMetadata{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CandidatesTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
			ImageCount:       len(genResult.Images),
		}
	}

	return genResult, nil
}

// checkRateLimitError wraps quota errors from the Gemini API in a RateLimitError.
// It returns nil for every other error.
func checkRateLimitError(err error, model string) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	if apiErr.Code != http.StatusTooManyRequests && apiErr.Status != "RESOURCE_EXHAUSTED" {
		return nil
	}

	return &assetgen.RateLimitError{
		LimitType: "requests",
		Model:     model,
		Err:       err,
	}
}
