package assetgen

import "strings"

// Part is one piece of a model response, in the order the model returned it.
// A part either carries inline binary data with a MIME type or text.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
	Thought  bool
}

// IsImage reports whether the part carries non-empty image data.
func (p Part) IsImage() bool {
	return len(p.Data) > 0 && strings.HasPrefix(p.MIMEType, "image/")
}

// GeneratedImage represents a single generated image result.
type GeneratedImage struct {
	// Data contains the raw image bytes
	Data []byte

	// MIMEType of the generated image
	MIMEType string

	// Index is the position in a multi-image result (0-indexed)
	Index int
}

// GenerateResult holds the complete result of an image generation request.
type GenerateResult struct {
	// Parts holds every response part in model order
	Parts []Part

	// Images contains all generated images
	Images []GeneratedImage

	// Text contains any text response from the model
	Text string

	// ThinkingContent contains the model's reasoning
	ThinkingContent string

	// UsageMetadata contains token/billing information
	UsageMetadata *UsageMetadata
}

// FirstImage returns the first part carrying image data, scanning parts in order.
// It returns false when the response holds no image.
func (r *GenerateResult) FirstImage() (GeneratedImage, bool) {
	if r == nil {
		return GeneratedImage{}, false
	}
	for _, p := range r.Parts {
		if p.IsImage() {
			return GeneratedImage{Data: p.Data, MIMEType: p.MIMEType}, true
		}
	}
	return GeneratedImage{}, false
}

// UsageMetadata contains usage information for billing and monitoring.
type UsageMetadata struct {
	PromptTokens     int
	CandidatesTokens int
	TotalTokens      int
	ImageCount       int
}
