package assetgen

// Model represents a specific image generation model.
type Model string

// ImageSize represents the output resolution for generated images.
type ImageSize string

const (
	ImageSize1K   ImageSize = "1K"
	ImageSize2K   ImageSize = "2K"
	ImageSizeAuto ImageSize = ""
)

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x2  AspectRatio = "3:2"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatioAuto AspectRatio = ""
)

// Modality is an output type requested from the model.
type Modality string

const (
	ModalityText  Modality = "TEXT"
	ModalityImage Modality = "IMAGE"
)

// GenerateConfig holds configuration options for image generation.
type GenerateConfig struct {
	// Model to use for generation (if empty, uses manager's default)
	Model Model

	// ResponseModalities lists the output types requested from the model.
	// Image generation models need both text and image.
	ResponseModalities []Modality

	// Size of the output image. Left empty, the model picks.
	Size ImageSize

	// AspectRatio of the output image. Left empty, the model picks.
	AspectRatio AspectRatio

	// Temperature controls randomness (nil keeps the model default)
	Temperature *float32
}

// WithModel returns a copy of the config with the specified model.
func (c *GenerateConfig) WithModel(model Model) *GenerateConfig {
	if c == nil {
		cfg := DefaultConfig()
		cfg.Model = model
		return cfg
	}
	cX := *c
	cX.Model = model
	return &cX
}

// DefaultConfig returns a GenerateConfig requesting image and text output from the default model.
func DefaultConfig() *GenerateConfig {
	return &GenerateConfig{
		Model:              ModelDefault,
		ResponseModalities: []Modality{ModalityText, ModalityImage},
		Size:               ImageSizeAuto,
		AspectRatio:        AspectRatioAuto,
	}
}

func (s ImageSize) String() string {
	return string(s)
}

func (a AspectRatio) String() string {
	return string(a)
}

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}
