package assetgen

// ImageConstraints defines supported image configurations for a model.
type ImageConstraints struct {
	SupportedAspectRatios []AspectRatio
	SupportedSizes        []ImageSize
}

// ModelInfo contains complete metadata for a model.
type ModelInfo struct {
	// Identity
	Name         string   // Public model name (e.g., "nano-banana-2")
	Provider     Provider // Which provider serves this model
	APIModelName string   // Actual API name (e.g., "gemini-3.1-flash-image-preview")

	ImageConstraints ImageConstraints
}

// SupportsAspectRatio reports whether the model accepts the ratio.
// AspectRatioAuto is always accepted.
func (i ModelInfo) SupportsAspectRatio(ratio AspectRatio) bool {
	if ratio == AspectRatioAuto {
		return true
	}
	for _, r := range i.ImageConstraints.SupportedAspectRatios {
		if r == ratio {
			return true
		}
	}
	return false
}

// SupportsSize reports whether the model accepts the output size.
// ImageSizeAuto is always accepted.
func (i ModelInfo) SupportsSize(size ImageSize) bool {
	if size == ImageSizeAuto {
		return true
	}
	for _, s := range i.ImageConstraints.SupportedSizes {
		if s == size {
			return true
		}
	}
	return false
}
