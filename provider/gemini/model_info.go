package gemini

import "github.com/mhpenta/assetgen"

var supportedAspectRatios = []assetgen.AspectRatio{
	assetgen.AspectRatio1x1,
	assetgen.AspectRatio4x3,
	assetgen.AspectRatio3x2,
	assetgen.AspectRatio16x9,
}

// NanoBanana2Info is the model info for Gemini 3.1 Flash Image (nano-banana-2),
// the default model for asset generation.
var NanoBanana2Info = assetgen.ModelInfo{
	Name:         string(assetgen.ModelNanoBanana2),
	Provider:     assetgen.ProviderGeminiAPI,
	APIModelName: APIModelNanoBanana2,

	ImageConstraints: assetgen.ImageConstraints{
		SupportedAspectRatios: supportedAspectRatios,
		SupportedSizes: []assetgen.ImageSize{
			assetgen.ImageSize1K,
			assetgen.ImageSize2K,
		},
	},
}

// NanoBananaProInfo is the model info for Gemini 3 Pro Image.
var NanoBananaProInfo = assetgen.ModelInfo{
	Name:         string(assetgen.ModelNanoBananaPro),
	Provider:     assetgen.ProviderGeminiAPI,
	APIModelName: APIModelNanoBananaPro,

	ImageConstraints: assetgen.ImageConstraints{
		SupportedAspectRatios: supportedAspectRatios,
		SupportedSizes: []assetgen.ImageSize{
			assetgen.ImageSize1K,
			assetgen.ImageSize2K,
		},
	},
}
