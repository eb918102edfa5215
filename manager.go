package assetgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	ModelNanoBanana2   Model = "nano-banana-2"   // Gemini 3.1 Flash Image
	ModelNanoBananaPro Model = "nano-banana-pro" // Gemini 3 Pro Image

	ModelDefault Model = ModelNanoBanana2
)

var (
	// ErrModelNotRegistered is returned when no provider serves the requested model.
	ErrModelNotRegistered = errors.New("model not registered")

	// ErrProviderNotConfigured is returned when a provider lacks required config.
	ErrProviderNotConfigured = errors.New("provider not configured")
)

// Provider names a model backend.
type Provider string

const (
	ProviderGeminiAPI Provider = "gemini"
)

// ProviderConfig configures a specific provider.
type ProviderConfig struct {
	Provider Provider

	// APIKey authenticates requests.
	APIKey string

	// BaseURL overrides the service endpoint (optional).
	BaseURL string
}

// route is where requests for one public model name go.
type route struct {
	gen      ImageGenerator
	apiModel string
	info     ModelInfo
}

// Manager implements ImageGenerator by translating public model names to the
// provider's API names, checking options against the model's constraints and
// logging every request.
type Manager struct {
	routes       map[Model]route
	order        []Model
	defaultModel Model
	logger       *slog.Logger

	mu        sync.Mutex
	providers map[Provider]ImageGenerator
}

// Ensure Manager implements the interface.
var _ ImageGenerator = (*Manager)(nil)

func newManager() *Manager {
	return &Manager{
		routes:       make(map[Model]route),
		defaultModel: ModelDefault,
		logger:       slog.Default(),
		providers:    make(map[Provider]ImageGenerator),
	}
}

// register routes every model gen declares to gen. A model declared twice keeps
// its first route.
func (m *Manager) register(gen ImageGenerator) {
	for _, info := range gen.Models() {
		model := Model(info.Name)
		if _, exists := m.routes[model]; exists {
			continue
		}
		m.routes[model] = route{gen: gen, apiModel: info.APIModelName, info: info}
		m.order = append(m.order, model)
		m.providers[info.Provider] = gen
	}
}

// Generate sends prompt to the provider serving config.Model.
func (m *Manager) Generate(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error) {
	if config == nil {
		config = DefaultConfig()
	}

	model := m.resolveModel(config.Model)
	r, ok := m.routes[model]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrModelNotRegistered, model)
		m.logger.Error("no route for model", "model", string(model), "error", err.Error())
		return nil, err
	}
	if err := ValidateConfig(config, r.info); err != nil {
		return nil, err
	}

	req := *config
	req.Model = Model(r.apiModel)

	m.logger.Debug("starting image generation",
		"model", string(model),
		"prompt_length", len(prompt),
	)
	start := time.Now()

	result, err := r.gen.Generate(ctx, prompt, &req)
	elapsed := time.Since(start)
	if err != nil {
		m.logger.Error("generation failed",
			"model", string(model),
			"duration_ms", elapsed.Milliseconds(),
			"rate_limited", IsRateLimitError(err),
			"error", err.Error(),
		)
		return nil, err
	}
	if result == nil {
		result = &GenerateResult{}
	}

	attrs := []any{
		"model", string(model),
		"duration_ms", elapsed.Milliseconds(),
		"image_count", len(result.Images),
	}
	if u := result.UsageMetadata; u != nil {
		attrs = append(attrs, "total_tokens", u.TotalTokens)
	}
	m.logger.Info("generation completed", attrs...)

	return result, nil
}

// Models returns the registered model definitions in registration order.
func (m *Manager) Models() []ModelInfo {
	models := make([]ModelInfo, 0, len(m.order))
	for _, model := range m.order {
		models = append(models, m.routes[model].info)
	}
	return models
}

// ListModels returns the registered model names in registration order.
func (m *Manager) ListModels() []Model {
	return append([]Model(nil), m.order...)
}

// GetModelInfo returns the definition of a registered model.
func (m *Manager) GetModelInfo(model Model) (ModelInfo, bool) {
	r, ok := m.routes[model]
	return r.info, ok
}

// Close closes each provider once. Later calls are no-ops.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for provider, gen := range m.providers {
		if err := gen.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", provider, err))
		}
	}
	clear(m.providers)

	return errors.Join(errs...)
}

// resolveModel maps an empty or default model name to the configured default.
func (m *Manager) resolveModel(model Model) Model {
	if model == "" || model == ModelDefault {
		return m.defaultModel
	}
	return model
}
