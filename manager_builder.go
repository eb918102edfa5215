package assetgen

import (
	"log/slog"
)

// ManagerOption configures the Manager.
type ManagerOption func(*Manager)

// WithLogger sets a structured logger for the manager.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithDefaultModel sets the default model used when config.Model is empty.
func WithDefaultModel(model Model) ManagerOption {
	return func(m *Manager) {
		m.defaultModel = model
	}
}

// NewManager creates a Manager serving every model the provider declares.
// The provider's first model becomes the default unless WithDefaultModel says otherwise.
//
// Example:
//
//	gen, err := gemini.NewWithAPIKey(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	manager := assetgen.NewManager(gen, assetgen.WithLogger(logger))
func NewManager(provider ImageGenerator, opts ...ManagerOption) *Manager {
	m := newManager()
	m.register(provider)
	if len(m.order) > 0 {
		m.defaultModel = m.order[0]
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}
