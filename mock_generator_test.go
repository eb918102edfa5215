package assetgen

import (
	"context"
	"sync"
)

// MockImageGenerator is a mock implementation of ImageGenerator.
type MockImageGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error)
	ModelsFunc   func() []ModelInfo
	CloseFunc    func() error

	mu      sync.Mutex
	prompts []string
	configs []*GenerateConfig
}

func (m *MockImageGenerator) Generate(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.configs = append(m.configs, config)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, config)
	}
	return &GenerateResult{}, nil
}

func (m *MockImageGenerator) Models() []ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []ModelInfo{}
}

func (m *MockImageGenerator) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Calls returns the prompts Generate received, in order.
func (m *MockImageGenerator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func (m *MockImageGenerator) lastConfig() *GenerateConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.configs) == 0 {
		return nil
	}
	return m.configs[len(m.configs)-1]
}

// MockStorage records saved files in memory.
type MockStorage struct {
	SaveFunc func(ctx context.Context, data []byte, path string, contentType string) (string, error)

	Files map[string][]byte
}

func (s *MockStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if s.SaveFunc != nil {
		return s.SaveFunc(ctx, data, path, contentType)
	}
	if s.Files == nil {
		s.Files = make(map[string][]byte)
	}
	s.Files[path] = append([]byte(nil), data...)
	return path, nil
}
