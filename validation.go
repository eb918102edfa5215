package assetgen

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
)

// Validation errors
var (
	ErrEmptyPrompt       = errors.New("prompt cannot be empty")
	ErrEmptyTitle        = errors.New("task title cannot be empty")
	ErrEmptyImageData    = errors.New("image data cannot be empty")
	ErrInvalidOutputPath = errors.New("invalid output path")
	ErrUnsupportedOption = errors.New("option not supported by model")
)

// ValidatePrompt validates a text prompt.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateOutputPath checks that p is a clean, slash-separated path relative to
// the asset root whose first segment is one of dirs.
func ValidateOutputPath(p string, dirs []string) error {
	if p == "" {
		return fmt.Errorf("%w: empty", ErrInvalidOutputPath)
	}
	if path.IsAbs(p) || strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: %s is absolute", ErrInvalidOutputPath, p)
	}
	if path.Clean(p) != p || strings.Contains(p, "\\") {
		return fmt.Errorf("%w: %s is not clean", ErrInvalidOutputPath, p)
	}
	if slices.Contains(strings.Split(p, "/"), "..") {
		return fmt.Errorf("%w: %s escapes the asset root", ErrInvalidOutputPath, p)
	}
	dir, file, ok := strings.Cut(p, "/")
	if !ok || file == "" {
		return fmt.Errorf("%w: %s must live in a subdirectory", ErrInvalidOutputPath, p)
	}
	if !slices.Contains(dirs, dir) {
		return fmt.Errorf("%w: %s is outside %v", ErrInvalidOutputPath, p, dirs)
	}
	return nil
}

// ValidateTask validates a generation task against the known asset directories.
func ValidateTask(task Task, dirs []string) error {
	if strings.TrimSpace(task.Title) == "" {
		return ErrEmptyTitle
	}
	if err := ValidatePrompt(task.Prompt); err != nil {
		return fmt.Errorf("%s: %w", task.Title, err)
	}
	if err := ValidateOutputPath(task.Path, dirs); err != nil {
		return fmt.Errorf("%s: %w", task.Title, err)
	}
	return nil
}

// ValidateConfig checks config options against what the model accepts.
func ValidateConfig(config *GenerateConfig, info ModelInfo) error {
	if config == nil {
		return nil
	}
	if !info.SupportsSize(config.Size) {
		return fmt.Errorf("%w: size %s on %s", ErrUnsupportedOption, config.Size, info.Name)
	}
	if !info.SupportsAspectRatio(config.AspectRatio) {
		return fmt.Errorf("%w: aspect ratio %s on %s", ErrUnsupportedOption, config.AspectRatio, info.Name)
	}
	return nil
}
