// Package settings reads the image service credential from the local
// assistant settings document.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrMalformedSettings is returned when the settings file is not a JSON object.
	ErrMalformedSettings = errors.New("malformed settings")

	// ErrMissingKey is returned when the credential key path cannot be followed.
	ErrMissingKey = errors.New("missing settings key")
)

// CredentialPath is the key path leading to the API key, outermost first.
var CredentialPath = []string{"mcpServers", "nanobanana", "env", "GEMINI_API_KEY"}

// Credential is the secret used to authenticate to the image service.
// Formatting and logging it prints a placeholder.
type Credential string

// Secret returns the raw credential value.
func (c Credential) Secret() string {
	return string(c)
}

func (c Credential) String() string {
	return "[REDACTED]"
}

// GoString keeps %#v from printing the value.
func (c Credential) GoString() string {
	return "settings.Credential([REDACTED])"
}

// LogValue keeps slog from printing the value.
func (c Credential) LogValue() slog.Value {
	return slog.StringValue("[REDACTED]")
}

// DefaultPath returns ~/.claude/settings.json. It fails when the home
// directory is unknown rather than falling back to a relative path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating settings: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

// LoadCredential reads path and returns the value at CredentialPath.
func LoadCredential(path string) (Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading settings: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedSettings, path, err)
	}
	if doc == nil {
		return "", fmt.Errorf("%w: %s: not an object", ErrMalformedSettings, path)
	}

	value, err := lookup(doc, CredentialPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return Credential(value), nil
}

// lookup follows keys through nested objects and returns the string at the end.
func lookup(doc map[string]any, keys []string) (string, error) {
	var node any = doc
	for i, key := range keys {
		at := strings.Join(keys[:i+1], ".")

		obj, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: %s is not an object", ErrMissingKey, strings.Join(keys[:i], "."))
		}
		node, ok = obj[key]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingKey, at)
		}
	}

	s, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrMissingKey, strings.Join(keys, "."))
	}
	return s, nil
}
