package settings

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCredential(t *testing.T) {
	path := writeSettings(t, `{
  "theme": "dark",
  "mcpServers": {
    "nanobanana": {
      "command": "npx",
      "env": {"GEMINI_API_KEY": "secret-key", "DEBUG": true}
    }
  }
}`)

	cred, err := LoadCredential(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cred.Secret())
}

func TestLoadCredential_EmptyValueAllowed(t *testing.T) {
	path := writeSettings(t, `{"mcpServers":{"nanobanana":{"env":{"GEMINI_API_KEY":""}}}}`)

	cred, err := LoadCredential(path)
	require.NoError(t, err)
	assert.Equal(t, "", cred.Secret())
}

func TestLoadCredential_MissingFile(t *testing.T) {
	_, err := LoadCredential(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadCredential_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "not json",
			content: `mcpServers = 1`,
			wantErr: ErrMalformedSettings,
		},
		{
			name:    "json array",
			content: `[1, 2]`,
			wantErr: ErrMalformedSettings,
		},
		{
			name:    "json null",
			content: `null`,
			wantErr: ErrMalformedSettings,
		},
		{
			name:    "no servers",
			content: `{}`,
			wantErr: ErrMissingKey,
			wantMsg: "mcpServers",
		},
		{
			name:    "no server entry",
			content: `{"mcpServers":{"other":{}}}`,
			wantErr: ErrMissingKey,
			wantMsg: "mcpServers.nanobanana",
		},
		{
			name:    "no env",
			content: `{"mcpServers":{"nanobanana":{}}}`,
			wantErr: ErrMissingKey,
			wantMsg: "mcpServers.nanobanana.env",
		},
		{
			name:    "no key",
			content: `{"mcpServers":{"nanobanana":{"env":{}}}}`,
			wantErr: ErrMissingKey,
			wantMsg: "mcpServers.nanobanana.env.GEMINI_API_KEY",
		},
		{
			name:    "env is not an object",
			content: `{"mcpServers":{"nanobanana":{"env":"x"}}}`,
			wantErr: ErrMissingKey,
			wantMsg: "is not an object",
		},
		{
			name:    "key is not a string",
			content: `{"mcpServers":{"nanobanana":{"env":{"GEMINI_API_KEY":42}}}}`,
			wantErr: ErrMissingKey,
			wantMsg: "is not a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCredential(writeSettings(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCredential_Redacted(t *testing.T) {
	cred := Credential("super-secret")

	assert.NotContains(t, fmt.Sprintf("%s %v %+v %#v", cred, cred, cred, cred), "super-secret")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("loaded", "credential", cred)
	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude", "settings.json"), path)
}

func TestDefaultPath_NoHome(t *testing.T) {
	t.Setenv("HOME", "")

	path, err := DefaultPath()
	assert.Error(t, err)
	assert.Empty(t, path)
}
