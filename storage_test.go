package assetgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStorage_Prepare(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	s := NewDirStorage(root)

	require.NoError(t, s.Prepare("sprites", "tilesets", "ui"))
	// Idempotent
	require.NoError(t, s.Prepare("sprites", "tilesets", "ui"))

	for _, d := range []string{"sprites", "tilesets", "ui"} {
		assert.DirExists(t, filepath.Join(root, d))
	}
}

func TestDirStorage_SaveFile(t *testing.T) {
	root := t.TempDir()
	s := NewDirStorage(root)
	ctx := context.Background()

	full, err := s.SaveFile(ctx, []byte("first version"), "sprites/crab-sheet.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sprites", "crab-sheet.png"), full)

	// Overwrites, including with shorter content
	_, err = s.SaveFile(ctx, []byte("v2"), "sprites/crab-sheet.png", "image/png")
	require.NoError(t, err)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestDirStorage_SaveFile_RejectsEmpty(t *testing.T) {
	s := NewDirStorage(t.TempDir())

	_, err := s.SaveFile(context.Background(), nil, "ui/panel-bg.png", "image/png")
	assert.ErrorIs(t, err, ErrEmptyImageData)
	assert.NoFileExists(t, filepath.Join(s.Root, "ui", "panel-bg.png"))
}

func TestDirStorage_SaveFile_CancelledContext(t *testing.T) {
	s := NewDirStorage(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveFile(ctx, []byte("x"), "ui/panel-bg.png", "image/png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirStorage_SaveFile_OpenError(t *testing.T) {
	root := t.TempDir()
	// A directory where the file should go makes os.Create fail
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ui", "panel-bg.png"), 0o755))

	_, err := NewDirStorage(root).SaveFile(context.Background(), []byte("x"), "ui/panel-bg.png", "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening")
}

func TestGetMIMEType(t *testing.T) {
	tests := map[string]string{
		"a.png":  "image/png",
		"a.JPG":  "image/jpeg",
		"a.jpeg": "image/jpeg",
		"a.webp": "image/webp",
		"a.gif":  "image/gif",
		"a.bin":  "image/png",
	}
	for in, want := range tests {
		assert.Equal(t, want, GetMIMEType(in), in)
	}
}
