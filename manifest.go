package assetgen

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// ManifestEntry is one file found under the asset root.
type ManifestEntry struct {
	// Path is slash-separated and relative to the root.
	Path string
	Size int64
}

// BuildManifest lists every regular file below root with its size.
// Entries within a directory come out in lexical order.
func BuildManifest(root string) ([]ManifestEntry, error) {
	var entries []ManifestEntry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		entries = append(entries, ManifestEntry{
			Path: filepath.ToSlash(rel),
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	return entries, nil
}

// WriteManifest prints one "path: NKB" line per entry followed by a total.
func WriteManifest(w io.Writer, entries []ManifestEntry) {
	var total int64
	for _, e := range entries {
		fmt.Fprintf(w, "  %s: %s\n", e.Path, FormatKB(e.Size))
		total += e.Size
	}
	fmt.Fprintf(w, "  %d files, %s total\n", len(entries), humanize.IBytes(uint64(total)))
}
