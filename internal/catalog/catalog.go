// Package catalog holds the fixed, ordered list of assets to generate.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/mhpenta/assetgen"
	"github.com/pelletier/go-toml/v2"
)

//go:embed tasks.toml
var defaultTasks []byte

// ErrEmptyCatalog is returned when a catalog declares no tasks or no directories.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Catalog is the asset directory layout and the tasks that fill it.
type Catalog struct {
	Directories []string        `toml:"directories"`
	Tasks       []assetgen.Task `toml:"tasks"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultTasks)
}

// Parse decodes and validates a TOML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(c.Directories) == 0 || len(c.Tasks) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]string, len(c.Tasks))
	for i := range c.Tasks {
		task := &c.Tasks[i]
		task.Title = strings.TrimSpace(task.Title)
		task.Prompt = strings.TrimSpace(task.Prompt)

		if err := assetgen.ValidateTask(*task, c.Directories); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if prev, dup := seen[task.Path]; dup {
			return nil, fmt.Errorf("task %d: %s writes %s, already written by %s", i+1, task.Title, task.Path, prev)
		}
		seen[task.Path] = task.Title
	}
	return &c, nil
}
