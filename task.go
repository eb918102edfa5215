package assetgen

import "path"

// Task is one unit of generation work: a prompt and where its image goes.
type Task struct {
	Title  string `toml:"title"`
	Prompt string `toml:"prompt"`
	// Path is slash-separated and relative to the asset root.
	Path string `toml:"path"`
}

// FileName returns the base name of the task's output file.
func (t Task) FileName() string {
	return path.Base(t.Path)
}
