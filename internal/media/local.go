package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirSaver writes generated images into a local directory, keyed by the
// derived filename. Existing files with the same name are overwritten.
type DirSaver struct {
	BaseDir string
}

// NewDirSaver constructs a saver that writes to the provided directory,
// creating it when needed. An empty baseDir falls back to os.TempDir().
func NewDirSaver(baseDir string) (*DirSaver, error) {
	dir := baseDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create generated dir: %w", err)
	}
	return &DirSaver{BaseDir: dir}, nil
}

// Save writes the content under BaseDir and returns its path.
func (d *DirSaver) Save(_ context.Context, input SaveInput) (SaveResult, error) {
	if input.Body == nil {
		return SaveResult{}, fmt.Errorf("save body is required")
	}
	name := filepath.Base(input.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return SaveResult{}, fmt.Errorf("save filename is required")
	}

	target := filepath.Join(d.BaseDir, name)
	file, err := os.Create(target)
	if err != nil {
		return SaveResult{}, fmt.Errorf("create generated file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, input.Body); err != nil {
		os.Remove(target)
		return SaveResult{}, fmt.Errorf("write generated file: %w", err)
	}

	return SaveResult{Key: target, URL: ""}, nil
}
