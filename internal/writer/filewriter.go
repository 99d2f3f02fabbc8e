// Package writer exposes atomic file sinks for packed and raw histogram files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPerm is applied to files created by FileWriter when Perm is zero.
const DefaultPerm os.FileMode = 0o644

// FileWriter writes a complete file to Path atomically: readers see either the
// previous contents or the new contents, never a partial write.
type FileWriter struct {
	Path string
	Perm os.FileMode
}

// Write stores data at the configured path via temp file + fsync + rename.
func (w *FileWriter) Write(data []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".histpack-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	perm := w.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
