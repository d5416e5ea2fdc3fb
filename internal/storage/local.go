package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalFiles removes legacy uploads that were written to disk instead of the
// media store. Only paths inside root are ever touched.
type LocalFiles struct {
	root string
}

// NewLocalFiles creates a LocalFiles rooted at dir.
func NewLocalFiles(dir string) *LocalFiles {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = filepath.Clean(dir)
	}
	return &LocalFiles{root: abs}
}

// Remove deletes path if it is an existing regular file under the root.
// URLs and paths outside the root are ignored.
func (l *LocalFiles) Remove(path string) (bool, error) {
	if path == "" || strings.Contains(path, "://") {
		return false, nil
	}

	candidate := path
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(l.root, strings.TrimPrefix(filepath.Clean(candidate), filepath.Base(l.root)+string(filepath.Separator)))
	}
	candidate = filepath.Clean(candidate)

	rel, err := filepath.Rel(l.root, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}

	info, err := os.Stat(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	if err := os.Remove(candidate); err != nil {
		return false, err
	}
	return true, nil
}
