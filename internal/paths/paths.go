package paths

import (
	"os"
	"path/filepath"
)

const (
	BundleName   = "GhostPrompter.app"
	ResourcesDir = BundleName + "/Contents/Resources"
	SVGPath      = ResourcesDir + "/AppIcon.svg"
	IconsetPath  = ResourcesDir + "/AppIcon.iconset"
	DirPerm      = 0755
	FilePerm     = 0644
)

// Join resolves a bundle-relative path against root. An empty root leaves
// rel untouched so it stays relative to the working directory.
func Join(root, rel string) string {
	if root == "" {
		return rel
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// WriteFile replaces path with data via a temporary file + rename to avoid
// partial writes. Unlike os.WriteFile it never leaves a truncated file
// behind; the parent directory must already exist.
func WriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
