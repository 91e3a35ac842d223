package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBundleLayout(t *testing.T) {
	tests := []struct {
		name, got, want string
	}{
		{"SVGPath", SVGPath, "GhostPrompter.app/Contents/Resources/AppIcon.svg"},
		{"IconsetPath", IconsetPath, "GhostPrompter.app/Contents/Resources/AppIcon.iconset"},
		{"ResourcesDir", ResourcesDir, "GhostPrompter.app/Contents/Resources"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestJoinEmptyRootKeepsRelative(t *testing.T) {
	if got := Join("", SVGPath); got != SVGPath {
		t.Errorf("Join(\"\", SVGPath) = %q, want %q", got, SVGPath)
	}
}

func TestJoinWithRoot(t *testing.T) {
	root := t.TempDir()
	got := Join(root, SVGPath)
	want := filepath.Join(root, "GhostPrompter.app", "Contents", "Resources", "AppIcon.svg")
	if got != want {
		t.Errorf("Join(root, SVGPath) = %q, want %q", got, want)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	for i := 0; i < 2; i++ {
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir pass %d: %v", i, err)
		}
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestEnsureDirFailsOnFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, FilePerm); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(filepath.Join(blocker, "sub")); err == nil {
		t.Error("EnsureDir under a regular file succeeded, want error")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.svg")
	if err := WriteFile(p, []byte("first, longer content")); err != nil {
		t.Fatalf("first WriteFile: %v", err)
	}
	if err := WriteFile(p, []byte("second")); err != nil {
		t.Fatalf("second WriteFile: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestWriteFileMissingParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "out.svg")
	if err := WriteFile(p, []byte("x")); err == nil {
		t.Error("WriteFile into missing directory succeeded, want error")
	}
}
