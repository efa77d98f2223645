package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourceReadsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.txt")
	if err := os.WriteFile(path, []byte("50\n78\n92\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fs := NewFileSource(path)
	if !fs.Open() {
		t.Fatal("Open should succeed for an existing file")
	}
	defer fs.Close()

	want := []string{"50", "78", "92"}
	for _, w := range want {
		line, ok := fs.Read()
		if !ok {
			t.Fatalf("Read should succeed before EOF")
		}
		if line != w {
			t.Errorf("Read() = %q, want %q", line, w)
		}
	}

	if _, ok := fs.Read(); ok {
		t.Fatal("Read at EOF should report ok=false")
	}
}

func TestFileSourceOpenFailsOnMissingPath(t *testing.T) {
	fs := NewFileSource(filepath.Join(t.TempDir(), "missing.txt"))
	if fs.Open() {
		t.Fatal("Open should fail for a nonexistent file")
	}
}
