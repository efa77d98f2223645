package source

import (
	"bufio"
	"os"
	"strings"
)

// FileSource reads successive lines appended to a text file, starting from
// the current file position at Open time.
type FileSource struct {
	path   string
	file   *os.File
	reader *bufio.Reader
}

// NewFileSource returns a driver that will read lines from path once Open.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Open opens path read-only. Idempotent on success; repeatable on failure.
func (f *FileSource) Open() bool {
	if f.file != nil {
		return true
	}
	file, err := os.Open(f.path)
	if err != nil {
		return false
	}
	f.file = file
	f.reader = bufio.NewReader(file)
	return true
}

// Read returns the next newline-terminated line, with the trailing newline
// stripped. It reports ok=false on EOF — the caller's producer loop exits
// rather than retrying, per the terminate-on-first-failure design.
func (f *FileSource) Read() (string, bool) {
	line, err := f.reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimRight(line, "\n"), true
}

// Close releases the underlying file descriptor.
func (f *FileSource) Close() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}
