// Package item implements storage items on top of afero filesystems.
package item

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// File is a file on an afero filesystem.
type File struct {
	fs   afero.Fs
	path string
}

// NewFile returns the file at path on fs. Nothing is touched until Read
// or Write.
func NewFile(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

// OS returns a file on the operating system filesystem.
func OS(path string) *File {
	return NewFile(afero.NewOsFs(), path)
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Read() (string, error) {
	content, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", f.path, err)
	}

	return string(content), nil
}

// Write replaces the file content, creating missing parent directories.
func (f *File) Write(content string) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write %q: %w", f.path, err)
		}
	}

	if err := afero.WriteFile(f.fs, f.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", f.path, err)
	}

	return nil
}

// Exists reports whether the file is present.
func (f *File) Exists() bool {
	_, err := f.fs.Stat(f.path)
	return err == nil || !os.IsNotExist(err)
}
