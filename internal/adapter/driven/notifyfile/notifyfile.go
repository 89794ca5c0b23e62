// Package notifyfile implements the NotificationSource port on a single text file.
package notifyfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/ericfisherdev/deploydrop/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.NotificationSource = (*File)(nil)

// File reads and publishes the notification message at a fixed path.
// The whole file is the message; nothing is trimmed or cached.
type File struct {
	path string
}

// New creates a File bound to path.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Read returns the file contents. A missing file reports ("", false, nil).
func (f *File) Read(_ context.Context) (string, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read notification %q: %w", f.path, err)
	}
	return string(data), true, nil
}

// Write replaces the file contents atomically so readers never see a partial message.
func (f *File) Write(_ context.Context, message string) error {
	if err := atomic.WriteFile(f.path, strings.NewReader(message)); err != nil {
		return fmt.Errorf("write notification %q: %w", f.path, err)
	}
	return nil
}

// Clear removes the file.
func (f *File) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear notification %q: %w", f.path, err)
	}
	return nil
}
