// Package loader handles opening and reading bytecode source files.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIsDirectory is returned when the source path names a directory.
var ErrIsDirectory = errors.New("path is a directory")

// Source is an opened bytecode source file.
type Source struct {
	path string
	file *os.File
	size int64
}

// Open opens the file at the given path and validates that it is a readable regular file.
// The returned errors wrap the underlying os error, a missing file can be detected
// using errors.Is(err, fs.ErrNotExist).
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("getting file info %s: %w", path, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("opening file %s: %w", path, ErrIsDirectory)
	}

	return &Source{
		path: path,
		file: file,
		size: info.Size(),
	}, nil
}

// Path returns the path of the source.
func (s *Source) Path() string {
	return s.path
}

// Size returns the size of the source at the time it was opened.
func (s *Source) Size() int64 {
	return s.size
}

// ReadAll reads the complete source content starting at offset 0.
func (s *Source) ReadAll() ([]byte, error) {
	if s.file == nil {
		return nil, fmt.Errorf("reading file %s: %w", s.path, os.ErrClosed)
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file %s: %w", s.path, err)
	}

	data, err := io.ReadAll(s.file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", s.path, err)
	}
	return data, nil
}

// Close releases the file handle. Calling it multiple times is allowed.
func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	if err != nil {
		return fmt.Errorf("closing file %s: %w", s.path, err)
	}
	return nil
}
