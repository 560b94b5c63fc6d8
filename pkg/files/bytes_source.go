// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
)

const StdinPath = "stdin.yml"

// BytesSource is an in-memory file. Written bytes replace its content.
type BytesSource struct {
	path string
	data []byte

	writeErr error
}

func NewBytesSource(path string, data []byte) *BytesSource {
	return &BytesSource{path: path, data: data}
}

// NewFailingBytesSource returns a source whose writes fail with err.
func NewFailingBytesSource(path string, data []byte, err error) *BytesSource {
	return &BytesSource{path: path, data: data, writeErr: err}
}

func (s *BytesSource) Path() string                { return s.path }
func (s *BytesSource) Extension() string           { return extensionOf(s.path) }
func (s *BytesSource) IsDirectory() bool           { return false }
func (s *BytesSource) Children() ([]Source, error) { return nil, fmt.Errorf("Expected '%s' to be a directory", s.path) }
func (s *BytesSource) Bytes() ([]byte, error)      { return s.data, nil }

func (s *BytesSource) WriteBytes(data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data = data
	return nil
}

// DirectorySource is an in-memory directory.
type DirectorySource struct {
	path     string
	children []Source
}

var _ Source = &DirectorySource{}

func NewDirectorySource(path string, children ...Source) *DirectorySource {
	return &DirectorySource{path, children}
}

func (s *DirectorySource) Path() string                { return s.path }
func (s *DirectorySource) Extension() string           { return "" }
func (s *DirectorySource) IsDirectory() bool           { return true }
func (s *DirectorySource) Children() ([]Source, error) { return s.children, nil }

func (s *DirectorySource) Bytes() ([]byte, error) {
	return nil, fmt.Errorf("Expected '%s' to not be a directory", s.path)
}

func (s *DirectorySource) WriteBytes([]byte) error {
	return fmt.Errorf("Expected '%s' to not be a directory", s.path)
}
