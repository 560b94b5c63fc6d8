// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

type LocalSource struct {
	path        string
	symlinkOpts SymlinkAllowOpts
}

func NewLocalSource(path string, opts SymlinkAllowOpts) *LocalSource {
	return &LocalSource{path, opts}
}

func (s *LocalSource) Path() string      { return s.path }
func (s *LocalSource) Extension() string { return extensionOf(s.path) }

func (s *LocalSource) IsDirectory() bool {
	fileInfo, err := os.Stat(s.path)
	return err == nil && fileInfo.IsDir()
}

func (s *LocalSource) Children() ([]Source, error) {
	err := s.checkSymlink()
	if err != nil {
		return nil, err
	}

	// ReadDir returns entries sorted by filename
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("Listing directory '%s': %s", s.path, err)
	}

	var result []Source
	for _, entry := range entries {
		result = append(result, NewLocalSource(filepath.Join(s.path, entry.Name()), s.symlinkOpts))
	}
	return result, nil
}

func (s *LocalSource) Bytes() ([]byte, error) {
	err := s.checkSymlink()
	if err != nil {
		return nil, err
	}
	return os.ReadFile(s.path)
}

func (s *LocalSource) WriteBytes(data []byte) error {
	dstPath, err := ResolveWritePath(s.path, s.symlinkOpts)
	if err != nil {
		return err
	}

	fileInfo, err := os.Stat(dstPath)
	if err != nil {
		return err
	}

	return NewOutputFile(dstPath, data, fileInfo.Mode().Perm()).Create()
}

func (s *LocalSource) checkSymlink() error {
	fileInfo, err := os.Lstat(s.path)
	if err != nil {
		return err
	}
	if fileInfo.Mode()&os.ModeSymlink == 0 {
		return nil
	}
	return Symlink{s.path}.IsAllowed(s.symlinkOpts)
}
