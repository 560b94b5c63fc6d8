// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source is a file or a directory selected for formatting.
type Source interface {
	Path() string
	// Extension is the file extension without the leading dot (eg "yml")
	Extension() string
	IsDirectory() bool
	// Children lists directory entries in directory-listing order
	Children() ([]Source, error)
	Bytes() ([]byte, error)
	WriteBytes([]byte) error
}

var _ []Source = []Source{&LocalSource{}, &BytesSource{}}

// NewSourcesFromPaths returns one Source per path. "-" is standard input.
func NewSourcesFromPaths(paths []string, opts SymlinkAllowOpts) ([]Source, error) {
	var srcs []Source

	for _, path := range paths {
		if path == "-" {
			data, err := ReadStdin()
			if err != nil {
				return nil, err
			}
			srcs = append(srcs, NewBytesSource(StdinPath, data))
			continue
		}

		_, err := os.Lstat(path)
		if err != nil {
			return nil, fmt.Errorf("Checking file '%s': %s", path, err)
		}

		rootOpts := opts
		if !opts.AllowAll {
			// symlinks found while walking a directory must stay within it
			dstPath, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil, fmt.Errorf("Eval symlink: %s", err)
			}
			rootOpts.AllowedDstPaths = append(append([]string{}, opts.AllowedDstPaths...), dstPath)
		}

		srcs = append(srcs, NewLocalSource(path, rootOpts))
	}

	return srcs, nil
}

func extensionOf(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
