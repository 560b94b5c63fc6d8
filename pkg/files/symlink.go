// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Symlink is a selected path that is a symbolic link. Formatting writes
// through a link to its final destination and leaves the link itself in
// place, hence a link is only followed when that destination lies within
// an allowed path.
type Symlink struct {
	path string
}

type SymlinkAllowOpts struct {
	// AllowAll follows links regardless of destination
	AllowAll bool
	// AllowedDstPaths are files or directories links may point into
	AllowedDstPaths []string
}

// Linux reports /dev/fd/N of a pipe as pointing to "pipe:[N]"
var pipeDstErr = regexp.MustCompile(`^lstat /proc/\d+/fd/pipe:\[\d+\]: no such file or directory$`)

// ResolveWritePath returns the file that formatted content of path
// should replace: path itself for regular files, or the allowed
// destination for links.
func ResolveWritePath(path string, opts SymlinkAllowOpts) (string, error) {
	fileInfo, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	if fileInfo.Mode()&os.ModeSymlink == 0 {
		return path, nil
	}
	return Symlink{path}.Destination(opts)
}

// Destination follows the link (and any links it points to) and
// returns the final path if opts allow it.
func (s Symlink) Destination(opts SymlinkAllowOpts) (string, error) {
	dstPath, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		return "", fmt.Errorf("Eval symlink: %s", err)
	}

	if opts.AllowAll {
		return dstPath, nil
	}

	for _, allowedPath := range opts.AllowedDstPaths {
		within, err := isWithin(dstPath, allowedPath)
		if err != nil {
			return "", err
		}
		if within {
			return dstPath, nil
		}
	}

	return "", fmt.Errorf("Expected symlink file '%s' -> '%s' to point within selected paths, but did not", s.path, dstPath)
}

// IsAllowed checks the link before reading through it. Pipes
// (eg /dev/stdin) are readable even though they cannot be resolved.
func (s Symlink) IsAllowed(opts SymlinkAllowOpts) error {
	if opts.AllowAll {
		return nil
	}
	_, err := s.Destination(opts)
	if err != nil && pipeDstErr.MatchString(strings.TrimPrefix(err.Error(), "Eval symlink: ")) {
		return nil
	}
	return err
}

func isWithin(path, allowedPath string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("Abs path '%s': %s", path, err)
	}

	absAllowedPath, err := filepath.Abs(allowedPath)
	if err != nil {
		return false, fmt.Errorf("Abs path '%s': %s", allowedPath, err)
	}
	// compare against the real location when the allowed path is itself a link
	if resolved, err := filepath.EvalSymlinks(absAllowedPath); err == nil {
		absAllowedPath = resolved
	}

	relPath, err := filepath.Rel(absAllowedPath, absPath)
	if err != nil {
		return false, nil
	}
	return relPath != ".." && !strings.HasPrefix(relPath, ".."+string(filepath.Separator)), nil
}
