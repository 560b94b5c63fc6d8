// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/yamlformat/pkg/files"
	"github.com/stretchr/testify/require"
)

func TestResolveWritePathRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0600))

	dstPath, err := files.ResolveWritePath(path, files.SymlinkAllowOpts{})
	require.NoError(t, err)
	require.Equal(t, path, dstPath)
}

func TestResolveWritePathFollowsAllowedLinks(t *testing.T) {
	targetDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	targetPath := filepath.Join(targetDir, "target.yml")
	require.NoError(t, os.WriteFile(targetPath, []byte("a: 1\n"), 0600))

	dir := t.TempDir()
	midLink := filepath.Join(dir, "mid.yml")
	link := filepath.Join(dir, "link.yml")
	require.NoError(t, os.Symlink(targetPath, midLink))
	require.NoError(t, os.Symlink(midLink, link))

	_, err = files.ResolveWritePath(link, files.SymlinkAllowOpts{AllowedDstPaths: []string{dir}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected symlink file '"+link+"' -> '"+targetPath+"' to point within selected paths")

	dstPath, err := files.ResolveWritePath(link, files.SymlinkAllowOpts{AllowedDstPaths: []string{targetDir}})
	require.NoError(t, err)
	require.Equal(t, targetPath, dstPath)

	dstPath, err = files.ResolveWritePath(link, files.SymlinkAllowOpts{AllowAll: true})
	require.NoError(t, err)
	require.Equal(t, targetPath, dstPath)
}

func TestResolveWritePathSiblingPrefixIsNotWithin(t *testing.T) {
	parent, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	allowedDir := filepath.Join(parent, "conf")
	siblingDir := filepath.Join(parent, "conf-other")
	require.NoError(t, os.Mkdir(allowedDir, 0700))
	require.NoError(t, os.Mkdir(siblingDir, 0700))

	targetPath := filepath.Join(siblingDir, "a.yml")
	require.NoError(t, os.WriteFile(targetPath, []byte("a: 1\n"), 0600))
	link := filepath.Join(allowedDir, "link.yml")
	require.NoError(t, os.Symlink(targetPath, link))

	_, err = files.ResolveWritePath(link, files.SymlinkAllowOpts{AllowedDstPaths: []string{allowedDir}})
	require.Error(t, err)
}

func TestLocalSourceWriteBytesThroughLink(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "target.yml")
	require.NoError(t, os.WriteFile(targetPath, []byte("a:   1\n"), 0640))

	link := filepath.Join(t.TempDir(), "link.yml")
	require.NoError(t, os.Symlink(targetPath, link))

	src := files.NewLocalSource(link, files.SymlinkAllowOpts{AllowedDstPaths: []string{filepath.Dir(targetPath)}})
	require.NoError(t, src.WriteBytes([]byte("a: 1\n")))

	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	require.Equal(t, "a: 1\n", string(data))

	fileInfo, err := os.Lstat(link)
	require.NoError(t, err)
	require.NotZero(t, fileInfo.Mode()&os.ModeSymlink, "link should be kept")

	fileInfo, err = os.Stat(targetPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0640), fileInfo.Mode().Perm())

	disallowed := files.NewLocalSource(link, files.SymlinkAllowOpts{})
	require.Error(t, disallowed.WriteBytes([]byte("b: 2\n")))

	data, err = os.ReadFile(targetPath)
	require.NoError(t, err)
	require.Equal(t, "a: 1\n", string(data))
}
