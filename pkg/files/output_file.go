// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputFile replaces the file at path with data. Content is first written
// to a temporary file in the same directory and then renamed over the
// target so that readers never observe a partial write.
type OutputFile struct {
	path string
	data []byte
	mode os.FileMode
}

func NewOutputFile(path string, data []byte, mode os.FileMode) OutputFile {
	return OutputFile{path, data, mode}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

func (f OutputFile) Create() error {
	fd, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("Creating temporary file for '%s': %s", f.path, err)
	}

	tmpPath := fd.Name()
	committed := false

	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	_, err = fd.Write(f.data)
	if err != nil {
		fd.Close()
		return fmt.Errorf("Writing temporary file for '%s': %s", f.path, err)
	}

	err = fd.Close()
	if err != nil {
		return fmt.Errorf("Closing temporary file for '%s': %s", f.path, err)
	}

	err = os.Chmod(tmpPath, f.mode)
	if err != nil {
		return fmt.Errorf("Setting mode of temporary file for '%s': %s", f.path, err)
	}

	err = os.Rename(tmpPath, f.path)
	if err != nil {
		return fmt.Errorf("Replacing file '%s': %s", f.path, err)
	}

	committed = true
	return nil
}
