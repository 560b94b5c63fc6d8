// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"errors"
	"fmt"

	"carvel.dev/yamlformat/pkg/yamlmeta"
)

// ParseError is returned when a document is not well-formed YAML.
type ParseError = yamlmeta.ParseError

// ErrValidationMismatch is returned when reinserting comments changed the
// content of the canonical document.
var ErrValidationMismatch = errors.New("Expected document with comments to be equivalent to canonical document")

// IOError is returned when a file could not be read, decoded or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s file '%s': %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
