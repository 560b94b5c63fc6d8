// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"bytes"
	"errors"
	"strings"

	"carvel.dev/yamlformat/pkg/files"
)

const (
	FormatMsgPrefix      = "format : "
	ValidationFailureMsg = "validate failure, format is uncompleted!"
)

var DefaultExtensions = []string{"yml", "yaml"}

// FileHandle is a file or directory selected by the user.
type FileHandle = files.Source

// Notifier delivers user-visible messages (fire and forget).
type Notifier interface {
	Notify(message string)
}

// TransactionRunner wraps committing new file content in whatever
// undoable/atomic mechanism the host provides.
type TransactionRunner interface {
	RunWriteTransaction(fn func() error) error
}

type FormatterOpts struct {
	// Extensions (without leading dot) matched case-insensitively;
	// defaults to DefaultExtensions
	Extensions []string
	// DryRun computes results without writing files
	DryRun bool
}

// Result of formatting a single file.
type Result struct {
	Path      string
	Original  []byte
	Formatted []byte
	Err       error
}

func (r Result) Changed() bool {
	return r.Err == nil && !bytes.Equal(r.Original, r.Formatted)
}

type Formatter struct {
	ui       UI
	notifier Notifier
	txRunner TransactionRunner
	opts     FormatterOpts
}

func NewFormatter(ui UI, notifier Notifier, txRunner TransactionRunner, opts FormatterOpts) *Formatter {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	return &Formatter{ui, notifier, txRunner, opts}
}

// IsFormattable reports whether file can be selected for formatting:
// it is a directory or has one of the YAML extensions.
func (f *Formatter) IsFormattable(file FileHandle) bool {
	return file.IsDirectory() || f.isYAML(file)
}

// Format formats file, or every YAML file within a directory
// (sequentially, in directory-listing order). Errors are captured
// per file and never stop processing of other files.
func (f *Formatter) Format(file FileHandle) []Result {
	var results []Result
	f.format(file, &results)
	return results
}

func (f *Formatter) format(file FileHandle, results *[]Result) {
	if file.IsDirectory() {
		children, err := file.Children()
		if err != nil {
			result := Result{Path: file.Path(), Err: &IOError{Op: "Listing", Path: file.Path(), Err: err}}
			f.ui.Warnf("%s\n", result.Err)
			*results = append(*results, result)
			return
		}
		for _, child := range children {
			f.format(child, results)
		}
		return
	}

	if !f.isYAML(file) {
		f.ui.Debugf("skipping non-YAML file '%s'\n", file.Path())
		return
	}

	f.notifier.Notify(FormatMsgPrefix + file.Path())

	*results = append(*results, f.FormatFile(file))
}

// FormatFile formats a single file regardless of its extension.
func (f *Formatter) FormatFile(file FileHandle) Result {
	result := f.formatFile(file)
	if result.Err != nil {
		if errors.Is(result.Err, ErrValidationMismatch) {
			f.notifier.Notify(ValidationFailureMsg)
		}
		f.ui.Warnf("Formatting '%s': %s\n", result.Path, result.Err)
	}
	return result
}

func (f *Formatter) formatFile(file FileHandle) Result {
	result := Result{Path: file.Path()}

	data, err := file.Bytes()
	if err != nil {
		result.Err = &IOError{Op: "Reading", Path: file.Path(), Err: err}
		return result
	}

	result.Original = data

	doc, err := NewDocument(file.Path(), data)
	if err != nil {
		result.Err = err
		return result
	}

	canonical, err := CanonicalizeNamed(doc.Text(), doc.Path)
	if err != nil {
		result.Err = err
		return result
	}

	f.debugDroppedComments(doc, canonical)

	formatted, err := Reinsert(doc, canonical)
	if err != nil {
		result.Err = err
		return result
	}

	formattedBytes, err := doc.Encode(formatted)
	if err != nil {
		result.Err = err
		return result
	}

	result.Formatted = formattedBytes

	switch {
	case f.opts.DryRun:
		return result

	case !result.Changed():
		f.ui.Debugf("'%s' is already formatted\n", file.Path())
		return result
	}

	err = f.txRunner.RunWriteTransaction(func() error {
		return file.WriteBytes(formattedBytes)
	})
	if err != nil {
		result.Err = &IOError{Op: "Writing", Path: file.Path(), Err: err}
	}

	return result
}

func (f *Formatter) debugDroppedComments(doc *Document, canonical string) {
	lineCount := len(canonicalLines(canonical))
	for _, block := range BuildAnchorIndex(doc).Blocks() {
		if block.Anchor > lineCount {
			f.ui.Debugf("dropping %d comment line(s) at %s: no data line follows\n",
				len(block.Lines), block.Position.AsString())
		}
	}
}

func (f *Formatter) isYAML(file FileHandle) bool {
	ext := file.Extension()
	for _, allowedExt := range f.opts.Extensions {
		if strings.EqualFold(ext, strings.TrimPrefix(allowedExt, ".")) {
			return true
		}
	}
	return false
}
