// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"strings"

	"carvel.dev/yamlformat/pkg/files"
)

const (
	LineEndingLF   = "\n"
	LineEndingCRLF = "\r\n"
	LineEndingCR   = "\r"
)

// Document is the decoded content of one YAML file.
type Document struct {
	Path       string
	Lines      []string
	LineEnding string
	Encoding   files.Encoding

	text string
}

func NewDocument(path string, data []byte) (*Document, error) {
	encoding := files.DetectEncoding(data)

	text, err := encoding.Decode(data)
	if err != nil {
		return nil, &IOError{Op: "Decoding", Path: path, Err: err}
	}

	return NewDocumentFromText(path, text, encoding), nil
}

func NewDocumentFromText(path, text string, encoding files.Encoding) *Document {
	return &Document{
		Path:       path,
		Lines:      splitLines(text),
		LineEnding: DetectLineEnding(text),
		Encoding:   encoding,
		text:       text,
	}
}

func (d *Document) Text() string { return d.text }

// Encode converts text into bytes using document's encoding.
func (d *Document) Encode(text string) ([]byte, error) {
	bs, err := d.Encoding.Encode(text)
	if err != nil {
		return nil, &IOError{Op: "Encoding", Path: d.Path, Err: err}
	}
	return bs, nil
}

// DetectLineEnding returns the first line break found in text
// (LineEndingLF if there is none).
func DetectLineEnding(text string) string {
	idx := strings.IndexAny(text, "\r\n")
	switch {
	case idx == -1:
		return LineEndingLF
	case text[idx] == '\n':
		return LineEndingLF
	case strings.HasPrefix(text[idx:], LineEndingCRLF):
		return LineEndingCRLF
	default:
		return LineEndingCR
	}
}

// splitLines treats "\r\n", "\n" and "\r" as line breaks.
// A trailing line break does not start an extra empty line.
func splitLines(text string) []string {
	var lines []string
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
