// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"fmt"
	"strings"

	"carvel.dev/yamlformat/pkg/yamlmeta"
)

// Reinsert splices comment blocks of the original document into canonical
// text. Each block is placed before the canonical line whose number equals
// the block's anchor, indented like that line. Blocks anchored past the
// last canonical line are dropped.
func Reinsert(doc *Document, canonical string) (string, error) {
	index := BuildAnchorIndex(doc)

	var buf strings.Builder
	w := newWriter(&buf, doc.LineEnding)

	for i, line := range canonicalLines(canonical) {
		if block, found := index[i+1]; found {
			indent := leadingWhitespace(line)
			for _, commentLine := range block.Lines {
				w.AddContent(writerChunk{Indent: indent, Content: commentLine})
			}
		}
		w.AddContent(writerChunk{Content: line})
	}

	result := buf.String()

	err := validate(doc.Path, canonical, result)
	if err != nil {
		return "", err
	}

	return result, nil
}

// validate requires candidate to load to the same value as canonical.
func validate(name, canonical, candidate string) error {
	canonicalVal, err := load(canonical, name)
	if err != nil {
		return err
	}

	candidateVal, err := load(candidate, name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidationMismatch, err)
	}

	if !yamlmeta.Equal(canonicalVal, candidateVal) {
		return ErrValidationMismatch
	}
	return nil
}

// canonicalLines splits dumped YAML (which always uses "\n").
func canonicalLines(canonical string) []string {
	if len(canonical) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(canonical, "\n"), "\n")
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
