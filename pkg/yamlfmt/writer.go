// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"fmt"
	"io"
)

// writer emits whole lines terminated with the document's line ending.
type writer struct {
	writer     io.Writer
	lineEnding string
}

type writerChunk struct {
	Indent  string
	Content string
}

func newWriter(w io.Writer, lineEnding string) *writer {
	return &writer{writer: w, lineEnding: lineEnding}
}

func (w *writer) AddContent(chunk writerChunk) {
	fmt.Fprintf(w.writer, "%s%s%s", chunk.Indent, chunk.Content, w.lineEnding)
}
