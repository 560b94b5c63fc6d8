// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"testing"

	"carvel.dev/yamlformat/pkg/files"
	"carvel.dev/yamlformat/pkg/yamlfmt"
	"github.com/stretchr/testify/require"
)

func TestDetectLineEnding(t *testing.T) {
	require.Equal(t, "\n", yamlfmt.DetectLineEnding("a: 1"))
	require.Equal(t, "\n", yamlfmt.DetectLineEnding("a: 1\nb: 2\r\n"))
	require.Equal(t, "\r\n", yamlfmt.DetectLineEnding("a: 1\r\nb: 2\n"))
	require.Equal(t, "\r", yamlfmt.DetectLineEnding("a: 1\rb: 2\r"))
}

func TestNewDocumentLines(t *testing.T) {
	doc := yamlfmt.NewDocumentFromText("a.yml", "a: 1\r\n\r\n# c\r\nb: 2", files.EncodingUTF8)
	require.Equal(t, []string{"a: 1", "", "# c", "b: 2"}, doc.Lines)
	require.Equal(t, "\r\n", doc.LineEnding)

	doc = yamlfmt.NewDocumentFromText("a.yml", "a: 1\nb: 2\n", files.EncodingUTF8)
	require.Equal(t, []string{"a: 1", "b: 2"}, doc.Lines)

	doc = yamlfmt.NewDocumentFromText("a.yml", "", files.EncodingUTF8)
	require.Empty(t, doc.Lines)
	require.Equal(t, "\n", doc.LineEnding)
}

func TestNewDocumentDecodesBOM(t *testing.T) {
	doc, err := yamlfmt.NewDocument("a.yml", []byte("\xEF\xBB\xBF# c\na: 1\n"))
	require.NoError(t, err)
	require.Equal(t, files.EncodingUTF8BOM, doc.Encoding)
	require.Equal(t, "# c\na: 1\n", doc.Text())

	bs, err := doc.Encode("a: 2\n")
	require.NoError(t, err)
	require.Equal(t, []byte("\xEF\xBB\xBFa: 2\n"), bs)
}
