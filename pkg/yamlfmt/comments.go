// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"sort"
	"strings"

	"carvel.dev/yamlformat/pkg/filepos"
)

const commentPrefix = "#"

// CommentBlock is a group of comment lines that precede the same data line.
type CommentBlock struct {
	// Anchor is the 1-based number of the data line the block precedes.
	// Data lines are counted without blank and comment lines so that
	// the number matches the line number in canonical output.
	Anchor int
	// Lines are trimmed comment lines in source order
	Lines []string
	// Position of the first comment line in the original document
	Position *filepos.Position
}

func (b *CommentBlock) Text(lineEnding string) string {
	return strings.Join(b.Lines, lineEnding)
}

// AnchorIndex maps anchors to comment blocks.
type AnchorIndex map[int]*CommentBlock

// BuildAnchorIndex scans the original document for comment lines.
func BuildAnchorIndex(doc *Document) AnchorIndex {
	index := AnchorIndex{}
	dataLineIndex := 0

	for i, line := range doc.Lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}

		if !isCommentLine(trimmed) {
			dataLineIndex++
			continue
		}

		anchor := dataLineIndex + 1

		block, found := index[anchor]
		if !found {
			pos := filepos.NewPositionInFile(i+1, doc.Path)
			pos.SetLine(line)
			block = &CommentBlock{Anchor: anchor, Position: pos}
			index[anchor] = block
		}
		block.Lines = append(block.Lines, trimmed)
	}

	return index
}

// Blocks returns comment blocks ordered by anchor.
func (idx AnchorIndex) Blocks() []*CommentBlock {
	var result []*CommentBlock
	for _, block := range idx {
		result = append(result, block)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Anchor < result[j].Anchor })
	return result
}

// CommentLineCount is the total number of comment lines in the index.
func (idx AnchorIndex) CommentLineCount() int {
	var count int
	for _, block := range idx {
		count += len(block.Lines)
	}
	return count
}

func isCommentLine(trimmedLine string) bool {
	return strings.HasPrefix(trimmedLine, commentPrefix)
}
