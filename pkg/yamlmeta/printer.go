// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultIndent = 4

type PrinterOpts struct {
	// Indent defaults to DefaultIndent
	Indent int
}

// Printer dumps Values using block style for every non-empty collection.
// Each nesting level (including collections nested in sequence items)
// is indented by exactly Indent spaces relative to its parent:
//
//	items:
//	    -   name: x
//	        ports:
//	            - 80
//
// Only scalars are rendered by the YAML library.
type Printer struct {
	opts PrinterOpts
}

func NewPrinter() *Printer {
	return &Printer{PrinterOpts{Indent: DefaultIndent}}
}

func NewPrinterWithOpts(opts PrinterOpts) *Printer {
	if opts.Indent == 0 {
		opts.Indent = DefaultIndent
	}
	return &Printer{opts}
}

func (p *Printer) PrintBytes(val Value) ([]byte, error) {
	if p.opts.Indent < 2 || p.opts.Indent > 9 {
		return nil, fmt.Errorf("Expected indent to be between 2 and 9, but was %d", p.opts.Indent)
	}

	lines, err := p.lines(val)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

func (p *Printer) PrintStr(val Value) (string, error) {
	bs, err := p.PrintBytes(val)
	return string(bs), err
}

// lines renders val as a block node starting at column 0
func (p *Printer) lines(val Value) ([]string, error) {
	switch typedVal := val.(type) {
	case Mapping:
		if len(typedVal) == 0 {
			return []string{"{}"}, nil
		}
		return p.mappingLines(typedVal)

	case Sequence:
		if len(typedVal) == 0 {
			return []string{"[]"}, nil
		}
		return p.sequenceLines(typedVal)

	default:
		node, err := p.scalarNode(val)
		if err != nil {
			return nil, err
		}
		return p.renderScalar(node)
	}
}

func (p *Printer) mappingLines(m Mapping) ([]string, error) {
	var result []string

	for _, item := range m {
		key, err := p.renderKey(item)
		if err != nil {
			return nil, err
		}

		valLines, err := p.lines(item.Value)
		if err != nil {
			return nil, err
		}

		if isBlockCollection(item.Value) {
			result = append(result, key+":")
			result = append(result, p.indentLines(valLines, p.spaces())...)
			continue
		}

		// scalar continuation lines (block scalars) are already
		// indented relative to the key column
		result = append(result, key+": "+valLines[0])
		result = append(result, valLines[1:]...)
	}

	return result, nil
}

func (p *Printer) sequenceLines(seq Sequence) ([]string, error) {
	var result []string

	for _, item := range seq {
		itemLines, err := p.lines(item)
		if err != nil {
			return nil, err
		}

		if isBlockCollection(item) {
			// pad the dash so that item contents start one level deeper
			result = append(result, "-"+p.spaces()[1:]+itemLines[0])
			result = append(result, p.indentLines(itemLines[1:], p.spaces())...)
			continue
		}

		result = append(result, "- "+itemLines[0])
		result = append(result, itemLines[1:]...)
	}

	return result, nil
}

func (p *Printer) renderKey(item MapItem) (string, error) {
	tag := strTag
	if len(item.KeyTag) > 0 {
		tag = item.KeyTag
	}

	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: item.Key}
	if hasLineBreak(item.Key) {
		node.Style = yaml.DoubleQuotedStyle
	}

	lines, err := p.renderScalar(node)
	if err != nil {
		return "", err
	}

	if len(lines) != 1 {
		node.Style = yaml.DoubleQuotedStyle
		lines, err = p.renderScalar(node)
		if err != nil {
			return "", err
		}
	}

	return lines[0], nil
}

func (p *Printer) scalarNode(val Value) (*yaml.Node, error) {
	switch typedVal := val.(type) {
	case nil, Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}, nil

	case Bool:
		str := "false"
		if typedVal {
			str = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: boolTag, Value: str}, nil

	case Number:
		// untagged so that the emitter does not quote it
		return &yaml.Node{Kind: yaml.ScalarNode, Value: typedVal.text()}, nil

	case String:
		tag := strTag
		if len(typedVal.Tag) > 0 {
			tag = typedVal.Tag
		}
		node := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: typedVal.Value}
		// literal style only represents "\n" line breaks faithfully
		if strings.ContainsAny(typedVal.Value, "\r\u0085\u2028\u2029") {
			node.Style = yaml.DoubleQuotedStyle
		}
		return node, nil

	default:
		return nil, fmt.Errorf("Unexpected value type %T", val)
	}
}

// renderScalar emits node as a standalone document. Continuation lines
// of block scalars come out indented by one level.
func (p *Printer) renderScalar(node *yaml.Node) ([]string, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(p.opts.Indent)

	err := enc.Encode(node)
	if err != nil {
		return nil, fmt.Errorf("Encoding YAML: %s", err)
	}

	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("Encoding YAML: %s", err)
	}

	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}

func (p *Printer) indentLines(lines []string, prefix string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			result = append(result, line)
		} else {
			result = append(result, prefix+line)
		}
	}
	return result
}

func (p *Printer) spaces() string { return strings.Repeat(" ", p.opts.Indent) }

func isBlockCollection(val Value) bool {
	switch typedVal := val.(type) {
	case Mapping:
		return len(typedVal) > 0
	case Sequence:
		return len(typedVal) > 0
	default:
		return false
	}
}

func hasLineBreak(str string) bool {
	return strings.ContainsAny(str, "\n\r\u0085\u2028\u2029")
}
