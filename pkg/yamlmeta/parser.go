// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"carvel.dev/yamlformat/pkg/filepos"
	"gopkg.in/yaml.v3"
)

const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	intTag       = "!!int"
	floatTag     = "!!float"
	strTag       = "!!str"
	mergeTag     = "!!merge"
	timestampTag = "!!timestamp"
)

var (
	// eg "yaml: line 2: found character that cannot start any token"
	lineErrRegexp = regexp.MustCompile(`^(?P<prefix>yaml: line )(?P<num>\d+)(?P<suffix>: .+)$`)
)

// ParseError is returned when data is not a single well-formed YAML document.
type ParseError struct {
	Position *filepos.Position
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Position.IsKnown() {
		return fmt.Sprintf("Parsing YAML (%s): %s", e.Position.AsString(), e.Msg)
	}
	if len(e.Position.GetFile()) > 0 {
		return fmt.Sprintf("Parsing YAML (%s): %s", e.Position.GetFile(), e.Msg)
	}
	return fmt.Sprintf("Parsing YAML: %s", e.Msg)
}

type ParserOpts struct {
	// AssociatedName is used in error positions (typically a file path)
	AssociatedName string
}

type Parser struct {
	opts ParserOpts
}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts}
}

// ParseBytes loads exactly one YAML document. Empty input (or input
// containing only comments) is loaded as Null.
func (p *Parser) ParseBytes(data []byte) (Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []*yaml.Node

	for {
		var node yaml.Node

		err := dec.Decode(&node)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, p.newParseErr(err)
		}

		docs = append(docs, &node)
	}

	switch len(docs) {
	case 0:
		return Null{}, nil
	case 1:
		return p.convert(docs[0], map[*yaml.Node]bool{})
	default:
		return nil, &ParseError{
			Position: p.newPosition(docs[1].Line),
			Msg:      "Expected to find exactly one YAML document",
		}
	}
}

func (p *Parser) convert(node *yaml.Node, visiting map[*yaml.Node]bool) (Value, error) {
	switch node.Kind {
	case 0:
		return Null{}, nil

	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return p.convert(node.Content[0], visiting)

	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, p.newNodeErr(node, "Unknown anchor '%s' referenced", node.Value)
		}
		if visiting[node.Alias] {
			return nil, p.newNodeErr(node, "Anchor '%s' value contains itself", node.Value)
		}
		visiting[node.Alias] = true
		defer delete(visiting, node.Alias)
		return p.convert(node.Alias, visiting)

	case yaml.SequenceNode:
		result := Sequence{}
		for _, itemNode := range node.Content {
			item, err := p.convert(itemNode, visiting)
			if err != nil {
				return nil, err
			}
			result = append(result, item)
		}
		return result, nil

	case yaml.MappingNode:
		return p.convertMapping(node, visiting)

	case yaml.ScalarNode:
		return p.convertScalar(node)

	default:
		return nil, p.newNodeErr(node, "Unexpected YAML node kind %d", node.Kind)
	}
}

func (p *Parser) convertMapping(node *yaml.Node, visiting map[*yaml.Node]bool) (Value, error) {
	if len(node.Content)%2 != 0 {
		return nil, p.newNodeErr(node, "Expected mapping to contain key-value pairs")
	}

	var explicit Mapping
	var merged Mapping

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := p.resolveAlias(node.Content[i])
		valNode := node.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, p.newNodeErr(node.Content[i], "Expected mapping key to be a scalar, but was %s", p.kindDesc(keyNode))
		}

		if keyNode.ShortTag() == mergeTag {
			items, err := p.mergeItems(valNode, visiting)
			if err != nil {
				return nil, err
			}
			merged = append(merged, items...)
			continue
		}

		val, err := p.convert(valNode, visiting)
		if err != nil {
			return nil, err
		}

		item := MapItem{Key: keyNode.Value, Value: val}
		if tag := keyNode.ShortTag(); tag != strTag {
			item.KeyTag = tag
		}

		// repeated keys keep their first position but take the last value
		if idx := explicit.index(item.Key, item.KeyTag); idx >= 0 {
			explicit[idx].Value = item.Value
			continue
		}
		explicit = append(explicit, item)
	}

	result := explicit
	for _, item := range merged {
		// explicit keys and earlier merged keys take precedence
		if result.index(item.Key, item.KeyTag) < 0 {
			result = append(result, item)
		}
	}
	if result == nil {
		result = Mapping{}
	}
	return result, nil
}

func (p *Parser) mergeItems(node *yaml.Node, visiting map[*yaml.Node]bool) (Mapping, error) {
	val, err := p.convert(node, visiting)
	if err != nil {
		return nil, err
	}

	switch typedVal := val.(type) {
	case Mapping:
		return typedVal, nil

	case Sequence:
		var result Mapping
		for _, item := range typedVal {
			typedItem, ok := item.(Mapping)
			if !ok {
				return nil, p.newNodeErr(node, "Expected merge sequence to contain only mappings, but found %s", item.Kind())
			}
			result = append(result, typedItem...)
		}
		return result, nil

	default:
		return nil, p.newNodeErr(node, "Expected merge value to be a mapping or a sequence of mappings, but was %s", val.Kind())
	}
}

func (p *Parser) convertScalar(node *yaml.Node) (Value, error) {
	switch tag := node.ShortTag(); tag {
	case nullTag:
		return Null{}, nil

	case boolTag:
		var val bool
		if err := node.Decode(&val); err != nil {
			return nil, p.newNodeErr(node, "Decoding bool: %s", err)
		}
		return Bool(val), nil

	case intTag:
		var intVal int64
		if err := node.Decode(&intVal); err == nil {
			return NewInt(intVal), nil
		}
		var uintVal uint64
		if err := node.Decode(&uintVal); err == nil {
			return Number{Float: float64(uintVal), Text: strconv.FormatUint(uintVal, 10)}, nil
		}
		var floatVal float64
		if err := node.Decode(&floatVal); err != nil {
			return nil, p.newNodeErr(node, "Decoding int: %s", err)
		}
		return Number{Float: floatVal, Text: node.Value}, nil

	case floatTag:
		var val float64
		if err := node.Decode(&val); err != nil {
			return nil, p.newNodeErr(node, "Decoding float: %s", err)
		}
		return NewFloat(val), nil

	case strTag:
		return String{Value: node.Value}, nil

	default:
		return String{Value: node.Value, Tag: tag}, nil
	}
}

func (p *Parser) resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func (p *Parser) kindDesc(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return KindMapping.String()
	case yaml.SequenceNode:
		return KindSequence.String()
	default:
		return fmt.Sprintf("node kind %d", node.Kind)
	}
}

func (p *Parser) newNodeErr(node *yaml.Node, msg string, args ...interface{}) error {
	return &ParseError{Position: p.newPosition(node.Line), Msg: fmt.Sprintf(msg, args...)}
}

func (p *Parser) newParseErr(err error) error {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return &ParseError{Position: p.newPosition(0), Msg: strings.Join(typeErr.Errors, "; ")}
	}

	submatches := lineErrRegexp.FindAllStringSubmatch(err.Error(), -1)
	if len(submatches) != 1 || len(submatches[0]) != 4 {
		return &ParseError{Position: p.newPosition(0), Msg: strings.TrimPrefix(err.Error(), "yaml: ")}
	}

	lineNum, convErr := strconv.Atoi(submatches[0][2])
	if convErr != nil {
		return &ParseError{Position: p.newPosition(0), Msg: strings.TrimPrefix(err.Error(), "yaml: ")}
	}

	return &ParseError{Position: p.newPosition(lineNum), Msg: strings.TrimPrefix(submatches[0][3], ": ")}
}

func (p *Parser) newPosition(lineNum int) *filepos.Position {
	if lineNum <= 0 {
		return filepos.NewUnknownPositionInFile(p.opts.AssociatedName)
	}
	return filepos.NewPositionInFile(lineNum, p.opts.AssociatedName)
}
