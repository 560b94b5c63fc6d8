// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"math"
	"strconv"
)

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is implemented only by the types in this file.
type Value interface {
	Kind() Kind
}

type Null struct{}

type Bool bool

// Number holds every YAML int and float. Text is the canonical
// representation used when dumping; it does not take part in equality.
type Number struct {
	Float float64
	Text  string
}

// String holds YAML strings and other scalars that are not
// null, bool or numbers (eg timestamps). Tag is empty for plain
// strings and keeps the short tag otherwise (eg "!!timestamp").
type String struct {
	Value string
	Tag   string
}

type Sequence []Value

type Mapping []MapItem

type MapItem struct {
	Key   string
	Value Value

	// KeyTag is the short tag the key resolved to (eg "!!int" for `1: a`).
	// Empty means "!!str".
	KeyTag string
}

var _ []Value = []Value{Null{}, Bool(false), Number{}, String{}, Sequence{}, Mapping{}}

func (Null) Kind() Kind     { return KindNull }
func (Bool) Kind() Kind     { return KindBool }
func (Number) Kind() Kind   { return KindNumber }
func (String) Kind() Kind   { return KindString }
func (Sequence) Kind() Kind { return KindSequence }
func (Mapping) Kind() Kind  { return KindMapping }

func NewString(val string) String { return String{Value: val} }

func NewInt(val int64) Number {
	return Number{Float: float64(val), Text: strconv.FormatInt(val, 10)}
}

func NewFloat(val float64) Number {
	return Number{Float: val, Text: formatFloat(val)}
}

// Get returns value of the first item with given key.
func (m Mapping) Get(key string) (Value, bool) {
	for _, item := range m {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Find returns value of the item identified by both key text and key tag,
// so that "1" and 1 are different keys.
func (m Mapping) Find(key, keyTag string) (Value, bool) {
	idx := m.index(key, keyTag)
	if idx < 0 {
		return nil, false
	}
	return m[idx].Value, true
}

func (m Mapping) index(key, keyTag string) int {
	for i, item := range m {
		if item.Key == key && item.KeyTag == keyTag {
			return i
		}
	}
	return -1
}

func (m Mapping) Keys() []string {
	var keys []string
	for _, item := range m {
		keys = append(keys, item.Key)
	}
	return keys
}

func (n Number) text() string {
	if len(n.Text) > 0 {
		return n.Text
	}
	return formatFloat(n.Float)
}

func formatFloat(val float64) string {
	switch {
	case math.IsInf(val, 1):
		return ".inf"
	case math.IsInf(val, -1):
		return "-.inf"
	case math.IsNaN(val):
		return ".nan"
	}
	if val == math.Trunc(val) && math.Abs(val) < 1e15 {
		return strconv.FormatInt(int64(val), 10)
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}
