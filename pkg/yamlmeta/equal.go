// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"math"
)

// Equal reports structural equality of two values. Mapping key order is
// not significant; sequence order is. Numbers are compared by value.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch typedA := a.(type) {
	case Null:
		return true

	case Bool:
		return typedA == b.(Bool)

	case Number:
		typedB := b.(Number)
		if math.IsNaN(typedA.Float) && math.IsNaN(typedB.Float) {
			return true
		}
		return typedA.Float == typedB.Float

	case String:
		typedB := b.(String)
		return typedA.Value == typedB.Value && typedA.Tag == typedB.Tag

	case Sequence:
		typedB := b.(Sequence)
		if len(typedA) != len(typedB) {
			return false
		}
		for i := range typedA {
			if !Equal(typedA[i], typedB[i]) {
				return false
			}
		}
		return true

	case Mapping:
		typedB := b.(Mapping)
		if len(typedA) != len(typedB) {
			return false
		}
		for _, item := range typedA {
			otherVal, found := typedB.Find(item.Key, item.KeyTag)
			if !found || !Equal(item.Value, otherVal) {
				return false
			}
		}
		return true

	default:
		panic("Unexpected value kind in Equal")
	}
}
