// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

// PlainMarshal dumps val with default printer settings.
func PlainMarshal(val Value) ([]byte, error) {
	return NewPrinter().PrintBytes(val)
}

// PlainUnmarshal loads a single document without an associated name.
func PlainUnmarshal(data []byte) (Value, error) {
	return NewParser(ParserOpts{}).ParseBytes(data)
}
