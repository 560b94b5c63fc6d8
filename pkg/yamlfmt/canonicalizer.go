// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"carvel.dev/yamlformat/pkg/yamlmeta"
)

// Canonicalize loads text and dumps it with 4-space indentation and block
// style collections. Comments and blank lines are not kept.
func Canonicalize(text string) (string, error) {
	return CanonicalizeNamed(text, "")
}

// CanonicalizeNamed is like Canonicalize; name is used in error positions.
func CanonicalizeNamed(text, name string) (string, error) {
	val, err := load(text, name)
	if err != nil {
		return "", err
	}
	return yamlmeta.NewPrinter().PrintStr(val)
}

func load(text, name string) (yamlmeta.Value, error) {
	return yamlmeta.NewParser(yamlmeta.ParserOpts{AssociatedName: name}).ParseBytes([]byte(text))
}
