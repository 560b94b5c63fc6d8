// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlmeta loads a single YAML document into a comment-free value tree
(yamlmeta.Value) and dumps such a tree back to YAML.

A Value is one of Null, Bool, Number, String, Sequence or Mapping. Two trees
loaded from differently formatted (but equivalent) documents compare Equal
regardless of mapping key order.

Parsing and emitting are delegated to gopkg.in/yaml.v3; this package only
converts between yaml.Node trees and Values.
*/
package yamlmeta
