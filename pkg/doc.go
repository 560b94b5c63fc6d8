// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
yamlformat.

Packages are layered; each depends on the others only to the degree required.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

yamlformat is built into a single command-line tool:

	./cmd/yamlformat

# Commands

	(1) => pkg/cmd => (5)
	(1) => pkg/cmd/ui => (0)
	(1) => pkg/config => (1)
	(1) => pkg/version => (0)

# Formatting

The heart of yamlformat: canonical dump of a document followed by
reinsertion of its full-line comments, gated by a structural comparison.

	(1) => pkg/yamlfmt => (3)

# YAML Structures

yamlformat delegates parsing and emitting YAML to the de facto standard YAML
library (https://github.com/go-yaml/yaml/tree/v3) and converts its nodes into
a small closed set of values (yamlmeta.Value) that can be compared
structurally.

	(1) => pkg/yamlmeta => (1)

# Utilities

	(2) => pkg/files => (0)
	(2) => pkg/filepos => (0)
	(1) => pkg/spell => (0)

# Dependencies

	pkg/cmd:
	- pkg/cmd/ui
	- pkg/config
	- pkg/files
	- pkg/version
	- pkg/yamlfmt
	pkg/config:
	- pkg/spell
	pkg/yamlfmt:
	- pkg/files
	- pkg/filepos
	- pkg/yamlmeta
	pkg/yamlmeta:
	- pkg/filepos
*/
package pkg
