// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to yamlformat's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing
yamlformat).

For a list of commands run:

	$ yamlformat help

Most work happens in "fmt", which hands files to package yamlfmt.
*/
package cmd
