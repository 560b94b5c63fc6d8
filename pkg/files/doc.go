// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides file-like Sources for the formatter: local files and
directories, in-memory files (including standard input), detection of text
encodings and all-or-nothing writes of reformatted content.

This keeps the formatting code free of the details of how data is read or
written.
*/
package files
