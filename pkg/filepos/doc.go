// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
and line number within that source.

Positions are used when reporting parse errors and when describing where a
comment block was found in the original document. Position also keeps a copy
of the source line so that messages can quote it.

The zero-value of Position (created using NewUnknownPosition()) represents a
location that could not be determined.
*/
package filepos
