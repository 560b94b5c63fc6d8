// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlfmt reformats YAML documents into a canonical block style
(4-space indentation, no flow collections) while keeping full-line comments.

Reformatting happens in two passes over independently produced texts.
Canonicalize loads the document into a yamlmeta.Value and dumps it, which
drops every comment. Reinsert then scans the original document for comment
lines, anchors each block of comments to the data line that follows it and
splices the blocks back into the canonical text by line number. The result is
accepted only if it still loads to the same value as the canonical text.

Known limitations: comments after the last data line are dropped, inline
comments and blank lines are not kept, and since comments are placed by line
counting, documents whose canonical form has a different number of lines
than the original may get comments attached to a different line.

Formatter drives the process over files and directories through small
capability interfaces (FileHandle, Notifier, TransactionRunner) supplied by
the host.
*/
package yamlfmt
