// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui routes command output, warnings and status notifications to the
user (typically, a tty device).
*/
package ui
