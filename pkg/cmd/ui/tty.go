// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type TTY struct {
	debug  bool
	stdout io.Writer
	stderr io.Writer

	warnColor *color.Color
}

var _ UI = TTY{}

// NewTTY writes to process stdout/stderr. Warnings are highlighted
// unless color output is disabled (NO_COLOR or not a terminal).
func NewTTY(debug bool) TTY {
	var warnColor *color.Color
	if !color.NoColor {
		warnColor = color.New(color.FgYellow)
	}
	return TTY{debug, os.Stdout, os.Stderr, warnColor}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	if t.warnColor != nil {
		t.warnColor.Fprintf(t.stderr, str, args...)
		return
	}
	fmt.Fprintf(t.stderr, str, args...)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.stderr, str, args...)
	}
}

func (t TTY) Notify(message string) {
	fmt.Fprintln(t.stderr, message)
}

func (t TTY) DebugWriter() io.Writer {
	if t.debug {
		return t.stderr
	}
	return noopWriter{}
}

type noopWriter struct{}

var _ io.Writer = noopWriter{}

func (w noopWriter) Write(data []byte) (int, error) { return len(data), nil }

// NewCustomWriterTTY is used for testing whether TTY writes correct output
// to stdout/stderr. Output is never colored.
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{debug, stdout, stderr, nil}
}
