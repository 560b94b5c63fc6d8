// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

type UI interface {
	Debugf(string, ...interface{})
	Warnf(string, ...interface{})
}
