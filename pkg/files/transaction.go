// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
)

// DirectTransactions runs each write immediately. Atomicity of a single
// file write is provided by OutputFile.
type DirectTransactions struct{}

func (DirectTransactions) RunWriteTransaction(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("Write transaction panicked: %v", rec)
		}
	}()

	return fn()
}
