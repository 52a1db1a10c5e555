// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package check asserts preconditions whose violation means the engine
// was instantiated outside its design assumptions.
package check

import (
	"github.com/pkg/errors"
)

// ErrPrecondition is the cause of every panic raised by That.
var ErrPrecondition = errors.New("precondition failed")

// That panics if cond is false. The panic value is an error wrapping
// ErrPrecondition; formatting it with %+v prints the call stack.
func That(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Wrapf(ErrPrecondition, format, args...))
	}
}
