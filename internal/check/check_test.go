// Copyright 2020 Aleksandr Demakin. All rights reserved.

package check

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestThat(t *testing.T) {
	a := assert.New(t)
	a.NotPanics(func() {
		That(true, "never")
	})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if a.True(ok, "panic value must be an error") {
			a.True(errors.Is(err, ErrPrecondition))
			a.Equal("radix 1 < 2: precondition failed", err.Error())
			a.Contains(fmt.Sprintf("%+v", err), "check_test.go")
		}
	}()
	That(false, "radix %d < 2", 1)
}
