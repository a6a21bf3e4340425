// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/variant"
)

// tracker is a payload whose Dispose invocations are counted, making
// teardown observable across assignment and emplacement paths.
type tracker struct {
	label     string
	disposals *int
}

func (t *tracker) Dispose() { *t.disposals++ }

// quota is a numeric payload whose constructor rejects negative values,
// exercising the failed-construction-to-valueless path.
type quota int

var errQuota = errors.New("negative quota")

// altQuota declares quota with a failable factory. Zero arguments yield
// an empty quota; a numeric argument below zero fails construction.
func altQuota() variant.Alternative {
	return variant.AltInit(func(args ...any) (quota, error) {
		if len(args) == 0 {
			return 0, nil
		}
		var n int
		switch x := args[0].(type) {
		case int:
			n = x
		case quota:
			n = int(x)
		default:
			return 0, errors.New("quota wants an int")
		}
		if n < 0 {
			return 0, errQuota
		}
		return quota(n), nil
	})
}

// noZero is a payload with no valid zero state, declared Required in sets.
type noZero struct {
	token string
}

// intStringSet is the canonical {int, string} set used across tests.
func intStringSet() *variant.Set {
	return variant.NewSet(variant.AltOrdered[int](), variant.AltOrdered[string]())
}

// wantConfigPanic asserts fn panics with a ConfigError.
func wantConfigPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected ConfigError panic, got none")
		}
		if _, ok := r.(*variant.ConfigError); !ok {
			t.Fatalf("panic %v (%T) is not a ConfigError", r, r)
		}
	}()
	fn()
}
