// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching on accessor failures.
var (
	// ErrWrongAlternative reports a typed access against a variant whose
	// live alternative differs from the requested one.
	ErrWrongAlternative = errors.New("variant: wrong alternative")
	// ErrValueless reports an access against a valueless variant.
	ErrValueless = errors.New("variant: valueless")
)

// ConfigError is a definition-time contract violation: duplicate
// alternatives, out-of-range index, unresolvable or ambiguous conversion,
// incomplete visitor. It is delivered by panic before any value is touched,
// never as a returned error.
type ConfigError struct {
	Op  string
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("variant: %s: %s", e.Op, e.Msg)
}

// panicConfig reports a static contract violation at the violating call site.
func panicConfig(op, format string, args ...any) {
	panic(&ConfigError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// AccessError reports a typed or indexed access against the wrong live
// alternative. Got is Npos when the variant was valueless; Want is Npos
// when no particular alternative was requested, as in visitation.
type AccessError struct {
	set  *Set
	Want int
	Got  int
}

func (e *AccessError) Error() string {
	if e.Got == Npos {
		if e.Want == Npos {
			return "variant: access: valueless"
		}
		return fmt.Sprintf("variant: access %s: valueless", e.set.altName(e.Want))
	}
	return fmt.Sprintf("variant: access %s: holds %s",
		e.set.altName(e.Want), e.set.altName(e.Got))
}

// Is matches ErrValueless for accesses against a valueless variant and
// ErrWrongAlternative otherwise.
func (e *AccessError) Is(target error) bool {
	if e.Got == Npos {
		return target == ErrValueless
	}
	return target == ErrWrongAlternative
}

// ConstructError reports a failed in-place construction during assignment
// or emplacement. The variant involved has been left valueless; further
// assignment or emplacement recovers it.
type ConstructError struct {
	Index int
	Err   error
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("variant: construct alternative %d: %v", e.Index, e.Err)
}

func (e *ConstructError) Unwrap() error { return e.Err }
