// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Monostate is the zero-data alternative: all instances compare equal
// under every relational operator. A set whose remaining alternatives are
// not default-constructible lists Monostate first to stay
// default-constructible.
type Monostate struct{}

// AltMonostate declares a Monostate alternative with its always-equal
// equality and ordering hooks attached.
func AltMonostate() Alternative {
	return WithCompare(Alt[Monostate](), func(Monostate, Monostate) int { return 0 })
}
