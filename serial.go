// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing alternative-set identifier.
// Each call to NewSet assigns the next serial value. Two sets over the
// same type list remain distinct; every same-set check compares serials.
type Serial = uint32

// counter is the global monotonic counter for set serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
