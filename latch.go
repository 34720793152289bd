// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

import "sync/atomic"

// latch is a one-shot flag. Exactly one caller of fire wins; later calls
// observe the latch as already fired.
//
// Control blocks use latches to keep dispose and release idempotent: the
// reference counts decide who should run them, the latch guarantees they
// run at most once even if a defect makes a count reach zero twice.
type latch struct {
	used atomic.Uint32
}

// fire reports whether this call is the first one.
func (l *latch) fire() bool {
	return l.used.CompareAndSwap(0, 1)
}

// done reports whether the latch has fired.
func (l *latch) done() bool {
	return l.used.Load() != 0
}
