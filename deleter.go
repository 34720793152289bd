// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

// Disposer is implemented by values that need explicit teardown when the
// last [Shared] handle owning them is released.
type Disposer interface {
	Dispose()
}

// Deleter tears down a value owned through a detached control block.
// It runs exactly once, when the strong count reaches zero.
type Deleter[T any] func(*T)

// DefaultDelete is the deleter used by [New]. It calls Dispose when *T
// implements [Disposer] and then zeroes the value so that whatever it
// references becomes unreachable.
func DefaultDelete[T any](p *T) {
	if d, ok := any(p).(Disposer); ok {
		d.Dispose()
	}
	var zero T
	*p = zero
}

// NoopDelete leaves the value untouched. Use it with [NewWithDeleter] for
// values whose lifetime is owned elsewhere.
func NoopDelete[T any](*T) {}

// DeleteSlice is a deleter for slice-valued handles. Elements implementing
// [Disposer] are disposed in order, then the slice is cleared and set to nil.
func DeleteSlice[E any](p *[]E) {
	s := *p
	for i := range s {
		if d, ok := any(&s[i]).(Disposer); ok {
			d.Dispose()
		}
	}
	clear(s)
	*p = nil
}
