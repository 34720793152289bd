// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

// Weak observes a value owned by [Shared] handles without keeping it alive.
//
// A weak handle contributes to the weak count of the control block, never to
// the strong count, so it may outlive the value it observes. The value is
// reached only through [Weak.Lock], which either produces a new owner or
// reports that the value is gone.
//
// Like Shared, Weak is a value type: use [Weak.Clone] and [Weak.Release] to
// manage references. The zero value is the empty handle.
type Weak[T any] struct {
	cb *block[T]
}

// Expired reports whether the observed value has been disposed, or whether
// w is empty. The answer is a snapshot; use [Weak.Lock] to act on the value.
func (w Weak[T]) Expired() bool {
	return w.cb == nil || w.cb.expired()
}

// IsNil reports whether w is the empty handle.
func (w Weak[T]) IsNil() bool { return w.cb == nil }

// UseCount returns a snapshot of the number of owners of the observed value.
func (w Weak[T]) UseCount() int {
	if w.cb == nil {
		return 0
	}
	return w.cb.useCount()
}

// Lock promotes w to a new owner of the observed value. It returns the empty
// handle if the value has already been disposed. A successful Lock always
// yields a live value: a strong count that has reached zero is never raised
// again.
func (w Weak[T]) Lock() Shared[T] {
	if w.cb == nil || !w.cb.tryAcquire() {
		return Shared[T]{}
	}
	return Shared[T]{ptr: w.cb.ptr, cb: w.cb}
}

// With runs use on the observed value while holding a temporary owner, and
// reports whether the value was still alive. The temporary owner is released
// even if use panics.
func (w Weak[T]) With(use func(*T)) bool {
	s := w.Lock()
	if s.IsNil() {
		return false
	}
	defer s.Release()
	use(s.ptr)
	return true
}

// Owns reports whether w observes the value owned by s.
func (w Weak[T]) Owns(s Shared[T]) bool { return w.cb != nil && w.cb == s.cb }

// Clone returns a new weak handle observing the same value.
func (w Weak[T]) Clone() Weak[T] {
	if w.cb != nil {
		w.cb.acquireWeak()
	}
	return w
}

// Move transfers the reference out of w, leaving w empty.
func (w *Weak[T]) Move() Weak[T] {
	m := *w
	*w = Weak[T]{}
	return m
}

// Release gives up the reference held by w and empties it. Releasing an
// empty handle does nothing.
func (w *Weak[T]) Release() {
	cb := w.cb
	*w = Weak[T]{}
	if cb != nil {
		cb.releaseWeak()
	}
}

// Assign makes w observe the same value as o, releasing what w held before.
func (w *Weak[T]) Assign(o Weak[T]) {
	if w.cb == o.cb {
		return
	}
	o = o.Clone()
	w.Release()
	*w = o
}

// Take moves the reference from o into w, releasing what w held before.
func (w *Weak[T]) Take(o *Weak[T]) {
	if w == o {
		return
	}
	m := o.Move()
	w.Release()
	*w = m
}

// Swap exchanges the contents of w and o.
func (w *Weak[T]) Swap(o *Weak[T]) {
	*w, *o = *o, *w
}
