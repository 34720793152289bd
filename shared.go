// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

// Shared is an owning reference to a value of type T.
//
// Every live Shared contributes one unit to the strong count of its control
// block. When the last one is released the value is disposed; the block
// itself lives on until the last [Weak] handle is released as well.
//
// Shared is a small value type. Plain assignment copies the pointers but
// not the ownership: use [Shared.Clone] to add an owner, [Shared.Move] to
// transfer one, and [Shared.Release] exactly once per owner. The zero value
// is the empty handle.
type Shared[T any] struct {
	ptr *T
	cb  *block[T]
}

// New takes ownership of p using a detached control block and the
// [DefaultDelete] deleter. New(nil) returns the empty handle.
//
// If *T embeds [SelfRef] and is not yet owned, its self slot is installed.
func New[T any](p *T) Shared[T] {
	return NewWithDeleter(p, nil)
}

// NewWithDeleter is like [New] but disposes of p with d when the last owner
// is released. A nil d selects [DefaultDelete]. d is never called for a nil p.
func NewWithDeleter[T any](p *T, d Deleter[T]) Shared[T] {
	if p == nil {
		return Shared[T]{}
	}
	b := newDetachedBlock(p, d)
	installSelf(p, b)
	return Shared[T]{ptr: p, cb: b}
}

// Make allocates the control block and a copy of v in a single allocation.
func Make[T any](v T) Shared[T] {
	fb := newFusedBlock[T]()
	fb.value = v
	installSelf(fb.ptr, &fb.block)
	return Shared[T]{ptr: fb.ptr, cb: &fb.block}
}

// MakeFunc is like [Make] but constructs the value in place by calling init
// with a pointer to zeroed inline storage. If init fails its error is
// returned unchanged together with the empty handle; the partially
// constructed value is not disposed.
//
// The value is not owned while init runs, so [SelfRef.SharedFromSelf]
// called from init returns an empty handle.
func MakeFunc[T any](init func(*T) error) (Shared[T], error) {
	fb := newFusedBlock[T]()
	if err := init(fb.ptr); err != nil {
		return Shared[T]{}, err
	}
	installSelf(fb.ptr, &fb.block)
	return Shared[T]{ptr: fb.ptr, cb: &fb.block}, nil
}

// Get returns the owned value, or nil for the empty handle.
func (s Shared[T]) Get() *T { return s.ptr }

// IsNil reports whether s is the empty handle.
func (s Shared[T]) IsNil() bool { return s.ptr == nil }

// UseCount returns a snapshot of the number of owners, 0 for the empty
// handle. The count may change as soon as it has been read.
func (s Shared[T]) UseCount() int {
	if s.cb == nil {
		return 0
	}
	return s.cb.useCount()
}

// WeakCount returns a snapshot of the number of weak handles observing the
// value, 0 for the empty handle.
func (s Shared[T]) WeakCount() int {
	if s.cb == nil {
		return 0
	}
	return s.cb.weakCount()
}

// Equal reports whether s and o refer to the same value address.
func (s Shared[T]) Equal(o Shared[T]) bool { return s.ptr == o.ptr }

// SameOwner reports whether s and o share a control block.
func (s Shared[T]) SameOwner(o Shared[T]) bool { return s.cb == o.cb }

// Clone returns a new owner of the same value.
func (s Shared[T]) Clone() Shared[T] {
	if s.cb != nil {
		s.cb.acquire()
	}
	return s
}

// Weak returns a weak handle observing the value owned by s.
func (s Shared[T]) Weak() Weak[T] {
	if s.cb == nil {
		return Weak[T]{}
	}
	s.cb.acquireWeak()
	return Weak[T]{cb: s.cb}
}

// Move transfers ownership out of s, leaving s empty.
func (s *Shared[T]) Move() Shared[T] {
	m := *s
	*s = Shared[T]{}
	return m
}

// Release gives up the ownership held by s and empties it. Releasing the
// last owner disposes the value. Releasing an empty handle does nothing.
func (s *Shared[T]) Release() {
	cb := s.cb
	*s = Shared[T]{}
	if cb != nil {
		cb.releaseStrong()
	}
}

// Assign makes s another owner of o's value, releasing what s held before.
func (s *Shared[T]) Assign(o Shared[T]) {
	if s.cb == o.cb {
		s.ptr = o.ptr
		return
	}
	o = o.Clone()
	s.Release()
	*s = o
}

// Take moves ownership from o into s, releasing what s held before.
func (s *Shared[T]) Take(o *Shared[T]) {
	if s == o {
		return
	}
	m := o.Move()
	s.Release()
	*s = m
}

// Swap exchanges the contents of s and o.
func (s *Shared[T]) Swap(o *Shared[T]) {
	*s, *o = *o, *s
}
