// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

import "sync/atomic"

// SelfRef lets a value mint shared handles to itself from its own methods.
// Embed it by value in T:
//
//	type Session struct {
//		arc.SelfRef[Session]
//		// ...
//	}
//
// The first shared handle constructed over the value fills the slot with a
// weak reference to its control block. Until then, including inside a
// [MakeFunc] initializer, [SelfRef.SharedFromSelf] returns an empty handle.
//
// Copying an owned value copies its slot too. The copy's slot still names
// the original's owner until a shared handle is constructed over the copy,
// which points the slot at the new owner.
type SelfRef[T any] struct {
	owner atomic.Pointer[block[T]]
}

// SharedFromSelf returns a new shared handle to the enclosing value, or an
// empty handle if the value is not (or no longer) owned by a shared handle.
func (s *SelfRef[T]) SharedFromSelf() Shared[T] {
	b := s.owner.Load()
	if b == nil || !b.tryAcquire() {
		return Shared[T]{}
	}
	return Shared[T]{ptr: b.ptr, cb: b}
}

// WeakFromSelf returns a new weak handle to the enclosing value, or an empty
// handle if the value is not (or no longer) owned by a shared handle.
func (s *SelfRef[T]) WeakFromSelf() Weak[T] {
	sh := s.SharedFromSelf()
	if sh.IsNil() {
		return Weak[T]{}
	}
	w := sh.Weak()
	sh.Release()
	return w
}

func (s *SelfRef[T]) selfRef() *SelfRef[T] { return s }

// selfReferencer is satisfied by *T when T embeds SelfRef[T].
type selfReferencer[T any] interface {
	selfRef() *SelfRef[T]
}

// installSelf points the value's self slot at b. A slot that names a live
// owner of this same value is kept, so the first owner wins. A slot copied
// from another value, or left behind by an expired owner, is overwritten;
// it holds no weak reference on this value's behalf and gives none back.
func installSelf[T any](p *T, b *block[T]) {
	sr, ok := any(p).(selfReferencer[T])
	if !ok {
		return
	}
	s := sr.selfRef()
	b.acquireWeak()
	for {
		old := s.owner.Load()
		if old != nil && old.owns(p) {
			b.releaseWeak()
			return
		}
		if s.owner.CompareAndSwap(old, b) {
			return
		}
	}
}

// detachSelf empties the value's self slot if it refers to b and gives up
// the weak reference it held. It runs at the start of dispose, while the
// strong side still holds its weak unit, so b is never released from here.
func detachSelf[T any](p *T, b *block[T]) {
	sr, ok := any(p).(selfReferencer[T])
	if !ok {
		return
	}
	if sr.selfRef().owner.CompareAndSwap(b, nil) {
		b.releaseWeak()
	}
}
