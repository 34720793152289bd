// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

import (
	"fmt"
	"unsafe"
)

// blockKind tags the two control block layouts.
// Dispatch is a closed switch over the tag; there is no open interface.
type blockKind uint8

const (
	// detached: the value was allocated independently of the block.
	detached blockKind = iota
	// fused: the value lives inline in a fusedBlock.
	fused
)

// block is the control block shared by every handle to one owned value.
//
// The counts are the only state mutated after publication. ptr and deleter
// are written at construction and cleared by dispose and release, which run
// only once the strong count has reached zero and no handle can read them.
// home is the owned value's address and never changes.
type block[T any] struct {
	refs     refCounts
	kind     blockKind
	disposed latch
	released latch
	home     uintptr
	ptr      *T
	deleter  Deleter[T]
}

// fusedBlock embeds the value in the same allocation as its control block.
// The embedded header's ptr points at value.
type fusedBlock[T any] struct {
	block[T]
	value T
}

func newDetachedBlock[T any](p *T, d Deleter[T]) *block[T] {
	b := &block[T]{kind: detached, home: addrOf(p), ptr: p, deleter: d}
	b.refs.init()
	return b
}

func newFusedBlock[T any]() *fusedBlock[T] {
	fb := &fusedBlock[T]{}
	fb.kind = fused
	fb.ptr = &fb.value
	fb.home = addrOf(fb.ptr)
	fb.refs.init()
	return fb
}

// acquire adds a strong reference on behalf of a live shared handle.
func (b *block[T]) acquire() {
	switch b.refs.addStrong() {
	case 0:
		panic(fmt.Sprintf("arc: acquiring released value of type %s", b.typeName()))
	case maxCount:
		panic(fmt.Sprintf("arc: strong count overflow of type %s", b.typeName()))
	}
}

// tryAcquire adds a strong reference only while the value is alive.
func (b *block[T]) tryAcquire() bool {
	switch b.refs.addStrong() {
	case 0:
		return false
	case maxCount:
		panic(fmt.Sprintf("arc: strong count overflow of type %s", b.typeName()))
	}
	return true
}

// acquireWeak adds a weak reference on behalf of a live handle.
func (b *block[T]) acquireWeak() {
	switch b.refs.addWeak() {
	case 0:
		panic(fmt.Sprintf("arc: acquiring weak reference to released block of type %s", b.typeName()))
	case maxCount:
		panic(fmt.Sprintf("arc: weak count overflow of type %s", b.typeName()))
	}
}

// releaseStrong drops one strong reference. The caller that takes the strong
// count to zero disposes the value and then gives up the weak unit held by
// the strong side, releasing the block if no weak handle remains.
func (b *block[T]) releaseStrong() {
	state := b.refs.subStrong()
	switch strongOf(state) {
	case 0:
	case maxCount:
		panic(fmt.Sprintf("arc: releasing non-positive strong count of type %s", b.typeName()))
	default:
		return
	}
	b.dispose()
	b.releaseWeak()
}

// releaseWeak drops one weak reference and releases the block when it was
// the last reference of any kind.
func (b *block[T]) releaseWeak() {
	state := b.refs.subWeak()
	switch weakOf(state) {
	case 0:
		b.release()
	case maxCount:
		panic(fmt.Sprintf("arc: releasing non-positive weak count of type %s", b.typeName()))
	}
}

// dispose tears down the owned value without releasing the block.
func (b *block[T]) dispose() {
	if !b.disposed.fire() {
		return
	}
	p := b.ptr
	detachSelf(p, b)
	switch b.kind {
	case detached:
		if b.deleter != nil {
			b.deleter(p)
		} else {
			DefaultDelete(p)
		}
		b.ptr = nil
	case fused:
		// In place: the storage belongs to the block and outlives the value.
		DefaultDelete(p)
	}
}

// release drops the block's remaining references. The memory itself is
// reclaimed by the garbage collector once no handle points at the block.
func (b *block[T]) release() {
	if !b.released.fire() {
		return
	}
	b.deleter = nil
	b.ptr = nil
}

// addrOf identifies a value by address without keeping it reachable.
func addrOf[T any](p *T) uintptr { return uintptr(unsafe.Pointer(p)) }

// owns reports whether b still owns the value at p.
func (b *block[T]) owns(p *T) bool {
	return b.home == addrOf(p) && !b.expired()
}

func (b *block[T]) typeName() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}

func (b *block[T]) useCount() int {
	return int(strongOf(b.refs.load()))
}

func (b *block[T]) weakCount() int {
	return int(observedWeak(b.refs.load()))
}

func (b *block[T]) expired() bool {
	return strongOf(b.refs.load()) == 0
}
