// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arc provides atomically reference-counted shared ownership of a
// value, with weak handles that observe the value without keeping it alive.
//
// The garbage collector decides when memory is reclaimed; arc decides when a
// value is torn down. Owners share one value through [Shared] handles, and
// the last owner to let go runs the value's disposal deterministically, on
// its own goroutine, exactly once. [Weak] handles can detect that teardown
// and are the escape hatch for breaking ownership cycles, which arc does not
// detect.
//
// # Ownership Model
//
// Every owned value has a control block holding two counts:
//
//   - strong: the number of live [Shared] handles
//   - weak: the number of live [Weak] handles
//
// When the strong count reaches zero the value is disposed. The block stays
// valid until the weak count reaches zero too, so weak handles can still ask
// whether the value is gone.
//
// Both counts live in one atomic word. Strong owners collectively hold one
// extra weak unit, which they give up only after disposal has finished;
// the block is released by the single decrement that takes the weak side
// to zero.
//
// # Construction
//
//   - [New]: take ownership of an existing *T (detached block, two allocations)
//   - [NewWithDeleter]: same, with a custom [Deleter]
//   - [Make]: allocate the value inside the control block (one allocation)
//   - [MakeFunc]: construct the value in place, with a fallible initializer
//
// Deleters:
//
//   - [DefaultDelete]: call [Disposer.Dispose] if implemented, then zero the value
//   - [NoopDelete]: leave externally-owned values untouched
//   - [DeleteSlice]: dispose each element of a slice-valued handle
//
// # Shared Handles
//
// [Shared] is a value type; plain assignment does not add an owner.
//
//   - [Shared.Clone]: add an owner
//   - [Shared.Move]: transfer ownership, leaving the source empty
//   - [Shared.Release]: give up ownership (the last one disposes)
//   - [Shared.Assign], [Shared.Take], [Shared.Swap]: copy, move and swap into a handle
//   - [Shared.Get], [Shared.IsNil]: access the value
//   - [Shared.UseCount], [Shared.WeakCount]: count snapshots
//   - [Shared.Equal], [Shared.SameOwner]: identity tests
//   - [Shared.Weak]: derive a weak handle
//
// Get on the empty handle returns nil; dereferencing it panics.
//
// # Weak Handles
//
//   - [Weak.Lock]: promote to a new owner, or the empty handle if the value is gone
//   - [Weak.With]: run a function on the value under a temporary owner
//   - [Weak.Expired]: snapshot of whether the value is gone
//   - [Weak.Clone], [Weak.Move], [Weak.Release], [Weak.Assign], [Weak.Take], [Weak.Swap]
//
// Promotion is a single compare-and-swap that only succeeds on a positive
// strong count. A promotion racing the last [Shared.Release] either wins and
// keeps the value alive, or fails; it never observes a disposed value.
//
// # Self Reference
//
// A value that embeds [SelfRef] can hand out shared handles to itself:
//
//	type Conn struct {
//		arc.SelfRef[Conn]
//		id int
//	}
//
//	func (c *Conn) Detach() arc.Shared[Conn] {
//		return c.SharedFromSelf()
//	}
//
//	c := arc.Make(Conn{id: 7})
//	d := c.Get().Detach() // another owner of the same Conn
//
// The slot is filled when the first shared handle is constructed over the
// value; before that [SelfRef.SharedFromSelf] returns the empty handle.
//
// # Defects
//
// Misuse that corrupts the counts (releasing an owner twice through copies
// made by plain assignment, cloning a handle whose value is gone, counter
// overflow) panics with a message prefixed "arc: ". Promotion failure is not
// a defect.
package arc
