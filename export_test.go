// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

// Probe exposes control block state to black-box tests. It keeps the block
// reachable after every handle to it has been released.
type Probe[T any] struct {
	b *block[T]
}

func ProbeShared[T any](s Shared[T]) Probe[T] { return Probe[T]{b: s.cb} }
func ProbeWeak[T any](w Weak[T]) Probe[T]     { return Probe[T]{b: w.cb} }

func (p Probe[T]) Disposed() bool { return p.b.disposed.done() }
func (p Probe[T]) Released() bool { return p.b.released.done() }
func (p Probe[T]) Fused() bool    { return p.b.kind == fused }

// Counts returns the strong count and the observable weak count.
func (p Probe[T]) Counts() (strong, weak int) {
	state := p.b.refs.load()
	return int(strongOf(state)), int(observedWeak(state))
}
