// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc

import "sync/atomic"

// refCounts packs the strong and weak counts of a control block into a
// single word so that both can be observed and decided on atomically:
//
//	[32-bit strong count]:[32-bit weak count]
//
// The stored weak count includes one unit held collectively by the strong
// owners for as long as the strong count is positive. The block is released
// by whichever decrement takes the stored weak count to zero, which can only
// happen after the strong side has dropped its unit, i.e. after dispose.
type refCounts struct {
	state atomic.Uint64
}

const (
	countBits = 32
	countMask = 1<<countBits - 1
	maxCount  = countMask

	strongOne = uint64(1) << countBits
	weakOne   = uint64(1)

	// initialState is strong 1 plus the implicit weak unit.
	initialState = strongOne | weakOne
)

func strongOf(state uint64) uint32 { return uint32(state >> countBits) }
func weakOf(state uint64) uint32   { return uint32(state & countMask) }

// observedWeak removes the implicit unit from a stored weak count.
func observedWeak(state uint64) uint32 {
	w := weakOf(state)
	if strongOf(state) > 0 {
		w--
	}
	return w
}

// init sets the counts of a block that has not been published yet.
func (c *refCounts) init() { c.state.Store(initialState) }

func (c *refCounts) load() uint64 { return c.state.Load() }

// addStrong increments the strong count unless it is zero or saturated,
// and returns the count it found. The load and the increment form one
// compare-and-swap, so a count that has reached zero is never raised again
// and a saturated count never wraps.
func (c *refCounts) addStrong() (prev uint32) {
	for {
		old := c.state.Load()
		prev = strongOf(old)
		if prev == 0 || prev == maxCount {
			return prev
		}
		if c.state.CompareAndSwap(old, old+strongOne) {
			return prev
		}
	}
}

// subStrong decrements the strong count and returns the new state.
func (c *refCounts) subStrong() uint64 { return c.state.Add(^(strongOne - 1)) }

// addWeak increments the stored weak count unless it is zero or saturated,
// and returns the count it found. A saturated weak count never carries into
// the strong half.
func (c *refCounts) addWeak() (prev uint32) {
	for {
		old := c.state.Load()
		prev = weakOf(old)
		if prev == 0 || prev == maxCount {
			return prev
		}
		if c.state.CompareAndSwap(old, old+weakOne) {
			return prev
		}
	}
}

// subWeak decrements the stored weak count and returns the new state.
func (c *refCounts) subWeak() uint64 { return c.state.Add(^(weakOne - 1)) }
