// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc_test

import (
	"testing"

	"code.hybscloud.com/arc"
	"github.com/stretchr/testify/assert"
)

type payload struct{ a, b, c int64 }

// Package-level sinks force handles onto the heap as real callers would.
var (
	sinkShared arc.Shared[payload]
	sinkWeak   arc.Weak[payload]
)

func TestAllocationsMake(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		sinkShared = arc.Make(payload{a: 1})
		sinkShared.Release()
	})
	assert.Equal(t, 1.0, allocs, "fused construction allocates value and block together")
}

func TestAllocationsNew(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		sinkShared = arc.New(&payload{a: 1})
		sinkShared.Release()
	})
	assert.Equal(t, 2.0, allocs, "detached construction allocates value and block separately")
}

func TestAllocationsHandleOperations(t *testing.T) {
	s := arc.Make(payload{})
	defer s.Release()

	allocs := testing.AllocsPerRun(100, func() {
		c := s.Clone()
		sinkWeak = c.Weak()
		l := sinkWeak.Lock()
		l.Release()
		sinkWeak.Release()
		c.Release()
	})
	assert.Zero(t, allocs, "handle operations touch counts only")
}
