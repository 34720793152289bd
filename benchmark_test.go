// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arc_test

import (
	"testing"

	"code.hybscloud.com/arc"
)

// BenchmarkMake measures fused construction and teardown.
func BenchmarkMake(b *testing.B) {
	for b.Loop() {
		sinkShared = arc.Make(payload{a: 1})
		sinkShared.Release()
	}
}

// BenchmarkNew measures detached construction and teardown.
func BenchmarkNew(b *testing.B) {
	for b.Loop() {
		sinkShared = arc.New(&payload{a: 1})
		sinkShared.Release()
	}
}

// BenchmarkCloneRelease measures one strong increment/decrement pair.
func BenchmarkCloneRelease(b *testing.B) {
	s := arc.Make(payload{})
	defer s.Release()
	for b.Loop() {
		c := s.Clone()
		c.Release()
	}
}

// BenchmarkWeakLock measures promotion of a live value.
func BenchmarkWeakLock(b *testing.B) {
	s := arc.Make(payload{})
	w := s.Weak()
	defer s.Release()
	defer w.Release()
	for b.Loop() {
		l := w.Lock()
		l.Release()
	}
}

// BenchmarkWeakLockExpired measures failed promotion.
func BenchmarkWeakLockExpired(b *testing.B) {
	s := arc.Make(payload{})
	w := s.Weak()
	s.Release()
	defer w.Release()
	for b.Loop() {
		_ = w.Lock()
	}
}

// BenchmarkCloneReleaseParallel measures contended counting on one block.
func BenchmarkCloneReleaseParallel(b *testing.B) {
	s := arc.Make(payload{})
	defer s.Release()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c := s.Clone()
			c.Release()
		}
	})
}

// BenchmarkWeakLockParallel measures contended promotion on one block.
func BenchmarkWeakLockParallel(b *testing.B) {
	s := arc.Make(payload{})
	w := s.Weak()
	defer s.Release()
	defer w.Release()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l := w.Lock()
			l.Release()
		}
	})
}
