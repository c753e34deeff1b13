// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set provides a simple set of field numbers.
package set

import "math/bits"

// Ints represents a set of non-negative 32-bit integers. Numbers below 64 are
// kept in a bitmap since schemas overwhelmingly use small field numbers.
type Ints struct {
	lo uint64
	hi map[int32]struct{}
}

func (s *Ints) Len() int {
	return bits.OnesCount64(s.lo) + len(s.hi)
}

func (s *Ints) Has(n int32) bool {
	if 0 <= n && n < 64 {
		return s.lo&(1<<uint(n)) != 0
	}
	_, ok := s.hi[n]
	return ok
}

// Add inserts n and reports whether it was absent.
func (s *Ints) Add(n int32) bool {
	if s.Has(n) {
		return false
	}
	if 0 <= n && n < 64 {
		s.lo |= 1 << uint(n)
		return true
	}
	if s.hi == nil {
		s.hi = make(map[int32]struct{})
	}
	s.hi[n] = struct{}{}
	return true
}
