// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import (
	"math/rand"
	"testing"
)

const maxLimit = 1024

func TestInts(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	ns := new(Ints)
	if ns.Len() != 0 {
		t.Fatalf("init: Len() = %d, want 0", ns.Len())
	}

	want := map[int32]bool{}
	for i := 0; i < maxLimit; i++ {
		n := int32(r.Intn(maxLimit))
		if got, wantAdded := ns.Add(n), !want[n]; got != wantAdded {
			t.Errorf("Add(%d) = %v, want %v", n, got, wantAdded)
		}
		want[n] = true
	}
	if ns.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", ns.Len(), len(want))
	}
	for i := int32(0); i < maxLimit; i++ {
		if got := ns.Has(i); got != want[i] {
			t.Errorf("Has(%d) = %v, want %v", i, got, want[i])
		}
	}
}
