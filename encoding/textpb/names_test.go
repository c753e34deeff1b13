// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb_test

import (
	"testing"

	"github.com/protocolbuffers/textpb/encoding/textpb"
)

func TestFieldNames(t *testing.T) {
	names := textpb.NewFieldNames([]textpb.FieldName{
		{Number: 1, Name: "foo"},
		{Number: 70, Name: "Bar", Aliases: []string{"bar"}},
	}, textpb.ExtensionRange{Start: 100, End: 110}, textpb.ExtensionRange{Start: 1000, End: 1001})

	for _, tt := range []struct {
		name string
		want textpb.FieldNumber
		ok   bool
	}{
		{"foo", 1, true},
		{"Bar", 70, true},
		{"bar", 70, true},
		{"BAR", 0, false},
	} {
		if got, ok := names.Number(tt.name); got != tt.want || ok != tt.ok {
			t.Errorf("Number(%q) = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
	if got, ok := names.Name(70); got != "Bar" || !ok {
		t.Errorf("Name(70) = %q, %v; want Bar", got, ok)
	}
	if _, ok := names.Name(2); ok {
		t.Error("Name(2) found a field")
	}
	for num, want := range map[textpb.FieldNumber]bool{
		1: false, 99: false, 100: true, 109: true, 110: false, 1000: true, 1001: false,
	} {
		if got := names.IsExtension(num); got != want {
			t.Errorf("IsExtension(%d) = %v, want %v", num, got, want)
		}
	}
}

func TestFieldNamesPanics(t *testing.T) {
	for _, tt := range []struct {
		desc   string
		fields []textpb.FieldName
		ranges []textpb.ExtensionRange
	}{{
		desc:   "duplicate number",
		fields: []textpb.FieldName{{Number: 1, Name: "a"}, {Number: 1, Name: "b"}},
	}, {
		desc:   "name shared by two numbers",
		fields: []textpb.FieldName{{Number: 1, Name: "a"}, {Number: 2, Name: "b", Aliases: []string{"a"}}},
	}, {
		desc:   "reserved number",
		fields: []textpb.FieldName{{Number: 19000, Name: "a"}},
	}, {
		desc:   "zero number",
		fields: []textpb.FieldName{{Number: 0, Name: "a"}},
	}, {
		desc:   "empty extension range",
		ranges: []textpb.ExtensionRange{{Start: 5, End: 5}},
	}} {
		t.Run(tt.desc, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewFieldNames() did not panic")
				}
			}()
			textpb.NewFieldNames(tt.fields, tt.ranges...)
		})
	}
}

func TestEnumValues(t *testing.T) {
	if n, ok := colorValues.Number("ROUGE"); !ok || n != 1 {
		t.Errorf("Number(ROUGE) = %d, %v; want 1", n, ok)
	}
	if s, ok := colorValues.Name(1); !ok || s != "RED" {
		t.Errorf("Name(1) = %q, %v; want RED", s, ok)
	}
	if _, ok := colorValues.Number("red"); ok {
		t.Error("enum names matched case-insensitively")
	}
	defer func() {
		if recover() == nil {
			t.Error("WithAliases() accepted an undeclared number")
		}
	}()
	textpb.NewEnumValues(map[int32]string{0: "A"}).WithAliases(map[string]int32{"B": 1})
}
