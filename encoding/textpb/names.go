// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

import (
	"fmt"

	"github.com/protocolbuffers/textpb/internal/genid"
	"github.com/protocolbuffers/textpb/internal/set"
)

// FieldNumber is the number of a field within its message.
type FieldNumber int32

// FieldName declares the canonical text name of a field and any aliases
// that resolve to the same number.
type FieldName struct {
	Number  FieldNumber
	Name    string
	Aliases []string
}

// ExtensionRange is a range of extension field numbers in [Start, End).
type ExtensionRange struct {
	Start, End FieldNumber
}

// FieldNames is the name table of one message type. It is immutable and safe
// for concurrent use.
type FieldNames struct {
	byName    map[string]FieldNumber
	byNumber  map[FieldNumber]string
	numbers   set.Ints
	extRanges []ExtensionRange
}

// NewFieldNames builds the name table of a message type. It panics if a
// number is declared twice, a name is claimed by two numbers, or a number is
// outside the valid field number range.
func NewFieldNames(fields []FieldName, extRanges ...ExtensionRange) *FieldNames {
	t := &FieldNames{
		byName:    make(map[string]FieldNumber, len(fields)),
		byNumber:  make(map[FieldNumber]string, len(fields)),
		extRanges: append([]ExtensionRange(nil), extRanges...),
	}
	for _, f := range fields {
		if !genid.IsValidNumber(int64(f.Number)) {
			panic(fmt.Sprintf("textpb: invalid field number %d for %q", f.Number, f.Name))
		}
		if !t.numbers.Add(int32(f.Number)) {
			panic(fmt.Sprintf("textpb: field number %d declared twice", f.Number))
		}
		t.byNumber[f.Number] = f.Name
		for _, name := range append([]string{f.Name}, f.Aliases...) {
			if prev, ok := t.byName[name]; ok {
				panic(fmt.Sprintf("textpb: field name %q used by %d and %d", name, prev, f.Number))
			}
			t.byName[name] = f.Number
		}
	}
	for _, r := range extRanges {
		if r.Start >= r.End {
			panic(fmt.Sprintf("textpb: empty extension range [%d, %d)", r.Start, r.End))
		}
	}
	return t
}

// Number returns the field number for name, which may be an alias.
func (t *FieldNames) Number(name string) (FieldNumber, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// Name returns the canonical name of the field num.
func (t *FieldNames) Name(num FieldNumber) (string, bool) {
	s, ok := t.byNumber[num]
	return s, ok
}

// IsExtension reports whether num lies in one of the extension ranges.
func (t *FieldNames) IsExtension(num FieldNumber) bool {
	for _, r := range t.extRanges {
		if r.Start <= num && num < r.End {
			return true
		}
	}
	return false
}

// has reports whether num is a declared field.
func (t *FieldNames) has(num FieldNumber) bool {
	return t.numbers.Has(int32(num))
}

// scanNames adapts a FieldNames to the scanner's key lookup.
type scanNames FieldNames

func (t *scanNames) Number(name string) (int32, bool) {
	n, ok := (*FieldNames)(t).Number(name)
	return int32(n), ok
}

func (t *scanNames) Known(num int32) bool {
	names := (*FieldNames)(t)
	return names.has(FieldNumber(num)) || names.IsExtension(FieldNumber(num))
}
