// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

import (
	"github.com/protocolbuffers/textpb/internal/encoding/text"
)

//go:generate go run ../../internal/cmd/generate-decoders -execute

// ScalarKind describes how one primitive field type is read from text.
type ScalarKind[T any] struct {
	name  string
	parse func(*text.Scanner) (T, error)
}

// String returns the field type name, such as "sint32".
func (k ScalarKind[T]) String() string { return k.name }

// The scalar kinds of the text format. Kinds sharing a Go type share a
// text representation; they differ only in the binary format.
var (
	Int32Kind    = ScalarKind[int32]{"int32", (*text.Scanner).NextInt32}
	Int64Kind    = ScalarKind[int64]{"int64", (*text.Scanner).NextSInt}
	Uint32Kind   = ScalarKind[uint32]{"uint32", (*text.Scanner).NextUint32}
	Uint64Kind   = ScalarKind[uint64]{"uint64", (*text.Scanner).NextUInt}
	Sint32Kind   = ScalarKind[int32]{"sint32", (*text.Scanner).NextInt32}
	Sint64Kind   = ScalarKind[int64]{"sint64", (*text.Scanner).NextSInt}
	Fixed32Kind  = ScalarKind[uint32]{"fixed32", (*text.Scanner).NextUint32}
	Fixed64Kind  = ScalarKind[uint64]{"fixed64", (*text.Scanner).NextUInt}
	Sfixed32Kind = ScalarKind[int32]{"sfixed32", (*text.Scanner).NextInt32}
	Sfixed64Kind = ScalarKind[int64]{"sfixed64", (*text.Scanner).NextSInt}
	FloatKind    = ScalarKind[float32]{"float", (*text.Scanner).NextFloat}
	DoubleKind   = ScalarKind[float64]{"double", (*text.Scanner).NextDouble}
	BoolKind     = ScalarKind[bool]{"bool", (*text.Scanner).NextBool}
	StringKind   = ScalarKind[string]{"string", (*text.Scanner).NextStringValue}
	BytesKind    = ScalarKind[[]byte]{"bytes", (*text.Scanner).NextBytesValue}
)

// DecodeSingular reads "name: value" into v.
func DecodeSingular[T any](d *Decoder, k ScalarKind[T], v *T) error {
	if err := d.s.SkipRequiredColon(); err != nil {
		return err
	}
	x, err := k.parse(d.s)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

// DecodeOptional is like DecodeSingular for fields with explicit presence.
// *v is set to a newly allocated value.
func DecodeOptional[T any](d *Decoder, k ScalarKind[T], v **T) error {
	var x T
	if err := DecodeSingular(d, k, &x); err != nil {
		return err
	}
	*v = &x
	return nil
}

// DecodeRepeated reads "name: value" or "name: [v1, v2, ...]" and appends
// the values to *v.
func DecodeRepeated[T any](d *Decoder, k ScalarKind[T], v *[]T) error {
	if err := d.s.SkipRequiredColon(); err != nil {
		return err
	}
	return d.DecodeList(func() error {
		x, err := k.parse(d.s)
		if err != nil {
			return err
		}
		*v = append(*v, x)
		return nil
	})
}
