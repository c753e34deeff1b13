// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb_test

import (
	"github.com/protocolbuffers/textpb/encoding/textpb"
)

// Message types written the way generated code would write them.

type Color int32

const (
	Color_COLOR_UNSPECIFIED Color = 0
	Color_RED               Color = 1
	Color_GREEN             Color = 2
)

var colorValues = textpb.NewEnumValues(map[int32]string{
	0: "COLOR_UNSPECIFIED",
	1: "RED",
	2: "GREEN",
}).WithAliases(map[string]int32{"ROUGE": 1})

func (Color) EnumValues() *textpb.EnumValues { return colorValues }

type Scalars struct {
	Int32    int32
	Int64    int64
	Uint32   uint32
	Uint64   uint64
	Sint32   int32
	Sint64   int64
	Fixed32  uint32
	Fixed64  uint64
	Sfixed32 int32
	Sfixed64 int64
	Float    float32
	Double   float64
	Bool     bool
	String   string
	Bytes    []byte

	OptInt32  *int32
	OptString *string

	RInt32    []int32
	RInt64    []int64
	RUint32   []uint32
	RUint64   []uint64
	RSint32   []int32
	RSint64   []int64
	RFixed32  []uint32
	RFixed64  []uint64
	RSfixed32 []int32
	RSfixed64 []int64
	RFloat    []float32
	RDouble   []float64
	RBool     []bool
	RString   []string
	RBytes    [][]byte

	Color    Color
	OptColor *Color
	RColor   []Color
}

var scalarsNames = textpb.NewFieldNames([]textpb.FieldName{
	{Number: 1, Name: "s_int32"},
	{Number: 2, Name: "s_int64"},
	{Number: 3, Name: "s_uint32"},
	{Number: 4, Name: "s_uint64"},
	{Number: 5, Name: "s_sint32"},
	{Number: 6, Name: "s_sint64"},
	{Number: 7, Name: "s_fixed32"},
	{Number: 8, Name: "s_fixed64"},
	{Number: 9, Name: "s_sfixed32"},
	{Number: 10, Name: "s_sfixed64"},
	{Number: 11, Name: "s_float"},
	{Number: 12, Name: "s_double"},
	{Number: 13, Name: "s_bool"},
	{Number: 14, Name: "s_string"},
	{Number: 15, Name: "s_bytes"},
	{Number: 21, Name: "o_int32"},
	{Number: 22, Name: "o_string"},
	{Number: 31, Name: "r_int32"},
	{Number: 32, Name: "r_int64"},
	{Number: 33, Name: "r_uint32"},
	{Number: 34, Name: "r_uint64"},
	{Number: 35, Name: "r_sint32"},
	{Number: 36, Name: "r_sint64"},
	{Number: 37, Name: "r_fixed32"},
	{Number: 38, Name: "r_fixed64"},
	{Number: 39, Name: "r_sfixed32"},
	{Number: 40, Name: "r_sfixed64"},
	{Number: 41, Name: "r_float"},
	{Number: 42, Name: "r_double"},
	{Number: 43, Name: "r_bool"},
	{Number: 44, Name: "r_string"},
	{Number: 45, Name: "r_bytes"},
	{Number: 51, Name: "color"},
	{Number: 52, Name: "o_color"},
	{Number: 53, Name: "r_color"},
})

func (*Scalars) FieldNames() *textpb.FieldNames { return scalarsNames }

func (m *Scalars) DecodeField(d *textpb.Decoder, num textpb.FieldNumber) error {
	switch num {
	case 1:
		return d.DecodeSingularInt32Field(&m.Int32)
	case 2:
		return d.DecodeSingularInt64Field(&m.Int64)
	case 3:
		return d.DecodeSingularUint32Field(&m.Uint32)
	case 4:
		return d.DecodeSingularUint64Field(&m.Uint64)
	case 5:
		return d.DecodeSingularSint32Field(&m.Sint32)
	case 6:
		return d.DecodeSingularSint64Field(&m.Sint64)
	case 7:
		return d.DecodeSingularFixed32Field(&m.Fixed32)
	case 8:
		return d.DecodeSingularFixed64Field(&m.Fixed64)
	case 9:
		return d.DecodeSingularSfixed32Field(&m.Sfixed32)
	case 10:
		return d.DecodeSingularSfixed64Field(&m.Sfixed64)
	case 11:
		return d.DecodeSingularFloatField(&m.Float)
	case 12:
		return d.DecodeSingularDoubleField(&m.Double)
	case 13:
		return d.DecodeSingularBoolField(&m.Bool)
	case 14:
		return d.DecodeSingularStringField(&m.String)
	case 15:
		return d.DecodeSingularBytesField(&m.Bytes)
	case 21:
		return d.DecodeOptionalInt32Field(&m.OptInt32)
	case 22:
		return d.DecodeOptionalStringField(&m.OptString)
	case 31:
		return d.DecodeRepeatedInt32Field(&m.RInt32)
	case 32:
		return d.DecodeRepeatedInt64Field(&m.RInt64)
	case 33:
		return d.DecodeRepeatedUint32Field(&m.RUint32)
	case 34:
		return d.DecodeRepeatedUint64Field(&m.RUint64)
	case 35:
		return d.DecodeRepeatedSint32Field(&m.RSint32)
	case 36:
		return d.DecodeRepeatedSint64Field(&m.RSint64)
	case 37:
		return d.DecodeRepeatedFixed32Field(&m.RFixed32)
	case 38:
		return d.DecodeRepeatedFixed64Field(&m.RFixed64)
	case 39:
		return d.DecodeRepeatedSfixed32Field(&m.RSfixed32)
	case 40:
		return d.DecodeRepeatedSfixed64Field(&m.RSfixed64)
	case 41:
		return d.DecodeRepeatedFloatField(&m.RFloat)
	case 42:
		return d.DecodeRepeatedDoubleField(&m.RDouble)
	case 43:
		return d.DecodeRepeatedBoolField(&m.RBool)
	case 44:
		return d.DecodeRepeatedStringField(&m.RString)
	case 45:
		return d.DecodeRepeatedBytesField(&m.RBytes)
	case 51:
		return textpb.DecodeSingularEnum(d, &m.Color)
	case 52:
		return textpb.DecodeOptionalEnum(d, &m.OptColor)
	case 53:
		return textpb.DecodeRepeatedEnum(d, &m.RColor)
	}
	return nil
}

type Nested struct {
	Name     string
	Child    *Nested
	Children []*Nested
	Group    *Nested
	Groups   []*Nested
	Scalars  *Scalars
	Ints     map[int32]string
	Colors   map[string]Color
	Msgs     map[int64]*Nested

	ext textpb.ExtensionFields
}

var nestedNames = textpb.NewFieldNames([]textpb.FieldName{
	{Number: 1, Name: "name"},
	{Number: 2, Name: "child"},
	{Number: 3, Name: "children"},
	{Number: 4, Name: "MyGroup", Aliases: []string{"mygroup"}},
	{Number: 5, Name: "Groups", Aliases: []string{"groups"}},
	{Number: 6, Name: "scalars"},
	{Number: 7, Name: "ints"},
	{Number: 8, Name: "colors"},
	{Number: 9, Name: "msgs"},
}, textpb.ExtensionRange{Start: 100, End: 200})

func (*Nested) FieldNames() *textpb.FieldNames { return nestedNames }

func (*Nested) MessageName() string { return "test.Nested" }

func (m *Nested) ExtensionFields() *textpb.ExtensionFields { return &m.ext }

func (m *Nested) DecodeField(d *textpb.Decoder, num textpb.FieldNumber) error {
	switch num {
	case 1:
		return d.DecodeSingularStringField(&m.Name)
	case 2:
		return textpb.DecodeSingularMessage(d, &m.Child)
	case 3:
		return textpb.DecodeRepeatedMessage(d, &m.Children)
	case 4:
		return textpb.DecodeSingularGroup(d, &m.Group)
	case 5:
		return textpb.DecodeRepeatedGroup(d, &m.Groups)
	case 6:
		return textpb.DecodeSingularMessage(d, &m.Scalars)
	case 7:
		return textpb.DecodeMap(d, textpb.Int32Kind, textpb.StringKind, &m.Ints)
	case 8:
		return textpb.DecodeEnumMap(d, textpb.StringKind, &m.Colors)
	case 9:
		return textpb.DecodeMessageMap(d, textpb.Sint64Kind, &m.Msgs)
	}
	return nil
}

// noNames does not provide a field name table.
type noNames struct{}

func (*noNames) DecodeField(*textpb.Decoder, textpb.FieldNumber) error { return nil }
