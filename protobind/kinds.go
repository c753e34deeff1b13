// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobind

import (
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/protocolbuffers/textpb/encoding/textpb"
)

// scalarCodec reads one protoreflect kind through its textpb scalar kind.
type scalarCodec struct {
	singular func(d *textpb.Decoder) (protoreflect.Value, error)
	repeated func(d *textpb.Decoder, l protoreflect.List) error
}

func codecFor[T any](k textpb.ScalarKind[T], valueOf func(T) protoreflect.Value) scalarCodec {
	return scalarCodec{
		singular: func(d *textpb.Decoder) (protoreflect.Value, error) {
			var v T
			if err := textpb.DecodeSingular(d, k, &v); err != nil {
				return protoreflect.Value{}, err
			}
			return valueOf(v), nil
		},
		repeated: func(d *textpb.Decoder, l protoreflect.List) error {
			var vs []T
			if err := textpb.DecodeRepeated(d, k, &vs); err != nil {
				return err
			}
			for _, v := range vs {
				l.Append(valueOf(v))
			}
			return nil
		},
	}
}

var scalarCodecs = map[protoreflect.Kind]scalarCodec{
	protoreflect.Int32Kind:    codecFor(textpb.Int32Kind, protoreflect.ValueOfInt32),
	protoreflect.Sint32Kind:   codecFor(textpb.Sint32Kind, protoreflect.ValueOfInt32),
	protoreflect.Sfixed32Kind: codecFor(textpb.Sfixed32Kind, protoreflect.ValueOfInt32),
	protoreflect.Int64Kind:    codecFor(textpb.Int64Kind, protoreflect.ValueOfInt64),
	protoreflect.Sint64Kind:   codecFor(textpb.Sint64Kind, protoreflect.ValueOfInt64),
	protoreflect.Sfixed64Kind: codecFor(textpb.Sfixed64Kind, protoreflect.ValueOfInt64),
	protoreflect.Uint32Kind:   codecFor(textpb.Uint32Kind, protoreflect.ValueOfUint32),
	protoreflect.Fixed32Kind:  codecFor(textpb.Fixed32Kind, protoreflect.ValueOfUint32),
	protoreflect.Uint64Kind:   codecFor(textpb.Uint64Kind, protoreflect.ValueOfUint64),
	protoreflect.Fixed64Kind:  codecFor(textpb.Fixed64Kind, protoreflect.ValueOfUint64),
	protoreflect.FloatKind:    codecFor(textpb.FloatKind, protoreflect.ValueOfFloat32),
	protoreflect.DoubleKind:   codecFor(textpb.DoubleKind, protoreflect.ValueOfFloat64),
	protoreflect.BoolKind:     codecFor(textpb.BoolKind, protoreflect.ValueOfBool),
	protoreflect.StringKind:   codecFor(textpb.StringKind, protoreflect.ValueOfString),
	protoreflect.BytesKind:    codecFor(textpb.BytesKind, protoreflect.ValueOfBytes),
}

var enumValuesCache = newDescCache() // protoreflect.EnumDescriptor -> *textpb.EnumValues

// enumValuesOf returns the value set of ed. Every enum is decoded as a
// closed set, including proto3 enums.
func enumValuesOf(ed protoreflect.EnumDescriptor) *textpb.EnumValues {
	return enumValuesCache.load(ed, func() interface{} { return newEnumValues(ed) }).(*textpb.EnumValues)
}

func newEnumValues(ed protoreflect.EnumDescriptor) *textpb.EnumValues {
	names := make(map[int32]string)
	aliases := make(map[string]int32)
	vals := ed.Values()
	for i := 0; i < vals.Len(); i++ {
		vd := vals.Get(i)
		n := int32(vd.Number())
		if _, ok := names[n]; ok {
			aliases[string(vd.Name())] = n
			continue
		}
		names[n] = string(vd.Name())
	}
	ev := textpb.NewEnumValues(names).WithAliases(aliases)
	Logger().Debug("built enum values",
		zap.String("enum", string(ed.FullName())),
		zap.Int("values", vals.Len()))
	return ev
}

func decodeEnum(d *textpb.Decoder, ed protoreflect.EnumDescriptor) (protoreflect.Value, error) {
	var n int32
	if err := d.DecodeEnumNumber(enumValuesOf(ed), &n); err != nil {
		return protoreflect.Value{}, err
	}
	return protoreflect.ValueOfEnum(protoreflect.EnumNumber(n)), nil
}

func decodeRepeatedEnum(d *textpb.Decoder, ed protoreflect.EnumDescriptor, l protoreflect.List) error {
	var ns []int32
	if err := d.DecodeRepeatedEnumNumbers(enumValuesOf(ed), &ns); err != nil {
		return err
	}
	for _, n := range ns {
		l.Append(protoreflect.ValueOfEnum(protoreflect.EnumNumber(n)))
	}
	return nil
}
