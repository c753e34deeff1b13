// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobind_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/protocolbuffers/textpb/encoding/textpb"
	"github.com/protocolbuffers/textpb/protobind"
)

const testFileText = `
name: "bind_test.proto"
package: "bind.test"
syntax: "proto2"
message_type {
  name: "Inner"
  field { name: "name" number: 1 label: LABEL_OPTIONAL type: TYPE_STRING }
  field { name: "nums" number: 2 label: LABEL_REPEATED type: TYPE_INT32 }
}
message_type {
  name: "Outer"
  field { name: "i32" number: 1 label: LABEL_OPTIONAL type: TYPE_INT32 }
  field { name: "s64" number: 2 label: LABEL_OPTIONAL type: TYPE_SINT64 }
  field { name: "d" number: 3 label: LABEL_OPTIONAL type: TYPE_DOUBLE }
  field { name: "b" number: 4 label: LABEL_OPTIONAL type: TYPE_BOOL }
  field { name: "s" number: 5 label: LABEL_OPTIONAL type: TYPE_STRING }
  field { name: "by" number: 6 label: LABEL_OPTIONAL type: TYPE_BYTES }
  field { name: "color" number: 7 label: LABEL_OPTIONAL type: TYPE_ENUM type_name: ".bind.test.Color" }
  field { name: "ru32" number: 8 label: LABEL_REPEATED type: TYPE_UINT32 }
  field { name: "rcolor" number: 9 label: LABEL_REPEATED type: TYPE_ENUM type_name: ".bind.test.Color" }
  field { name: "inner" number: 10 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".bind.test.Inner" }
  field { name: "rinner" number: 11 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".bind.test.Inner" }
  field { name: "m1" number: 12 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".bind.test.Outer.M1Entry" }
  field { name: "m2" number: 13 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".bind.test.Outer.M2Entry" }
  field { name: "m3" number: 14 label: LABEL_REPEATED type: TYPE_MESSAGE type_name: ".bind.test.Outer.M3Entry" }
  field { name: "mygroup" number: 15 label: LABEL_OPTIONAL type: TYPE_GROUP type_name: ".bind.test.Outer.MyGroup" }
  field { name: "f32" number: 17 label: LABEL_OPTIONAL type: TYPE_FIXED32 }
  field { name: "f" number: 18 label: LABEL_OPTIONAL type: TYPE_FLOAT }
  field { name: "os" number: 19 label: LABEL_OPTIONAL type: TYPE_STRING oneof_index: 0 }
  field { name: "oi" number: 20 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".bind.test.Inner" oneof_index: 0 }
  nested_type {
    name: "M1Entry"
    field { name: "key" number: 1 label: LABEL_OPTIONAL type: TYPE_STRING }
    field { name: "value" number: 2 label: LABEL_OPTIONAL type: TYPE_INT64 }
    options { map_entry: true }
  }
  nested_type {
    name: "M2Entry"
    field { name: "key" number: 1 label: LABEL_OPTIONAL type: TYPE_INT32 }
    field { name: "value" number: 2 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".bind.test.Inner" }
    options { map_entry: true }
  }
  nested_type {
    name: "M3Entry"
    field { name: "key" number: 1 label: LABEL_OPTIONAL type: TYPE_BOOL }
    field { name: "value" number: 2 label: LABEL_OPTIONAL type: TYPE_ENUM type_name: ".bind.test.Color" }
    options { map_entry: true }
  }
  nested_type {
    name: "MyGroup"
    field { name: "a" number: 16 label: LABEL_OPTIONAL type: TYPE_INT32 }
  }
  oneof_decl { name: "o" }
  extension_range { start: 100 end: 200 }
}
message_type {
  name: "Req"
  field { name: "x" number: 1 label: LABEL_REQUIRED type: TYPE_INT32 }
}
enum_type {
  name: "Color"
  value { name: "COLOR_UNSPECIFIED" number: 0 }
  value { name: "RED" number: 1 }
  value { name: "GREEN" number: 2 }
}
extension { name: "ext_i32" number: 100 label: LABEL_OPTIONAL type: TYPE_INT32 extendee: ".bind.test.Outer" }
extension { name: "ext_strs" number: 101 label: LABEL_REPEATED type: TYPE_STRING extendee: ".bind.test.Outer" }
extension { name: "ext_inner" number: 102 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".bind.test.Inner" extendee: ".bind.test.Outer" }
`

type testSchema struct {
	file  protoreflect.FileDescriptor
	types *protoregistry.Types
}

func newTestSchema(t *testing.T) *testSchema {
	t.Helper()
	fdp := new(descriptorpb.FileDescriptorProto)
	require.NoError(t, prototext.Unmarshal([]byte(testFileText), fdp))
	fd, err := protodesc.NewFile(fdp, nil)
	require.NoError(t, err)

	types := new(protoregistry.Types)
	xds := fd.Extensions()
	for i := 0; i < xds.Len(); i++ {
		require.NoError(t, types.RegisterExtension(dynamicpb.NewExtensionType(xds.Get(i))))
	}
	return &testSchema{file: fd, types: types}
}

func (s *testSchema) new(name protoreflect.Name) *dynamicpb.Message {
	return dynamicpb.NewMessage(s.file.Messages().ByName(name))
}

func TestRoundTrip(t *testing.T) {
	s := newTestSchema(t)
	tests := []struct {
		desc string
		text string
	}{{
		desc: "all field shapes",
		text: `
i32: -5 s64: -9000000000 d: 2.5 b: true s: "h\303\251llo\n" by: "\000\377" color: GREEN
ru32: [1, 2, 3] rcolor: [RED, GREEN]
inner { name: "in" nums: [1, 2] }
rinner { name: "a" } rinner { }
m1 { key: "k" value: 7 } m1 { key: "j" value: -1 }
m2 { key: 3 value { name: "v" } }
m3 { key: true value: RED }
MyGroup { a: 9 }
f32: 4000000000 f: -0.25
oi { name: "one" }
[bind.test.ext_i32]: 42
[bind.test.ext_strs]: ["x", "y"]
[bind.test.ext_inner] { name: "ei" }
`,
	}, {
		desc: "oneof string",
		text: `os: "member"`,
	}, {
		desc: "empty message",
	}, {
		desc: "special floats",
		text: `d: -inf f: inf`,
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			want := s.new("Outer")
			require.NoError(t, prototext.UnmarshalOptions{Resolver: s.types}.Unmarshal([]byte(tt.text), want))
			b, err := prototext.Marshal(want)
			require.NoError(t, err)

			got := s.new("Outer")
			require.NoError(t, protobind.UnmarshalOptions{Resolver: s.types}.Unmarshal(b, got))
			if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
				t.Errorf("round trip of\n%s\nmismatch (-want +got):\n%s", b, diff)
			}
		})
	}
}

func TestGeneratedMessage(t *testing.T) {
	want := new(descriptorpb.FileDescriptorProto)
	require.NoError(t, prototext.Unmarshal([]byte(testFileText), want))

	got := new(descriptorpb.FileDescriptorProto)
	require.NoError(t, protobind.Unmarshal([]byte(testFileText), got))
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalV1(t *testing.T) {
	var m wrapperspb.Int64Value
	require.NoError(t, protobind.UnmarshalV1([]byte("value: -0x10"), &m))
	require.Equal(t, int64(-16), m.GetValue())
}

func TestDecodeBehavior(t *testing.T) {
	s := newTestSchema(t)
	tests := []struct {
		desc    string
		umo     protobind.UnmarshalOptions
		message protoreflect.Name
		text    string
		want    string // text of the expected message, parsed by prototext
		wantErr error
	}{{
		desc:    "group by field name",
		message: "Outer",
		text:    `mygroup < a: 1 >`,
		want:    `MyGroup { a: 1 }`,
	}, {
		desc:    "singular message replaced",
		message: "Outer",
		text:    `inner { name: "a" nums: 1 } inner { nums: 2 }`,
		want:    `inner { nums: 2 }`,
	}, {
		desc:    "map last write wins",
		message: "Outer",
		text:    `m1: [{ key: "a" value: 1 }, { value: 2 key: "a" }]`,
		want:    `m1 { key: "a" value: 2 }`,
	}, {
		desc:    "oneof last member wins",
		message: "Outer",
		text:    `os: "x" oi { name: "y" }`,
		want:    `oi { name: "y" }`,
	}, {
		desc:    "numeric keys",
		message: "Outer",
		text:    `1: 3 10 { 1: "n" } 100: 7`,
		want:    `i32: 3 inner { name: "n" } [bind.test.ext_i32]: 7`,
	}, {
		desc:    "repeated extension accumulates",
		message: "Outer",
		text:    `[bind.test.ext_strs]: "a" 101: ["b"] [bind.test.ext_strs]: []`,
		want:    `[bind.test.ext_strs]: ["a", "b"]`,
	}, {
		desc:    "unregistered extension number is skipped",
		message: "Outer",
		text:    `150: { x: 1 } i32: 1`,
		want:    `i32: 1`,
	}, {
		desc:    "extensions unknown without a resolver entry",
		umo:     protobind.UnmarshalOptions{Resolver: new(protoregistry.Types)},
		message: "Outer",
		text:    `100: 5 i32: 2`,
		want:    `i32: 2`,
	}, {
		desc:    "unregistered extension name",
		umo:     protobind.UnmarshalOptions{Resolver: new(protoregistry.Types)},
		message: "Outer",
		text:    `[bind.test.ext_i32]: 5`,
		wantErr: textpb.ErrUnknownField,
	}, {
		desc:    "unknown field",
		message: "Outer",
		text:    `nope: 1`,
		wantErr: textpb.ErrUnknownField,
	}, {
		desc:    "unknown enum value",
		message: "Outer",
		text:    `rcolor: [RED, BLUE]`,
		wantErr: textpb.ErrUnrecognizedEnumValue,
	}, {
		desc:    "map entry missing value",
		message: "Outer",
		text:    `m2 { key: 1 }`,
		wantErr: textpb.ErrMalformedText,
	}, {
		desc:    "truncated nested message",
		message: "Outer",
		text:    `inner { name: "a"`,
		wantErr: textpb.ErrTruncatedInput,
	}, {
		desc:    "recursion limit",
		umo:     protobind.UnmarshalOptions{RecursionLimit: 1},
		message: "Outer",
		text:    `inner { }`,
		wantErr: textpb.ErrRecursionLimit,
	}, {
		desc:    "missing required field allowed",
		umo:     protobind.UnmarshalOptions{AllowPartial: true},
		message: "Req",
		text:    ``,
		want:    ``,
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			umo := tt.umo
			if umo.Resolver == nil {
				umo.Resolver = s.types
			}
			got := s.new(tt.message)
			err := umo.Unmarshal([]byte(tt.text), got)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr), "error %v is not %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			want := s.new(tt.message)
			require.NoError(t, prototext.UnmarshalOptions{Resolver: s.types, AllowPartial: true}.Unmarshal([]byte(tt.want), want))
			if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRequiredFields(t *testing.T) {
	s := newTestSchema(t)
	err := protobind.UnmarshalOptions{Resolver: s.types}.Unmarshal(nil, s.new("Req"))
	require.Error(t, err)
	require.False(t, errors.Is(err, textpb.Error), "required field error %v came from the decoder", err)

	m := s.new("Req")
	require.NoError(t, protobind.Unmarshal([]byte("x: 1"), m))
	require.Equal(t, int32(1), m.Get(m.Descriptor().Fields().ByName("x")).Interface())
}

func TestUnmarshalResetsMessage(t *testing.T) {
	s := newTestSchema(t)
	m := s.new("Outer")
	require.NoError(t, protobind.UnmarshalOptions{Resolver: s.types}.Unmarshal([]byte("i32: 1"), m))
	require.NoError(t, protobind.UnmarshalOptions{Resolver: s.types}.Unmarshal([]byte("b: true"), m))
	i32 := m.Descriptor().Fields().ByName("i32")
	require.False(t, m.Has(i32), "i32 survived a second Unmarshal")
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	protobind.SetLogger(zap.New(core))
	defer protobind.SetLogger(zap.NewNop())

	// A fresh schema has no cached bindings.
	s := newTestSchema(t)
	require.NoError(t, protobind.UnmarshalOptions{Resolver: s.types}.Unmarshal([]byte(`inner { name: "a" } color: RED`), s.new("Outer")))

	require.NotZero(t, logs.FilterMessage("built field names").Len())
	require.Equal(t, 1, logs.FilterMessage("built enum values").Len())
	registry := logs.FilterMessage("built extension registry").All()
	require.Len(t, registry, 1)
	require.Equal(t, int64(3), registry[0].ContextMap()["extensions"])
}
