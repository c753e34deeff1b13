// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protobind decodes the text format into any proto.Message by
// driving the textpb engine from the message's reflection descriptors.
//
// Generated messages, dynamicpb messages and legacy v1 messages are all
// supported. Field name tables and enum value sets are derived from
// descriptors once and cached.
package protobind

import (
	protoV1 "github.com/golang/protobuf/proto"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/protocolbuffers/textpb/encoding/textpb"
)

// Unmarshal reads the given []byte into m.
func Unmarshal(b []byte, m proto.Message) error {
	return UnmarshalOptions{}.Unmarshal(b, m)
}

// UnmarshalV1 is Unmarshal for messages generated by the legacy
// github.com/golang/protobuf API.
func UnmarshalV1(b []byte, m protoV1.Message) error {
	return UnmarshalOptions{}.Unmarshal(b, protoV1.MessageV2(m))
}

// ExtensionResolver enumerates the extensions of a message type.
// *protoregistry.Types implements it.
type ExtensionResolver interface {
	RangeExtensionsByMessage(message protoreflect.FullName, f func(protoreflect.ExtensionType) bool)
}

// UnmarshalOptions configures Unmarshal.
type UnmarshalOptions struct {
	// AllowPartial accepts input for messages that will result in missing
	// required fields. If AllowPartial is false (the default), Unmarshal will
	// return error if there are any missing required fields.
	AllowPartial bool

	// Resolver is used for looking up extension fields.
	// If nil, this defaults to using protoregistry.GlobalTypes.
	Resolver ExtensionResolver

	// RecursionLimit limits how deeply messages may be nested.
	// If zero, the textpb default applies.
	RecursionLimit int
}

// Unmarshal resets m and reads the given []byte into it.
func (o UnmarshalOptions) Unmarshal(b []byte, m proto.Message) error {
	proto.Reset(m)
	if o.Resolver == nil {
		o.Resolver = protoregistry.GlobalTypes
	}

	pm := m.ProtoReflect()
	s := &session{}
	reg, err := s.registry(o.Resolver, pm.Descriptor())
	if err != nil {
		return err
	}
	umo := textpb.UnmarshalOptions{
		Extensions:     reg,
		RecursionLimit: o.RecursionLimit,
	}
	if err := umo.Unmarshal(b, s.wrap(pm)); err != nil {
		return err
	}
	s.flush()

	if o.AllowPartial {
		return nil
	}
	return proto.CheckInitialized(m)
}

// session tracks the message wrappers created during one Unmarshal so that
// their extension values can be stored once decoding has finished.
type session struct {
	messages []*message
}

func (s *session) wrap(m protoreflect.Message) *message {
	w := &message{s: s, m: m, b: bindingOf(m.Descriptor())}
	s.messages = append(s.messages, w)
	return w
}

func (s *session) flush() {
	for _, w := range s.messages {
		w.ext.Range(func(_ textpb.FieldNumber, f textpb.ExtensionField) bool {
			x := f.(*extensionField)
			xd := x.xt.TypeDescriptor()
			if xd.IsList() && x.val.List().Len() == 0 {
				return true
			}
			w.m.Set(xd, x.val)
			return true
		})
	}
}
