// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobind

import (
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/protocolbuffers/textpb/encoding/textpb"
)

// registry collects every extension of the message types reachable from
// root into a textpb registry.
func (s *session) registry(r ExtensionResolver, root protoreflect.MessageDescriptor) (*textpb.ExtensionRegistry, error) {
	reg := new(textpb.ExtensionRegistry)
	seen := make(map[protoreflect.FullName]bool)
	queue := []protoreflect.MessageDescriptor{root}
	visit := func(md protoreflect.MessageDescriptor) {
		if md != nil && !seen[md.FullName()] {
			queue = append(queue, md)
		}
	}

	var err error
	for len(queue) > 0 && err == nil {
		md := queue[0]
		queue = queue[1:]
		if seen[md.FullName()] {
			continue
		}
		seen[md.FullName()] = true

		fds := md.Fields()
		for i := 0; i < fds.Len(); i++ {
			visit(fds.Get(i).Message())
		}
		if md.ExtensionRanges().Len() == 0 {
			continue
		}
		r.RangeExtensionsByMessage(md.FullName(), func(xt protoreflect.ExtensionType) bool {
			xd := xt.TypeDescriptor()
			err = reg.Register(&textpb.ExtensionType{
				Extendee: string(md.FullName()),
				Number:   textpb.FieldNumber(xd.Number()),
				Name:     string(xd.FullName()),
				New:      func() textpb.ExtensionField { return &extensionField{s: s, xt: xt, val: xt.New()} },
			})
			visit(xd.Message())
			return err == nil
		})
	}
	if err != nil {
		return nil, err
	}
	Logger().Debug("built extension registry",
		zap.String("message", string(root.FullName())),
		zap.Int("messages", len(seen)),
		zap.Int("extensions", reg.Len()))
	return reg, nil
}

// extensionField holds the value of one extension until the session is
// flushed into the host message.
type extensionField struct {
	s   *session
	xt  protoreflect.ExtensionType
	val protoreflect.Value
}

func (x *extensionField) DecodeField(d *textpb.Decoder) error {
	xd := x.xt.TypeDescriptor()
	if xd.IsList() {
		return x.s.decodeList(d, xd, x.val.List())
	}
	v, err := x.s.decodeSingular(d, xd, x.xt.New())
	if err != nil {
		return err
	}
	x.val = v
	return nil
}
