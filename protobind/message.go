// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobind

import (
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/protocolbuffers/textpb/encoding/textpb"
)

// binding is the decoding metadata derived from a message descriptor.
type binding struct {
	desc  protoreflect.MessageDescriptor
	names *textpb.FieldNames
}

var bindings = newDescCache() // protoreflect.MessageDescriptor -> *binding

func bindingOf(md protoreflect.MessageDescriptor) *binding {
	return bindings.load(md, func() interface{} { return newBinding(md) }).(*binding)
}

func newBinding(md protoreflect.MessageDescriptor) *binding {
	fds := md.Fields()
	used := make(map[string]bool, fds.Len())
	fields := make([]textpb.FieldName, 0, fds.Len())
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		f := textpb.FieldName{Number: textpb.FieldNumber(fd.Number()), Name: fd.TextName()}
		used[f.Name] = true
		fields = append(fields, f)
	}
	// Groups are written with their type name; the field name is accepted
	// too unless another field owns it.
	for i := range fields {
		fd := fds.Get(i)
		if name := string(fd.Name()); name != fields[i].Name && !used[name] {
			fields[i].Aliases = []string{name}
			used[name] = true
		}
	}

	var ranges []textpb.ExtensionRange
	xrs := md.ExtensionRanges()
	for i := 0; i < xrs.Len(); i++ {
		r := xrs.Get(i)
		ranges = append(ranges, textpb.ExtensionRange{
			Start: textpb.FieldNumber(r[0]),
			End:   textpb.FieldNumber(r[1]),
		})
	}

	b := &binding{desc: md, names: textpb.NewFieldNames(fields, ranges...)}
	Logger().Debug("built field names",
		zap.String("message", string(md.FullName())),
		zap.Int("fields", len(fields)),
		zap.Int("extension_ranges", len(ranges)))
	return b
}

// message adapts a protoreflect.Message to textpb.ExtensibleMessage.
type message struct {
	s   *session
	m   protoreflect.Message
	b   *binding
	ext textpb.ExtensionFields
}

func (w *message) FieldNames() *textpb.FieldNames { return w.b.names }

func (w *message) MessageName() string { return string(w.b.desc.FullName()) }

func (w *message) ExtensionFields() *textpb.ExtensionFields { return &w.ext }

func (w *message) DecodeField(d *textpb.Decoder, num textpb.FieldNumber) error {
	fd := w.b.desc.Fields().ByNumber(protoreflect.FieldNumber(num))
	switch {
	case fd.IsMap():
		return w.s.decodeMap(d, fd, w.m.Mutable(fd).Map())
	case fd.IsList():
		return w.s.decodeList(d, fd, w.m.Mutable(fd).List())
	}
	v, err := w.s.decodeSingular(d, fd, w.m.NewField(fd))
	if err != nil {
		return err
	}
	w.m.Set(fd, v)
	return nil
}

// decodeSingular reads a singular value of fd. For message fields the value
// is decoded into fresh.
func (s *session) decodeSingular(d *textpb.Decoder, fd protoreflect.FieldDescriptor, fresh protoreflect.Value) (protoreflect.Value, error) {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		if err := d.DecodeMessageField(s.wrap(fresh.Message())); err != nil {
			return protoreflect.Value{}, err
		}
		return fresh, nil
	case protoreflect.EnumKind:
		return decodeEnum(d, fd.Enum())
	}
	return scalarCodecs[fd.Kind()].singular(d)
}

func (s *session) decodeList(d *textpb.Decoder, fd protoreflect.FieldDescriptor, l protoreflect.List) error {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return d.DecodeRepeatedMessageField(func() textpb.Message {
			v := l.NewElement()
			l.Append(v)
			return s.wrap(v.Message())
		})
	case protoreflect.EnumKind:
		return decodeRepeatedEnum(d, fd.Enum(), l)
	}
	return scalarCodecs[fd.Kind()].repeated(d, l)
}

func (s *session) decodeMap(d *textpb.Decoder, fd protoreflect.FieldDescriptor, mp protoreflect.Map) error {
	return d.DecodeMapField(func() textpb.MapEntry {
		return &mapEntry{s: s, mp: mp, keyDesc: fd.MapKey(), valDesc: fd.MapValue()}
	})
}

// mapEntry collects one map entry before storing it in mp.
type mapEntry struct {
	s       *session
	mp      protoreflect.Map
	keyDesc protoreflect.FieldDescriptor
	valDesc protoreflect.FieldDescriptor

	key      protoreflect.MapKey
	val      protoreflect.Value
	hasKey   bool
	hasValue bool
}

func (e *mapEntry) DecodeKey(d *textpb.Decoder) error {
	v, err := scalarCodecs[e.keyDesc.Kind()].singular(d)
	if err != nil {
		return err
	}
	e.key, e.hasKey = v.MapKey(), true
	return nil
}

func (e *mapEntry) DecodeValue(d *textpb.Decoder) error {
	var fresh protoreflect.Value
	if k := e.valDesc.Kind(); k == protoreflect.MessageKind || k == protoreflect.GroupKind {
		fresh = e.mp.NewValue()
	}
	v, err := e.s.decodeSingular(d, e.valDesc, fresh)
	if err != nil {
		return err
	}
	e.val, e.hasValue = v, true
	return nil
}

func (e *mapEntry) Commit() bool {
	if !e.hasKey || !e.hasValue {
		return false
	}
	e.mp.Set(e.key, e.val)
	return true
}
