// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

import (
	"github.com/protocolbuffers/textpb/internal/encoding/text"
	"github.com/protocolbuffers/textpb/internal/errors"
	"github.com/protocolbuffers/textpb/internal/genid"
)

// Message is implemented by types that can be decoded from the text format.
//
// DecodeField is called once for every occurrence of a field whose key
// resolved to num. It must consume the field's value by calling exactly one
// of the Decoder's typed entry points. Returning nil without doing so for a
// number the message does not handle leaves the value unread and fails the
// decode at the next key.
type Message interface {
	DecodeField(d *Decoder, num FieldNumber) error
}

// NameProvider supplies the field name table of a message type. A message
// without it cannot be decoded.
type NameProvider interface {
	FieldNames() *FieldNames
}

// ExtensibleMessage is implemented by messages that declare extension
// ranges and store extension values.
type ExtensibleMessage interface {
	Message
	// MessageName identifies the message type in an ExtensionRegistry.
	MessageName() string
	// ExtensionFields returns the set that decoded extensions are stored in.
	ExtensionFields() *ExtensionFields
}

// Unmarshal reads the given []byte into m using the default options.
func Unmarshal(b []byte, m Message) error {
	return UnmarshalOptions{}.Unmarshal(b, m)
}

// UnmarshalOptions is a configurable text format unmarshaler.
type UnmarshalOptions struct {
	// Extensions resolves extension fields. If nil, extensions named in
	// brackets fail as unknown fields and extensions written by number are
	// skipped.
	Extensions *ExtensionRegistry

	// RecursionLimit limits how deeply messages may be nested.
	// If zero, a default limit is applied.
	RecursionLimit int
}

// Unmarshal reads the given []byte into m. Fields present in the input are
// merged into m; fields absent from the input are left untouched.
func (o UnmarshalOptions) Unmarshal(b []byte, m Message) error {
	return NewDecoder(b, o).Decode(m)
}

// Decoder holds the state of one decode: the input cursor shared by every
// nested call and the extension registry. It is not safe for concurrent use.
type Decoder struct {
	s    *text.Scanner
	opts UnmarshalOptions
	// depth is the remaining nesting budget.
	depth int
}

// NewDecoder returns a Decoder reading b.
func NewDecoder(b []byte, opts UnmarshalOptions) *Decoder {
	if opts.RecursionLimit == 0 {
		opts.RecursionLimit = genid.DefaultRecursionLimit
	}
	return &Decoder{
		s:     text.NewScanner(b),
		opts:  opts,
		depth: opts.RecursionLimit,
	}
}

// Decode reads the whole remaining input as the body of m.
func (d *Decoder) Decode(m Message) error {
	names, err := fieldNamesOf(m)
	if err != nil {
		return err
	}
	return d.decodeObject(m, names, 0)
}

// Complete reports whether all input has been consumed.
func (d *Decoder) Complete() bool {
	return d.s.Complete()
}

// Extensions returns the registry in use, which may be nil.
func (d *Decoder) Extensions() *ExtensionRegistry {
	return d.opts.Extensions
}

func fieldNamesOf(m Message) (*FieldNames, error) {
	if np, ok := m.(NameProvider); ok {
		if names := np.FieldNames(); names != nil {
			return names, nil
		}
	}
	return nil, errors.Kinded(errors.MissingFieldNames, "%T does not provide field names", m)
}

// decodeObject decodes fields into m until terminator, or until the end of
// input if terminator is 0.
func (d *Decoder) decodeObject(m Message, names *FieldNames, terminator byte) error {
	if d.depth--; d.depth < 0 {
		return d.s.Errorf(errors.RecursionLimit, "exceeded maximum recursion depth")
	}
	defer func() { d.depth++ }()

	for {
		if terminator != 0 && d.s.SkipOptionalObjectEnd(terminator) {
			return nil
		}

		start := d.s.Offset()
		name, ok, err := d.s.NextOptionalExtensionKey()
		if err != nil {
			return err
		}
		if ok {
			if err := d.decodeNamedExtension(m, name, start); err != nil {
				return err
			}
		} else {
			if terminator != 0 && !d.s.AtKey() {
				return d.s.MissingTerminator(terminator)
			}
			num, ok, err := d.s.NextFieldNumber((*scanNames)(names))
			if err != nil {
				return err
			}
			if !ok {
				// End of input at the top level.
				return nil
			}
			if err := d.decodeField(m, names, FieldNumber(num)); err != nil {
				return err
			}
		}

		d.s.SkipOptionalSeparator()
	}
}

// decodeField dispatches a field read by name or number. Numbers that are
// not declared fields but lie in an extension range go to the extension
// resolver.
func (d *Decoder) decodeField(m Message, names *FieldNames, num FieldNumber) error {
	if names.has(num) || !names.IsExtension(num) {
		return m.DecodeField(d, num)
	}
	xm, ok := m.(ExtensibleMessage)
	if !ok {
		return d.s.SkipValue(d.depth)
	}
	return d.DecodeExtensionField(xm.ExtensionFields(), xm.MessageName(), num)
}

// decodeNamedExtension decodes a field written as [full.extension.name].
func (d *Decoder) decodeNamedExtension(m Message, name string, start int) error {
	xm, ok := m.(ExtensibleMessage)
	if !ok {
		return d.s.ErrorAt(start, errors.UnknownField, "unknown field: [%s]", name)
	}
	num, ok := d.opts.Extensions.FieldNumberForName(xm.MessageName(), name)
	if !ok {
		return d.s.ErrorAt(start, errors.UnknownField, "unknown field: [%s]", name)
	}
	return d.DecodeExtensionField(xm.ExtensionFields(), xm.MessageName(), num)
}

// DecodeList reads either a bracketed, comma-separated list of values or a
// single bare value, calling elem once per value. An empty list "[]" calls
// elem zero times.
func (d *Decoder) DecodeList(elem func() error) error {
	if !d.s.SkipOptionalBeginArray() {
		return elem()
	}
	for first := true; !d.s.SkipOptionalEndArray(); first = false {
		if !first {
			if err := d.s.SkipRequiredComma(); err != nil {
				return err
			}
		}
		if err := elem(); err != nil {
			return err
		}
	}
	return nil
}
