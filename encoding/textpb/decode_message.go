// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

// MessagePointer is satisfied by *T when *T is a Message.
type MessagePointer[T any] interface {
	*T
	Message
}

// decodeMessage reads a "{...}" or "<...>" object into m.
func (d *Decoder) decodeMessage(m Message) error {
	names, err := fieldNamesOf(m)
	if err != nil {
		return err
	}
	terminator, err := d.s.SkipObjectStart()
	if err != nil {
		return err
	}
	return d.decodeObject(m, names, terminator)
}

// DecodeMessageField reads a message field into m, merging with any fields
// already set. The colon before the value is optional.
func (d *Decoder) DecodeMessageField(m Message) error {
	d.s.SkipOptionalColon()
	return d.decodeMessage(m)
}

// DecodeRepeatedMessageField reads one occurrence of a repeated message
// field. add is called once per element and returns the message to fill.
func (d *Decoder) DecodeRepeatedMessageField(add func() Message) error {
	d.s.SkipOptionalColon()
	return d.DecodeList(func() error {
		return d.decodeMessage(add())
	})
}

// DecodeSingularMessage reads a message field into a fresh message that
// replaces *v once it has been decoded.
func DecodeSingularMessage[T any, P MessagePointer[T]](d *Decoder, v *P) error {
	d.s.SkipOptionalColon()
	m := P(new(T))
	if err := d.decodeMessage(m); err != nil {
		return err
	}
	*v = m
	return nil
}

// DecodeRepeatedMessage appends the messages of a repeated message field
// to v.
func DecodeRepeatedMessage[T any, P MessagePointer[T]](d *Decoder, v *[]P) error {
	d.s.SkipOptionalColon()
	return d.DecodeList(func() error {
		m := P(new(T))
		if err := d.decodeMessage(m); err != nil {
			return err
		}
		*v = append(*v, m)
		return nil
	})
}

// DecodeSingularGroup reads a group field. Groups are written like messages.
func DecodeSingularGroup[T any, P MessagePointer[T]](d *Decoder, v *P) error {
	return DecodeSingularMessage[T, P](d, v)
}

// DecodeRepeatedGroup appends the groups of a repeated group field to v.
func DecodeRepeatedGroup[T any, P MessagePointer[T]](d *Decoder, v *[]P) error {
	return DecodeRepeatedMessage[T, P](d, v)
}
