// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

import (
	"github.com/protocolbuffers/textpb/internal/errors"
	"github.com/protocolbuffers/textpb/internal/genid"
)

// MapEntry receives the slots of one "{key: ... value: ...}" map entry.
type MapEntry interface {
	// DecodeKey reads the value of the key slot, including its colon.
	DecodeKey(d *Decoder) error
	// DecodeValue reads the value of the value slot, including any colon.
	DecodeValue(d *Decoder) error
	// Commit stores the entry in its map. It reports false if either slot
	// was never read.
	Commit() bool
}

// DecodeMapField reads one occurrence of a map field: a single entry or a
// bracketed list of entries. newEntry is called once per entry.
func (d *Decoder) DecodeMapField(newEntry func() MapEntry) error {
	d.s.SkipOptionalColon()
	return d.DecodeList(func() error {
		return d.decodeMapEntry(newEntry())
	})
}

func (d *Decoder) decodeMapEntry(e MapEntry) error {
	if d.depth--; d.depth < 0 {
		return d.s.Errorf(errors.RecursionLimit, "exceeded maximum recursion depth")
	}
	defer func() { d.depth++ }()

	terminator, err := d.s.SkipObjectStart()
	if err != nil {
		return err
	}
	for {
		end := d.s.Offset()
		if d.s.SkipOptionalObjectEnd(terminator) {
			if !e.Commit() {
				return d.s.ErrorAt(end, errors.MalformedText, "map entry is missing key or value")
			}
			return nil
		}
		key, ok, err := d.s.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return d.s.MissingTerminator(terminator)
		}
		switch key {
		case genid.MapEntry_Key_field_name:
			err = e.DecodeKey(d)
		case genid.MapEntry_Value_field_name:
			err = e.DecodeValue(d)
		default:
			return d.s.ErrorAt(end, errors.UnknownField, "unknown map entry field: %s", key)
		}
		if err != nil {
			return err
		}
		d.s.SkipOptionalSeparator()
	}
}

// mapEntry is a MapEntry for a Go map. A slot read twice keeps the last
// value.
type mapEntry[K comparable, V any] struct {
	m           *map[K]V
	key         K
	value       V
	hasKey      bool
	hasValue    bool
	decodeKey   func(d *Decoder, k *K) error
	decodeValue func(d *Decoder, v *V) error
}

func (e *mapEntry[K, V]) DecodeKey(d *Decoder) error {
	if err := e.decodeKey(d, &e.key); err != nil {
		return err
	}
	e.hasKey = true
	return nil
}

func (e *mapEntry[K, V]) DecodeValue(d *Decoder) error {
	if err := e.decodeValue(d, &e.value); err != nil {
		return err
	}
	e.hasValue = true
	return nil
}

func (e *mapEntry[K, V]) Commit() bool {
	if !e.hasKey || !e.hasValue {
		return false
	}
	if *e.m == nil {
		*e.m = make(map[K]V)
	}
	(*e.m)[e.key] = e.value
	return true
}

func decodeMapWith[K comparable, V any](d *Decoder, key ScalarKind[K], m *map[K]V, decodeValue func(*Decoder, *V) error) error {
	return d.DecodeMapField(func() MapEntry {
		return &mapEntry[K, V]{
			m: m,
			decodeKey: func(d *Decoder, k *K) error {
				return DecodeSingular(d, key, k)
			},
			decodeValue: decodeValue,
		}
	})
}

// DecodeMap reads one occurrence of a map field with scalar values into m.
// A key that is already present is overwritten.
func DecodeMap[K comparable, V any](d *Decoder, key ScalarKind[K], value ScalarKind[V], m *map[K]V) error {
	return decodeMapWith(d, key, m, func(d *Decoder, v *V) error {
		return DecodeSingular(d, value, v)
	})
}

// DecodeEnumMap reads one occurrence of a map field with enum values into m.
func DecodeEnumMap[K comparable, E Enum](d *Decoder, key ScalarKind[K], m *map[K]E) error {
	return decodeMapWith(d, key, m, DecodeSingularEnum[E])
}

// DecodeMessageMap reads one occurrence of a map field with message values
// into m. Each entry's value is a fresh message.
func DecodeMessageMap[K comparable, T any, P MessagePointer[T]](d *Decoder, key ScalarKind[K], m *map[K]P) error {
	return decodeMapWith(d, key, m, DecodeSingularMessage[T, P])
}
