// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

import (
	"fmt"
	"math"

	"github.com/protocolbuffers/textpb/internal/errors"
)

// EnumValues is the closed set of values declared by an enum type.
type EnumValues struct {
	byName   map[string]int32
	byNumber map[int32]string
}

// NewEnumValues returns the value set declared by names, which maps each
// number to its name as generated code does. The map is copied.
func NewEnumValues(names map[int32]string) *EnumValues {
	e := &EnumValues{
		byName:   make(map[string]int32, len(names)),
		byNumber: make(map[int32]string, len(names)),
	}
	for n, s := range names {
		e.byNumber[n] = s
		e.byName[s] = n
	}
	return e
}

// WithAliases adds alternative names for declared numbers and returns e.
// It panics if an alias refers to an undeclared number.
func (e *EnumValues) WithAliases(aliases map[string]int32) *EnumValues {
	for s, n := range aliases {
		if _, ok := e.byNumber[n]; !ok {
			panic(fmt.Sprintf("textpb: enum alias %q refers to undeclared value %d", s, n))
		}
		e.byName[s] = n
	}
	return e
}

// Number returns the value named s.
func (e *EnumValues) Number(s string) (int32, bool) {
	n, ok := e.byName[s]
	return n, ok
}

// Name returns the primary name of the value n.
func (e *EnumValues) Name(n int32) (string, bool) {
	s, ok := e.byNumber[n]
	return s, ok
}

// Enum is the constraint satisfied by generated enum types.
type Enum interface {
	~int32
	EnumValues() *EnumValues
}

// resolveEnum reads an enum value by name or by number. A name is never
// reinterpreted as a number.
func (d *Decoder) resolveEnum(values *EnumValues) (int32, error) {
	start := d.s.Offset()
	if name, ok := d.s.NextOptionalEnumName(); ok {
		if n, ok := values.Number(name); ok {
			return n, nil
		}
		return 0, d.s.ErrorAt(start, errors.UnrecognizedEnumValue, "unrecognized enum value %s", name)
	}
	n, err := d.s.NextSInt()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, d.s.ErrorAt(start, errors.MalformedText, "invalid value for enum: %d", n)
	}
	if _, ok := values.Name(int32(n)); !ok {
		return 0, d.s.ErrorAt(start, errors.UnrecognizedEnumValue, "unrecognized enum value %d", n)
	}
	return int32(n), nil
}

func valuesOf[E Enum]() *EnumValues {
	var e E
	return e.EnumValues()
}

// DecodeSingularEnum reads "name: VALUE" or "name: 1" into v.
func DecodeSingularEnum[E Enum](d *Decoder, v *E) error {
	var n int32
	if err := d.DecodeEnumNumber(valuesOf[E](), &n); err != nil {
		return err
	}
	*v = E(n)
	return nil
}

// DecodeOptionalEnum is like DecodeSingularEnum for fields with explicit
// presence.
func DecodeOptionalEnum[E Enum](d *Decoder, v **E) error {
	var e E
	if err := DecodeSingularEnum(d, &e); err != nil {
		return err
	}
	*v = &e
	return nil
}

// DecodeRepeatedEnum appends the values of a repeated enum field to v.
func DecodeRepeatedEnum[E Enum](d *Decoder, v *[]E) error {
	values := valuesOf[E]()
	if err := d.s.SkipRequiredColon(); err != nil {
		return err
	}
	return d.DecodeList(func() error {
		n, err := d.resolveEnum(values)
		if err != nil {
			return err
		}
		*v = append(*v, E(n))
		return nil
	})
}

// DecodeEnumNumber reads a singular enum field declared by values.
func (d *Decoder) DecodeEnumNumber(values *EnumValues, v *int32) error {
	if err := d.s.SkipRequiredColon(); err != nil {
		return err
	}
	n, err := d.resolveEnum(values)
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// DecodeRepeatedEnumNumbers appends the values of a repeated enum field
// declared by values to v.
func (d *Decoder) DecodeRepeatedEnumNumbers(values *EnumValues, v *[]int32) error {
	if err := d.s.SkipRequiredColon(); err != nil {
		return err
	}
	return d.DecodeList(func() error {
		n, err := d.resolveEnum(values)
		if err != nil {
			return err
		}
		*v = append(*v, n)
		return nil
	})
}
