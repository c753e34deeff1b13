// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"strconv"

	"github.com/protocolbuffers/textpb/internal/errors"
)

// FieldNames resolves field keys of the message currently being scanned.
type FieldNames interface {
	// Number returns the field number for an identifier key.
	Number(name string) (int32, bool)
	// Known reports whether a numeric key may appear in the message.
	Known(num int32) bool
}

// NextFieldNumber reads a plain field key and resolves it against names.
// It reports false only at the end of input. A key that names doesn't know
// is an UnknownField error; anything that is not a key is a Structural error.
func (s *Scanner) NextFieldNumber(names FieldNames) (int32, bool, error) {
	if s.Complete() {
		return 0, false, nil
	}

	if size := parseIdent(s.in, false); size > 0 {
		name := string(s.in[:size])
		num, ok := names.Number(name)
		if !ok {
			return 0, false, s.Errorf(errors.UnknownField, "unknown field: %s", name)
		}
		s.consume(size)
		return num, true, nil
	}

	// Field number. Identify if input is a valid number that is not negative
	// and is decimal integer within 32-bit range.
	if num := parseNumber(s.in); num.size > 0 {
		str := num.string(s.in)
		if num.neg || num.kind != numDec {
			return 0, false, s.Errorf(errors.Structural, "invalid field number: %s", str)
		}
		n, err := strconv.ParseInt(str, 10, 32)
		if err != nil {
			return 0, false, s.Errorf(errors.Structural, "invalid field number: %s", str)
		}
		if !names.Known(int32(n)) {
			return 0, false, s.Errorf(errors.UnknownField, "unknown field: %s", str)
		}
		s.consume(num.size)
		return int32(n), true, nil
	}

	switch ch := s.in[0]; ch {
	case '}', '>', ']':
		return 0, false, s.Errorf(errors.Structural, "unexpected close character %q", ch)
	}
	return 0, false, s.Errorf(errors.Structural, "invalid field name: %s", errId(s.in))
}

// AtKey reports whether the next token can start a field key: an
// identifier, a decimal field number or a bracketed extension name.
func (s *Scanner) AtKey() bool {
	if s.Complete() {
		return false
	}
	if s.in[0] == '[' || parseIdent(s.in, false) > 0 {
		return true
	}
	num := parseNumber(s.in)
	return num.size > 0 && !num.neg && num.kind == numDec
}

// NextKey reads a key inside a map entry without resolving it. Identifiers
// and field numbers are returned as written, extension names with their
// brackets. It reports false if the next token is not a key.
func (s *Scanner) NextKey() (string, bool, error) {
	if !s.AtKey() {
		return "", false, nil
	}
	if s.in[0] == '[' {
		name, err := s.parseTypeName()
		if err != nil {
			return "", false, err
		}
		return "[" + name + "]", true, nil
	}
	size := parseIdent(s.in, false)
	if size == 0 {
		size = parseNumber(s.in).size
	}
	key := string(s.in[:size])
	s.consume(size)
	return key, true, nil
}

// NextOptionalEnumName reads an unsigned identifier if one is next.
func (s *Scanner) NextOptionalEnumName() (string, bool) {
	size := parseIdent(s.in, false)
	if size == 0 {
		return "", false
	}
	name := string(s.in[:size])
	s.consume(size)
	return name, true
}

// NextOptionalExtensionKey reads an extension field key if one is next. The
// key is a dotted name enclosed in [ and ] and is returned without the
// brackets. The C++ parser does not handle many legal URL strings. This
// implementation is more liberal and allows for the pattern
// ^[-_a-zA-Z0-9]+([./][-_a-zA-Z0-9]+)*`). Whitespaces and comments are allowed
// in between [ ], '.', '/' and the sub names.
func (s *Scanner) NextOptionalExtensionKey() (string, bool, error) {
	if len(s.in) == 0 || s.in[0] != '[' {
		return "", false, nil
	}
	name, err := s.parseTypeName()
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (s *Scanner) parseTypeName() (string, error) {
	startPos := s.Offset()
	invalid := func(rest []byte) error {
		return s.ErrorAt(startPos, errors.Structural, "invalid extension field name: %s",
			s.orig[startPos:len(s.orig)-len(rest)])
	}

	// Use alias b to advance first in order to use s.in for error handling.
	b := consume(s.in[1:], 0)
	if len(b) == 0 {
		return "", s.ErrorAt(len(s.orig), errors.TruncatedInput, "unexpected EOF")
	}

	var name []byte
	for len(b) > 0 && isTypeNameChar(b[0]) {
		name = append(name, b[0])
		b = b[1:]
	}
	b = consume(b, 0)

	var closed bool
	for len(b) > 0 && !closed {
		switch {
		case b[0] == ']':
			b = b[1:]
			closed = true

		case b[0] == '/', b[0] == '.':
			if len(name) > 0 && (name[len(name)-1] == '/' || name[len(name)-1] == '.') {
				return "", invalid(b[1:])
			}
			name = append(name, b[0])
			b = consume(b[1:], 0)
			for len(b) > 0 && isTypeNameChar(b[0]) {
				name = append(name, b[0])
				b = b[1:]
			}
			b = consume(b, 0)

		default:
			return "", invalid(b[1:])
		}
	}

	if !closed {
		return "", s.ErrorAt(len(s.orig), errors.TruncatedInput, "unexpected EOF")
	}

	// First character cannot be '.'. Last character cannot be '.' or '/'.
	size := len(name)
	if size == 0 || name[0] == '.' || name[size-1] == '.' || name[size-1] == '/' {
		return "", invalid(b)
	}

	s.in = consume(b, 0)
	return string(name), nil
}

func isTypeNameChar(b byte) bool {
	return (b == '-' || b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z'))
}

// parseIdent parses an unquoted proto identifier and returns size.
// If allowNeg is true, it allows '-' to be the first character in the
// identifier. This is used when parsing literal values like -infinity, etc.
// Regular expression matches an identifier: `^[_a-zA-Z][_a-zA-Z0-9]*`
func parseIdent(input []byte, allowNeg bool) int {
	var size int

	s := input
	if len(s) == 0 {
		return 0
	}

	if allowNeg && s[0] == '-' {
		s = s[1:]
		size++
		if len(s) == 0 {
			return 0
		}
	}

	switch {
	case s[0] == '_',
		'a' <= s[0] && s[0] <= 'z',
		'A' <= s[0] && s[0] <= 'Z':
		s = s[1:]
		size++
	default:
		return 0
	}

	for len(s) > 0 && (s[0] == '_' ||
		'a' <= s[0] && s[0] <= 'z' ||
		'A' <= s[0] && s[0] <= 'Z' ||
		'0' <= s[0] && s[0] <= '9') {
		s = s[1:]
		size++
	}

	if len(s) > 0 && !isDelim(s[0]) {
		return 0
	}

	return size
}
