// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"math"
	"strconv"
	"strings"

	"github.com/protocolbuffers/textpb/internal/errors"
)

const (
	numDec uint8 = (1 << iota) / 2
	numHex
	numOct
	numFloat
)

// number is the result of parsing out a valid number from parseNumber. It
// contains data for doing float or integer conversion via the strconv package
// in conjunction with the input bytes.
type number struct {
	kind uint8
	neg  bool
	size int
	// if neg, this is the length of whitespace and comments between
	// the minus sign and the rest fo the number literal
	sep int
}

func (num number) string(data []byte) string {
	strSize := num.size
	last := num.size - 1
	if num.kind == numFloat && (data[last] == 'f' || data[last] == 'F') {
		strSize = last
	}
	if num.neg && num.sep > 0 {
		// strip whitespace/comments between negative sign and the rest
		strLen := strSize - num.sep
		str := make([]byte, strLen)
		str[0] = data[0]
		copy(str[1:], data[num.sep+1:strSize])
		return string(str)
	}
	return string(data[:strSize])
}

// parseNumber constructs a number object from given input. It allows for the
// following patterns:
//
//	integer: ^-?([1-9][0-9]*|0[xX][0-9a-fA-F]+|0[0-7]*)
//	float: ^-?((0|[1-9][0-9]*)?([.][0-9]*)?([eE][+-]?[0-9]+)?[fF]?)
//
// It also returns the number of parsed bytes for the given number, 0 if it is
// not a number.
func parseNumber(input []byte) number {
	kind := numDec
	var size int
	var neg bool

	s := input
	if len(s) == 0 {
		return number{}
	}

	// Optional -
	var sep int
	if s[0] == '-' {
		neg = true
		s = s[1:]
		size++
		// Consume any whitespace or comments between the
		// negative sign and the rest of the number
		lenBefore := len(s)
		s = consume(s, 0)
		sep = lenBefore - len(s)
		size += sep
		if len(s) == 0 {
			return number{}
		}
	}

	switch {
	case s[0] == '0':
		if len(s) > 1 {
			switch {
			case s[1] == 'x' || s[1] == 'X':
				kind = numHex
				n := 2
				s = s[2:]
				for len(s) > 0 && (('0' <= s[0] && s[0] <= '9') ||
					('a' <= s[0] && s[0] <= 'f') ||
					('A' <= s[0] && s[0] <= 'F')) {
					s = s[1:]
					n++
				}
				if n == 2 {
					return number{}
				}
				size += n

			case '0' <= s[1] && s[1] <= '7':
				kind = numOct
				n := 2
				s = s[2:]
				for len(s) > 0 && '0' <= s[0] && s[0] <= '7' {
					s = s[1:]
					n++
				}
				size += n
			}

			if kind&(numHex|numOct) > 0 {
				if len(s) > 0 && !isDelim(s[0]) {
					return number{}
				}
				return number{kind: kind, neg: neg, size: size, sep: sep}
			}
		}
		s = s[1:]
		size++

	case '1' <= s[0] && s[0] <= '9':
		n := 1
		s = s[1:]
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
			n++
		}
		size += n

	case s[0] == '.':
		// Set kind to numFloat to signify the intent to parse as float. And
		// that it needs to have other digits after '.'.
		kind = numFloat

	default:
		return number{}
	}

	// . followed by 0 or more digits.
	if len(s) > 0 && s[0] == '.' {
		n := 1
		s = s[1:]
		// If decimal point was before any digits, it should be followed by
		// other digits.
		if len(s) == 0 && kind == numFloat {
			return number{}
		}
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
			n++
		}
		size += n
		kind = numFloat
	}

	// e or E followed by an optional - or + and 1 or more digits.
	if len(s) >= 2 && (s[0] == 'e' || s[0] == 'E') {
		kind = numFloat
		s = s[1:]
		n := 1
		if s[0] == '+' || s[0] == '-' {
			s = s[1:]
			n++
			if len(s) == 0 {
				return number{}
			}
		}
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
			n++
		}
		size += n
	}

	// Optional suffix f or F for floats.
	if len(s) > 0 && (s[0] == 'f' || s[0] == 'F') {
		kind = numFloat
		s = s[1:]
		size++
	}

	// Check that next byte is a delimiter or it is at the end.
	if len(s) > 0 && !isDelim(s[0]) {
		return number{}
	}

	return number{kind: kind, neg: neg, size: size, sep: sep}
}

// nextInteger reads an integer literal and returns its canonical spelling.
func (s *Scanner) nextInteger(what string) (string, number, error) {
	if s.Complete() {
		return "", number{}, s.truncated()
	}
	num := parseNumber(s.in)
	if num.size == 0 || num.kind == numFloat {
		return "", number{}, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, errId(s.in))
	}
	return num.string(s.in), num, nil
}

// NextSInt reads a signed 64-bit integer.
func (s *Scanner) NextSInt() (int64, error) {
	return s.nextSInt("int64", 64)
}

// NextUInt reads an unsigned 64-bit integer.
func (s *Scanner) NextUInt() (uint64, error) {
	return s.nextUInt("uint64", 64)
}

// NextInt32 reads a signed integer within 32-bit range.
func (s *Scanner) NextInt32() (int32, error) {
	n, err := s.nextSInt("int32", 32)
	return int32(n), err
}

// NextUint32 reads an unsigned integer within 32-bit range.
func (s *Scanner) NextUint32() (uint32, error) {
	n, err := s.nextUInt("uint32", 32)
	return uint32(n), err
}

func (s *Scanner) nextSInt(what string, bitSize int) (int64, error) {
	str, num, err := s.nextInteger(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(str, 0, bitSize)
	if err != nil {
		return 0, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, str)
	}
	s.consume(num.size)
	return n, nil
}

func (s *Scanner) nextUInt(what string, bitSize int) (uint64, error) {
	str, num, err := s.nextInteger(what)
	if err != nil {
		return 0, err
	}
	if num.neg {
		return 0, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, str)
	}
	n, err := strconv.ParseUint(str, 0, bitSize)
	if err != nil {
		return 0, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, str)
	}
	s.consume(num.size)
	return n, nil
}

// These are the supported float literals which C++ permits case-insensitive
// variants of these.
var floatLits = map[string]float64{
	"nan":       math.NaN(),
	"inf":       math.Inf(1),
	"infinity":  math.Inf(1),
	"-inf":      math.Inf(-1),
	"-infinity": math.Inf(-1),
}

// NextDouble reads a floating point value. Integer literals are accepted and
// values beyond the float64 range become infinities.
func (s *Scanner) NextDouble() (float64, error) {
	return s.nextFloat("double")
}

// NextFloat is like NextDouble but rounds the value to float32. Overflows are
// treated as (-)infinity.
func (s *Scanner) NextFloat() (float32, error) {
	f, err := s.nextFloat("float")
	return float32(f), err
}

func (s *Scanner) nextFloat(what string) (float64, error) {
	if s.Complete() {
		return 0, s.truncated()
	}
	if size := parseIdent(s.in, true); size > 0 {
		if f, ok := floatLits[strings.ToLower(string(s.in[:size]))]; ok {
			s.consume(size)
			return f, nil
		}
		return 0, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, s.in[:size])
	}
	num := parseNumber(s.in)
	if num.size == 0 {
		return 0, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, errId(s.in))
	}
	str := num.string(s.in)
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		if nerr, ok := err.(*strconv.NumError); !ok || nerr.Err != strconv.ErrRange {
			return 0, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, str)
		}
	}
	s.consume(num.size)
	return f, nil
}

// These exact boolean literals are the ones supported in C++.
var boolLits = map[string]bool{
	"t":     true,
	"true":  true,
	"True":  true,
	"f":     false,
	"false": false,
	"False": false,
}

// NextBool reads a boolean literal. The unsigned integers 0 and 1 are also
// accepted in any base: 00, 0x0, 01, 0x1, etc.
func (s *Scanner) NextBool() (bool, error) {
	if s.Complete() {
		return false, s.truncated()
	}
	if size := parseIdent(s.in, false); size > 0 {
		if b, ok := boolLits[string(s.in[:size])]; ok {
			s.consume(size)
			return b, nil
		}
		return false, s.Errorf(errors.MalformedText, "invalid value for bool: %s", s.in[:size])
	}
	if num := parseNumber(s.in); num.size > 0 && !num.neg && num.kind != numFloat {
		if n, err := strconv.ParseUint(num.string(s.in), 0, 64); err == nil && n <= 1 {
			s.consume(num.size)
			return n == 1, nil
		}
	}
	return false, s.Errorf(errors.MalformedText, "invalid value for bool: %s", errId(s.in))
}
