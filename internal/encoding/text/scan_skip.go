// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"github.com/protocolbuffers/textpb/internal/errors"
)

// SkipValue consumes the value of a field whose key has just been read,
// including its ':' separator, which only messages and lists may omit. The
// value is checked for well-formed structure only; scalars are not
// converted. Nested messages and lists count against depth.
func (s *Scanner) SkipValue(depth int) error {
	colon := s.SkipOptionalColon()
	if s.Complete() {
		return s.truncated()
	}
	switch s.in[0] {
	case '{', '<':
		return s.skipMessage(depth)
	case '[':
		if depth <= 0 {
			return s.Errorf(errors.RecursionLimit, "exceeded maximum recursion depth")
		}
		s.consume(1)
		for first := true; !s.SkipOptionalEndArray(); first = false {
			if !first {
				if err := s.SkipRequiredComma(); err != nil {
					return err
				}
			}
			if s.Complete() {
				return s.truncated()
			}
			var err error
			if c := s.in[0]; c == '{' || c == '<' {
				err = s.skipMessage(depth - 1)
			} else {
				err = s.skipScalar()
			}
			if err != nil {
				return err
			}
		}
		return nil
	default:
		if !colon {
			return s.Errorf(errors.Structural, "missing field separator :")
		}
		return s.skipScalar()
	}
}

func (s *Scanner) skipMessage(depth int) error {
	if depth <= 0 {
		return s.Errorf(errors.RecursionLimit, "exceeded maximum recursion depth")
	}
	terminator, err := s.SkipObjectStart()
	if err != nil {
		return err
	}
	for !s.SkipOptionalObjectEnd(terminator) {
		if !s.AtKey() {
			return s.MissingTerminator(terminator)
		}
		if err := s.skipFieldKey(); err != nil {
			return err
		}
		if err := s.SkipValue(depth - 1); err != nil {
			return err
		}
		s.SkipOptionalSeparator()
	}
	return nil
}

// skipFieldKey consumes the field key that AtKey reported without
// resolving it.
func (s *Scanner) skipFieldKey() error {
	if s.in[0] == '[' {
		_, err := s.parseTypeName()
		return err
	}
	if size := parseIdent(s.in, false); size > 0 {
		s.consume(size)
		return nil
	}
	s.consume(parseNumber(s.in).size)
	return nil
}

func (s *Scanner) skipScalar() error {
	if isQuote(s.in[0]) {
		_, err := s.nextQuoted("value")
		return err
	}
	if size := parseIdent(s.in, true); size > 0 {
		s.consume(size)
		return nil
	}
	if num := parseNumber(s.in); num.size > 0 {
		s.consume(num.size)
		return nil
	}
	return s.Errorf(errors.Structural, "invalid scalar value: %s", errId(s.in))
}
