// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/protocolbuffers/textpb/internal/errors"
)

// Scanner is a cursor over textproto input.
type Scanner struct {
	// orig is used in reporting line and column.
	orig []byte
	// in contains the unconsumed input. It never starts with whitespace or
	// a comment.
	in []byte
}

// NewScanner returns a Scanner to read the given []byte.
func NewScanner(b []byte) *Scanner {
	s := &Scanner{orig: b, in: b}
	s.consume(0)
	return s
}

// Complete reports whether all input has been consumed.
func (s *Scanner) Complete() bool {
	return len(s.in) == 0
}

// Offset returns the index of the next unconsumed byte of the input.
func (s *Scanner) Offset() int {
	return len(s.orig) - len(s.in)
}

// Position returns line and column number of given index of the original input.
// It will panic if index is out of range.
func (s *Scanner) Position(idx int) (line int, column int) {
	b := s.orig[:idx]
	line = bytes.Count(b, []byte("\n")) + 1
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		b = b[i+1:]
	}
	column = utf8.RuneCount(b) + 1 // ignore multi-rune characters
	return line, column
}

// SkipRequiredColon consumes the ':' that must separate a scalar field name
// from its value.
func (s *Scanner) SkipRequiredColon() error {
	if s.tryConsumeChar(':') {
		return nil
	}
	if s.Complete() {
		return s.truncated()
	}
	return s.Errorf(errors.Structural, "missing field separator :")
}

// SkipOptionalColon consumes a ':' if present.
func (s *Scanner) SkipOptionalColon() bool {
	return s.tryConsumeChar(':')
}

// SkipOptionalBeginArray consumes a '[' if present.
func (s *Scanner) SkipOptionalBeginArray() bool {
	return s.tryConsumeChar('[')
}

// SkipOptionalEndArray consumes a ']' if present.
func (s *Scanner) SkipOptionalEndArray() bool {
	return s.tryConsumeChar(']')
}

// SkipRequiredComma consumes the ',' that must separate two list elements.
func (s *Scanner) SkipRequiredComma() error {
	if s.tryConsumeChar(',') {
		return nil
	}
	if s.Complete() {
		return s.truncated()
	}
	return s.Errorf(errors.Structural, "expected ',' or ']' but found %q", s.in[0])
}

// SkipObjectStart consumes the opening delimiter of a message value and
// returns the byte that must close it.
func (s *Scanner) SkipObjectStart() (terminator byte, err error) {
	if s.Complete() {
		return 0, s.truncated()
	}
	switch ch := s.in[0]; ch {
	case '{':
		s.consume(1)
		return '}', nil
	case '<':
		s.consume(1)
		return '>', nil
	default:
		return 0, s.Errorf(errors.Structural, "expected '{' or '<' but found %s", errId(s.in))
	}
}

// SkipOptionalObjectEnd consumes terminator if it is the next byte.
func (s *Scanner) SkipOptionalObjectEnd(terminator byte) bool {
	return s.tryConsumeChar(terminator)
}

// SkipOptionalSeparator consumes a ',' or ';' between two fields if present.
func (s *Scanner) SkipOptionalSeparator() {
	if len(s.in) > 0 && (s.in[0] == ',' || s.in[0] == ';') {
		s.consume(1)
	}
}

func (s *Scanner) tryConsumeChar(c byte) bool {
	if len(s.in) > 0 && s.in[0] == c {
		s.consume(1)
		return true
	}
	return false
}

// consume consumes n bytes of input and any subsequent whitespace or comments.
func (s *Scanner) consume(n int) {
	s.in = consume(s.in, n)
}

// consume consumes n bytes of input and any subsequent whitespace or comments.
func consume(b []byte, n int) []byte {
	b = b[n:]
	for len(b) > 0 {
		switch b[0] {
		case ' ', '\n', '\r', '\t', '\v', '\f':
			b = b[1:]
		case '#':
			if i := bytes.IndexByte(b, '\n'); i >= 0 {
				b = b[i+len("\n"):]
			} else {
				b = nil
			}
		default:
			return b
		}
	}
	return b
}

// Errorf returns an error of the given kind positioned at the cursor.
func (s *Scanner) Errorf(kind error, f string, x ...interface{}) error {
	return s.ErrorAt(s.Offset(), kind, f, x...)
}

// ErrorAt is like Errorf but reports the position of the byte at index pos.
func (s *Scanner) ErrorAt(pos int, kind error, f string, x ...interface{}) error {
	line, column := s.Position(pos)
	return errors.Kinded(kind, "(line %d:%d): %s", line, column, fmt.Sprintf(f, x...))
}

// MissingTerminator reports that an object was cut short: the next token is
// neither a field key nor terminator.
func (s *Scanner) MissingTerminator(terminator byte) error {
	if s.Complete() {
		return s.Errorf(errors.TruncatedInput, "unexpected EOF, expected %q", terminator)
	}
	return s.Errorf(errors.TruncatedInput, "unexpected %s, expected %q", errId(s.in), terminator)
}

func (s *Scanner) truncated() error {
	return s.Errorf(errors.TruncatedInput, "unexpected EOF")
}

// errId extracts a byte sequence that looks like an invalid ID
// (for the purposes of error reporting).
func errId(seq []byte) []byte {
	const maxLen = 32
	for i := 0; i < len(seq); {
		if i > maxLen {
			return append(seq[:i:i], "…"...)
		}
		r, size := utf8.DecodeRune(seq[i:])
		if r > utf8.RuneSelf || (r != '/' && isDelim(byte(r))) {
			if i == 0 {
				// Either the first byte is invalid UTF-8 or a
				// delimiter, or the first rune is non-ASCII.
				// Return it as-is.
				i = size
			}
			return seq[:i:i]
		}
		i += size
	}
	// No delimiter found.
	return seq
}

// isDelim returns true if given byte is a delimiter character.
func isDelim(c byte) bool {
	return !(c == '-' || c == '+' || c == '.' || c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9'))
}
