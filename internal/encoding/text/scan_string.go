// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"bytes"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/protocolbuffers/textpb/internal/errors"
)

// NextStringValue reads a string value, which must be valid UTF-8 once
// escapes are resolved.
func (s *Scanner) NextStringValue() (string, error) {
	start := s.Offset()
	b, err := s.nextQuoted("string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", s.ErrorAt(start, errors.MalformedText, "contains invalid UTF-8")
	}
	return string(b), nil
}

// NextBytesValue reads a bytes value.
func (s *Scanner) NextBytesValue() ([]byte, error) {
	return s.nextQuoted("bytes")
}

// nextQuoted parses one or more back-to-back quoted literals, which are
// semantically treated as a single large string with all values concatenated.
//
// E.g., `"foo" "bar" "baz"` => "foobarbaz"
func (s *Scanner) nextQuoted(what string) ([]byte, error) {
	if s.Complete() {
		return nil, s.truncated()
	}
	if !isQuote(s.in[0]) {
		return nil, s.Errorf(errors.MalformedText, "invalid value for %s: %s", what, errId(s.in))
	}
	// Note that the ending quote is sufficient to unambiguously mark the end
	// of a string. Thus, the text grammar does not require intervening
	// whitespace or control characters in-between strings.
	// Thus, the following is valid:
	//	`"foo"'bar'"baz"` => "foobarbaz"
	out := []byte{}
	for len(s.in) > 0 && isQuote(s.in[0]) {
		var err error
		if out, err = s.parseString(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func isQuote(c byte) bool { return c == '"' || c == '\'' }

// parseString parses a string value enclosed in " or ' and appends the
// unescaped bytes to out.
func (s *Scanner) parseString(out []byte) ([]byte, error) {
	in := s.in
	quote := in[0]
	in = in[1:]
	i := indexNeedEscape(in)
	in, out = in[i:], append(out, in[:i]...)
	for len(in) > 0 {
		// errf reports a problem with the escape or rune at the head of in.
		errf := func(kind error, f string, x ...interface{}) error {
			return s.ErrorAt(len(s.orig)-len(in), kind, f, x...)
		}
		switch r, n := utf8.DecodeRune(in); {
		case r == utf8.RuneError && n == 1:
			return nil, errf(errors.MalformedText, "invalid UTF-8 detected")
		case r == 0 || r == '\n':
			return nil, errf(errors.MalformedText, "invalid character %q in string", r)
		case r == rune(quote):
			in = in[1:]
			s.consume(len(s.in) - len(in))
			return out, nil
		case r == '\\':
			if len(in) < 2 {
				return nil, s.ErrorAt(len(s.orig), errors.TruncatedInput, "unexpected EOF")
			}
			switch r := in[1]; r {
			case '"', '\'', '\\', '?':
				in, out = in[2:], append(out, r)
			case 'a':
				in, out = in[2:], append(out, '\a')
			case 'b':
				in, out = in[2:], append(out, '\b')
			case 'n':
				in, out = in[2:], append(out, '\n')
			case 'r':
				in, out = in[2:], append(out, '\r')
			case 't':
				in, out = in[2:], append(out, '\t')
			case 'v':
				in, out = in[2:], append(out, '\v')
			case 'f':
				in, out = in[2:], append(out, '\f')
			case '0', '1', '2', '3', '4', '5', '6', '7':
				// One, two, or three octal characters.
				n := len(in[1:]) - len(bytes.TrimLeft(in[1:], "01234567"))
				if n > 3 {
					n = 3
				}
				v, err := strconv.ParseUint(string(in[1:1+n]), 8, 8)
				if err != nil {
					return nil, errf(errors.MalformedText, "invalid octal escape code %q in string", in[:1+n])
				}
				in, out = in[1+n:], append(out, byte(v))
			case 'x':
				// One or two hexadecimal characters.
				n := len(in[2:]) - len(bytes.TrimLeft(in[2:], "0123456789abcdefABCDEF"))
				if n > 2 {
					n = 2
				}
				v, err := strconv.ParseUint(string(in[2:2+n]), 16, 8)
				if err != nil {
					return nil, errf(errors.MalformedText, "invalid hex escape code %q in string", in[:2+n])
				}
				in, out = in[2+n:], append(out, byte(v))
			case 'u', 'U':
				// Four or eight hexadecimal characters
				n := 6
				if r == 'U' {
					n = 10
				}
				if len(in) < n {
					return nil, s.ErrorAt(len(s.orig), errors.TruncatedInput, "unexpected EOF")
				}
				v, err := strconv.ParseUint(string(in[2:n]), 16, 32)
				if utf8.MaxRune < v || err != nil {
					return nil, errf(errors.MalformedText, "invalid Unicode escape code %q in string", in[:n])
				}
				esc := in[:n]
				in = in[n:]

				r := rune(v)
				if utf16.IsSurrogate(r) {
					// The pair must continue with another \u escape.
					if (len(in) > 0 && in[0] != '\\') || (len(in) > 1 && in[1] != 'u') {
						return nil, s.ErrorAt(len(s.orig)-len(in)-len(esc), errors.MalformedText, "invalid Unicode escape code %q in string", esc)
					}
					if len(in) < 6 {
						return nil, s.ErrorAt(len(s.orig), errors.TruncatedInput, "unexpected EOF")
					}
					v, err := strconv.ParseUint(string(in[2:6]), 16, 16)
					r = utf16.DecodeRune(r, rune(v))
					if in[0] != '\\' || in[1] != 'u' || r == unicode.ReplacementChar || err != nil {
						return nil, errf(errors.MalformedText, "invalid Unicode escape code %q in string", append(esc[:n:n], in[:6]...))
					}
					in = in[6:]
				}
				out = append(out, string(r)...)
			default:
				return nil, errf(errors.MalformedText, "invalid escape code %q in string", in[:2])
			}
		default:
			i := indexNeedEscape(in[n:])
			in, out = in[n+i:], append(out, in[:n+i]...)
		}
	}
	return nil, s.ErrorAt(len(s.orig), errors.TruncatedInput, "unexpected EOF")
}

// indexNeedEscape returns the index of the character that needs
// escaping. If no characters need escaping, this returns the input length.
func indexNeedEscape(b []byte) int {
	for i := 0; i < len(b); i++ {
		if c := b[i]; c < ' ' || c == '"' || c == '\'' || c == '\\' || c >= 0x7f {
			return i
		}
	}
	return len(b)
}
