// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

import "github.com/protocolbuffers/textpb/internal/errors"

// Error matches every error produced while decoding.
var Error = errors.Error

// Error kinds. A failed decode matches exactly one of these under errors.Is.
var (
	// ErrStructural reports a missing or misplaced colon, comma, bracket or
	// terminator.
	ErrStructural = errors.Structural
	// ErrMalformedText reports a token that cannot be converted to the field
	// type, or a map entry missing its key or value.
	ErrMalformedText = errors.MalformedText
	// ErrUnrecognizedEnumValue reports an enum name or number outside the
	// enum's declared values.
	ErrUnrecognizedEnumValue = errors.UnrecognizedEnumValue
	// ErrUnknownField reports a field name without an entry in the field
	// name table, a map entry field other than key or value, or an
	// extension name missing from the registry.
	ErrUnknownField = errors.UnknownField
	// ErrMissingFieldNames reports a message that does not implement
	// NameProvider.
	ErrMissingFieldNames = errors.MissingFieldNames
	// ErrTruncatedInput reports input ending before a nested object or
	// value is complete.
	ErrTruncatedInput = errors.TruncatedInput
	ErrUnimplemented  = errors.Unimplemented
	// ErrRecursionLimit reports nesting deeper than
	// UnmarshalOptions.RecursionLimit.
	ErrRecursionLimit = errors.RecursionLimit
)
