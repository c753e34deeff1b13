// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text implements the lexical layer of the protocol buffer text
// format. It has no semantic understanding of messages: a Scanner hands out
// punctuation, field keys and scalar literals on request, and the caller
// decides which of them the grammar expects next.
//
// A Scanner owns the only cursor into its input. Callers that recurse into
// nested values share one *Scanner rather than copying it, so every token is
// consumed exactly once and in input order.
//
// The accepted grammar follows the C++ implementation (see
// google::protobuf::TextFormat), which is the reference for the format:
//   - whitespace and '#' line comments may appear between any two tokens
//   - field keys are identifiers, decimal field numbers, or bracketed,
//     dotted extension names such as [pkg.ext]
//   - messages are delimited by '{' '}' or '<' '>'; lists by '[' ']'
//   - string values are one or more adjacent quoted literals
package text
