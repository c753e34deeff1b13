// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors implements functions to manipulate errors.
//
// Every error produced by this module matches the sentinel Error.
// Decoding failures additionally match exactly one of the kind sentinels
// below, so that callers can classify a failure without comparing strings.
package errors

import (
	"errors"
	"fmt"
)

// Error is a sentinel matching all errors produced by this package.
var Error = errors.New("textpb error")

// Kind sentinels. Each decoding failure wraps exactly one of these.
var (
	Structural            = newKind("structural error")
	MalformedText         = newKind("malformed text")
	UnrecognizedEnumValue = newKind("unrecognized enum value")
	UnknownField          = newKind("unknown field")
	MissingFieldNames     = newKind("missing field names")
	TruncatedInput        = newKind("truncated input")
	Unimplemented         = newKind("unimplemented")
	RecursionLimit        = newKind("exceeded maximum recursion depth")
)

type kindError struct{ s string }

func newKind(s string) error { return &kindError{s} }

func (e *kindError) Error() string { return e.s }

func (e *kindError) Is(target error) bool { return target == Error }

const prefix = "textpb: "

// New formats a string according to the format specifier and arguments and
// returns an error that has a "textpb" prefix.
func New(f string, x ...interface{}) error {
	return &prefixError{s: format(f, x...)}
}

// Kinded is like New, but the returned error also matches kind.
func Kinded(kind error, f string, x ...interface{}) error {
	return &prefixError{s: format(f, x...), kind: kind}
}

type prefixError struct {
	s    string
	kind error
}

func (e *prefixError) Error() string {
	return prefix + e.s
}

func (e *prefixError) Unwrap() error {
	if e.kind != nil {
		return e.kind
	}
	return Error
}

func (e *prefixError) Is(target error) bool {
	return target == Error
}

// Wrap returns an error that has a "textpb" prefix, the formatted string described
// by the format specifier and arguments, and a suffix of err. The error wraps err.
func Wrap(err error, f string, x ...interface{}) error {
	return &wrapError{
		s:   format(f, x...),
		err: err,
	}
}

type wrapError struct {
	s   string
	err error
}

func (e *wrapError) Error() string {
	return format("%v%v: %v", prefix, e.s, e.err)
}

func (e *wrapError) Unwrap() error {
	return e.err
}

func (e *wrapError) Is(target error) bool {
	return target == Error
}

// KindOf reports which kind sentinel err matches, or nil if none.
func KindOf(err error) error {
	for _, k := range []error{
		Structural, MalformedText, UnrecognizedEnumValue, UnknownField,
		MissingFieldNames, TruncatedInput, Unimplemented, RecursionLimit,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Is is errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

func format(f string, x ...interface{}) string {
	// avoid "textpb: " prefix when chaining
	for i := 0; i < len(x); i++ {
		switch e := x[i].(type) {
		case *prefixError:
			x[i] = e.s
		case *wrapError:
			x[i] = format("%v: %v", e.s, e.err)
		}
	}
	return fmt.Sprintf(f, x...)
}
