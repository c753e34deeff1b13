// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genid contains identifiers that the text format treats specially.
package genid

// Field names of the synthetic entry object that spells one map entry.
const (
	MapEntry_Key_field_name   = "key"
	MapEntry_Value_field_name = "value"
)

// Field number bounds.
const (
	MinValidNumber        = 1
	FirstReservedNumber   = 19000
	LastReservedNumber    = 19999
	MaxValidNumber        = 1<<29 - 1
	DefaultRecursionLimit = 10000
)

// IsValidNumber reports whether n is a field number a schema may declare.
func IsValidNumber(n int64) bool {
	if n < MinValidNumber || n > MaxValidNumber {
		return false
	}
	return n < FirstReservedNumber || n > LastReservedNumber
}
