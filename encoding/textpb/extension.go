// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpb

import (
	"sort"
	"sync"

	"github.com/protocolbuffers/textpb/internal/errors"
	"github.com/protocolbuffers/textpb/internal/genid"
)

// ExtensionField holds the decoded value of one extension field. A repeated
// extension keeps accumulating into the same container across occurrences.
type ExtensionField interface {
	DecodeField(d *Decoder) error
}

// ExtensionType describes an extension field of a host message type.
type ExtensionType struct {
	// Extendee is the MessageName of the host message.
	Extendee string
	Number   FieldNumber
	// Name is the full name written between brackets, such as "pkg.ext".
	Name string
	// New returns an empty container for the field's value.
	New func() ExtensionField
}

type extensionKey struct {
	extendee string
	number   FieldNumber
}

type extensionNameKey struct {
	extendee string
	name     string
}

// ExtensionRegistry maps host message types and field numbers or names to
// extension types. Lookups are safe for concurrent use.
type ExtensionRegistry struct {
	mu       sync.RWMutex
	byNumber map[extensionKey]*ExtensionType
	byName   map[extensionNameKey]FieldNumber
}

// NewExtensionRegistry returns a registry holding types.
func NewExtensionRegistry(types ...*ExtensionType) (*ExtensionRegistry, error) {
	r := new(ExtensionRegistry)
	for _, xt := range types {
		if err := r.Register(xt); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds xt. It fails if the extendee already has an extension with
// the same number or name.
func (r *ExtensionRegistry) Register(xt *ExtensionType) error {
	if xt.New == nil {
		return errors.New("extension %s has no constructor", xt.Name)
	}
	if !genid.IsValidNumber(int64(xt.Number)) {
		return errors.New("extension %s has invalid field number %d", xt.Name, xt.Number)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byNumber == nil {
		r.byNumber = make(map[extensionKey]*ExtensionType)
		r.byName = make(map[extensionNameKey]FieldNumber)
	}
	k := extensionKey{xt.Extendee, xt.Number}
	if prev, ok := r.byNumber[k]; ok {
		return errors.New("extension number %d of %s is already registered by %s", xt.Number, xt.Extendee, prev.Name)
	}
	nk := extensionNameKey{xt.Extendee, xt.Name}
	if _, ok := r.byName[nk]; ok {
		return errors.New("extension %s of %s is already registered", xt.Name, xt.Extendee)
	}
	r.byNumber[k] = xt
	r.byName[nk] = xt.Number
	return nil
}

// FindByNumber returns the extension of extendee with field number num.
// A nil registry finds nothing.
func (r *ExtensionRegistry) FindByNumber(extendee string, num FieldNumber) (*ExtensionType, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	xt, ok := r.byNumber[extensionKey{extendee, num}]
	return xt, ok
}

// FieldNumberForName returns the field number of the extension of extendee
// with the given full name.
func (r *ExtensionRegistry) FieldNumberForName(extendee, name string) (FieldNumber, bool) {
	if r == nil {
		return 0, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	num, ok := r.byName[extensionNameKey{extendee, name}]
	return num, ok
}

// Len returns the number of registered extensions.
func (r *ExtensionRegistry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byNumber)
}

// ExtensionFields is the set of extension values of one message, keyed by
// field number. The zero value is empty and ready to use.
type ExtensionFields struct {
	m map[FieldNumber]ExtensionField
}

// Get returns the value of the extension num.
func (x *ExtensionFields) Get(num FieldNumber) (ExtensionField, bool) {
	f, ok := x.m[num]
	return f, ok
}

// Set stores the value of the extension num.
func (x *ExtensionFields) Set(num FieldNumber, f ExtensionField) {
	if x.m == nil {
		x.m = make(map[FieldNumber]ExtensionField)
	}
	x.m[num] = f
}

// Len returns the number of extensions present.
func (x *ExtensionFields) Len() int {
	return len(x.m)
}

// Range calls f for each extension in ascending field number order until f
// returns false.
func (x *ExtensionFields) Range(f func(FieldNumber, ExtensionField) bool) {
	nums := make([]FieldNumber, 0, len(x.m))
	for n := range x.m {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	for _, n := range nums {
		if !f(n, x.m[n]) {
			return
		}
	}
}

// DecodeExtensionField reads the value of extension num of the message
// type extendee into values. An extension unknown to the registry is
// skipped without error.
func (d *Decoder) DecodeExtensionField(values *ExtensionFields, extendee string, num FieldNumber) error {
	xt, ok := d.opts.Extensions.FindByNumber(extendee, num)
	if !ok {
		return d.s.SkipValue(d.depth)
	}
	f, ok := values.Get(num)
	if !ok {
		f = xt.New()
	}
	if err := f.DecodeField(d); err != nil {
		return err
	}
	values.Set(num, f)
	return nil
}

// ExtensionValue holds a singular scalar extension.
type ExtensionValue[T any] struct {
	Kind  ScalarKind[T]
	Value T
}

func (x *ExtensionValue[T]) DecodeField(d *Decoder) error {
	return DecodeSingular(d, x.Kind, &x.Value)
}

// RepeatedExtensionValue holds a repeated scalar extension.
type RepeatedExtensionValue[T any] struct {
	Kind   ScalarKind[T]
	Values []T
}

func (x *RepeatedExtensionValue[T]) DecodeField(d *Decoder) error {
	return DecodeRepeated(d, x.Kind, &x.Values)
}

// EnumExtensionValue holds a singular enum extension.
type EnumExtensionValue[E Enum] struct {
	Value E
}

func (x *EnumExtensionValue[E]) DecodeField(d *Decoder) error {
	return DecodeSingularEnum(d, &x.Value)
}

// RepeatedEnumExtensionValue holds a repeated enum extension.
type RepeatedEnumExtensionValue[E Enum] struct {
	Values []E
}

func (x *RepeatedEnumExtensionValue[E]) DecodeField(d *Decoder) error {
	return DecodeRepeatedEnum(d, &x.Values)
}

// MessageExtensionValue holds a singular message or group extension.
type MessageExtensionValue[T any, P MessagePointer[T]] struct {
	Value P
}

func (x *MessageExtensionValue[T, P]) DecodeField(d *Decoder) error {
	return DecodeSingularMessage[T, P](d, &x.Value)
}

// RepeatedMessageExtensionValue holds a repeated message or group extension.
type RepeatedMessageExtensionValue[T any, P MessagePointer[T]] struct {
	Values []P
}

func (x *RepeatedMessageExtensionValue[T, P]) DecodeField(d *Decoder) error {
	return DecodeRepeatedMessage[T, P](d, &x.Values)
}

// SingularExtension declares a singular scalar extension.
func SingularExtension[T any](extendee string, num FieldNumber, name string, kind ScalarKind[T]) *ExtensionType {
	return &ExtensionType{
		Extendee: extendee,
		Number:   num,
		Name:     name,
		New:      func() ExtensionField { return &ExtensionValue[T]{Kind: kind} },
	}
}

// RepeatedExtension declares a repeated scalar extension.
func RepeatedExtension[T any](extendee string, num FieldNumber, name string, kind ScalarKind[T]) *ExtensionType {
	return &ExtensionType{
		Extendee: extendee,
		Number:   num,
		Name:     name,
		New:      func() ExtensionField { return &RepeatedExtensionValue[T]{Kind: kind} },
	}
}

// EnumExtension declares a singular enum extension.
func EnumExtension[E Enum](extendee string, num FieldNumber, name string) *ExtensionType {
	return &ExtensionType{
		Extendee: extendee,
		Number:   num,
		Name:     name,
		New:      func() ExtensionField { return new(EnumExtensionValue[E]) },
	}
}

// RepeatedEnumExtension declares a repeated enum extension.
func RepeatedEnumExtension[E Enum](extendee string, num FieldNumber, name string) *ExtensionType {
	return &ExtensionType{
		Extendee: extendee,
		Number:   num,
		Name:     name,
		New:      func() ExtensionField { return new(RepeatedEnumExtensionValue[E]) },
	}
}

// MessageExtension declares a singular message or group extension.
func MessageExtension[T any, P MessagePointer[T]](extendee string, num FieldNumber, name string) *ExtensionType {
	return &ExtensionType{
		Extendee: extendee,
		Number:   num,
		Name:     name,
		New:      func() ExtensionField { return new(MessageExtensionValue[T, P]) },
	}
}

// RepeatedMessageExtension declares a repeated message or group extension.
func RepeatedMessageExtension[T any, P MessagePointer[T]](extendee string, num FieldNumber, name string) *ExtensionType {
	return &ExtensionType{
		Extendee: extendee,
		Number:   num,
		Name:     name,
		New:      func() ExtensionField { return new(RepeatedMessageExtensionValue[T, P]) },
	}
}
