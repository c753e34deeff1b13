// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpb decodes the protocol buffer text format into message types
// that know their own field layout.
//
// A message participates by implementing [Message], which the decoder calls
// back once per field occurrence, and [NameProvider], which maps field names
// to numbers. The callback in turn calls one of the typed entry points on
// [Decoder] (scalars, enums, maps, nested messages and groups) for the field
// it owns:
//
//	func (m *Point) DecodeField(d *textpb.Decoder, num textpb.FieldNumber) error {
//		switch num {
//		case 1:
//			return d.DecodeSingularInt32Field(&m.X)
//		case 2:
//			return d.DecodeRepeatedStringField(&m.Tags)
//		}
//		return nil
//	}
//
// Extension fields are looked up in an [ExtensionRegistry] supplied through
// [UnmarshalOptions] and stored in the host's [ExtensionFields]. Extensions
// named in [brackets] must be registered; extensions written by number and
// missing from the registry are skipped.
//
// Every error returned by this package matches [Error] under errors.Is and
// exactly one of the kind sentinels such as [ErrUnknownField].
package textpb
