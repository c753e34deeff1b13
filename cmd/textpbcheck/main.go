// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The textpbcheck command validates text-format files against a message type
// from a compiled FileDescriptorSet.
//
//	textpbcheck --descriptor_set set.binpb --message pkg.Msg [--json] [--print] FILE...
//
// With no files, or with "-", standard input is checked. The exit status is 1
// if any input fails to decode.
package main

func main() {
	Execute()
}
