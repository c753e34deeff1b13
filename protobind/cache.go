// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobind

import (
	lru "github.com/hashicorp/golang-lru"
)

// descCacheSize bounds each descriptor cache. Dynamic descriptors are
// created at run time and would otherwise accumulate.
const descCacheSize = 4096

// descCache memoizes values derived from descriptors.
type descCache struct {
	c *lru.Cache
}

func newDescCache() *descCache {
	c, err := lru.New(descCacheSize)
	if err != nil {
		panic(err)
	}
	return &descCache{c: c}
}

// load returns the cached value for key, calling build on a miss.
// Concurrent misses may build twice; the results are equivalent.
func (c *descCache) load(key interface{}, build func() interface{}) interface{} {
	if v, ok := c.c.Get(key); ok {
		return v
	}
	v := build()
	c.c.Add(key, v)
	return v
}
