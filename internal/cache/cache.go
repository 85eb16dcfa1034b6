// Copyright (c) 2012-present The sqlcraft authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package cache provides a bounded in-memory store for compiled statement
// text, keyed by the statement's hash.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const maxCachedStatements = 1024 * 8

// Hashable types can be cached.
type Hashable interface {
	Hash() uint64
}

// Cache holds a bounded map of volatile key -> values. The underlying LRU is
// internally synchronized, so a Cache is safe for concurrent use.
type Cache struct {
	keys *lru.Cache[uint64, string]
}

// NewCache initializes a new caching space with the default capacity.
func NewCache() *Cache {
	keys, err := lru.New[uint64, string](maxCachedStatements)
	if err != nil {
		panic(`lru.New: ` + err.Error())
	}
	return &Cache{keys: keys}
}

// Read attempts to retrieve a cached value, returning false when the value
// does not exist.
func (c *Cache) Read(h Hashable) (string, bool) {
	return c.keys.Get(h.Hash())
}

// Write stores a value. If the value already exists it is overwritten; if the
// cache is full the least recently used entry is evicted.
func (c *Cache) Write(h Hashable, value string) {
	c.keys.Add(h.Hash(), value)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.keys.Purge()
}
