// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"iter"

	"github.com/jba/treemap/rng"
)

// A Cursor is a position in a Map, held by the caller.
// Unlike the Map's own cursor, a Cursor is not moved by other calls
// and survives removals: once the Map has had an entry removed,
// the Cursor finds its place again by key. If its own entry was removed,
// [Cursor.Entry] reports false, while [Cursor.Next] and [Cursor.Prev]
// still step to the neighbors of the removed key.
//
// The zero Cursor is not positioned.
type Cursor[K, V any] struct {
	m   *Map[K, V]
	x   int
	gen uint64
	key K
}

// Cursor returns a Cursor at the position of m's cursor.
func (m *Map[K, V]) Cursor() Cursor[K, V] {
	return m.cursorAt(m.cur)
}

func (m *Map[K, V]) cursorAt(x int) Cursor[K, V] {
	c := Cursor[K, V]{m: m, x: x, gen: m.gen}
	if x != none {
		c.key = m.nodes[x].Key
	}
	return c
}

// node returns the index of c's entry in its map, or none.
func (c Cursor[K, V]) node() int {
	if c.m == nil || c.x == none {
		return none
	}
	if c.gen == c.m.gen {
		return c.x
	}
	x, _ := c.m.find(c.key)
	return x
}

// Valid reports whether c is at an entry of its map.
func (c Cursor[K, V]) Valid() bool {
	return c.node() != none
}

// Entry returns the entry at c and reports whether there is one.
func (c Cursor[K, V]) Entry() (Entry[K, V], bool) {
	if c.m == nil {
		return Entry[K, V]{}, false
	}
	return c.m.entry(c.node())
}

// Next returns a Cursor at the entry following c in key order.
// The result is not positioned if there is no such entry
// or c is not positioned.
func (c Cursor[K, V]) Next() Cursor[K, V] {
	switch {
	case c.m == nil || c.x == none:
		return c
	case c.gen == c.m.gen:
		return c.m.cursorAt(c.m.successor(c.x))
	default:
		return c.m.cursorAt(c.m.higher(c.key))
	}
}

// Prev returns a Cursor at the entry preceding c in key order.
// The result is not positioned if there is no such entry
// or c is not positioned.
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	switch {
	case c.m == nil || c.x == none:
		return c
	case c.gen == c.m.gen:
		return c.m.cursorAt(c.m.predecessor(c.x))
	default:
		return c.m.cursorAt(c.m.lower(c.key))
	}
}

// All returns an iterator over the map m from smallest to largest key.
// The iteration does not move m's cursor.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(m.cursorAt(m.minimum(m.root)), Cursor[K, V].Next, nil, yield)
	}
}

// Backward returns an iterator over the map m from largest to smallest key.
// The iteration does not move m's cursor.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(m.cursorAt(m.maximum(m.root)), Cursor[K, V].Prev, nil, yield)
	}
}

// Scan returns an iterator over the entries of m whose keys lie in r,
// in ascending order, or descending order if r is backwards.
// The iteration does not move m's cursor.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if r.IsBackwards() {
			var x int
			switch hi, inf, incl := r.High(); {
			case inf:
				x = m.maximum(m.root)
			case incl:
				x = m.floor(hi)
			default:
				x = m.lower(hi)
			}
			inRange := func(k K) bool { return r.AboveLow(m.less, k) }
			walk(m.cursorAt(x), Cursor[K, V].Prev, inRange, yield)
			return
		}
		var x int
		switch lo, inf, incl := r.Low(); {
		case inf:
			x = m.minimum(m.root)
		case incl:
			x = m.ceil(lo)
		default:
			x = m.higher(lo)
		}
		inRange := func(k K) bool { return r.BelowHigh(m.less, k) }
		walk(m.cursorAt(x), Cursor[K, V].Next, inRange, yield)
	}
}

// walk yields entries starting at c and stepping with step,
// until the map runs out, inRange (if non-nil) rejects a key,
// or yield returns false.
func walk[K, V any](c Cursor[K, V], step func(Cursor[K, V]) Cursor[K, V], inRange func(K) bool, yield func(K, V) bool) {
	for ; ; c = step(c) {
		e, ok := c.Entry()
		if !ok || (inRange != nil && !inRange(e.Key)) || !yield(e.Key, e.Value) {
			return
		}
	}
}
