// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemap implements an in-memory ordered map
// over a plain binary search tree.
//
// The ordering is supplied by the caller as a less function, which must
// define a strict weak order. Two keys are considered equal when neither
// is less than the other; keys are never compared with ==.
//
// The tree is not balanced: inserting keys in sorted order degrades it to
// a list. A Map is not safe for concurrent use.
package treemap

// Nodes live in an arena and refer to each other by index, so removing a
// node with two children can move its successor's payload into place
// without invalidating any link.

import (
	"cmp"
)

// none marks an absent node index.
const none = -1

// An Entry is a key and its associated value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

type node[K, V any] struct {
	Entry[K, V]
	left, right, parent int
}

// A Map is a map[K]V ordered according to a less function.
// The zero value of a Map is not meaningful since it has no less function.
// Use [New] or [NewOrdered] to create a Map.
//
// Besides its entries, a Map holds a cursor: the node most recently
// positioned by [Map.Insert], [Map.Search], [Map.UpperBound], [Map.First],
// [Map.Next] or [Map.Prev]. Next and Prev step from it. A successful
// [Map.Remove] clears the cursor.
type Map[K, V any] struct {
	nodes []node[K, V]
	free  []int
	root  int
	cur   int
	n     int
	gen   uint64
	less  func(a, b K) bool
}

// New returns a new, empty Map[K, V] ordered according to less.
func New[K, V any](less func(a, b K) bool) *Map[K, V] {
	if less == nil {
		panic("treemap: nil less function")
	}
	return &Map[K, V]{root: none, cur: none, less: less}
}

// NewOrdered returns a new, empty Map[K, V] in K's standard Go ordering.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](cmp.Less[K])
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	return m.n
}

// find looks up key in m.
// It returns the index of the node holding key, or none,
// together with the last node visited on the way down.
// If key is missing, a node for it belongs under parent.
func (m *Map[K, V]) find(key K) (x, parent int) {
	parent = none
	for x = m.root; x != none; {
		n := &m.nodes[x]
		switch {
		case m.less(key, n.Key):
			parent, x = x, n.left
		case m.less(n.Key, key):
			parent, x = x, n.right
		default:
			return x, parent
		}
	}
	return none, parent
}

// alloc stores e in a fresh or recycled slot and returns its index.
func (m *Map[K, V]) alloc(e Entry[K, V], parent int) int {
	nd := node[K, V]{Entry: e, left: none, right: none, parent: parent}
	if k := len(m.free); k > 0 {
		x := m.free[k-1]
		m.free = m.free[:k-1]
		m.nodes[x] = nd
		return x
	}
	m.nodes = append(m.nodes, nd)
	return len(m.nodes) - 1
}

// release returns slot x to the free list.
// The slot is zeroed so its key and value can be collected.
func (m *Map[K, V]) release(x int) {
	m.nodes[x] = node[K, V]{left: none, right: none, parent: none}
	m.free = append(m.free, x)
}

// entry returns the entry at x and whether x is present.
func (m *Map[K, V]) entry(x int) (Entry[K, V], bool) {
	if x == none {
		return Entry[K, V]{}, false
	}
	return m.nodes[x].Entry, true
}

// Insert adds key with value val to m and reports whether it was added.
// If an equal key is already present, Insert leaves m, including its
// cursor, unchanged and returns false. Otherwise the cursor moves to the
// new entry.
func (m *Map[K, V]) Insert(key K, val V) bool {
	e := Entry[K, V]{Key: key, Value: val}
	if m.root == none {
		m.root = m.alloc(e, none)
		m.cur = m.root
		m.n++
		return true
	}
	x, parent := m.find(key)
	if x != none {
		return false
	}
	x = m.alloc(e, parent)
	// alloc may have grown the arena; index afresh.
	if m.less(key, m.nodes[parent].Key) {
		m.nodes[parent].left = x
	} else {
		m.nodes[parent].right = x
	}
	m.cur = x
	m.n++
	return true
}

// Search returns the entry whose key equals key and reports whether it exists.
// On success the cursor moves to that entry; otherwise it is left alone.
func (m *Map[K, V]) Search(key K) (Entry[K, V], bool) {
	x, _ := m.find(key)
	if x == none {
		return Entry[K, V]{}, false
	}
	m.cur = x
	return m.nodes[x].Entry, true
}

// UpperBound returns the entry with the smallest key k such that k ≥ key.
// If every key in m is less than key, UpperBound returns false and leaves
// the cursor alone; otherwise the cursor moves to the returned entry.
func (m *Map[K, V]) UpperBound(key K) (Entry[K, V], bool) {
	x := m.ceil(key)
	if x == none {
		return Entry[K, V]{}, false
	}
	m.cur = x
	return m.nodes[x].Entry, true
}

// ceil returns the node with the least key ≥ key, or none.
// Every node the descent leaves through its left link is a candidate;
// the last one recorded is the closest.
func (m *Map[K, V]) ceil(key K) int {
	cand := none
	for x := m.root; x != none; {
		n := &m.nodes[x]
		switch {
		case m.less(key, n.Key):
			cand, x = x, n.left
		case m.less(n.Key, key):
			x = n.right
		default:
			return x
		}
	}
	return cand
}

// higher returns the node with the least key > key, or none.
func (m *Map[K, V]) higher(key K) int {
	cand := none
	for x := m.root; x != none; {
		if m.less(key, m.nodes[x].Key) {
			cand, x = x, m.nodes[x].left
		} else {
			x = m.nodes[x].right
		}
	}
	return cand
}

// floor returns the node with the greatest key ≤ key, or none.
func (m *Map[K, V]) floor(key K) int {
	cand := none
	for x := m.root; x != none; {
		n := &m.nodes[x]
		switch {
		case m.less(n.Key, key):
			cand, x = x, n.right
		case m.less(key, n.Key):
			x = n.left
		default:
			return x
		}
	}
	return cand
}

// lower returns the node with the greatest key < key, or none.
func (m *Map[K, V]) lower(key K) int {
	cand := none
	for x := m.root; x != none; {
		if m.less(m.nodes[x].Key, key) {
			cand, x = x, m.nodes[x].right
		} else {
			x = m.nodes[x].left
		}
	}
	return cand
}

// Remove deletes the entry whose key equals key and reports whether
// there was one. A missing key leaves m entirely unchanged.
// After a successful Remove the cursor is cleared: [Map.Next] and
// [Map.Prev] return false until the cursor is positioned again.
func (m *Map[K, V]) Remove(key K) bool {
	x, _ := m.find(key)
	if x == none {
		return false
	}
	m.removeNode(x)
	m.cur = none
	m.n--
	m.gen++
	return true
}

// removeNode unlinks x from the tree.
//
// A node with two children keeps its slot: it takes over the entry of its
// in-order successor, which has no left child, and the successor's slot
// is removed instead.
func (m *Map[K, V]) removeNode(x int) {
	n := &m.nodes[x]
	if n.left != none && n.right != none {
		s := m.minimum(n.right)
		n.Entry = m.nodes[s].Entry
		m.removeNode(s)
		return
	}
	child := n.left
	if child == none {
		child = n.right
	}
	m.replace(x, child)
	m.release(x)
}

// replace puts y (possibly none) where x hangs in the tree.
func (m *Map[K, V]) replace(x, y int) {
	p := m.nodes[x].parent
	switch {
	case p == none:
		m.root = y
	case m.nodes[p].left == x:
		m.nodes[p].left = y
	case m.nodes[p].right == x:
		m.nodes[p].right = y
	default:
		// unreachable
		panic("treemap: corrupt tree")
	}
	if y != none {
		m.nodes[y].parent = p
	}
}

// minimum returns the node in x's subtree with the smallest key,
// or none if x is none.
func (m *Map[K, V]) minimum(x int) int {
	if x == none {
		return none
	}
	for m.nodes[x].left != none {
		x = m.nodes[x].left
	}
	return x
}

// maximum returns the node in x's subtree with the largest key,
// or none if x is none.
func (m *Map[K, V]) maximum(x int) int {
	if x == none {
		return none
	}
	for m.nodes[x].right != none {
		x = m.nodes[x].right
	}
	return x
}

// successor returns the node following x in key order, or none.
// x must not be none.
func (m *Map[K, V]) successor(x int) int {
	if r := m.nodes[x].right; r != none {
		return m.minimum(r)
	}
	p := m.nodes[x].parent
	for p != none && m.nodes[p].right == x {
		x, p = p, m.nodes[p].parent
	}
	return p
}

// predecessor returns the node preceding x in key order, or none.
// x must not be none.
func (m *Map[K, V]) predecessor(x int) int {
	if l := m.nodes[x].left; l != none {
		return m.maximum(l)
	}
	p := m.nodes[x].parent
	for p != none && m.nodes[p].left == x {
		x, p = p, m.nodes[p].parent
	}
	return p
}

// First moves the cursor to the entry with the smallest key and returns it.
// If m is empty, First returns false.
func (m *Map[K, V]) First() (Entry[K, V], bool) {
	m.cur = m.minimum(m.root)
	return m.entry(m.cur)
}

// Next moves the cursor to the entry following it in key order
// and returns that entry. If the cursor is at the largest key or is
// not positioned, Next clears the cursor and returns false.
func (m *Map[K, V]) Next() (Entry[K, V], bool) {
	if m.cur == none {
		return Entry[K, V]{}, false
	}
	m.cur = m.successor(m.cur)
	return m.entry(m.cur)
}

// Prev is like [Map.Next] but moves toward smaller keys.
func (m *Map[K, V]) Prev() (Entry[K, V], bool) {
	if m.cur == none {
		return Entry[K, V]{}, false
	}
	m.cur = m.predecessor(m.cur)
	return m.entry(m.cur)
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Min() (K, bool) {
	e, ok := m.entry(m.minimum(m.root))
	return e.Key, ok
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Max() (K, bool) {
	e, ok := m.entry(m.maximum(m.root))
	return e.Key, ok
}

// Clear deletes every entry in m and clears the cursor.
// The less function is kept.
func (m *Map[K, V]) Clear() {
	m.nodes = nil
	m.free = nil
	m.root = none
	m.cur = none
	m.n = 0
	m.gen++
}

// Clone returns a copy of m with the same entries and less function.
// The copy's cursor is at the same key as m's.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := New[K, V](m.less)
	c.root = m.root
	c.cur = m.cur
	c.n = m.n
	c.nodes = append([]node[K, V](nil), m.nodes...)
	c.free = append([]int(nil), m.free...)
	return c
}
