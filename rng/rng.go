// Package rng provides ranges: representations of sequences of ordered values.
package rng

import (
	"fmt"
	"strings"
)

// Range is a range of values of type T.
// T need not be ordered; that is, it is not constrained by [cmp.Ordered].
// It is up to the user to assign an ordering; Range simply represents
// the bounds of the range. Methods that test membership take the
// ordering as a less function.
//
// The zero Range is an empty range.
type Range[T any] struct {
	lo, hi         T
	inclLo, inclHi bool
	infLo, infHi   bool
	rev            bool
}

func (r Range[T]) String() string {
	var b strings.Builder
	if r.infLo {
		b.WriteString("(-∞")
	} else {
		if r.inclLo {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprint(&b, r.lo)
	}
	b.WriteString(", ")
	if r.infHi {
		b.WriteString("∞)")
	} else {
		fmt.Fprint(&b, r.hi)
		if r.inclHi {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	}
	if r.rev {
		b.WriteString(" backwards")
	}
	return b.String()
}

func (r Range[T]) IsBackwards() bool { return r.rev }

func (r Range[T]) Low() (v T, infinite, includes bool) {
	return r.lo, r.infLo, r.inclLo
}

func (r Range[T]) High() (v T, infinite, includes bool) {
	return r.hi, r.infHi, r.inclHi
}

// (-∞, ∞)
func All[T any]() Range[T] {
	return Range[T]{infLo: true, infHi: true}
}

// [t, ∞)
func From[T any](t T) Range[T] {
	return Range[T]{lo: t, inclLo: true, infHi: true}
}

// (t, ∞)
func Above[T any](t T) Range[T] {
	return Range[T]{lo: t, inclLo: false, infHi: true}
}

// (-∞, t]
func To[T any](t T) Range[T] {
	return All[T]().To(t)
}

// (-∞, t)
func Below[T any](t T) Range[T] {
	return All[T]().Below(t)
}

// ..., t)
func (r Range[T]) Below(t T) Range[T] {
	if !r.infHi {
		panic("range already has high bound")
	}
	r.hi = t
	r.infHi = false
	r.inclHi = false
	return r
}

// ..., t]
func (r Range[T]) To(t T) Range[T] {
	if !r.infHi {
		panic("range already has high bound")
	}
	r.hi = t
	r.infHi = false
	r.inclHi = true
	return r
}

func (r Range[T]) Backwards() Range[T] {
	r.rev = true
	return r
}

// AboveLow reports whether v satisfies r's low bound under less.
func (r Range[T]) AboveLow(less func(a, b T) bool, v T) bool {
	switch {
	case r.infLo:
		return true
	case r.inclLo:
		return !less(v, r.lo)
	default:
		return less(r.lo, v)
	}
}

// BelowHigh reports whether v satisfies r's high bound under less.
func (r Range[T]) BelowHigh(less func(a, b T) bool, v T) bool {
	switch {
	case r.infHi:
		return true
	case r.inclHi:
		return !less(r.hi, v)
	default:
		return less(v, r.hi)
	}
}

// Contains reports whether v lies in r under less.
func (r Range[T]) Contains(less func(a, b T) bool, v T) bool {
	return r.AboveLow(less, v) && r.BelowHigh(less, v)
}
