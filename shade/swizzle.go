// Copyright 2025 go-shade Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shade

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// This file implements the swizzle accessor table as one algorithm over
// (source width, alphabet, length) instead of one named member per case.
// The per-width Swizzle1..4 and SetSwizzle1..4 methods in vec_gen.go are
// thin wrappers over gather and scatter below.

// MaxWidth is the widest vector, and the longest swizzle.
const MaxWidth = 4

// Alphabet is a naming scheme for vector components. Both alphabets map
// onto the same component indices.
type Alphabet int

const (
	// Positional names components x, y, z, w.
	Positional Alphabet = iota
	// Color names components r, g, b, a.
	Color
)

// Alphabets lists every naming scheme.
var Alphabets = []Alphabet{Positional, Color}

var alphabetLetters = [...]string{
	Positional: "xyzw",
	Color:      "rgba",
}

// String returns "positional" or "color".
func (a Alphabet) String() string {
	switch a {
	case Positional:
		return "positional"
	case Color:
		return "color"
	default:
		return "unknown"
	}
}

// Letters returns the component letters of the alphabet in index order.
func (a Alphabet) Letters() string {
	return alphabetLetters[a]
}

// Swizzle describes an ordered selection of 1 to 4 components of a vector
// of a given source width. The zero value selects nothing.
type Swizzle struct {
	idx    [MaxWidth]uint8
	n      uint8
	source uint8
	alpha  Alphabet
}

// Len returns the number of selected components (the result width).
func (s Swizzle) Len() int { return int(s.n) }

// Source returns the width of the vector the swizzle applies to.
func (s Swizzle) Source() int { return int(s.source) }

// Alphabet returns the naming scheme the swizzle was written in.
func (s Swizzle) Alphabet() Alphabet { return s.alpha }

// Index returns the source component selected at position k.
func (s Swizzle) Index(k int) int { return int(s.idx[k]) }

// Indices returns the selected source components in order.
func (s Swizzle) Indices() []int {
	return lo.Map(s.idx[:s.n], func(i uint8, _ int) int { return int(i) })
}

// Name returns the accessor name, e.g. "zyx" or "bgra".
func (s Swizzle) Name() string {
	letters := s.alpha.Letters()
	var b strings.Builder
	for _, i := range s.idx[:s.n] {
		b.WriteByte(letters[i])
	}
	return b.String()
}

func (s Swizzle) String() string { return s.Name() }

// Mutable reports whether the swizzle may be written through: a single
// component always may, longer selections only when no component repeats.
func (s Swizzle) Mutable() bool {
	return s.n > 0 && len(lo.Uniq(s.idx[:s.n])) == int(s.n)
}

// ParseSwizzle resolves an accessor name against a vector of the given
// width. Names are 1 to 4 letters from a single alphabet.
func ParseSwizzle(width int, name string) (Swizzle, error) {
	if width < 1 || width > MaxWidth {
		return Swizzle{}, fmt.Errorf("%w: source width %d", ErrBadSwizzle, width)
	}
	if len(name) < 1 || len(name) > MaxWidth {
		return Swizzle{}, fmt.Errorf("%w: %q has %d components", ErrBadSwizzle, name, len(name))
	}
	alpha, ok := alphabetOf(name[0])
	if !ok {
		return Swizzle{}, fmt.Errorf("%w: %q: unknown component %q", ErrBadSwizzle, name, name[0])
	}
	s := Swizzle{n: uint8(len(name)), source: uint8(width), alpha: alpha}
	letters := alpha.Letters()
	for k := 0; k < len(name); k++ {
		i := strings.IndexByte(letters, name[k])
		if i < 0 {
			if _, other := alphabetOf(name[k]); other {
				return Swizzle{}, fmt.Errorf("%w: %q mixes %s and %s components",
					ErrBadSwizzle, name, alpha, alphabetOfMust(name[k]))
			}
			return Swizzle{}, fmt.Errorf("%w: %q: unknown component %q", ErrBadSwizzle, name, name[k])
		}
		if i >= width {
			return Swizzle{}, fmt.Errorf("%w: %q: component %q outside width %d",
				ErrBadSwizzle, name, name[k], width)
		}
		s.idx[k] = uint8(i)
	}
	return s, nil
}

func alphabetOf(c byte) (Alphabet, bool) {
	for _, a := range Alphabets {
		if strings.IndexByte(a.Letters(), c) >= 0 {
			return a, true
		}
	}
	return 0, false
}

func alphabetOfMust(c byte) Alphabet {
	a, _ := alphabetOf(c)
	return a
}

// Lookup is ParseSwizzle reporting failure as a bool.
func Lookup(width int, name string) (Swizzle, bool) {
	s, err := ParseSwizzle(width, name)
	return s, err == nil
}

// TableSize returns the number of accessors Table(width) enumerates:
// len(Alphabets) * Σ width^L for L = 1..4.
func TableSize(width int) int {
	per, p := 0, 1
	for l := 1; l <= MaxWidth; l++ {
		p *= width
		per += p
	}
	return per * len(Alphabets)
}

// Table enumerates every swizzle of a vector of the given width: for each
// alphabet, each length L in 1..4 and each L-tuple of component indices
// (repetition allowed) in lexicographic order.
func Table(width int) []Swizzle {
	if width < 1 || width > MaxWidth {
		return nil
	}
	table := make([]Swizzle, 0, TableSize(width))
	for _, alpha := range Alphabets {
		for l := 1; l <= MaxWidth; l++ {
			s := Swizzle{n: uint8(l), source: uint8(width), alpha: alpha}
			for {
				table = append(table, s)
				// Odometer increment over the last l digits.
				k := l - 1
				for k >= 0 && int(s.idx[k]) == width-1 {
					s.idx[k] = 0
					k--
				}
				if k < 0 {
					break
				}
				s.idx[k]++
			}
		}
	}
	return table
}

// Width is a compile-time vector width. It parameterizes Pattern with its
// source and result widths so that the per-width accessors only accept
// patterns built for them.
type Width interface {
	W1 | W2 | W3 | W4
	Len() int
}

// W1 is the width 1 marker.
type W1 struct{}

// W2 is the width 2 marker.
type W2 struct{}

// W3 is the width 3 marker.
type W3 struct{}

// W4 is the width 4 marker.
type W4 struct{}

func (W1) Len() int { return 1 }
func (W2) Len() int { return 2 }
func (W3) Len() int { return 3 }
func (W4) Len() int { return 4 }

// Pattern is a read-only swizzle from a width-S vector to a width-L result.
// The zero Pattern selects nothing and reads as the zero vector.
type Pattern[S, L Width] struct {
	sw Swizzle
}

// Parse builds a Pattern from an accessor name. The name must have L
// letters, all from one alphabet, naming components below S.
func Parse[S, L Width](name string) (Pattern[S, L], error) {
	var s S
	var l L
	sw, err := ParseSwizzle(s.Len(), name)
	if err != nil {
		return Pattern[S, L]{}, err
	}
	if sw.Len() != l.Len() {
		return Pattern[S, L]{}, fmt.Errorf("%w: %q selects %d components, want %d",
			ErrBadSwizzle, name, sw.Len(), l.Len())
	}
	return Pattern[S, L]{sw: sw}, nil
}

// MustParse is like Parse but panics if the name is invalid. It simplifies
// initialization of package-level patterns.
func MustParse[S, L Width](name string) Pattern[S, L] {
	p, err := Parse[S, L](name)
	if err != nil {
		panic(err)
	}
	return p
}

// Swizzle returns the untyped descriptor.
func (p Pattern[S, L]) Swizzle() Swizzle { return p.sw }

// Name returns the accessor name.
func (p Pattern[S, L]) Name() string { return p.sw.Name() }

// Writable returns the write capability for p. It fails for patterns that
// repeat a component: there is no defined order for storing twice.
func (p Pattern[S, L]) Writable() (WritablePattern[S, L], bool) {
	if !p.sw.Mutable() {
		return WritablePattern[S, L]{}, false
	}
	return WritablePattern[S, L]{p: p}, true
}

// WritablePattern is a Pattern whose components are all distinct. It can
// only be obtained from Pattern.Writable or MustParseWritable.
type WritablePattern[S, L Width] struct {
	p Pattern[S, L]
}

// MustParseWritable parses a pattern and panics unless it is writable.
func MustParseWritable[S, L Width](name string) WritablePattern[S, L] {
	w, ok := MustParse[S, L](name).Writable()
	if !ok {
		panic(fmt.Errorf("%w: %q repeats a component and cannot be written", ErrBadSwizzle, name))
	}
	return w
}

// Pattern returns the read form of w.
func (w WritablePattern[S, L]) Pattern() Pattern[S, L] { return w.p }

// Name returns the accessor name.
func (w WritablePattern[S, L]) Name() string { return w.p.Name() }

// gather copies the selected components of src into dst in selection order.
// src is always a value copy, so reads are snapshots.
func gather[T Scalar](dst, src []T, s Swizzle) {
	for k := 0; k < int(s.n); k++ {
		dst[k] = src[s.idx[k]]
	}
}

// scatter stores src[k] into dst[idx[k]]. s must be Mutable.
func scatter[T Scalar](dst, src []T, s Swizzle) {
	for k := 0; k < int(s.n); k++ {
		dst[s.idx[k]] = src[k]
	}
}
