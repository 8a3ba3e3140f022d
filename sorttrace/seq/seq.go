// Copyright 2025 go-sorttrace Authors
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

// Package seq provides the small set of list operations the trace drivers
// are built on: ordering checks, equality, pairing and multiset comparison.
package seq

import (
	"maps"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Sequence is an ordered list of integer elements. Elements carry no identity
// beyond their value.
type Sequence[E constraints.Integer] []E

// Clone returns an independent copy of s. The result is never nil, so an
// empty input still produces an empty (not absent) snapshot.
func Clone[S ~[]E, E constraints.Integer](s S) S {
	out := make(S, len(s))
	copy(out, s)
	return out
}

// Zip pairs the elements of a and b by index. The result has the length of
// the shorter input.
func Zip[S ~[]E, E constraints.Integer](a, b S) []lo.Tuple2[E, E] {
	n := min(len(a), len(b))
	return lo.Map(a[:n], func(x E, i int) lo.Tuple2[E, E] {
		return lo.T2(x, b[i])
	})
}

// Equal reports whether a and b have the same length and the same elements
// in the same order.
func Equal[S ~[]E, E constraints.Integer](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	return lo.EveryBy(Zip(a, b), func(t lo.Tuple2[E, E]) bool {
		return t.A == t.B
	})
}

// Ascending reports whether every adjacent pair of s satisfies s[i] <= s[i+1].
// Empty and single-element sequences are ascending.
func Ascending[S ~[]E, E constraints.Integer](s S) bool {
	if len(s) < 2 {
		return true
	}
	return lo.EveryBy(Zip(s, s[1:]), func(t lo.Tuple2[E, E]) bool {
		return t.A <= t.B
	})
}

// MultisetEqual reports whether a and b hold the same elements with the same
// multiplicities, ignoring order.
func MultisetEqual[S ~[]E, E constraints.Integer](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	return maps.Equal(lo.CountValues(a), lo.CountValues(b))
}

// Max returns the largest element of s. ok is false when s is empty.
func Max[S ~[]E, E constraints.Integer](s S) (m E, ok bool) {
	if len(s) == 0 {
		return m, false
	}
	return lo.Max(s), true
}
