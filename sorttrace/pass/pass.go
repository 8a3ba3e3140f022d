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

// Package pass implements the single-step transformations the trace drivers
// repeat: one bubble sweep over a flat sequence and one pivot partition of a
// group. Every function returns fresh slices and leaves its input untouched.
package pass

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrEmptyGroup is returned by Partition when asked to split a group with no
// pivot. The trace drivers never do this; seeing it means an internal
// invariant was broken.
var ErrEmptyGroup = errors.New("partition of empty group")

// SortPair returns a and b in ascending order.
func SortPair[E constraints.Integer](a, b E) (E, E) {
	if a <= b {
		return a, b
	}
	return b, a
}

// BubblePass performs one left-to-right adjacent-swap sweep over s and returns
// the result. The largest element ends up at the tail.
//
// The carried value is the larger of each compared pair; the smaller one is
// emitted. Sequences shorter than two elements are returned as a copy.
func BubblePass[S ~[]E, E constraints.Integer](s S) S {
	out := make(S, 0, len(s))
	if len(s) == 0 {
		return out
	}

	carry := s[0]
	for _, next := range s[1:] {
		var emit E
		emit, carry = SortPair(carry, next)
		out = append(out, emit)
	}
	return append(out, carry)
}

// Partition splits group around its first element. Every remaining element
// goes left when it is less than or equal to the pivot and right otherwise;
// relative order within each side follows the input.
//
// Ties go left. Changing that would change every recorded trace.
func Partition[S ~[]E, E constraints.Integer](group S) (left S, pivot E, right S, err error) {
	if len(group) == 0 {
		return nil, pivot, nil, errors.WithStack(ErrEmptyGroup)
	}

	pivot = group[0]
	left = make(S, 0, len(group)-1)
	right = make(S, 0, len(group)-1)
	for _, v := range group[1:] {
		if v <= pivot {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	return left, pivot, right, nil
}
