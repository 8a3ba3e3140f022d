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

package sorttrace

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sorttrace/sorttrace/seq"
)

// Trace is the ordered list of snapshots recorded while sorting.
type Trace[E constraints.Integer] []seq.Sequence[E]

// Len is the number of snapshots.
func (t Trace[E]) Len() int { return len(t) }

// First returns the first snapshot (the input). It panics on an empty trace.
func (t Trace[E]) First() seq.Sequence[E] { return t[0] }

// Last returns the final, ascending snapshot. It panics on an empty trace.
func (t Trace[E]) Last() seq.Sequence[E] { return t[len(t)-1] }

// Frames yields each snapshot with its index, in recording order. Every
// yielded snapshot is a copy, so the consumer may keep or modify it.
func (t Trace[E]) Frames() iter.Seq2[int, seq.Sequence[E]] {
	return func(yield func(int, seq.Sequence[E]) bool) {
		for i, s := range t {
			if !yield(i, seq.Clone(s)) {
				return
			}
		}
	}
}

// ErrInvalidTrace is the cause of every *ValidationError.
var ErrInvalidTrace = errors.New("invalid trace")

// ValidationError describes the first snapshot that breaks a trace invariant.
// Index is -1 when the trace as a whole is at fault.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrInvalidTrace, e.Reason)
	}
	return fmt.Sprintf("%v: snapshot %d: %s", ErrInvalidTrace, e.Index, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidTrace }

// Validate checks t against input: t is non-empty, starts with input, ends
// ascending, has no ascending snapshot before the last, and every snapshot is
// a permutation of input. It returns a *ValidationError or nil.
func (t Trace[E]) Validate(input []E) error {
	want := seq.Sequence[E](input)
	if len(t) == 0 {
		return &ValidationError{Index: -1, Reason: "empty"}
	}
	if !seq.Equal(t[0], want) {
		return &ValidationError{Index: 0, Reason: fmt.Sprintf("%v does not match input %v", t[0], input)}
	}
	for i, s := range t {
		if !seq.MultisetEqual(s, want) {
			return &ValidationError{Index: i, Reason: fmt.Sprintf("%v is not a permutation of the input", s)}
		}
		last := i == len(t)-1
		switch asc := seq.Ascending(s); {
		case last && !asc:
			return &ValidationError{Index: i, Reason: fmt.Sprintf("final snapshot %v is not ascending", s)}
		case !last && asc:
			return &ValidationError{Index: i, Reason: fmt.Sprintf("%v is ascending before the end", s)}
		}
	}
	return nil
}
