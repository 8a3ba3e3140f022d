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

// Package forest models the state of a breadth-first quicksort: an ordered
// list whose entries are either placed elements or pending groups.
//
// A forest is always one level deep. A round replaces each pending group by
// at most three entries (group, pivot, group) spliced in place, so a group
// never contains another group.
package forest

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sorttrace/sorttrace/pass"
	"github.com/ajroetker/go-sorttrace/sorttrace/seq"
)

// Kind tags the two cases of an Entry.
type Kind uint8

const (
	// KindPlaced is an element whose position is final relative to its
	// siblings.
	KindPlaced Kind = iota
	// KindPending is a group not yet known to be in order.
	KindPending
)

func (k Kind) String() string {
	switch k {
	case KindPlaced:
		return "placed"
	case KindPending:
		return "pending"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ErrUnknownKind is returned by Round for an entry whose tag is neither
// KindPlaced nor KindPending.
var ErrUnknownKind = errors.New("unknown forest entry kind")

// Entry is one slot of a Forest. Build it with Placed or Pending.
type Entry[E constraints.Integer] struct {
	kind  Kind
	value E
	group seq.Sequence[E]
}

// Placed returns an entry holding a single finalized element.
func Placed[E constraints.Integer](v E) Entry[E] {
	return Entry[E]{kind: KindPlaced, value: v}
}

// Pending returns an entry holding a copy of group.
func Pending[S ~[]E, E constraints.Integer](group S) Entry[E] {
	return Entry[E]{kind: KindPending, group: seq.Sequence[E](seq.Clone(group))}
}

// Kind reports which case e holds.
func (e Entry[E]) Kind() Kind { return e.kind }

// Value returns the placed element. ok is false for a pending entry.
func (e Entry[E]) Value() (v E, ok bool) {
	if e.kind != KindPlaced {
		return v, false
	}
	return e.value, true
}

// Group returns the pending group. ok is false for a placed entry.
// The returned slice must not be modified.
func (e Entry[E]) Group() (g seq.Sequence[E], ok bool) {
	if e.kind != KindPending {
		return nil, false
	}
	return e.group, true
}

// Len is the number of elements the entry covers.
func (e Entry[E]) Len() int {
	if e.kind == KindPending {
		return len(e.group)
	}
	return 1
}

// Forest is the ordered list of entries manipulated by the partition driver.
type Forest[E constraints.Integer] []Entry[E]

// New returns a forest holding input as its single pending group.
func New[S ~[]E, E constraints.Integer](input S) Forest[E] {
	return Forest[E]{Pending(input)}
}

// Flatten concatenates the entries of f in order, expanding groups into their
// elements.
func (f Forest[E]) Flatten() seq.Sequence[E] {
	n := lo.SumBy(f, func(e Entry[E]) int { return e.Len() })
	out := make(seq.Sequence[E], 0, n)
	for _, e := range f {
		switch e.kind {
		case KindPlaced:
			out = append(out, e.value)
		case KindPending:
			out = append(out, e.group...)
		}
	}
	return out
}

// Pending is the number of pending groups in f.
func (f Forest[E]) Pending() int {
	return lo.CountBy(f, func(e Entry[E]) bool { return e.kind == KindPending })
}

// Placed is the number of placed elements in f.
func (f Forest[E]) Placed() int {
	return lo.CountBy(f, func(e Entry[E]) bool { return e.kind == KindPlaced })
}

// Round processes every pending group of f exactly once and returns the new
// forest. f itself is not modified.
//
//   - empty groups are dropped
//   - a single element becomes placed
//   - two elements become placed in ascending order
//   - larger groups are partitioned into (left, pivot, right)
//
// Placed entries are carried over unchanged. Groups created by this round
// wait for the next one.
func (f Forest[E]) Round() (Forest[E], error) {
	next := make(Forest[E], 0, len(f)+2*f.Pending())
	for i, e := range f {
		switch e.kind {
		case KindPlaced:
			next = append(next, e)
		case KindPending:
			g := e.group
			switch len(g) {
			case 0:
			case 1:
				next = append(next, Placed(g[0]))
			case 2:
				a, b := pass.SortPair(g[0], g[1])
				next = append(next, Placed(a), Placed(b))
			default:
				left, pivot, right, err := pass.Partition(g)
				if err != nil {
					return nil, errors.Wrapf(err, "forest entry %d", i)
				}
				next = append(next, Entry[E]{kind: KindPending, group: left},
					Placed(pivot), Entry[E]{kind: KindPending, group: right})
			}
		default:
			return nil, errors.Wrapf(ErrUnknownKind, "forest entry %d: %v", i, e.kind)
		}
	}
	if glog.V(3) {
		glog.Infof("forest round: %v -> %v", f, next)
	}
	return next, nil
}

// String renders placed elements bare and pending groups in brackets,
// e.g. "[1 2] 3 []".
func (f Forest[E]) String() string {
	var sb strings.Builder
	for i, e := range f {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e.kind {
		case KindPlaced:
			fmt.Fprint(&sb, e.value)
		case KindPending:
			fmt.Fprint(&sb, []E(e.group))
		}
	}
	return sb.String()
}
