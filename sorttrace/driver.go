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
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sorttrace/sorttrace/forest"
	"github.com/ajroetker/go-sorttrace/sorttrace/pass"
	"github.com/ajroetker/go-sorttrace/sorttrace/seq"
)

// Bubble returns the trace of bubble-sorting input: the input itself followed
// by the result of each sweep, stopping at the first ascending snapshot.
//
// The loop trusts the ascending check alone and does not assume the n-sweep
// bound.
func Bubble[E constraints.Integer](input []E) Trace[E] {
	trace := Trace[E]{seq.Clone(seq.Sequence[E](input))}
	for cur := trace.Last(); !seq.Ascending(cur); {
		cur = pass.BubblePass(cur)
		trace = append(trace, cur)
		logSnapshot("bubble", len(trace)-1, cur)
	}
	return trace
}

// Quick returns the trace of a breadth-first quicksort of input. Each
// recorded snapshot is the flattened forest after one round, in which every
// pending group is partitioned once.
//
// An error means a forest invariant was broken; no partial trace is returned.
func Quick[E constraints.Integer](input []E) (Trace[E], error) {
	return quick(forest.New(input), forest.Forest[E].Round)
}

// quick drives round from f until the flattened forest ascends.
func quick[E constraints.Integer](f forest.Forest[E], round func(forest.Forest[E]) (forest.Forest[E], error)) (Trace[E], error) {
	trace := Trace[E]{f.Flatten()}
	for i := 1; !seq.Ascending(trace.Last()); i++ {
		var err error
		if f, err = round(f); err != nil {
			return nil, errors.Wrapf(err, "quick trace round %d", i)
		}
		snap := f.Flatten()
		trace = append(trace, snap)
		logSnapshot("quick", i, snap)
	}
	return trace, nil
}

func logSnapshot[E constraints.Integer](alg string, i int, s seq.Sequence[E]) {
	if glog.V(2) {
		glog.Infof("%s snapshot %d: %v", alg, i, []E(s))
	}
}

// Algorithm selects a trace driver.
type Algorithm int

const (
	// AlgorithmBubble selects Bubble.
	AlgorithmBubble Algorithm = iota
	// AlgorithmQuick selects Quick.
	AlgorithmQuick
)

var algorithmNames = map[Algorithm]string{
	AlgorithmBubble: "bubble",
	AlgorithmQuick:  "quick",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// ErrUnknownAlgorithm is returned for an algorithm name or value with no
// driver.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ParseAlgorithm maps a case-insensitive name ("bubble", "quick") to its
// Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for alg, n := range algorithmNames {
		if n == name {
			return alg, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Run records the trace of input with the driver selected by alg.
func Run[E constraints.Integer](alg Algorithm, input []E) (Trace[E], error) {
	switch alg {
	case AlgorithmBubble:
		return Bubble(input), nil
	case AlgorithmQuick:
		return Quick(input)
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(alg))
	}
}
