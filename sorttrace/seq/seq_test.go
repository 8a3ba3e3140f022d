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

package seq

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestAscending(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want bool
	}{
		{"empty", nil, true},
		{"single", []int{7}, true},
		{"pair", []int{1, 2}, true},
		{"pair reversed", []int{2, 1}, false},
		{"duplicates", []int{1, 1, 2, 2, 2, 3}, true},
		{"all same", []int{5, 5, 5, 5}, true},
		{"tail out of order", []int{1, 2, 3, 5, 4}, false},
		{"negative", []int{-3, -2, 0, 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Ascending(tt.in))
		})
	}
}

func TestEqual(t *testing.T) {
	require.True(t, Equal([]int{}, []int{}))
	require.True(t, Equal[[]int](nil, []int{}))
	require.True(t, Equal([]int{3, 1, 2}, []int{3, 1, 2}))
	require.False(t, Equal([]int{3, 1, 2}, []int{3, 2, 1}))

	// A prefix is not equal to the longer sequence.
	require.False(t, Equal([]int{1, 2}, []int{1, 2, 3}))
	require.False(t, Equal([]int{1, 2, 3}, []int{1, 2}))
}

func TestZip(t *testing.T) {
	got := Zip([]int{1, 2, 3}, []int{4, 5})
	require.Equal(t, []lo.Tuple2[int, int]{{A: 1, B: 4}, {A: 2, B: 5}}, got)
	require.Empty(t, Zip([]int{}, []int{1}))
}

func TestMultisetEqual(t *testing.T) {
	require.True(t, MultisetEqual([]int{3, 1, 2, 1}, []int{1, 1, 2, 3}))
	require.True(t, MultisetEqual[[]int](nil, nil))
	require.False(t, MultisetEqual([]int{1, 1, 2}, []int{1, 2, 2}))
	require.False(t, MultisetEqual([]int{1, 2}, []int{1, 2, 2}))
}

func TestMax(t *testing.T) {
	m, ok := Max([]int64{4, -1, 9, 3})
	require.True(t, ok)
	require.Equal(t, int64(9), m)

	_, ok = Max([]int64{})
	require.False(t, ok)
}

func TestClone(t *testing.T) {
	in := Sequence[int]{3, 1, 2}
	out := Clone(in)
	require.Equal(t, in, out)
	out[0] = 99
	require.Equal(t, 3, in[0], "clone must not alias its source")

	empty := Clone[[]int](nil)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}
