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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTraceAccessors(t *testing.T) {
	tr := trace{{3, 1, 2}, {1, 2, 3}}
	require.Equal(t, 2, tr.Len())
	require.Equal(t, snap{3, 1, 2}, tr.First())
	require.Equal(t, snap{1, 2, 3}, tr.Last())
}

func TestFrames(t *testing.T) {
	tr := Bubble([]int{5, 4, 3, 2, 1})

	var idx []int
	for i, s := range tr.Frames() {
		idx = append(idx, i)
		require.Equal(t, tr[i], s)
		s[0] = -1
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, idx)
	require.Equal(t, 5, tr[0][0], "frames yield copies")

	n := 0
	for range tr.Frames() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestValidate(t *testing.T) {
	in := []int{3, 1, 2}
	tests := []struct {
		name  string
		tr    trace
		index int
	}{
		{"empty", trace{}, -1},
		{"wrong first", trace{{1, 3, 2}, {1, 2, 3}}, 0},
		{"not permutation", trace{{3, 1, 2}, {1, 2, 4}}, 1},
		{"last not ascending", trace{{3, 1, 2}, {1, 3, 2}}, 1},
		{"ascending too early", trace{{3, 1, 2}, {1, 2, 3}, {1, 2, 3}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Validate(in)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidTrace))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.index, verr.Index)
		})
	}

	require.NoError(t, trace{{3, 1, 2}, {1, 2, 3}}.Validate(in))
	require.NoError(t, trace{{}}.Validate(nil))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Index: 2, Reason: "boom"}
	require.Equal(t, "invalid trace: snapshot 2: boom", err.Error())
	err = &ValidationError{Index: -1, Reason: "empty"}
	require.Equal(t, "invalid trace: empty", err.Error())
}
