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

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// parseInput returns the values to trace. Positional args win; otherwise the
// configured value is used, which may be a list (config file) or a single
// string (environment).
func parseInput(args []string, configured any) ([]int, error) {
	if len(args) > 0 {
		return parseFields(strings.Join(args, " "))
	}
	switch v := configured.(type) {
	case nil:
		return []int{}, nil
	case string:
		return parseFields(v)
	default:
		items, err := cast.ToSliceE(v)
		if err != nil {
			return nil, errors.Wrap(err, "input")
		}
		out := make([]int, 0, len(items))
		for _, item := range items {
			n, err := configValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
}

// configValue converts one element of a configured list. Strings get the
// same decimal parsing as the command line; floats and booleans are
// rejected rather than coerced.
func configValue(item any) (int, error) {
	switch v := item.(type) {
	case string:
		return parseDecimal(v)
	case float32, float64, bool:
		return 0, errors.Errorf("input value %v: not an integer", v)
	default:
		n, err := cast.ToIntE(v)
		if err != nil {
			return 0, errors.Wrapf(err, "input value %v", v)
		}
		return n, nil
	}
}

func parseFields(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := parseDecimal(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseDecimal accepts base-10 integers only, so "010" is ten and prefixes
// such as "0x" are errors.
func parseDecimal(f string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "input value %q", f)
	}
	return int(v), nil
}
