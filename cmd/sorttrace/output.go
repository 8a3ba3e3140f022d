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
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sorttrace/sorttrace"
	"github.com/ajroetker/go-sorttrace/sorttrace/seq"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

func validFormat(f string) bool {
	return lo.Contains([]string{formatText, formatYAML, formatJSON}, f)
}

// document is the structured form of a trace.
type document struct {
	Algorithm string  `json:"algorithm" yaml:"algorithm"`
	Input     []int   `json:"input" yaml:"input,flow"`
	Snapshots [][]int `json:"snapshots" yaml:"snapshots"`
}

func writeTrace(w io.Writer, format string, alg sorttrace.Algorithm, input []int, tr sorttrace.Trace[int]) error {
	switch format {
	case formatText:
		return writeText(w, tr)
	case formatYAML, formatJSON:
		doc := document{
			Algorithm: alg.String(),
			Input:     input,
			Snapshots: lo.Map(tr, func(s seq.Sequence[int], _ int) []int { return s }),
		}
		if format == formatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return errors.Wrap(enc.Encode(doc), "encoding json")
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

// writeText prints one snapshot per line, values separated by spaces. An
// empty snapshot is an empty line.
func writeText(w io.Writer, tr sorttrace.Trace[int]) error {
	bw := bufio.NewWriter(w)
	for _, s := range tr {
		bw.WriteString(strings.Join(lo.Map(s, func(v int, _ int) string { return strconv.Itoa(v) }), " "))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "writing trace")
}
