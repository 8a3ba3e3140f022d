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

// Command sorttrace prints the step-by-step trace of sorting a list of
// integers, one snapshot per line.
//
// Usage:
//
//	sorttrace bubble 3 1 2
//	sorttrace quick --format yaml 5 4 3 2 1
//	sorttrace quick --verify -- -3 7 -1      # "--" before negative values
//	SORTTRACE_INPUT="4 6 2" sorttrace bubble
//	sorttrace quick --config trace.yaml
//
// Input values may be separated by spaces or commas. When no values are given
// on the command line the "input" key from the environment or the config file
// is used.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

func main() {
	code := 0
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}
	glog.Flush()
	os.Exit(code)
}
