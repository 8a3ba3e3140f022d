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
	goflag "flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-sorttrace/sorttrace"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const envPrefix = "SORTTRACE"

func init() {
	// glog writes to files by default; a CLI wants stderr.
	if err := goflag.Set("logtostderr", "true"); err != nil {
		panic(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sorttrace",
		Short: "Print the step-by-step trace of sorting a list of integers",
		Long: `
sorttrace records every intermediate state a sorting algorithm passes
through, from the input to the first ascending state, and prints one
snapshot per line (or as YAML/JSON).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "",
		"Configuration file. Overridden by environment variables and flags.")
	root.PersistentFlags().String("format", formatText,
		"Output format, one of [text, yaml, json].")
	root.PersistentFlags().Bool("verify", false,
		"Check the trace invariants before printing it.")

	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	if !goflag.Parsed() {
		_ = goflag.CommandLine.Parse(nil)
	}

	for _, alg := range []sorttrace.Algorithm{sorttrace.AlgorithmBubble, sorttrace.AlgorithmQuick} {
		root.AddCommand(newTraceCmd(alg, root.PersistentFlags()))
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sorttrace %s\n", version)
		},
	})
	return root
}

func newTraceCmd(alg sorttrace.Algorithm, persistent *flag.FlagSet) *cobra.Command {
	conf := viper.New()
	cmd := &cobra.Command{
		Use:   alg.String() + " [values...]",
		Short: fmt.Sprintf("Trace a %s sort of the given values", alg),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(conf); err != nil {
				return err
			}
			input, err := parseInput(args, conf.Get("input"))
			if err != nil {
				return err
			}
			return runTrace(cmd, conf, alg, input)
		},
	}
	if err := conf.BindPFlags(persistent); err != nil {
		glog.Fatalf("binding flags: %v", err)
	}
	conf.SetEnvPrefix(envPrefix)
	conf.AutomaticEnv()
	return cmd
}

func loadConfig(conf *viper.Viper) error {
	cfg := conf.GetString("config")
	if cfg == "" {
		return nil
	}
	conf.SetConfigFile(cfg)
	if err := conf.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", cfg)
	}
	glog.V(1).Infof("using config file %s", conf.ConfigFileUsed())
	return nil
}

func runTrace(cmd *cobra.Command, conf *viper.Viper, alg sorttrace.Algorithm, input []int) error {
	format := conf.GetString("format")
	if !validFormat(format) {
		return errors.Errorf("unknown format %q", format)
	}

	tr, err := sorttrace.Run(alg, input)
	if err != nil {
		return errors.Wrapf(err, "%s trace", alg)
	}
	glog.V(1).Infof("%s: recorded %d snapshots for %d values", alg, tr.Len(), len(input))

	if conf.GetBool("verify") {
		if err := tr.Validate(input); err != nil {
			return errors.Wrapf(err, "%s trace", alg)
		}
		glog.V(1).Infof("%s: trace verified", alg)
	}
	return writeTrace(cmd.OutOrStdout(), format, alg, input, tr)
}
