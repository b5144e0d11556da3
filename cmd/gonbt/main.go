// Copyright 2026 Blink Labs Software
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
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gonbt"
)

type globalFlags struct {
	flagset     *flag.FlagSet
	profile     string
	compression string
	maxDepth    int
	lenient     bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.profile,
		"profile",
		"java",
		"wire variant to decode with (java, bedrock, bedrock-network)",
	)
	f.flagset.StringVar(
		&f.compression,
		"compression",
		"auto",
		"compression framing (auto, none, gzip, zlib)",
	)
	f.flagset.IntVar(
		&f.maxDepth,
		"max-depth",
		gonbt.DefaultMaxDepth,
		"maximum nesting depth accepted while decoding",
	)
	f.flagset.BoolVar(
		&f.lenient,
		"lenient",
		false,
		"accept empty lists with invalid element types",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "dump":
			runDump(f)
		case "convert":
			runConvert(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (dump or convert)\n")
		os.Exit(1)
	}
}

// decodeFile reads and decodes a single NBT file using the global flags
func decodeFile(f *globalFlags, path string) *gonbt.Document {
	profile := gonbt.ProfileByName(f.profile)
	if profile == gonbt.ProfileInvalid {
		fmt.Printf("Invalid profile specified: %s\n", f.profile)
		os.Exit(1)
	}
	compression, err := gonbt.ParseCompression(f.compression)
	if err != nil {
		fmt.Printf("Invalid compression specified: %s\n", f.compression)
		os.Exit(1)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Failed to read %s: %s\n", path, err)
		os.Exit(1)
	}
	opts := []gonbt.DecodeOptionFunc{
		gonbt.WithCompression(compression),
		gonbt.WithMaxDepth(f.maxDepth),
	}
	if f.lenient {
		opts = append(opts, gonbt.WithLenientEmptyLists())
	}
	doc, err := gonbt.Decode(data, profile, opts...)
	if err != nil {
		fmt.Printf("Failed to decode %s: %s\n", path, err)
		os.Exit(1)
	}
	return doc
}
