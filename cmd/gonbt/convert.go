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
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gonbt"
	_cbor "github.com/fxamacker/cbor/v2"
)

func runConvert(f *globalFlags) {
	convertFlags := flag.NewFlagSet("convert", flag.ExitOnError)
	format := convertFlags.String(
		"format",
		"json",
		"output format (json or cbor)",
	)
	output := convertFlags.String(
		"output",
		"",
		"output file (defaults to stdout)",
	)
	if err := convertFlags.Parse(f.flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if len(convertFlags.Args()) < 1 {
		fmt.Printf("Usage: gonbt convert [-format json|cbor] <file>\n")
		os.Exit(1)
	}
	doc := decodeFile(f, convertFlags.Arg(0))
	plain := map[string]any{
		doc.RootName: tagToPlain(doc.Root),
	}
	var out []byte
	var err error
	switch *format {
	case "json":
		out, err = json.MarshalIndent(plain, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case "cbor":
		// Deterministic map ordering so repeated conversions are
		// byte-identical
		var em _cbor.EncMode
		em, err = _cbor.EncOptions{
			Sort: _cbor.SortCoreDeterministic,
		}.EncMode()
		if err == nil {
			out, err = em.Marshal(plain)
		}
	default:
		fmt.Printf("Unknown output format: %s\n", *format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Failed to convert: %s\n", err)
		os.Exit(1)
	}
	if *output == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		fmt.Printf("Failed to write %s: %s\n", *output, err)
		os.Exit(1)
	}
}

// tagToPlain converts a tag tree to plain Go values for generic encoders
func tagToPlain(tag gonbt.Tag) any {
	switch v := tag.(type) {
	case gonbt.Byte:
		return int8(v)
	case gonbt.Short:
		return int16(v)
	case gonbt.Int:
		return int32(v)
	case gonbt.Long:
		return int64(v)
	case gonbt.Float:
		return float32(v)
	case gonbt.Double:
		return float64(v)
	case gonbt.String:
		return string(v)
	case gonbt.ByteArray:
		return []int8(v)
	case gonbt.IntArray:
		return []int32(v)
	case gonbt.LongArray:
		return []int64(v)
	case *gonbt.List:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = tagToPlain(item)
		}
		return items
	case *gonbt.Compound:
		entries := map[string]any{}
		for _, name := range v.Names() {
			child, _ := v.Get(name)
			entries[name] = tagToPlain(child)
		}
		return entries
	default:
		return nil
	}
}
