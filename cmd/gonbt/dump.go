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
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gonbt"
)

func runDump(f *globalFlags) {
	if len(f.flagset.Args()) < 2 {
		fmt.Printf("Usage: gonbt dump <file>\n")
		os.Exit(1)
	}
	doc := decodeFile(f, f.flagset.Arg(1))
	dumpTag(doc.RootName, doc.Root, 0)
}

func dumpTag(name string, tag gonbt.Tag, indent int) {
	prefix := strings.Repeat("  ", indent)
	label := tag.Type().String()
	if name != "" {
		label = fmt.Sprintf("%s(%q)", label, name)
	}
	switch v := tag.(type) {
	case *gonbt.Compound:
		fmt.Printf("%s%s: %d entries\n", prefix, label, v.Len())
		for _, childName := range v.Names() {
			child, _ := v.Get(childName)
			dumpTag(childName, child, indent+1)
		}
	case *gonbt.List:
		fmt.Printf(
			"%s%s: %d entries of type %s\n",
			prefix,
			label,
			v.Len(),
			v.ElementType,
		)
		for _, item := range v.Items {
			dumpTag("", item, indent+1)
		}
	case gonbt.ByteArray:
		fmt.Printf("%s%s: [%d bytes]\n", prefix, label, len(v))
	case gonbt.IntArray:
		fmt.Printf("%s%s: [%d ints]\n", prefix, label, len(v))
	case gonbt.LongArray:
		fmt.Printf("%s%s: [%d longs]\n", prefix, label, len(v))
	case gonbt.String:
		fmt.Printf("%s%s: %q\n", prefix, label, string(v))
	default:
		fmt.Printf("%s%s: %v\n", prefix, label, v)
	}
}
