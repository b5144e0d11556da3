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

//go:build go1.18

package gonbt

import "testing"

func FuzzDecode(f *testing.F) {
	// Seed corpus with valid NBT samples
	f.Add([]byte{0x0a, 0x00, 0x00, 0x00}) // empty compound
	f.Add([]byte{0x01, 0x00, 0x01, 0x61, 0x05}) // byte "a" = 5
	f.Add(
		[]byte{0x03, 0x00, 0x01, 0x61, 0x00, 0x00, 0x00, 0x05},
	) // int "a" = 5
	f.Add(
		[]byte{0x08, 0x00, 0x01, 0x73, 0x00, 0x02, 0x68, 0x69},
	) // string "s" = "hi"
	f.Add(
		[]byte{0x09, 0x00, 0x01, 0x6c, 0x00, 0x00, 0x00, 0x00, 0x00},
	) // empty list
	f.Add(
		[]byte{
			0x0a, 0x00, 0x03, 0x66, 0x6f, 0x6f,
			0x01, 0x00, 0x01, 0x78, 0x05,
			0x00,
		},
	) // compound "foo" with byte child
	f.Add(
		[]byte{
			0x07, 0x00, 0x01, 0x62, 0x00, 0x00, 0x00, 0x02, 0x01, 0x02,
		},
	) // byte array
	f.Add([]byte{0x00}) // bare end tag

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, profile := range []Profile{
			ProfileJava,
			ProfileBedrock,
			ProfileBedrockNetwork,
		} {
			_, _ = Decode(data, profile)
			// Should not panic - that's the test
		}
	})
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{0x0a, 0x00, 0x00, 0x00})
	f.Add([]byte{0x01, 0x00, 0x01, 0x61, 0x05})

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Decode(data, ProfileJava)
		if err != nil {
			return
		}
		encoded, err := doc.Encode()
		if err != nil {
			t.Fatalf("failed to re-encode decoded document: %s", err)
		}
		doc2, err := Decode(encoded, ProfileJava)
		if err != nil {
			t.Fatalf("failed to decode re-encoded document: %s", err)
		}
		if !Equal(doc.Root, doc2.Root) {
			t.Fatalf("round trip changed document contents")
		}
	})
}
