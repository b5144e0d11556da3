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

// Package gonbt implements the Named Binary Tag (NBT) format used by
// Minecraft to persist structured game data.
//
// Three wire variants are supported, selected by Profile: ProfileJava
// (big-endian), ProfileBedrock (little-endian), and ProfileBedrockNetwork
// (little-endian with variable-length integers and no root name). Optional
// gzip/zlib framing is handled transparently and auto-detected on decode.
//
// Decoding produces a Document holding the root tag, its name, and the
// profile used:
//
//	doc, err := gonbt.Decode(data, gonbt.ProfileJava)
//	if err != nil {
//	    return err
//	}
//	root := doc.Root.(*gonbt.Compound)
//	pos, err := root.GetList("Pos")
//
// Encoding is the inverse; a document re-encodes to semantically identical
// bytes:
//
//	data, err := doc.Encode()
//
// All decode errors are recoverable and carry the byte offset at which
// they occurred. The codec holds no shared state: independent decodes may
// run concurrently.
package gonbt
