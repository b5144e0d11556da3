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

package gonbt

// Document is the top-level decoded unit: the root tag, its name (empty
// when the profile omits it), and the profile and compression framing used
// to produce it. Re-encoding with the same profile reproduces semantically
// identical bytes, modulo compression framing
type Document struct {
	RootName    string
	Root        Tag
	Profile     Profile
	Compression Compression
}

// NewDocument creates an uncompressed document with the given root
func NewDocument(rootName string, root Tag, profile Profile) *Document {
	return &Document{
		RootName: rootName,
		Root:     root,
		Profile:  profile,
	}
}

// Encode serializes the document using its profile and compression
func (d *Document) Encode() ([]byte, error) {
	return Encode(d)
}

// Copy returns a deep copy of the document. The tag tree is a strict
// ownership hierarchy, so the copy shares nothing with the original
func (d *Document) Copy() *Document {
	return &Document{
		RootName:    d.RootName,
		Root:        Copy(d.Root),
		Profile:     d.Profile,
		Compression: d.Compression,
	}
}
