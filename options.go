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

// DecodeOptionFunc is a type that represents functions that modify the decoder config
type DecodeOptionFunc func(*Decoder)

// WithCompression specifies the compression framing around the tag data.
// If none is provided, the framing is auto-detected from the leading magic
// bytes
func WithCompression(compression Compression) DecodeOptionFunc {
	return func(d *Decoder) {
		d.compression = compression
	}
}

// WithMaxDepth specifies the maximum nesting depth accepted before decoding
// fails with ErrDepthExceeded. Defaults to DefaultMaxDepth
func WithMaxDepth(depth int) DecodeOptionFunc {
	return func(d *Decoder) {
		d.maxDepth = depth
	}
}

// WithLenientEmptyLists accepts empty lists whose element type id is not a
// defined tag type, normalizing the element type to End. Some writers emit
// garbage element types for empty lists
func WithLenientEmptyLists() DecodeOptionFunc {
	return func(d *Decoder) {
		d.lenientEmptyLists = true
	}
}
