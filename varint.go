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

// Variable-length integer codec used by the Bedrock network variant.
// Unsigned values are encoded as little-endian base-128 groups with a
// continuation bit on all but the final byte. Signed values are zig-zag
// mapped onto the unsigned encoding.

// A 64-bit value needs at most 10 groups
const maxVarintLen = 10

func readUvarint(r *Reader) (uint64, error) {
	var x uint64
	var shift uint
	for i := range maxVarintLen {
		b, err := r.ReadUint8()
		if err != nil {
			if i == 0 {
				return 0, err
			}
			// Continuation bit set on the final available byte
			return 0, ErrMalformedVarint
		}
		if b < 0x80 {
			if i == maxVarintLen-1 && b > 1 {
				return 0, ErrMalformedVarint
			}
			return x | uint64(b)<<shift, nil
		}
		x |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, ErrMalformedVarint
}

func readVarint(r *Reader) (int64, error) {
	u, err := readUvarint(r)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

func writeUvarint(w *Writer, v uint64) {
	for v >= 0x80 {
		w.WriteUint8(byte(v) | 0x80)
		v >>= 7
	}
	w.WriteUint8(byte(v))
}

func writeVarint(w *Writer, v int64) {
	writeUvarint(w, uint64(v<<1)^uint64(v>>63))
}
