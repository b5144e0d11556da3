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

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{
		0,
		1,
		0x7f,
		0x80,
		0x3fff,
		0x4000,
		math.MaxUint32,
		math.MaxUint64,
	}
	for _, value := range values {
		w := NewWriter(binary.LittleEndian)
		writeUvarint(w, value)
		r := NewReader(w.Bytes(), binary.LittleEndian)
		decoded, err := readUvarint(r)
		if err != nil {
			t.Fatalf("failed to decode varint: %s", err)
		}
		if decoded != value {
			t.Fatalf(
				"did not get expected value, got: %d, wanted: %d",
				decoded,
				value,
			)
		}
		if r.Remaining() != 0 {
			t.Fatalf("expected all bytes consumed, %d left", r.Remaining())
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []int64{
		0,
		-1,
		1,
		63,
		-64,
		64,
		math.MinInt32,
		math.MaxInt32,
		math.MinInt64,
		math.MaxInt64,
	}
	for _, value := range values {
		w := NewWriter(binary.LittleEndian)
		writeVarint(w, value)
		r := NewReader(w.Bytes(), binary.LittleEndian)
		decoded, err := readVarint(r)
		if err != nil {
			t.Fatalf("failed to decode varint: %s", err)
		}
		if decoded != value {
			t.Fatalf(
				"did not get expected value, got: %d, wanted: %d",
				decoded,
				value,
			)
		}
	}
}

func TestVarintZigZagEncoding(t *testing.T) {
	// Small magnitudes map onto small unsigned values
	expected := map[int64][]byte{
		0:  {0x00},
		-1: {0x01},
		1:  {0x02},
		-2: {0x03},
		2:  {0x04},
	}
	for value, wanted := range expected {
		w := NewWriter(binary.LittleEndian)
		writeVarint(w, value)
		if !bytes.Equal(w.Bytes(), wanted) {
			t.Fatalf(
				"did not get expected encoding for %d, got: %x, wanted: %x",
				value,
				w.Bytes(),
				wanted,
			)
		}
	}
}

func TestUvarintTruncated(t *testing.T) {
	// Continuation bit set on the final available byte
	r := NewReader([]byte{0xff, 0xff}, binary.LittleEndian)
	_, err := readUvarint(r)
	if !errors.Is(err, ErrMalformedVarint) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}

func TestUvarintEmpty(t *testing.T) {
	r := NewReader(nil, binary.LittleEndian)
	_, err := readUvarint(r)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}

func TestUvarintUnterminated(t *testing.T) {
	// Ten continuation bytes with no terminator
	data := bytes.Repeat([]byte{0x80}, 11)
	r := NewReader(data, binary.LittleEndian)
	_, err := readUvarint(r)
	if !errors.Is(err, ErrMalformedVarint) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}

func TestUvarintOverflow(t *testing.T) {
	// Tenth byte contributes more than the single remaining bit
	data := append(bytes.Repeat([]byte{0x80}, 9), 0x02)
	r := NewReader(data, binary.LittleEndian)
	_, err := readUvarint(r)
	if !errors.Is(err, ErrMalformedVarint) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}
