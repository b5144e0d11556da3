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
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression selects the stream framing around the raw tag bytes. The
// framing is fully transparent to the tag codec, which only ever sees
// decompressed bytes
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionGzip Compression = 1
	CompressionZlib Compression = 2
	// CompressionAuto sniffs the framing from the leading magic bytes.
	// Only meaningful on decode; encoding treats it as CompressionNone
	CompressionAuto Compression = 3
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	case CompressionAuto:
		return "auto"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression framing from its string
// representation
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	case "zlib":
		return CompressionZlib, nil
	case "auto":
		return CompressionAuto, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", name)
	}
}

// DetectCompression sniffs the compression framing from the leading bytes.
// The gzip magic is 1F 8B; a zlib stream starts with CMF 0x78 and a header
// checksum that is a multiple of 31. Anything else is treated as
// uncompressed
func DetectCompression(data []byte) Compression {
	if len(data) >= 2 {
		if data[0] == 0x1f && data[1] == 0x8b {
			return CompressionGzip
		}
		if data[0] == 0x78 &&
			(uint(data[0])<<8|uint(data[1]))%31 == 0 {
			return CompressionZlib
		}
	}
	return CompressionNone
}

func compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone, CompressionAuto:
		return data, nil
	case CompressionGzip:
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, &CompressionError{Err: err}
		}
		if err := zw.Close(); err != nil {
			return nil, &CompressionError{Err: err}
		}
		return buf.Bytes(), nil
	case CompressionZlib:
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, &CompressionError{Err: err}
		}
		if err := zw.Close(); err != nil {
			return nil, &CompressionError{Err: err}
		}
		return buf.Bytes(), nil
	default:
		return nil, &CompressionError{
			Err: fmt.Errorf("unsupported compression: %d", compression),
		}
	}
}

// decompress unwraps the compression framing and returns the raw tag bytes
// along with the framing that was actually used
func decompress(
	data []byte,
	compression Compression,
) ([]byte, Compression, error) {
	if compression == CompressionAuto {
		compression = DetectCompression(data)
	}
	switch compression {
	case CompressionNone:
		return data, compression, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, 0, &CompressionError{Err: err}
		}
		defer zr.Close()
		raw, err := io.ReadAll(zr)
		if err != nil {
			return nil, 0, &CompressionError{Err: err}
		}
		return raw, compression, nil
	case CompressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, 0, &CompressionError{Err: err}
		}
		defer zr.Close()
		raw, err := io.ReadAll(zr)
		if err != nil {
			return nil, 0, &CompressionError{Err: err}
		}
		return raw, compression, nil
	default:
		return nil, 0, &CompressionError{
			Err: fmt.Errorf("unsupported compression: %d", compression),
		}
	}
}
