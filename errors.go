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
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrInvalidUTF8        = errors.New("invalid UTF-8 in string")
	ErrStringTooLong      = errors.New("string length exceeds available input")
	ErrLengthOverflow     = errors.New("invalid length prefix")
	ErrDuplicateKey       = errors.New("duplicate key in compound")
	ErrDepthExceeded      = errors.New("maximum nesting depth exceeded")
	ErrMalformedVarint    = errors.New("malformed varint")
	ErrTypeMismatch       = errors.New("tag type mismatch")
	ErrInvariantViolation = errors.New("tag tree invariant violation")
)

// UnknownTagTypeError is returned when a type id outside the defined NBT
// numbering is read from the wire
type UnknownTagTypeError struct {
	ID uint8
}

func (e *UnknownTagTypeError) Error() string {
	return fmt.Sprintf("unknown tag type: 0x%02x", e.ID)
}

// DecodeError wraps any error raised while decoding and records the byte
// offset (into the decompressed stream) at which it occurred
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d: %s", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// CompressionError wraps a failure from the compression framing layer
type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("compression error: %s", e.Err)
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}
