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
	"fmt"
	"math"
	"unicode/utf8"
)

// Encoder holds the per-call state for a single encode pass
type Encoder struct {
	w       *Writer
	profile Profile
}

// Encode serializes a document to bytes using its profile and compression.
// A structurally invalid tree (heterogeneous list, nil child, End in value
// position) is a programmer error and fails with ErrInvariantViolation
// rather than being silently repaired
func Encode(doc *Document) ([]byte, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("%w: nil document root", ErrInvariantViolation)
	}
	if doc.Root.Type() == TypeEnd {
		return nil, fmt.Errorf(
			"%w: End tag in value position",
			ErrInvariantViolation,
		)
	}
	if doc.Profile.ByteOrder == nil {
		return nil, fmt.Errorf(
			"%w: profile %q has no byte order",
			ErrInvariantViolation,
			doc.Profile.Name,
		)
	}
	e := &Encoder{
		w:       NewWriter(doc.Profile.ByteOrder),
		profile: doc.Profile,
	}
	e.w.WriteUint8(uint8(doc.Root.Type()))
	if !doc.Profile.OmitRootName {
		if err := e.writeString(doc.RootName); err != nil {
			return nil, err
		}
	}
	if err := e.encodeValue(doc.Root); err != nil {
		return nil, err
	}
	return compress(e.w.Bytes(), doc.Compression)
}

func (e *Encoder) encodeValue(tag Tag) error {
	switch v := tag.(type) {
	case Byte:
		e.w.WriteUint8(uint8(v))
	case Short:
		e.w.WriteUint16(uint16(v))
	case Int:
		e.w.WriteUint32(uint32(v))
	case Long:
		e.w.WriteUint64(uint64(v))
	case Float:
		e.w.WriteUint32(math.Float32bits(float32(v)))
	case Double:
		e.w.WriteUint64(math.Float64bits(float64(v)))
	case String:
		return e.writeString(string(v))
	case ByteArray:
		if err := e.writeCount(len(v)); err != nil {
			return err
		}
		raw := make([]byte, len(v))
		for i, b := range v {
			raw[i] = uint8(b)
		}
		e.w.WriteBytes(raw)
	case IntArray:
		if err := e.writeCount(len(v)); err != nil {
			return err
		}
		for _, item := range v {
			e.w.WriteUint32(uint32(item))
		}
	case LongArray:
		if err := e.writeCount(len(v)); err != nil {
			return err
		}
		for _, item := range v {
			e.w.WriteUint64(uint64(item))
		}
	case *List:
		return e.encodeList(v)
	case *Compound:
		return e.encodeCompound(v)
	default:
		return fmt.Errorf("%w: unsupported tag %T", ErrInvariantViolation, tag)
	}
	return nil
}

func (e *Encoder) encodeList(list *List) error {
	if !list.ElementType.Valid() {
		return fmt.Errorf(
			"%w: list element type 0x%02x",
			ErrInvariantViolation,
			uint8(list.ElementType),
		)
	}
	if list.ElementType == TypeEnd && len(list.Items) > 0 {
		return fmt.Errorf(
			"%w: non-empty list with End element type",
			ErrInvariantViolation,
		)
	}
	for i, item := range list.Items {
		if item == nil {
			return fmt.Errorf(
				"%w: nil list element %d",
				ErrInvariantViolation,
				i,
			)
		}
		if item.Type() != list.ElementType {
			return fmt.Errorf(
				"%w: list element %d is %s, want %s",
				ErrInvariantViolation,
				i,
				item.Type(),
				list.ElementType,
			)
		}
	}
	e.w.WriteUint8(uint8(list.ElementType))
	if err := e.writeCount(len(list.Items)); err != nil {
		return err
	}
	for _, item := range list.Items {
		if err := e.encodeValue(item); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeCompound(compound *Compound) error {
	for _, name := range compound.names {
		child := compound.tags[name]
		e.w.WriteUint8(uint8(child.Type()))
		if err := e.writeString(name); err != nil {
			return err
		}
		if err := e.encodeValue(child); err != nil {
			return err
		}
	}
	e.w.WriteUint8(uint8(TypeEnd))
	return nil
}

func (e *Encoder) writeCount(count int) error {
	if e.profile.VarLength {
		writeVarint(e.w, int64(count))
		return nil
	}
	if count > math.MaxInt32 {
		return fmt.Errorf("%w: count %d", ErrLengthOverflow, count)
	}
	e.w.WriteUint32(uint32(int32(count)))
	return nil
}

func (e *Encoder) writeString(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if e.profile.VarLength {
		writeUvarint(e.w, uint64(len(s)))
	} else {
		if len(s) > math.MaxUint16 {
			return fmt.Errorf("%w: length %d", ErrStringTooLong, len(s))
		}
		e.w.WriteUint16(uint16(len(s)))
	}
	e.w.WriteBytes([]byte(s))
	return nil
}
