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
	"math"
	"unicode/utf8"
)

// DefaultMaxDepth bounds decode recursion against adversarial input. This
// is generous: vanilla game data rarely nests past a few dozen levels
const DefaultMaxDepth = 512

// Decoder holds the per-call state for a single decode pass. It is not
// reused across calls and holds no process-wide state
type Decoder struct {
	r                 *Reader
	profile           Profile
	compression       Compression
	maxDepth          int
	lenientEmptyLists bool
}

// Decode reads a single root tag from data using the given profile and
// returns it as a Document. Compression framing is auto-detected unless
// overridden via WithCompression. Any bytes after the root tag are ignored
func Decode(
	data []byte,
	profile Profile,
	opts ...DecodeOptionFunc,
) (*Document, error) {
	if profile.ByteOrder == nil {
		return nil, fmt.Errorf(
			"%w: profile %q has no byte order",
			ErrInvariantViolation,
			profile.Name,
		)
	}
	d := &Decoder{
		profile:     profile,
		compression: CompressionAuto,
		maxDepth:    DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	raw, compression, err := decompress(data, d.compression)
	if err != nil {
		return nil, err
	}
	d.r = NewReader(raw, profile.ByteOrder)
	id, err := d.r.ReadUint8()
	if err != nil {
		return nil, d.fail(err)
	}
	rootType := TagType(id)
	if !rootType.Valid() {
		return nil, d.fail(&UnknownTagTypeError{ID: id})
	}
	if rootType == TypeEnd {
		return nil, d.fail(
			fmt.Errorf("%w: End tag in value position", ErrInvariantViolation),
		)
	}
	var rootName string
	if !profile.OmitRootName {
		rootName, err = d.readString()
		if err != nil {
			return nil, d.fail(err)
		}
	}
	root, err := d.decodeValue(rootType, 0)
	if err != nil {
		return nil, d.fail(err)
	}
	return &Document{
		RootName:    rootName,
		Root:        root,
		Profile:     profile,
		Compression: compression,
	}, nil
}

// fail wraps an error with the current byte offset, unless it already
// carries one from a nested call
func (d *Decoder) fail(err error) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return err
	}
	return &DecodeError{
		Offset: d.r.Position(),
		Err:    err,
	}
}

func (d *Decoder) decodeValue(tagType TagType, depth int) (Tag, error) {
	if depth > d.maxDepth {
		return nil, d.fail(ErrDepthExceeded)
	}
	switch tagType {
	case TypeByte:
		v, err := d.r.ReadUint8()
		if err != nil {
			return nil, d.fail(err)
		}
		return Byte(int8(v)), nil
	case TypeShort:
		v, err := d.r.ReadUint16()
		if err != nil {
			return nil, d.fail(err)
		}
		return Short(int16(v)), nil
	case TypeInt:
		v, err := d.r.ReadUint32()
		if err != nil {
			return nil, d.fail(err)
		}
		return Int(int32(v)), nil
	case TypeLong:
		v, err := d.r.ReadUint64()
		if err != nil {
			return nil, d.fail(err)
		}
		return Long(int64(v)), nil
	case TypeFloat:
		v, err := d.r.ReadUint32()
		if err != nil {
			return nil, d.fail(err)
		}
		return Float(math.Float32frombits(v)), nil
	case TypeDouble:
		v, err := d.r.ReadUint64()
		if err != nil {
			return nil, d.fail(err)
		}
		return Double(math.Float64frombits(v)), nil
	case TypeString:
		s, err := d.readString()
		if err != nil {
			return nil, d.fail(err)
		}
		return String(s), nil
	case TypeByteArray:
		count, err := d.readCount(1)
		if err != nil {
			return nil, d.fail(err)
		}
		raw, err := d.r.ReadBytes(count)
		if err != nil {
			return nil, d.fail(err)
		}
		arr := make(ByteArray, count)
		for i, b := range raw {
			arr[i] = int8(b)
		}
		return arr, nil
	case TypeIntArray:
		count, err := d.readCount(4)
		if err != nil {
			return nil, d.fail(err)
		}
		arr := make(IntArray, count)
		for i := range count {
			v, err := d.r.ReadUint32()
			if err != nil {
				return nil, d.fail(err)
			}
			arr[i] = int32(v)
		}
		return arr, nil
	case TypeLongArray:
		count, err := d.readCount(8)
		if err != nil {
			return nil, d.fail(err)
		}
		arr := make(LongArray, count)
		for i := range count {
			v, err := d.r.ReadUint64()
			if err != nil {
				return nil, d.fail(err)
			}
			arr[i] = int64(v)
		}
		return arr, nil
	case TypeList:
		return d.decodeList(depth)
	case TypeCompound:
		return d.decodeCompound(depth)
	default:
		return nil, d.fail(&UnknownTagTypeError{ID: uint8(tagType)})
	}
}

func (d *Decoder) decodeList(depth int) (Tag, error) {
	elemID, err := d.r.ReadUint8()
	if err != nil {
		return nil, d.fail(err)
	}
	count, err := d.readRawCount()
	if err != nil {
		return nil, d.fail(err)
	}
	elemType := TagType(elemID)
	if !elemType.Valid() {
		if !d.lenientEmptyLists || count != 0 {
			return nil, d.fail(&UnknownTagTypeError{ID: elemID})
		}
		elemType = TypeEnd
	}
	if elemType == TypeEnd && count > 0 {
		return nil, d.fail(
			fmt.Errorf(
				"%w: non-empty list with End element type",
				ErrInvariantViolation,
			),
		)
	}
	// Every element other than End takes at least one byte on the wire
	if count > d.r.Remaining() {
		return nil, d.fail(
			fmt.Errorf(
				"%w: count %d exceeds remaining input",
				ErrLengthOverflow,
				count,
			),
		)
	}
	items := make([]Tag, 0, count)
	for range count {
		item, err := d.decodeValue(elemType, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &List{
		ElementType: elemType,
		Items:       items,
	}, nil
}

func (d *Decoder) decodeCompound(depth int) (Tag, error) {
	compound := NewCompound()
	for {
		id, err := d.r.ReadUint8()
		if err != nil {
			return nil, d.fail(err)
		}
		childType := TagType(id)
		if childType == TypeEnd {
			return compound, nil
		}
		if !childType.Valid() {
			return nil, d.fail(&UnknownTagTypeError{ID: id})
		}
		name, err := d.readString()
		if err != nil {
			return nil, d.fail(err)
		}
		if _, ok := compound.Get(name); ok {
			return nil, d.fail(fmt.Errorf("%w: %q", ErrDuplicateKey, name))
		}
		child, err := d.decodeValue(childType, depth+1)
		if err != nil {
			return nil, err
		}
		if err := compound.Set(name, child); err != nil {
			return nil, d.fail(err)
		}
	}
}

// readCount reads an array element count per the profile's length strategy
// and validates it against the remaining input
func (d *Decoder) readCount(elemSize int) (int, error) {
	count, err := d.readRawCount()
	if err != nil {
		return 0, err
	}
	if count > d.r.Remaining()/elemSize {
		return 0, fmt.Errorf(
			"%w: count %d exceeds remaining input",
			ErrLengthOverflow,
			count,
		)
	}
	return count, nil
}

// readRawCount reads and sign-checks a count without validating it against
// the remaining input
func (d *Decoder) readRawCount() (int, error) {
	var count int64
	if d.profile.VarLength {
		v, err := readVarint(d.r)
		if err != nil {
			return 0, err
		}
		count = v
	} else {
		v, err := d.r.ReadUint32()
		if err != nil {
			return 0, err
		}
		count = int64(int32(v))
	}
	if count < 0 || count > math.MaxInt32 {
		return 0, fmt.Errorf("%w: count %d", ErrLengthOverflow, count)
	}
	return int(count), nil
}

// readString reads a length-prefixed string per the profile's string
// length strategy
func (d *Decoder) readString() (string, error) {
	var length int64
	if d.profile.VarLength {
		v, err := readUvarint(d.r)
		if err != nil {
			return "", err
		}
		if v > math.MaxInt32 {
			return "", fmt.Errorf("%w: declared length %d", ErrStringTooLong, v)
		}
		length = int64(v)
	} else {
		v, err := d.r.ReadUint16()
		if err != nil {
			return "", err
		}
		length = int64(v)
	}
	if length > int64(d.r.Remaining()) {
		return "", fmt.Errorf(
			"%w: declared length %d exceeds remaining input",
			ErrStringTooLong,
			length,
		)
	}
	raw, err := d.r.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}
