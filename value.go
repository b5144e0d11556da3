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
)

// TagType is the wire type id for a tag. The numbering is fixed by the NBT
// format and will not grow at runtime
type TagType uint8

const (
	TypeEnd       TagType = 0x00
	TypeByte      TagType = 0x01
	TypeShort     TagType = 0x02
	TypeInt       TagType = 0x03
	TypeLong      TagType = 0x04
	TypeFloat     TagType = 0x05
	TypeDouble    TagType = 0x06
	TypeByteArray TagType = 0x07
	TypeString    TagType = 0x08
	TypeList      TagType = 0x09
	TypeCompound  TagType = 0x0a
	TypeIntArray  TagType = 0x0b
	TypeLongArray TagType = 0x0c
)

var tagTypeNames = []string{
	"TAG_End",
	"TAG_Byte",
	"TAG_Short",
	"TAG_Int",
	"TAG_Long",
	"TAG_Float",
	"TAG_Double",
	"TAG_Byte_Array",
	"TAG_String",
	"TAG_List",
	"TAG_Compound",
	"TAG_Int_Array",
	"TAG_Long_Array",
}

func (t TagType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TAG_Unknown(0x%02x)", uint8(t))
	}
	return tagTypeNames[t]
}

// Valid returns true if the type id is one of the defined NBT tag types
func (t TagType) Valid() bool {
	return t <= TypeLongArray
}

// Tag represents a single node in an NBT tree. The set of implementations
// is closed: every tag is one of the types defined in this file
type Tag interface {
	// Type returns the wire type id for the tag
	Type() TagType
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
)

func (Byte) Type() TagType      { return TypeByte }
func (Short) Type() TagType     { return TypeShort }
func (Int) Type() TagType       { return TypeInt }
func (Long) Type() TagType      { return TypeLong }
func (Float) Type() TagType     { return TypeFloat }
func (Double) Type() TagType    { return TypeDouble }
func (ByteArray) Type() TagType { return TypeByteArray }
func (String) Type() TagType    { return TypeString }
func (IntArray) Type() TagType  { return TypeIntArray }
func (LongArray) Type() TagType { return TypeLongArray }

// List is an ordered sequence of tags sharing a single element type. An
// empty list carries TypeEnd as its element type by convention
type List struct {
	ElementType TagType
	Items       []Tag
}

// NewList creates a list with the given element type and items
func NewList(elementType TagType, items ...Tag) *List {
	return &List{
		ElementType: elementType,
		Items:       items,
	}
}

func (*List) Type() TagType { return TypeList }

// Len returns the number of items in the list
func (l *List) Len() int {
	return len(l.Items)
}

// Compound is an ordered mapping from unique names to child tags. Insertion
// order is preserved across decode/encode round trips
type Compound struct {
	names []string
	tags  map[string]Tag
}

// NewCompound creates an empty compound
func NewCompound() *Compound {
	return &Compound{
		tags: map[string]Tag{},
	}
}

// WrapCompound creates a compound holding a single named tag
func WrapCompound(name string, tag Tag) *Compound {
	c := NewCompound()
	// A valid child tag can always be set
	_ = c.Set(name, tag)
	return c
}

func (*Compound) Type() TagType { return TypeCompound }

// Len returns the number of direct children
func (c *Compound) Len() int {
	return len(c.names)
}

// Get returns the child with the given name
func (c *Compound) Get(name string) (Tag, bool) {
	tag, ok := c.tags[name]
	return tag, ok
}

// Set adds or replaces the child with the given name. Replacing an existing
// child keeps its position in the insertion order. End tags are wire-only
// terminators and cannot be stored
func (c *Compound) Set(name string, tag Tag) error {
	if tag == nil {
		return fmt.Errorf("%w: nil tag", ErrInvariantViolation)
	}
	if tag.Type() == TypeEnd {
		return fmt.Errorf("%w: End tag in value position", ErrInvariantViolation)
	}
	if c.tags == nil {
		c.tags = map[string]Tag{}
	}
	if _, ok := c.tags[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tags[name] = tag
	return nil
}

// Delete removes the child with the given name and reports whether it existed
func (c *Compound) Delete(name string) bool {
	if _, ok := c.tags[name]; !ok {
		return false
	}
	delete(c.tags, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the child names in insertion order
func (c *Compound) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

func compoundGet[T Tag](c *Compound, name string) (T, error) {
	var zero T
	tag, ok := c.Get(name)
	if !ok {
		return zero, fmt.Errorf("no child named %q", name)
	}
	v, ok := tag.(T)
	if !ok {
		return zero, fmt.Errorf(
			"%w: child %q is %s",
			ErrTypeMismatch,
			name,
			tag.Type(),
		)
	}
	return v, nil
}

// Typed accessors for compound children. Each returns ErrTypeMismatch if a
// child exists but has a different type

func (c *Compound) GetByte(name string) (Byte, error) {
	return compoundGet[Byte](c, name)
}

func (c *Compound) GetShort(name string) (Short, error) {
	return compoundGet[Short](c, name)
}

func (c *Compound) GetInt(name string) (Int, error) {
	return compoundGet[Int](c, name)
}

func (c *Compound) GetLong(name string) (Long, error) {
	return compoundGet[Long](c, name)
}

func (c *Compound) GetFloat(name string) (Float, error) {
	return compoundGet[Float](c, name)
}

func (c *Compound) GetDouble(name string) (Double, error) {
	return compoundGet[Double](c, name)
}

func (c *Compound) GetByteArray(name string) (ByteArray, error) {
	return compoundGet[ByteArray](c, name)
}

func (c *Compound) GetString(name string) (String, error) {
	return compoundGet[String](c, name)
}

func (c *Compound) GetList(name string) (*List, error) {
	return compoundGet[*List](c, name)
}

func (c *Compound) GetCompound(name string) (*Compound, error) {
	return compoundGet[*Compound](c, name)
}

func (c *Compound) GetIntArray(name string) (IntArray, error) {
	return compoundGet[IntArray](c, name)
}

func (c *Compound) GetLongArray(name string) (LongArray, error) {
	return compoundGet[LongArray](c, name)
}

// Equal compares two tags structurally, including list element order and
// compound insertion order. Float comparisons treat payloads bitwise, so
// NaN values compare equal to themselves
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch va := a.(type) {
	case Float:
		return math.Float32bits(float32(va)) ==
			math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(va)) ==
			math.Float64bits(float64(b.(Double)))
	case ByteArray:
		vb := b.(ByteArray)
		if len(va) != len(vb) {
			return false
		}
		for i := range va {
			if va[i] != vb[i] {
				return false
			}
		}
		return true
	case IntArray:
		vb := b.(IntArray)
		if len(va) != len(vb) {
			return false
		}
		for i := range va {
			if va[i] != vb[i] {
				return false
			}
		}
		return true
	case LongArray:
		vb := b.(LongArray)
		if len(va) != len(vb) {
			return false
		}
		for i := range va {
			if va[i] != vb[i] {
				return false
			}
		}
		return true
	case *List:
		vb := b.(*List)
		if va.ElementType != vb.ElementType || len(va.Items) != len(vb.Items) {
			return false
		}
		for i := range va.Items {
			if !Equal(va.Items[i], vb.Items[i]) {
				return false
			}
		}
		return true
	case *Compound:
		vb := b.(*Compound)
		if len(va.names) != len(vb.names) {
			return false
		}
		for i, name := range va.names {
			if vb.names[i] != name {
				return false
			}
			if !Equal(va.tags[name], vb.tags[name]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Copy returns a deep copy of the tag. The input tree is never shared with
// the result
func Copy(tag Tag) Tag {
	switch v := tag.(type) {
	case ByteArray:
		out := make(ByteArray, len(v))
		copy(out, v)
		return out
	case IntArray:
		out := make(IntArray, len(v))
		copy(out, v)
		return out
	case LongArray:
		out := make(LongArray, len(v))
		copy(out, v)
		return out
	case *List:
		out := &List{
			ElementType: v.ElementType,
			Items:       make([]Tag, len(v.Items)),
		}
		for i, item := range v.Items {
			out.Items[i] = Copy(item)
		}
		return out
	case *Compound:
		out := NewCompound()
		for _, name := range v.names {
			_ = out.Set(name, Copy(v.tags[name]))
		}
		return out
	default:
		return tag
	}
}

// Walk visits the tag and all of its descendants depth-first in pre-order.
// The visit function receives the name the tag carries in its parent
// compound (empty for list elements and the initial tag) and returns false
// to stop the traversal
func Walk(tag Tag, visit func(name string, tag Tag) bool) {
	walkTag("", tag, visit)
}

func walkTag(name string, tag Tag, visit func(string, Tag) bool) bool {
	if !visit(name, tag) {
		return false
	}
	switch v := tag.(type) {
	case *List:
		for _, item := range v.Items {
			if !walkTag("", item, visit) {
				return false
			}
		}
	case *Compound:
		for _, childName := range v.names {
			if !walkTag(childName, v.tags[childName], visit) {
				return false
			}
		}
	}
	return true
}
