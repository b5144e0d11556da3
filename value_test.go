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

package gonbt_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/blinklabs-io/gonbt"
)

func TestCompoundInsertionOrder(t *testing.T) {
	c := gonbt.NewCompound()
	_ = c.Set("zebra", gonbt.Byte(1))
	_ = c.Set("apple", gonbt.Byte(2))
	_ = c.Set("mango", gonbt.Byte(3))
	expected := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(c.Names(), expected) {
		t.Fatalf(
			"did not get expected names, got: %v, wanted: %v",
			c.Names(),
			expected,
		)
	}
	// Replacing a child keeps its position
	_ = c.Set("apple", gonbt.Byte(9))
	if !reflect.DeepEqual(c.Names(), expected) {
		t.Fatalf(
			"replace changed insertion order, got: %v, wanted: %v",
			c.Names(),
			expected,
		)
	}
	v, err := c.GetByte("apple")
	if err != nil {
		t.Fatalf("failed to get child: %s", err)
	}
	if v != 9 {
		t.Fatalf("did not get expected value, got: %d, wanted: 9", v)
	}
}

func TestCompoundDelete(t *testing.T) {
	c := gonbt.NewCompound()
	_ = c.Set("a", gonbt.Byte(1))
	_ = c.Set("b", gonbt.Byte(2))
	if !c.Delete("a") {
		t.Fatalf("expected delete to report existing child")
	}
	if c.Delete("a") {
		t.Fatalf("expected delete to report missing child")
	}
	if !reflect.DeepEqual(c.Names(), []string{"b"}) {
		t.Fatalf("did not get expected names, got: %v", c.Names())
	}
}

func TestCompoundRejectsNilTag(t *testing.T) {
	c := gonbt.NewCompound()
	err := c.Set("x", nil)
	if !errors.Is(err, gonbt.ErrInvariantViolation) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}

func TestCompoundTypedAccessors(t *testing.T) {
	c := gonbt.NewCompound()
	_ = c.Set("count", gonbt.Int(42))
	_ = c.Set("name", gonbt.String("creeper"))
	_ = c.Set("pos", gonbt.NewList(gonbt.TypeDouble, gonbt.Double(1.5)))
	count, err := c.GetInt("count")
	if err != nil {
		t.Fatalf("failed to get child: %s", err)
	}
	if count != 42 {
		t.Fatalf("did not get expected value, got: %d, wanted: 42", count)
	}
	name, err := c.GetString("name")
	if err != nil {
		t.Fatalf("failed to get child: %s", err)
	}
	if name != "creeper" {
		t.Fatalf("did not get expected value, got: %q", name)
	}
	pos, err := c.GetList("pos")
	if err != nil {
		t.Fatalf("failed to get child: %s", err)
	}
	if pos.Len() != 1 {
		t.Fatalf("did not get expected length, got: %d, wanted: 1", pos.Len())
	}
	// Wrong type fails with ErrTypeMismatch
	if _, err := c.GetLong("count"); !errors.Is(err, gonbt.ErrTypeMismatch) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
	// Missing child is reported without a type mismatch
	if _, err := c.GetInt("missing"); err == nil ||
		errors.Is(err, gonbt.ErrTypeMismatch) {
		t.Fatalf("did not get expected error, got: %#v", err)
	}
}

func TestWrapCompound(t *testing.T) {
	c := gonbt.WrapCompound("value", gonbt.Short(7))
	if c.Len() != 1 {
		t.Fatalf("did not get expected length, got: %d, wanted: 1", c.Len())
	}
	v, err := c.GetShort("value")
	if err != nil {
		t.Fatalf("failed to get child: %s", err)
	}
	if v != 7 {
		t.Fatalf("did not get expected value, got: %d, wanted: 7", v)
	}
}

func TestEqual(t *testing.T) {
	a := gonbt.NewCompound()
	_ = a.Set("x", gonbt.Byte(1))
	_ = a.Set("y", gonbt.IntArray{1, 2, 3})
	b := gonbt.NewCompound()
	_ = b.Set("x", gonbt.Byte(1))
	_ = b.Set("y", gonbt.IntArray{1, 2, 3})
	if !gonbt.Equal(a, b) {
		t.Fatalf("expected equal trees")
	}
	// Same entries in a different insertion order are not equal
	c := gonbt.NewCompound()
	_ = c.Set("y", gonbt.IntArray{1, 2, 3})
	_ = c.Set("x", gonbt.Byte(1))
	if gonbt.Equal(a, c) {
		t.Fatalf("expected trees with different insertion order to differ")
	}
	if gonbt.Equal(gonbt.Byte(1), gonbt.Short(1)) {
		t.Fatalf("expected different types to differ")
	}
	if !gonbt.Equal(
		gonbt.NewList(gonbt.TypeByte, gonbt.Byte(1)),
		gonbt.NewList(gonbt.TypeByte, gonbt.Byte(1)),
	) {
		t.Fatalf("expected equal lists")
	}
	if gonbt.Equal(
		gonbt.NewList(gonbt.TypeByte, gonbt.Byte(1)),
		gonbt.NewList(gonbt.TypeByte, gonbt.Byte(2)),
	) {
		t.Fatalf("expected lists with different items to differ")
	}
}

func TestCopyIndependence(t *testing.T) {
	original := gonbt.NewCompound()
	_ = original.Set("arr", gonbt.IntArray{1, 2, 3})
	_ = original.Set("inner", gonbt.WrapCompound("x", gonbt.Byte(1)))
	copied := gonbt.Copy(original).(*gonbt.Compound)
	if !gonbt.Equal(original, copied) {
		t.Fatalf("expected copy to equal original")
	}
	arr, err := copied.GetIntArray("arr")
	if err != nil {
		t.Fatalf("failed to get child: %s", err)
	}
	arr[0] = 99
	originalArr, err := original.GetIntArray("arr")
	if err != nil {
		t.Fatalf("failed to get child: %s", err)
	}
	if originalArr[0] != 1 {
		t.Fatalf("copy shares backing storage with original")
	}
}

func TestWalkPreOrder(t *testing.T) {
	inner := gonbt.WrapCompound("leaf", gonbt.Byte(1))
	root := gonbt.NewCompound()
	_ = root.Set("first", gonbt.Int(1))
	_ = root.Set("nested", inner)
	_ = root.Set("list", gonbt.NewList(gonbt.TypeShort, gonbt.Short(2)))
	var visited []string
	gonbt.Walk(root, func(name string, tag gonbt.Tag) bool {
		visited = append(visited, name+"/"+tag.Type().String())
		return true
	})
	expected := []string{
		"/TAG_Compound",
		"first/TAG_Int",
		"nested/TAG_Compound",
		"leaf/TAG_Byte",
		"list/TAG_List",
		"/TAG_Short",
	}
	if !reflect.DeepEqual(visited, expected) {
		t.Fatalf(
			"did not get expected traversal\n  got: %v\n  wanted: %v",
			visited,
			expected,
		)
	}
	// Returning false stops the traversal
	var count int
	gonbt.Walk(root, func(name string, tag gonbt.Tag) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("did not get expected visit count, got: %d, wanted: 2", count)
	}
}

func TestTagTypeString(t *testing.T) {
	if gonbt.TypeByte.String() != "TAG_Byte" {
		t.Fatalf("did not get expected name, got: %s", gonbt.TypeByte)
	}
	if gonbt.TagType(0x63).String() != "TAG_Unknown(0x63)" {
		t.Fatalf("did not get expected name, got: %s", gonbt.TagType(0x63))
	}
	if gonbt.TagType(0x63).Valid() {
		t.Fatalf("expected 0x63 to be invalid")
	}
}
