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

import "encoding/binary"

// Profile definitions
var (
	// ProfileJava is the Java Edition on-disk format: big-endian with
	// fixed-width length and count fields and a named root tag
	ProfileJava = Profile{
		Name:      "java",
		ByteOrder: binary.BigEndian,
	}
	// ProfileBedrock is the Bedrock Edition on-disk format: little-endian
	// with fixed-width length and count fields and a named root tag
	ProfileBedrock = Profile{
		Name:      "bedrock",
		ByteOrder: binary.LittleEndian,
	}
	// ProfileBedrockNetwork is the Bedrock network packet format:
	// little-endian with variable-length encoding for length and count
	// fields and no root name
	ProfileBedrockNetwork = Profile{
		Name:         "bedrock-network",
		ByteOrder:    binary.LittleEndian,
		VarLength:    true,
		OmitRootName: true,
	}

	ProfileInvalid = Profile{
		Name: "invalid",
	} // ProfileInvalid is used as a return value for lookup functions when a profile isn't found
)

// List of valid profiles for use in lookup functions
var profiles = []Profile{
	ProfileJava,
	ProfileBedrock,
	ProfileBedrockNetwork,
}

// ProfileByName returns a predefined profile by name
func ProfileByName(name string) Profile {
	for _, profile := range profiles {
		if profile.Name == name {
			return profile
		}
	}
	return ProfileInvalid
}

// Profile fixes the wire-format parameters that distinguish NBT variants.
// It's an immutable configuration value passed explicitly into every codec
// call, so concurrent decodes under different profiles cannot interfere
type Profile struct {
	Name      string
	ByteOrder binary.ByteOrder
	// VarLength selects variable-length encoding for string lengths
	// (unsigned varint) and list/array counts (zig-zag signed varint)
	// instead of fixed u16/i32 fields
	VarLength bool
	// OmitRootName drops the name field that normally follows the root
	// tag's type id
	OmitRootName bool
}

func (p Profile) String() string {
	return p.Name
}
