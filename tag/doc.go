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

// Package tag provides the typed values ("tags") of a binary tag document and
// the Compound container that holds them.
//
// # Key Types
//
// Scalars: Byte (UINT8), Short (UINT16), Int (UINT32), Long (UINT64),
// Float, Double, String.
//
// Arrays: ByteArray, ShortArray, IntArray, LongArray, FloatArray,
// DoubleArray, StringArray. Array type ids run from 64 (STRING_ARR) to 70
// (DOUBLE_ARR) in scalar order; TypeId.Element maps them back.
//
// Containers: Compound, an insertion ordered map from key to Tag with a
// sorted index for lookups.
//
// # Usage
//
//	doc := tag.NewCompound()
//	_ = doc.SetInt("someint", 2133)
//	child := tag.NewCompound()
//	_ = child.SetFloat("f_valued", 3.24123443e-11)
//	_ = doc.SetCompound("other_tag", child)
//
//	v, ok := tag.ValueOf[uint32](doc, "someint")
//
// # Wire Layout
//
// A compound is written as a VarInt entry count followed by, for each entry in
// insertion order, the key (single byte length prefix), one type id byte and
// the tag payload. Tag payloads never include their own type id.
package tag
