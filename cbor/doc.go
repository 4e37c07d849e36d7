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

// Package cbor transcodes binary tag documents to and from CBOR.
//
// This package wraps github.com/fxamacker/cbor/v2 with cached encode and
// decode modes.
//
// # Key Functions
//
//   - ToCbor / FromCbor: lossless (apart from NaN sign) transcoding of a
//     tag.Compound tree
//   - Encode / Decode: general CBOR helpers using the cached modes
//   - DumpCborStructure: indented rendering of decoded CBOR for debugging
//
// # Document Shape
//
// A compound is a CBOR array of entries. Each entry is itself an array:
//
//	[key (text), typeId (uint), value]
//
// Values are CBOR uints for the unsigned kinds, float32/float64 for FLOAT and
// DOUBLE, text for STRING, a byte string for UINT8_ARR, arrays for the other
// array kinds and a nested entry array for COMPOUND. Insertion order is kept.
//
// # Gotchas
//
//  1. NaN is normalised to a single positive NaN by the encoder
//  2. Keys and strings may hold invalid UTF-8. Other CBOR decoders may reject them
//  3. Nil arrays encode as empty arrays, never as null
package cbor
