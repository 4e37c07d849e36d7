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

// Package btc reads and writes binary tag documents.
//
// A document is a single tag.Compound: an ordered set of named, typed values
// that may nest further compounds. The wire format is built from the
// primitives in the primitive package and is self-describing, so a document
// can be decoded without a schema.
//
//	doc := tag.NewCompound()
//	_ = doc.SetInt("someint", 2133)
//	data, err := btc.Encode(doc)
//	...
//	decoded, err := btc.Decode(data)
//
// Documents from the first revision of the format use little-endian integers
// and need WithByteOrder(btc.LittleEndian) on both sides.
//
// The cbor package transcodes documents to CBOR for interchange.
package btc
