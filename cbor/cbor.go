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

package cbor

import (
	"errors"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeArray uint8 = 0x80

	// Only the top 3 bits are used to specify the major type
	CborTypeMask uint8 = 0xe0
)

var (
	ErrTrailingData  = errors.New("trailing data after CBOR document")
	ErrInvalidEntry  = errors.New("invalid compound entry")
	ErrNotCompound   = errors.New("CBOR data is not a compound")
	ErrValueMismatch = errors.New("CBOR value does not match entry type")
)

// Create an alias for RawMessage for convenience
type RawMessage = _cbor.RawMessage

// Useful for embedding and easier to remember
type StructAsArray struct {
	// Tells the CBOR decoder to convert to/from a struct and a CBOR array
	_ struct{} `cbor:",toarray"`
}

// entry is the CBOR shape of one compound entry: [key, typeId, value]
type entry struct {
	StructAsArray
	Key   string
	Type  uint8
	Value RawMessage
}
