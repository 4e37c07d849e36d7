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
	"fmt"

	"github.com/blinklabs-io/gobtc/tag"
)

// ToCbor transcodes a compound into CBOR. The compound becomes an array of
// [key, typeId, value] entries in insertion order. Values use the native
// CBOR type for their payload and nested compounds recurse.
func ToCbor(c *tag.Compound) ([]byte, error) {
	if c == nil {
		return nil, tag.ErrNilTag
	}
	entries := make([]entry, 0, c.Size())
	for key, t := range c.Entries() {
		var value []byte
		var err error
		if child, ok := t.(*tag.Compound); ok {
			value, err = ToCbor(child)
		} else {
			value, err = Encode(t.Payload())
		}
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		entries = append(
			entries,
			entry{
				Key:   key,
				Type:  uint8(t.TypeId()),
				Value: RawMessage(value),
			},
		)
	}
	return Encode(entries)
}

// FromCbor builds a compound from CBOR produced by ToCbor. The data must hold
// exactly one document. NaN values come back without their sign because CBOR
// encoders normalise NaN.
func FromCbor(data []byte) (*tag.Compound, error) {
	c, n, err := fromCbor(data, 1)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, len(data)-n)
	}
	return c, nil
}

func fromCbor(data []byte, depth int) (*tag.Compound, int, error) {
	if depth > tag.DefaultMaxDepth {
		return nil, 0, fmt.Errorf("%w: %d", tag.ErrMaxDepthExceeded, tag.DefaultMaxDepth)
	}
	if len(data) == 0 || data[0]&CborTypeMask != CborTypeArray {
		return nil, 0, ErrNotCompound
	}
	var entries []entry
	n, err := Decode(data, &entries)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	ret := tag.NewCompound()
	for _, e := range entries {
		t, err := tag.New(tag.TypeId(e.Type))
		if err != nil {
			return nil, 0, tag.WithPath(e.Key, err)
		}
		if err := decodeValue(t, e.Value, depth); err != nil {
			return nil, 0, tag.WithPath(e.Key, err)
		}
		if err := ret.Set(e.Key, t); err != nil {
			return nil, 0, tag.WithPath(e.Key, err)
		}
	}
	return ret, n, nil
}

// decodeValue fills t from the CBOR value of its entry
func decodeValue(t tag.Tag, value RawMessage, depth int) error {
	if child, ok := t.(*tag.Compound); ok {
		decoded, _, err := fromCbor(value, depth+1)
		if err != nil {
			return err
		}
		*child = *decoded
		return nil
	}
	if _, err := Decode(value, valuePtr(t)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrValueMismatch, t.TypeId(), err)
	}
	return nil
}

// valuePtr returns a pointer to the payload field of a non-compound tag
func valuePtr(t tag.Tag) any {
	switch v := t.(type) {
	case *tag.Byte:
		return &v.Value
	case *tag.Short:
		return &v.Value
	case *tag.Int:
		return &v.Value
	case *tag.Long:
		return &v.Value
	case *tag.Float:
		return &v.Value
	case *tag.Double:
		return &v.Value
	case *tag.String:
		return &v.Value
	case *tag.ByteArray:
		return &v.Value
	case *tag.ShortArray:
		return &v.Value
	case *tag.IntArray:
		return &v.Value
	case *tag.LongArray:
		return &v.Value
	case *tag.FloatArray:
		return &v.Value
	case *tag.DoubleArray:
		return &v.Value
	case *tag.StringArray:
		return &v.Value
	}
	return nil
}
