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

package tag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gobtc/primitive"
)

// TypeId is the single byte discriminant written before every tag payload
// inside a compound
type TypeId uint8

const (
	TypeCompound TypeId = 0
	TypeString   TypeId = 1
	TypeUint8    TypeId = 2
	TypeUint16   TypeId = 3
	TypeUint32   TypeId = 4
	TypeUint64   TypeId = 5
	TypeFloat    TypeId = 6
	TypeDouble   TypeId = 7

	// Array forms start at 64, in the same order as their scalars
	TypeStringArray TypeId = 64
	TypeUint8Array  TypeId = 65
	TypeUint16Array TypeId = 66
	TypeUint32Array TypeId = 67
	TypeUint64Array TypeId = 68
	TypeFloatArray  TypeId = 69
	TypeDoubleArray TypeId = 70
)

var (
	ErrUnknownTypeId    = errors.New("unknown tag type id")
	ErrNilTag           = errors.New("tag must not be nil")
	ErrKeyTooLong       = errors.New("compound key too long")
	ErrCycle            = errors.New("compound cannot contain itself")
	ErrMaxDepthExceeded = errors.New("maximum compound nesting depth exceeded")
)

// PathError reports a decode failure together with the keys leading from the
// top level compound to the failing entry
type PathError struct {
	Path []string
	Err  error
}

func (e *PathError) Error() string {
	return strings.Join(e.Path, "/") + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// WithPath prefixes key to the path of err, creating a PathError if err does
// not already carry one
func WithPath(key string, err error) error {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		pathErr.Path = append([]string{key}, pathErr.Path...)
		return pathErr
	}
	return &PathError{Path: []string{key}, Err: err}
}

var typeNames = map[TypeId]string{
	TypeCompound:    "COMPOUND",
	TypeString:      "STRING",
	TypeUint8:       "UINT8",
	TypeUint16:      "UINT16",
	TypeUint32:      "UINT32",
	TypeUint64:      "UINT64",
	TypeFloat:       "FLOAT",
	TypeDouble:      "DOUBLE",
	TypeStringArray: "STRING_ARR",
	TypeUint8Array:  "UINT8_ARR",
	TypeUint16Array: "UINT16_ARR",
	TypeUint32Array: "UINT32_ARR",
	TypeUint64Array: "UINT64_ARR",
	TypeFloatArray:  "FLOAT_ARR",
	TypeDoubleArray: "DOUBLE_ARR",
}

func (t TypeId) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TypeId(%d)", uint8(t))
}

// Valid reports whether t names a known tag variant
func (t TypeId) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

var arrayElements = map[TypeId]TypeId{
	TypeStringArray: TypeString,
	TypeUint8Array:  TypeUint8,
	TypeUint16Array: TypeUint16,
	TypeUint32Array: TypeUint32,
	TypeUint64Array: TypeUint64,
	TypeFloatArray:  TypeFloat,
	TypeDoubleArray: TypeDouble,
}

func (t TypeId) IsArray() bool {
	_, ok := arrayElements[t]
	return ok
}

// Element returns the scalar type id of an array type id. Non-array ids are
// returned unchanged
func (t TypeId) Element() TypeId {
	if elem, ok := arrayElements[t]; ok {
		return elem
	}
	return t
}

// Tag is a typed value stored in a Compound. The set of implementations is
// closed: Byte, Short, Int, Long, Float, Double, String, their array forms and
// Compound
type Tag interface {
	// TypeId returns the constant discriminant for the variant
	TypeId() TypeId
	// Serialize writes the payload only. The enclosing compound writes the type id
	Serialize(w *primitive.Writer) error
	// Deserialize reads the payload only, replacing the current value
	Deserialize(r *primitive.Reader) error
	// Payload returns the raw Go value held by the tag
	Payload() any
	// String returns a short type tagged literal such as i{42} or ba{len=10}
	String() string
	dump(indent int) string
}

// New returns a zero valued tag for the given type id
func New(id TypeId) (Tag, error) {
	switch id {
	case TypeCompound:
		return NewCompound(), nil
	case TypeString:
		return &String{}, nil
	case TypeUint8:
		return &Byte{}, nil
	case TypeUint16:
		return &Short{}, nil
	case TypeUint32:
		return &Int{}, nil
	case TypeUint64:
		return &Long{}, nil
	case TypeFloat:
		return &Float{}, nil
	case TypeDouble:
		return &Double{}, nil
	case TypeStringArray:
		return &StringArray{}, nil
	case TypeUint8Array:
		return &ByteArray{}, nil
	case TypeUint16Array:
		return &ShortArray{}, nil
	case TypeUint32Array:
		return &IntArray{}, nil
	case TypeUint64Array:
		return &LongArray{}, nil
	case TypeFloatArray:
		return &FloatArray{}, nil
	case TypeDoubleArray:
		return &DoubleArray{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTypeId, uint8(id))
	}
}

// isNil reports whether t is nil or a typed nil pointer
func isNil(t Tag) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *Compound:
		return v == nil
	case *String:
		return v == nil
	case *Byte:
		return v == nil
	case *Short:
		return v == nil
	case *Int:
		return v == nil
	case *Long:
		return v == nil
	case *Float:
		return v == nil
	case *Double:
		return v == nil
	case *StringArray:
		return v == nil
	case *ByteArray:
		return v == nil
	case *ShortArray:
		return v == nil
	case *IntArray:
		return v == nil
	case *LongArray:
		return v == nil
	case *FloatArray:
		return v == nil
	case *DoubleArray:
		return v == nil
	}
	return false
}
