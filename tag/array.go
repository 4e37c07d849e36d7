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
	"strconv"

	"github.com/blinklabs-io/gobtc/primitive"
)

// Array payloads are plain slices of the element type. Decoding allocates them
// with a bounded capacity hint (see primitive.MaxPrealloc) and grows by append

func lenLiteral(prefix string, n int) string {
	return prefix + "{len=" + strconv.Itoa(n) + "}"
}

// ByteArray holds raw bytes (UINT8_ARR)
type ByteArray struct {
	Value []uint8
}

func NewByteArray(v []uint8) *ByteArray {
	return &ByteArray{Value: v}
}

func (t *ByteArray) TypeId() TypeId {
	return TypeUint8Array
}

func (t *ByteArray) Serialize(w *primitive.Writer) error {
	return w.WriteBytes(t.Value)
}

func (t *ByteArray) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadBytes()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *ByteArray) Payload() any {
	return t.Value
}

func (t *ByteArray) String() string {
	return lenLiteral("ba", len(t.Value))
}

func (t *ByteArray) dump(int) string {
	return t.String()
}

// ShortArray holds unsigned 16-bit integers (UINT16_ARR)
type ShortArray struct {
	Value []uint16
}

func NewShortArray(v []uint16) *ShortArray {
	return &ShortArray{Value: v}
}

func (t *ShortArray) TypeId() TypeId {
	return TypeUint16Array
}

func (t *ShortArray) Serialize(w *primitive.Writer) error {
	return primitive.WriteArray(w, t.Value, (*primitive.Writer).WriteU16)
}

func (t *ShortArray) Deserialize(r *primitive.Reader) error {
	v, err := primitive.ReadArray(r, (*primitive.Reader).ReadU16)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *ShortArray) Payload() any {
	return t.Value
}

func (t *ShortArray) String() string {
	return lenLiteral("sa", len(t.Value))
}

func (t *ShortArray) dump(int) string {
	return t.String()
}

// IntArray holds unsigned 32-bit integers (UINT32_ARR)
type IntArray struct {
	Value []uint32
}

func NewIntArray(v []uint32) *IntArray {
	return &IntArray{Value: v}
}

func (t *IntArray) TypeId() TypeId {
	return TypeUint32Array
}

func (t *IntArray) Serialize(w *primitive.Writer) error {
	return primitive.WriteArray(w, t.Value, (*primitive.Writer).WriteU32)
}

func (t *IntArray) Deserialize(r *primitive.Reader) error {
	v, err := primitive.ReadArray(r, (*primitive.Reader).ReadU32)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *IntArray) Payload() any {
	return t.Value
}

func (t *IntArray) String() string {
	return lenLiteral("ia", len(t.Value))
}

func (t *IntArray) dump(int) string {
	return t.String()
}

// LongArray holds unsigned 64-bit integers (UINT64_ARR)
type LongArray struct {
	Value []uint64
}

func NewLongArray(v []uint64) *LongArray {
	return &LongArray{Value: v}
}

func (t *LongArray) TypeId() TypeId {
	return TypeUint64Array
}

func (t *LongArray) Serialize(w *primitive.Writer) error {
	return primitive.WriteArray(w, t.Value, (*primitive.Writer).WriteU64)
}

func (t *LongArray) Deserialize(r *primitive.Reader) error {
	v, err := primitive.ReadArray(r, (*primitive.Reader).ReadU64)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *LongArray) Payload() any {
	return t.Value
}

func (t *LongArray) String() string {
	return lenLiteral("la", len(t.Value))
}

func (t *LongArray) dump(int) string {
	return t.String()
}

// FloatArray holds 32-bit floats (FLOAT_ARR)
type FloatArray struct {
	Value []float32
}

func NewFloatArray(v []float32) *FloatArray {
	return &FloatArray{Value: v}
}

func (t *FloatArray) TypeId() TypeId {
	return TypeFloatArray
}

func (t *FloatArray) Serialize(w *primitive.Writer) error {
	return primitive.WriteArray(w, t.Value, (*primitive.Writer).WriteFloat32)
}

func (t *FloatArray) Deserialize(r *primitive.Reader) error {
	v, err := primitive.ReadArray(r, (*primitive.Reader).ReadFloat32)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *FloatArray) Payload() any {
	return t.Value
}

func (t *FloatArray) String() string {
	return lenLiteral("fa", len(t.Value))
}

func (t *FloatArray) dump(int) string {
	return t.String()
}

// DoubleArray holds 64-bit floats (DOUBLE_ARR)
type DoubleArray struct {
	Value []float64
}

func NewDoubleArray(v []float64) *DoubleArray {
	return &DoubleArray{Value: v}
}

func (t *DoubleArray) TypeId() TypeId {
	return TypeDoubleArray
}

func (t *DoubleArray) Serialize(w *primitive.Writer) error {
	return primitive.WriteArray(w, t.Value, (*primitive.Writer).WriteFloat64)
}

func (t *DoubleArray) Deserialize(r *primitive.Reader) error {
	v, err := primitive.ReadArray(r, (*primitive.Reader).ReadFloat64)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *DoubleArray) Payload() any {
	return t.Value
}

func (t *DoubleArray) String() string {
	return lenLiteral("da", len(t.Value))
}

func (t *DoubleArray) dump(int) string {
	return t.String()
}

// StringArray holds byte strings (STRING_ARR)
type StringArray struct {
	Value []string
}

func NewStringArray(v []string) *StringArray {
	return &StringArray{Value: v}
}

func (t *StringArray) TypeId() TypeId {
	return TypeStringArray
}

func (t *StringArray) Serialize(w *primitive.Writer) error {
	return primitive.WriteArray(w, t.Value, (*primitive.Writer).WriteString)
}

func (t *StringArray) Deserialize(r *primitive.Reader) error {
	v, err := primitive.ReadArray(r, (*primitive.Reader).ReadString)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *StringArray) Payload() any {
	return t.Value
}

func (t *StringArray) String() string {
	return lenLiteral("sta", len(t.Value))
}

func (t *StringArray) dump(int) string {
	return t.String()
}
