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

// Byte holds an unsigned 8-bit integer (UINT8)
type Byte struct {
	Value uint8
}

func NewByte(v uint8) *Byte {
	return &Byte{Value: v}
}

func (t *Byte) TypeId() TypeId {
	return TypeUint8
}

func (t *Byte) Serialize(w *primitive.Writer) error {
	return w.WriteU8(t.Value)
}

func (t *Byte) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadU8()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Byte) Payload() any {
	return t.Value
}

func (t *Byte) String() string {
	return "b{" + strconv.FormatUint(uint64(t.Value), 10) + "}"
}

func (t *Byte) dump(int) string {
	return t.String()
}

// Short holds an unsigned 16-bit integer (UINT16)
type Short struct {
	Value uint16
}

func NewShort(v uint16) *Short {
	return &Short{Value: v}
}

func (t *Short) TypeId() TypeId {
	return TypeUint16
}

func (t *Short) Serialize(w *primitive.Writer) error {
	return w.WriteU16(t.Value)
}

func (t *Short) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadU16()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Short) Payload() any {
	return t.Value
}

func (t *Short) String() string {
	return "s{" + strconv.FormatUint(uint64(t.Value), 10) + "}"
}

func (t *Short) dump(int) string {
	return t.String()
}

// Int holds an unsigned 32-bit integer (UINT32)
type Int struct {
	Value uint32
}

func NewInt(v uint32) *Int {
	return &Int{Value: v}
}

func (t *Int) TypeId() TypeId {
	return TypeUint32
}

func (t *Int) Serialize(w *primitive.Writer) error {
	return w.WriteU32(t.Value)
}

func (t *Int) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadU32()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Int) Payload() any {
	return t.Value
}

func (t *Int) String() string {
	return "i{" + strconv.FormatUint(uint64(t.Value), 10) + "}"
}

func (t *Int) dump(int) string {
	return t.String()
}

// Long holds an unsigned 64-bit integer (UINT64)
type Long struct {
	Value uint64
}

func NewLong(v uint64) *Long {
	return &Long{Value: v}
}

func (t *Long) TypeId() TypeId {
	return TypeUint64
}

func (t *Long) Serialize(w *primitive.Writer) error {
	return w.WriteU64(t.Value)
}

func (t *Long) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadU64()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Long) Payload() any {
	return t.Value
}

func (t *Long) String() string {
	return "l{" + strconv.FormatUint(t.Value, 10) + "}"
}

func (t *Long) dump(int) string {
	return t.String()
}

// Float holds a 32-bit floating point number (FLOAT)
type Float struct {
	Value float32
}

func NewFloat(v float32) *Float {
	return &Float{Value: v}
}

func (t *Float) TypeId() TypeId {
	return TypeFloat
}

func (t *Float) Serialize(w *primitive.Writer) error {
	return w.WriteFloat32(t.Value)
}

func (t *Float) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadFloat32()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Float) Payload() any {
	return t.Value
}

func (t *Float) String() string {
	return "f{" + strconv.FormatFloat(float64(t.Value), 'g', -1, 32) + "}"
}

func (t *Float) dump(int) string {
	return t.String()
}

// Double holds a 64-bit floating point number (DOUBLE)
type Double struct {
	Value float64
}

func NewDouble(v float64) *Double {
	return &Double{Value: v}
}

func (t *Double) TypeId() TypeId {
	return TypeDouble
}

func (t *Double) Serialize(w *primitive.Writer) error {
	return w.WriteFloat64(t.Value)
}

func (t *Double) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *Double) Payload() any {
	return t.Value
}

func (t *Double) String() string {
	return "d{" + strconv.FormatFloat(t.Value, 'g', -1, 64) + "}"
}

func (t *Double) dump(int) string {
	return t.String()
}

// String holds a byte string (STRING). The content is not required to be UTF-8
type String struct {
	Value string
}

func NewString(v string) *String {
	return &String{Value: v}
}

func (t *String) TypeId() TypeId {
	return TypeString
}

func (t *String) Serialize(w *primitive.Writer) error {
	return w.WriteString(t.Value)
}

func (t *String) Deserialize(r *primitive.Reader) error {
	v, err := r.ReadString()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *String) Payload() any {
	return t.Value
}

func (t *String) String() string {
	return "st{" + strconv.Quote(t.Value) + "}"
}

func (t *String) dump(int) string {
	return t.String()
}
