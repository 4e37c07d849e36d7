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

package primitive

import (
	"fmt"
	"io"
	"math"
)

// Maximum values for each VarInt band
const (
	VarIntMaxU8  uint64 = math.MaxUint8
	VarIntMaxU16 uint64 = math.MaxUint16
	VarIntMaxU32 uint64 = math.MaxUint32
)

// VarInt selector values
const (
	VarIntSelectorU8  uint8 = 0
	VarIntSelectorU16 uint8 = 1
	VarIntSelectorU32 uint8 = 2
	VarIntSelectorU64 uint8 = 3
)

// Writer encodes primitives to an underlying byte sink
type Writer struct {
	w     io.Writer
	order ByteOrder
	buf   [1]byte
	count int64
}

// NewWriter returns a Writer emitting multi-byte integers in the given order
func NewWriter(w io.Writer, order ByteOrder) *Writer {
	return &Writer{
		w:     w,
		order: order,
	}
}

func (w *Writer) ByteOrder() ByteOrder {
	return w.order
}

// BytesWritten returns the number of bytes successfully handed to the sink
func (w *Writer) BytesWritten() int64 {
	return w.count
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.count += int64(n)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if n != len(p) {
		return fmt.Errorf("write: %w", io.ErrShortWrite)
	}
	return nil
}

func (w *Writer) WriteU8(v uint8) error {
	w.buf[0] = v
	return w.write(w.buf[:])
}

func (w *Writer) WriteU16(v uint16) error {
	first, second := uint8(v>>8), uint8(v)
	if w.order == LittleEndian {
		first, second = second, first
	}
	if err := w.WriteU8(first); err != nil {
		return err
	}
	return w.WriteU8(second)
}

func (w *Writer) WriteU32(v uint32) error {
	first, second := uint16(v>>16), uint16(v)
	if w.order == LittleEndian {
		first, second = second, first
	}
	if err := w.WriteU16(first); err != nil {
		return err
	}
	return w.WriteU16(second)
}

func (w *Writer) WriteU64(v uint64) error {
	first, second := uint32(v>>32), uint32(v)
	if w.order == LittleEndian {
		first, second = second, first
	}
	if err := w.WriteU32(first); err != nil {
		return err
	}
	return w.WriteU32(second)
}

// WriteVarInt writes a selector byte followed by the value in the narrowest
// of the U8/U16/U32/U64 forms that holds it
func (w *Writer) WriteVarInt(v uint64) error {
	switch {
	case v <= VarIntMaxU8:
		if err := w.WriteU8(VarIntSelectorU8); err != nil {
			return err
		}
		return w.WriteU8(uint8(v))
	case v <= VarIntMaxU16:
		if err := w.WriteU8(VarIntSelectorU16); err != nil {
			return err
		}
		return w.WriteU16(uint16(v))
	case v <= VarIntMaxU32:
		if err := w.WriteU8(VarIntSelectorU32); err != nil {
			return err
		}
		return w.WriteU32(uint32(v))
	default:
		if err := w.WriteU8(VarIntSelectorU64); err != nil {
			return err
		}
		return w.WriteU64(v)
	}
}

func (w *Writer) WriteFloat32(v float32) error {
	packed, err := PackFloat32(v)
	if err != nil {
		return err
	}
	return w.WriteU32(packed)
}

func (w *Writer) WriteFloat64(v float64) error {
	packed, err := PackFloat64(v)
	if err != nil {
		return err
	}
	return w.WriteU64(packed)
}

// WriteString writes a VarInt byte length followed by the raw bytes
func (w *Writer) WriteString(s string) error {
	if err := w.WriteVarInt(uint64(len(s))); err != nil {
		return err
	}
	return w.writeRaw(s)
}

// WriteKeyString writes a single byte length followed by the raw bytes. This is
// the form used for compound entry keys
func (w *Writer) WriteKeyString(s string) error {
	return w.WriteString8(s)
}

func (w *Writer) WriteString8(s string) error {
	if uint64(len(s)) > math.MaxUint8 {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrStringTooLong, len(s), math.MaxUint8)
	}
	if err := w.WriteU8(uint8(len(s))); err != nil {
		return err
	}
	return w.writeRaw(s)
}

func (w *Writer) WriteString16(s string) error {
	if uint64(len(s)) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrStringTooLong, len(s), math.MaxUint16)
	}
	if err := w.WriteU16(uint16(len(s))); err != nil {
		return err
	}
	return w.writeRaw(s)
}

func (w *Writer) WriteString32(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrStringTooLong, len(s), uint64(math.MaxUint32))
	}
	if err := w.WriteU32(uint32(len(s))); err != nil {
		return err
	}
	return w.writeRaw(s)
}

func (w *Writer) WriteString64(s string) error {
	if err := w.WriteU64(uint64(len(s))); err != nil {
		return err
	}
	return w.writeRaw(s)
}

// WriteBytes writes a byte array: a VarInt count followed by the raw bytes.
// The result is identical to WriteArray with WriteU8 as the element codec
func (w *Writer) WriteBytes(p []byte) error {
	if err := w.WriteVarInt(uint64(len(p))); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	return w.write(p)
}

func (w *Writer) writeRaw(s string) error {
	if len(s) == 0 {
		return nil
	}
	if sw, ok := w.w.(io.StringWriter); ok {
		n, err := sw.WriteString(s)
		w.count += int64(n)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if n != len(s) {
			return fmt.Errorf("write: %w", io.ErrShortWrite)
		}
		return nil
	}
	return w.write([]byte(s))
}
