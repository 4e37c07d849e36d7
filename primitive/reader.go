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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

// MaxPrealloc is the largest element count a Reader allocates up front from a
// length prefix. Longer arrays and strings grow as their data actually arrives
const MaxPrealloc = 1 << 16

// Reader decodes primitives from an underlying byte source
type Reader struct {
	r     io.Reader
	order ByteOrder
	buf   [1]byte
	count int64
}

// NewReader returns a Reader expecting multi-byte integers in the given order.
// The Reader never reads more bytes from r than the values it decodes occupy
func NewReader(r io.Reader, order ByteOrder) *Reader {
	return &Reader{
		r:     r,
		order: order,
	}
}

func (r *Reader) ByteOrder() ByteOrder {
	return r.order
}

// BytesRead returns the number of bytes consumed from the source
func (r *Reader) BytesRead() int64 {
	return r.count
}

// readFull reads exactly len(p) bytes
func (r *Reader) readFull(p []byte) error {
	n, err := io.ReadFull(r.r, p)
	r.count += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf(
				"%w: wanted %d bytes, got %d: %w",
				ErrTruncatedStream,
				len(p),
				n,
				err,
			)
		}
		return fmt.Errorf("read: %w", err)
	}
	return nil
}

// readN reads exactly n bytes without trusting n for the initial allocation
func (r *Reader) readN(n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if n <= MaxPrealloc {
		ret := make([]byte, n)
		if err := r.readFull(ret); err != nil {
			return nil, err
		}
		return ret, nil
	}
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("%w: length %d exceeds addressable size", ErrTruncatedStream, n)
	}
	var buf bytes.Buffer
	copied, err := io.CopyN(&buf, r.r, int64(n))
	r.count += copied
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf(
				"%w: wanted %d bytes, got %d: %w",
				ErrTruncatedStream,
				n,
				copied,
				io.ErrUnexpectedEOF,
			)
		}
		return nil, fmt.Errorf("read: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Reader) ReadU8() (uint8, error) {
	if err := r.readFull(r.buf[:]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	first, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	second, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if r.order == LittleEndian {
		first, second = second, first
	}
	return uint16(first)<<8 | uint16(second), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	first, err := r.ReadU16()
	if err != nil {
		return 0, err
	}
	second, err := r.ReadU16()
	if err != nil {
		return 0, err
	}
	if r.order == LittleEndian {
		first, second = second, first
	}
	return uint32(first)<<16 | uint32(second), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	first, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	second, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	if r.order == LittleEndian {
		first, second = second, first
	}
	return uint64(first)<<32 | uint64(second), nil
}

func (r *Reader) ReadVarInt() (uint64, error) {
	selector, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	switch selector {
	case VarIntSelectorU8:
		v, err := r.ReadU8()
		return uint64(v), err
	case VarIntSelectorU16:
		v, err := r.ReadU16()
		return uint64(v), err
	case VarIntSelectorU32:
		v, err := r.ReadU32()
		return uint64(v), err
	case VarIntSelectorU64:
		return r.ReadU64()
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidVarInt, selector)
	}
}

func (r *Reader) ReadFloat32() (float32, error) {
	packed, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return UnpackFloat32(packed), nil
}

func (r *Reader) ReadFloat64() (float64, error) {
	packed, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return UnpackFloat64(packed), nil
}

func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadVarInt()
	if err != nil {
		return "", err
	}
	data, err := r.readN(length)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) ReadKeyString() (string, error) {
	return r.ReadString8()
}

func (r *Reader) ReadString8() (string, error) {
	length, err := r.ReadU8()
	if err != nil {
		return "", err
	}
	data, err := r.readN(uint64(length))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) ReadString16() (string, error) {
	length, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	data, err := r.readN(uint64(length))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) ReadString32() (string, error) {
	length, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	data, err := r.readN(uint64(length))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) ReadString64() (string, error) {
	length, err := r.ReadU64()
	if err != nil {
		return "", err
	}
	data, err := r.readN(length)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBytes reads a byte array written by WriteBytes (or WriteArray with U8
// elements)
func (r *Reader) ReadBytes() ([]byte, error) {
	count, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return r.readN(count)
}
