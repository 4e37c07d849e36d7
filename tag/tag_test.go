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

package tag_test

import (
	"bytes"
	"encoding/hex"
	"math"
	"testing"

	"github.com/blinklabs-io/gobtc/primitive"
	"github.com/blinklabs-io/gobtc/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeIds(t *testing.T) {
	tests := []struct {
		id   tag.TypeId
		raw  uint8
		name string
		elem tag.TypeId
	}{
		{tag.TypeCompound, 0, "COMPOUND", tag.TypeCompound},
		{tag.TypeString, 1, "STRING", tag.TypeString},
		{tag.TypeUint8, 2, "UINT8", tag.TypeUint8},
		{tag.TypeUint16, 3, "UINT16", tag.TypeUint16},
		{tag.TypeUint32, 4, "UINT32", tag.TypeUint32},
		{tag.TypeUint64, 5, "UINT64", tag.TypeUint64},
		{tag.TypeFloat, 6, "FLOAT", tag.TypeFloat},
		{tag.TypeDouble, 7, "DOUBLE", tag.TypeDouble},
		{tag.TypeStringArray, 64, "STRING_ARR", tag.TypeString},
		{tag.TypeUint8Array, 65, "UINT8_ARR", tag.TypeUint8},
		{tag.TypeUint16Array, 66, "UINT16_ARR", tag.TypeUint16},
		{tag.TypeUint32Array, 67, "UINT32_ARR", tag.TypeUint32},
		{tag.TypeUint64Array, 68, "UINT64_ARR", tag.TypeUint64},
		{tag.TypeFloatArray, 69, "FLOAT_ARR", tag.TypeFloat},
		{tag.TypeDoubleArray, 70, "DOUBLE_ARR", tag.TypeDouble},
	}
	seen := map[tag.TypeId]bool{}
	for _, test := range tests {
		assert.Equal(t, test.raw, uint8(test.id))
		assert.Equal(t, test.name, test.id.String())
		assert.False(t, seen[test.id], "duplicate id %d", test.raw)
		seen[test.id] = true
		created, err := tag.New(test.id)
		require.NoError(t, err)
		assert.Equal(t, test.id, created.TypeId())
		assert.Equal(t, test.raw >= 64, test.id.IsArray())
		assert.Equal(t, test.elem, test.id.Element())
	}
}

func TestNewUnknownTypeId(t *testing.T) {
	for _, raw := range []uint8{8, 63, 71, 128, 255} {
		_, err := tag.New(tag.TypeId(raw))
		assert.ErrorIs(t, err, tag.ErrUnknownTypeId, "type id %d", raw)
		assert.False(t, tag.TypeId(raw).Valid())
	}
	assert.Equal(t, "TypeId(99)", tag.TypeId(99).String())
}

func TestTagStrings(t *testing.T) {
	tests := []struct {
		tag  tag.Tag
		want string
	}{
		{tag.NewByte(5), "b{5}"},
		{tag.NewShort(300), "s{300}"},
		{tag.NewInt(42), "i{42}"},
		{tag.NewLong(18446744073709551615), "l{18446744073709551615}"},
		{tag.NewFloat(1.5), "f{1.5}"},
		{tag.NewDouble(2.132243), "d{2.132243}"},
		{tag.NewString("hello world!"), `st{"hello world!"}`},
		{tag.NewByteArray(make([]uint8, 10)), "ba{len=10}"},
		{tag.NewShortArray([]uint16{1, 2}), "sa{len=2}"},
		{tag.NewIntArray(nil), "ia{len=0}"},
		{tag.NewLongArray([]uint64{1}), "la{len=1}"},
		{tag.NewFloatArray([]float32{1, 2, 3}), "fa{len=3}"},
		{tag.NewDoubleArray([]float64{1}), "da{len=1}"},
		{tag.NewStringArray([]string{"a", "b"}), "sta{len=2}"},
		{tag.NewCompound(), "c{}"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.tag.String())
	}
}

type payloadTestDefinition struct {
	name string
	tag  tag.Tag
	hex  string
}

var payloadTests = []payloadTestDefinition{
	{"byte", tag.NewByte(0x7f), "7f"},
	{"short", tag.NewShort(0x0102), "0102"},
	{"int", tag.NewInt(2133), "00000855"},
	{"long", tag.NewLong(1), "0000000000000001"},
	{"float", tag.NewFloat(1), "40000000"},
	{"double", tag.NewDouble(1), "4000000000000000"},
	{"string", tag.NewString("hi"), "00026869"},
	{"byte array", tag.NewByteArray([]uint8{1, 2}), "00020102"},
	{"short array", tag.NewShortArray([]uint16{1}), "00010001"},
	{"int array", tag.NewIntArray([]uint32{1, 2}), "00020000000100000002"},
	{"long array", tag.NewLongArray([]uint64{}), "0000"},
	{"float array", tag.NewFloatArray([]float32{1}), "000140000000"},
	{"double array", tag.NewDoubleArray([]float64{1}), "00014000000000000000"},
	{"string array", tag.NewStringArray([]string{"a"}), "0001000161"},
}

func TestTagPayloads(t *testing.T) {
	for _, test := range payloadTests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, test.tag.Serialize(primitive.NewWriter(&buf, primitive.BigEndian)))
			assert.Equal(t, test.hex, hex.EncodeToString(buf.Bytes()))
			decoded, err := tag.New(test.tag.TypeId())
			require.NoError(t, err)
			require.NoError(t, decoded.Deserialize(primitive.NewReader(&buf, primitive.BigEndian)))
			assert.True(t, tag.Equal(test.tag, decoded), "got %s", decoded)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestDeserializeReplacesValue(t *testing.T) {
	arr := tag.NewIntArray([]uint32{9, 9, 9})
	data := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x07}
	require.NoError(t, arr.Deserialize(primitive.NewReader(bytes.NewReader(data), primitive.BigEndian)))
	assert.Equal(t, []uint32{7}, arr.Value)
}

func TestPayload(t *testing.T) {
	assert.Equal(t, uint8(1), tag.NewByte(1).Payload())
	assert.Equal(t, uint16(1), tag.NewShort(1).Payload())
	assert.Equal(t, uint32(1), tag.NewInt(1).Payload())
	assert.Equal(t, uint64(1), tag.NewLong(1).Payload())
	assert.Equal(t, float32(1), tag.NewFloat(1).Payload())
	assert.Equal(t, float64(1), tag.NewDouble(1).Payload())
	assert.Equal(t, "x", tag.NewString("x").Payload())
	assert.Equal(t, []uint32{1}, tag.NewIntArray([]uint32{1}).Payload())
	c := tag.NewCompound()
	assert.Same(t, c, c.Payload())
}

func TestEqual(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	nan := math.NaN()
	assert.True(t, tag.Equal(tag.NewDouble(nan), tag.NewDouble(nan)))
	assert.False(t, tag.Equal(tag.NewDouble(nan), tag.NewDouble(math.Copysign(nan, -1))))
	assert.False(t, tag.Equal(tag.NewFloat(0), tag.NewFloat(negZero)))
	assert.False(t, tag.Equal(tag.NewInt(1), tag.NewLong(1)))
	assert.False(t, tag.Equal(tag.NewIntArray([]uint32{1}), tag.NewIntArray([]uint32{1, 2})))
	assert.True(t, tag.Equal(tag.NewIntArray(nil), tag.NewIntArray([]uint32{})))
	assert.True(t, tag.Equal(nil, nil))
	assert.False(t, tag.Equal(tag.NewByte(1), nil))
}

func TestClone(t *testing.T) {
	orig := tag.NewIntArray([]uint32{1, 2, 3})
	cloned, err := tag.Clone(orig)
	require.NoError(t, err)
	require.True(t, tag.Equal(orig, cloned))
	cloned.(*tag.IntArray).Value[0] = 100
	assert.Equal(t, uint32(1), orig.Value[0])

	scalar, err := tag.Clone(tag.NewString("s"))
	require.NoError(t, err)
	assert.Equal(t, "s", scalar.Payload())

	_, err = tag.Clone(nil)
	assert.ErrorIs(t, err, tag.ErrNilTag)
}
