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

package primitive_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/blinklabs-io/gobtc/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackFloat32Golden(t *testing.T) {
	tests := []struct {
		value  float32
		packed uint32
	}{
		{1.0, 0x40000000},
		{2.5, 0x40a00000},
		{-2.5, 0xc0a00000},
		{0, 0x7f800000},
		{float32(math.Copysign(0, -1)), 0xff800000},
		{float32(math.Inf(1)), 0x7fc00000},
		{float32(math.Inf(-1)), 0xffc00000},
		{float32(math.NaN()), 0x7fe00000},
	}
	for _, test := range tests {
		packed, err := primitive.PackFloat32(test.value)
		require.NoError(t, err)
		assert.Equal(t, test.packed, packed, "value %g", test.value)
	}
}

func TestPackFloat64Golden(t *testing.T) {
	tests := []struct {
		value  float64
		packed uint64
	}{
		{1.0, 0x4000000000000000},
		{-0.75, 0xbff8000000000000},
		{0, 0x7ff0000000000000},
		{math.Copysign(0, -1), 0xfff0000000000000},
		{math.Inf(1), 0x7ff8000000000000},
		{math.Inf(-1), 0xfff8000000000000},
		{math.NaN(), 0x7ffc000000000000},
	}
	for _, test := range tests {
		packed, err := primitive.PackFloat64(test.value)
		require.NoError(t, err)
		assert.Equal(t, test.packed, packed, "value %g", test.value)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	values := []float32{
		1,
		-1,
		0.1,
		math.Pi,
		-math.E,
		3.24123443e-11,
		1e-30,
		123456.789,
		math.MaxFloat32,
		-math.MaxFloat32,
		float32(math.Ldexp(1, -126)),
		float32(math.Ldexp(1, -128)),
		float32(math.Ldexp(1, 126)),
	}
	for _, order := range []primitive.ByteOrder{primitive.BigEndian, primitive.LittleEndian} {
		var buf bytes.Buffer
		w := primitive.NewWriter(&buf, order)
		for _, v := range values {
			require.NoError(t, w.WriteFloat32(v), "value %g", v)
		}
		r := primitive.NewReader(&buf, order)
		for _, v := range values {
			got, err := r.ReadFloat32()
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{
		1,
		-1,
		0.1,
		2.132243,
		math.Pi,
		-math.E,
		0.324123443e-10,
		1e300,
		-1e-300,
		math.MaxFloat64,
		math.Ldexp(1, -1022),
		math.Ldexp(1, -1024),
		math.Ldexp(0.75, 1023),
	}
	var buf bytes.Buffer
	w := primitive.NewWriter(&buf, primitive.BigEndian)
	for _, v := range values {
		require.NoError(t, w.WriteFloat64(v), "value %g", v)
	}
	r := primitive.NewReader(&buf, primitive.BigEndian)
	for _, v := range values {
		got, err := r.ReadFloat64()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFloatSpecialValues(t *testing.T) {
	negZero := math.Copysign(0, -1)
	negNaN := math.Copysign(math.NaN(), -1)
	tests := []struct {
		name     string
		value    float64
		isZero   bool
		isInf    bool
		isNaN    bool
		negative bool
	}{
		{name: "zero", value: 0, isZero: true},
		{name: "negative zero", value: negZero, isZero: true, negative: true},
		{name: "positive infinity", value: math.Inf(1), isInf: true},
		{name: "negative infinity", value: math.Inf(-1), isInf: true, negative: true},
		{name: "quiet NaN", value: math.NaN(), isNaN: true},
		{name: "negative NaN", value: negNaN, isNaN: true, negative: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			check := func(got float64) {
				assert.Equal(t, test.isZero, got == 0)
				assert.Equal(t, test.isInf, math.IsInf(got, 0))
				assert.Equal(t, test.isNaN, math.IsNaN(got))
				assert.Equal(t, test.negative, math.Signbit(got))
			}
			packed64, err := primitive.PackFloat64(test.value)
			require.NoError(t, err)
			check(primitive.UnpackFloat64(packed64))
			packed32, err := primitive.PackFloat32(float32(test.value))
			require.NoError(t, err)
			check(float64(primitive.UnpackFloat32(packed32)))
			// A second trip reproduces the same wire bits
			again, err := primitive.PackFloat64(primitive.UnpackFloat64(packed64))
			require.NoError(t, err)
			assert.Equal(t, packed64, again)
		})
	}
}

func TestFloatOutOfRange(t *testing.T) {
	// Smallest subnormals have a negative biased exponent
	_, err := primitive.PackFloat32(math.SmallestNonzeroFloat32)
	assert.ErrorIs(t, err, primitive.ErrFloatOutOfRange)
	_, err = primitive.PackFloat64(math.SmallestNonzeroFloat64)
	assert.ErrorIs(t, err, primitive.ErrFloatOutOfRange)
	// Values landing exactly on a reserved encoding
	_, err = primitive.PackFloat32(float32(math.Ldexp(1, 127)))
	assert.ErrorIs(t, err, primitive.ErrFloatOutOfRange)
	_, err = primitive.PackFloat32(float32(math.Ldexp(1.5, 127)))
	assert.ErrorIs(t, err, primitive.ErrFloatOutOfRange)
	_, err = primitive.PackFloat64(math.Ldexp(1.75, 1023))
	assert.ErrorIs(t, err, primitive.ErrFloatOutOfRange)
	// The writer surfaces the same error without emitting anything
	var buf bytes.Buffer
	err = primitive.NewWriter(&buf, primitive.BigEndian).WriteFloat64(math.Ldexp(1, 1023))
	assert.ErrorIs(t, err, primitive.ErrFloatOutOfRange)
	assert.Zero(t, buf.Len())
}
