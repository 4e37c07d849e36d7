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
	"math"
)

// floatLayout describes the |sign|exponent|fraction| packing for one width
type floatLayout struct {
	expBias  int
	expMax   int
	expBits  uint
	fracBits uint
	// Scale applied to (mantissa - 0.5), which lies in [0, 0.5). Twice the
	// fraction field size so that every mantissa bit below the hidden half is kept
	fracScale float64
}

var (
	float32Layout = floatLayout{
		expBias:   127,
		expMax:    255,
		expBits:   8,
		fracBits:  23,
		fracScale: 1 << 24,
	}
	float64Layout = floatLayout{
		expBias:   1023,
		expMax:    2047,
		expBits:   11,
		fracBits:  52,
		fracScale: 1 << 53,
	}
)

// Mantissas marking the special values at the maximum exponent
const (
	mantZero = 0.5
	mantInf  = 0.75
	mantNaN  = 0.875
)

func (l floatLayout) pack(v float64) (uint64, error) {
	var mant float64
	var exp int
	switch {
	case v == 0:
		mant, exp = mantZero, l.expMax
	case math.IsInf(v, 0):
		mant, exp = mantInf, l.expMax
	case math.IsNaN(v):
		mant, exp = mantNaN, l.expMax
	default:
		mant, exp = math.Frexp(v)
		if mant < 0 {
			mant = -mant
		}
		exp += l.expBias
		if exp < 0 {
			return 0, fmt.Errorf("%w: %g is too small", ErrFloatOutOfRange, v)
		}
		if exp == l.expMax &&
			(mant == mantZero || mant == mantInf || mant == mantNaN) {
			return 0, fmt.Errorf(
				"%w: %g collides with a reserved encoding",
				ErrFloatOutOfRange,
				v,
			)
		}
	}
	var ret uint64
	if math.Signbit(v) {
		ret |= 1 << (l.fracBits + l.expBits)
	}
	ret |= uint64(exp) << l.fracBits
	ret |= uint64((mant - 0.5) * l.fracScale)
	return ret, nil
}

func (l floatLayout) unpack(data uint64) float64 {
	negative := (data>>(l.fracBits+l.expBits))&1 == 1
	exp := int((data >> l.fracBits) & uint64(l.expMax))
	frac := data & (1<<l.fracBits - 1)
	mant := 0.5 + float64(frac)/l.fracScale
	sign := 1.0
	if negative {
		sign = -1.0
	}
	if exp == l.expMax {
		switch mant {
		case mantZero:
			return math.Copysign(0, sign)
		case mantInf:
			return math.Inf(int(sign))
		case mantNaN:
			return math.Copysign(math.NaN(), sign)
		}
	}
	return sign * math.Ldexp(mant, exp-l.expBias)
}

// PackFloat32 returns the wire representation of a 32-bit float
func PackFloat32(v float32) (uint32, error) {
	ret, err := float32Layout.pack(float64(v))
	if err != nil {
		return 0, err
	}
	return uint32(ret), nil
}

func UnpackFloat32(data uint32) float32 {
	return float32(float32Layout.unpack(uint64(data)))
}

// PackFloat64 returns the wire representation of a 64-bit float
func PackFloat64(v float64) (uint64, error) {
	return float64Layout.pack(v)
}

func UnpackFloat64(data uint64) float64 {
	return float64Layout.unpack(data)
}
