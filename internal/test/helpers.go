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

// Package test holds fixtures shared by the package tests
package test

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/blinklabs-io/gobtc/tag"
)

// DecodeHexString decodes hex test fixtures. Whitespace anywhere in the input
// is ignored so fixtures can be split per field. It panics instead of
// returning an error, which makes it usable inline
func DecodeHexString(hexData string) []byte {
	hexData = strings.Join(strings.Fields(hexData), "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Values used by ExampleCompound
const (
	ExampleSomeInt  uint32  = 2133
	ExampleDoub     float64 = 2.132243
	ExampleStr              = "hello world!"
	ExampleFValued  float32 = 3.24123443e-11
	ExampleDValued  float64 = 0.324123443e-10
	ExampleLongArrN         = 10
)

// ExampleCompound builds the reference document:
//
//	someint   UINT32   2133
//	doub      DOUBLE   2.132243
//	other_tag COMPOUND
//	  f_valued FLOAT      3.24123443e-11
//	  d_valued DOUBLE     0.324123443e-10
//	  longarr  UINT32_ARR [0..9]
//	str       STRING   "hello world!"
func ExampleCompound() *tag.Compound {
	doc := tag.NewCompound()
	other := tag.NewCompound()
	longArr := make([]uint32, ExampleLongArrN)
	for i := range longArr {
		longArr[i] = uint32(i)
	}
	must(doc.SetInt("someint", ExampleSomeInt))
	must(doc.SetDouble("doub", ExampleDoub))
	must(doc.SetCompound("other_tag", other))
	must(doc.SetString("str", ExampleStr))
	must(other.SetFloat("f_valued", ExampleFValued))
	must(other.SetDouble("d_valued", ExampleDValued))
	must(other.SetIntArray("longarr", longArr))
	return doc
}

// AllKindsCompound builds a compound holding one entry of every tag kind,
// including float special values and a nested compound
func AllKindsCompound() *tag.Compound {
	doc := tag.NewCompound()
	must(doc.SetByte("byte", 0xfe))
	must(doc.SetShort("short", 0xbeef))
	must(doc.SetInt("int", 0xdeadbeef))
	must(doc.SetLong("long", 0xfeedfacecafebeef))
	must(doc.SetFloat("float", -1.25))
	must(doc.SetDouble("double", math.Pi))
	must(doc.SetString("string", "tag \x00 data"))
	must(doc.SetByteArray("byte_arr", []uint8{0, 1, 2, 255}))
	must(doc.SetShortArray("short_arr", []uint16{0, 256, 65535}))
	must(doc.SetIntArray("int_arr", []uint32{0, 65536, math.MaxUint32}))
	must(doc.SetLongArray("long_arr", []uint64{0, math.MaxUint64}))
	must(doc.SetFloatArray("float_arr", []float32{
		0,
		float32(math.Copysign(0, -1)),
		float32(math.Inf(1)),
		float32(math.NaN()),
		1.5,
	}))
	must(doc.SetDoubleArray("double_arr", []float64{
		math.Inf(-1),
		math.Copysign(math.NaN(), -1),
		-2.5e-300,
	}))
	must(doc.SetStringArray("string_arr", []string{"", "a", "bc"}))
	nested := tag.NewCompound()
	must(nested.SetString("inner", "value"))
	deeper := tag.NewCompound()
	must(deeper.SetByte("leaf", 1))
	must(nested.SetCompound("deeper", deeper))
	must(doc.SetCompound("nested", nested))
	must(doc.SetCompound("empty", tag.NewCompound()))
	return doc
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
