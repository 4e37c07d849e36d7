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
	"math"
	"slices"
)

// Equal reports whether a and b hold the same type and value. Floats compare
// the way they survive a round trip: NaN equals NaN, and the sign of zero and
// NaN must match. Compounds must hold equal entries in the same order
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.TypeId() != b.TypeId() {
		return false
	}
	switch x := a.(type) {
	case *Byte:
		return x.Value == b.(*Byte).Value
	case *Short:
		return x.Value == b.(*Short).Value
	case *Int:
		return x.Value == b.(*Int).Value
	case *Long:
		return x.Value == b.(*Long).Value
	case *Float:
		return equalFloat(float64(x.Value), float64(b.(*Float).Value))
	case *Double:
		return equalFloat(x.Value, b.(*Double).Value)
	case *String:
		return x.Value == b.(*String).Value
	case *ByteArray:
		return slices.Equal(x.Value, b.(*ByteArray).Value)
	case *ShortArray:
		return slices.Equal(x.Value, b.(*ShortArray).Value)
	case *IntArray:
		return slices.Equal(x.Value, b.(*IntArray).Value)
	case *LongArray:
		return slices.Equal(x.Value, b.(*LongArray).Value)
	case *FloatArray:
		return slices.EqualFunc(x.Value, b.(*FloatArray).Value, func(p, q float32) bool {
			return equalFloat(float64(p), float64(q))
		})
	case *DoubleArray:
		return slices.EqualFunc(x.Value, b.(*DoubleArray).Value, equalFloat)
	case *StringArray:
		return slices.Equal(x.Value, b.(*StringArray).Value)
	case *Compound:
		return x.Equal(b.(*Compound))
	}
	return false
}

func equalFloat(a, b float64) bool {
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

// Equal compares two compounds entry by entry in insertion order
func (c *Compound) Equal(other *Compound) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.entries) != len(other.entries) {
		return false
	}
	for i, e := range c.entries {
		o := other.entries[i]
		if e.Key != o.Key || !Equal(e.Tag, o.Tag) {
			return false
		}
	}
	return true
}
