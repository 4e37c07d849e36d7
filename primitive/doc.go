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

// Package primitive implements the low level binary codec used by binary tag
// documents.
//
// # Wire Format
//
// All multi-byte integers are composed from the next narrower width (a U16 is
// two U8, a U32 is two U16, a U64 is two U32). The order of the halves is
// selected once per Writer/Reader with a ByteOrder and applies to every width.
// DefaultByteOrder is big-endian.
//
//	U8/U16/U32/U64   fixed width
//	VarInt           selector byte (0..3) + U8/U16/U32/U64 payload
//	String           VarInt length + raw bytes
//	KeyString        U8 length (max 255) + raw bytes
//	Array            VarInt count + back to back elements
//	Float32/Float64  |sign|exponent|fraction| packed into a U32/U64
//
// # Floating Point
//
// Floats are decomposed numerically with frexp into a mantissa in [0.5, 1)
// and a binary exponent. The exponent is biased by 127 (1023 for 64-bit) and
// the mantissa is stored without its leading half. Zero, infinity and NaN are
// encoded at the maximum exponent with the fraction set to 0, half of max and
// three quarters of max respectively. The sign bit is kept for all three.
//
// Values whose biased exponent would be negative (the smallest subnormals) or
// whose decomposition collides with one of the special encodings cannot be
// represented and are rejected with ErrFloatOutOfRange.
//
// # Gotchas
//
//  1. Readers never pad: every short read fails with ErrTruncatedStream
//  2. Both ends must agree on the ByteOrder; it is not stored on the wire
//  3. NaN payload bits are not carried, only the sign
package primitive
