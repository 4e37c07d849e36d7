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
	"strings"
)

// ByteOrder selects which half of a composed integer is written first
type ByteOrder uint8

const (
	// BigEndian writes the high half first. This is the current wire format
	BigEndian ByteOrder = iota
	// LittleEndian writes the low half first. Documents produced by early
	// writers use this order
	LittleEndian
)

const DefaultByteOrder = BigEndian

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// ParseByteOrder accepts "big"/"be" and "little"/"le" (case insensitive)
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be", "big-endian":
		return BigEndian, nil
	case "little", "le", "little-endian":
		return LittleEndian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidByteOrder, s)
	}
}
