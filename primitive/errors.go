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

import "errors"

var (
	// ErrTruncatedStream is returned when the source runs out of data before
	// the requested number of bytes could be read
	ErrTruncatedStream = errors.New("truncated stream")
	ErrInvalidVarInt   = errors.New("invalid varint selector")
	ErrStringTooLong   = errors.New("string too long for length prefix")
	ErrFloatOutOfRange = errors.New(
		"float value cannot be represented by the wire format",
	)
	ErrInvalidByteOrder = errors.New("invalid byte order")
)
