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

package btc

import (
	"errors"

	"github.com/blinklabs-io/gobtc/primitive"
	"github.com/blinklabs-io/gobtc/tag"
)

var ErrTrailingData = errors.New("trailing data after document")

// Errors from the primitive and tag packages, for convenience
var (
	ErrTruncatedStream  = primitive.ErrTruncatedStream
	ErrInvalidVarInt    = primitive.ErrInvalidVarInt
	ErrStringTooLong    = primitive.ErrStringTooLong
	ErrFloatOutOfRange  = primitive.ErrFloatOutOfRange
	ErrUnknownTypeId    = tag.ErrUnknownTypeId
	ErrNilTag           = tag.ErrNilTag
	ErrKeyTooLong       = tag.ErrKeyTooLong
	ErrCycle            = tag.ErrCycle
	ErrMaxDepthExceeded = tag.ErrMaxDepthExceeded
)
