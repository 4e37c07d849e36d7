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
	"log/slog"

	"github.com/blinklabs-io/gobtc/primitive"
	"github.com/blinklabs-io/gobtc/tag"
)

// Byte orders for multi-byte integers and floats
const (
	BigEndian    = primitive.BigEndian
	LittleEndian = primitive.LittleEndian
)

// Options holds the settings shared by the encode and decode functions
type Options struct {
	byteOrder primitive.ByteOrder
	maxDepth  int
	logger    *slog.Logger
}

// OptionFunc is a type that represents functions that modify the encode/decode options
type OptionFunc func(*Options)

func newOptions(opts ...OptionFunc) *Options {
	o := &Options{
		byteOrder: primitive.DefaultByteOrder,
		maxDepth:  tag.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithByteOrder specifies the byte order. The default is big-endian, little-endian
// is needed to read documents written by the first revision of the format
func WithByteOrder(order primitive.ByteOrder) OptionFunc {
	return func(o *Options) {
		o.byteOrder = order
	}
}

// WithMaxDepth limits compound nesting when decoding. Zero or less disables the limit
func WithMaxDepth(depth int) OptionFunc {
	return func(o *Options) {
		o.maxDepth = depth
	}
}

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(o *Options) {
		o.logger = logger
	}
}
