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
	"bytes"
	"fmt"
	"io"

	"github.com/blinklabs-io/gobtc/primitive"
	"github.com/blinklabs-io/gobtc/tag"
	"golang.org/x/crypto/blake2b"
)

// Write serializes c as a document to w
func Write(w io.Writer, c *tag.Compound, opts ...OptionFunc) error {
	o := newOptions(opts...)
	return write(w, c, o)
}

func write(w io.Writer, c *tag.Compound, o *Options) error {
	if c == nil {
		return ErrNilTag
	}
	pw := primitive.NewWriter(w, o.byteOrder)
	if err := c.Serialize(pw); err != nil {
		o.logger.Debug(
			"failed to encode document",
			"error",
			err,
			"bytes_written",
			pw.BytesWritten(),
		)
		return fmt.Errorf("encode document: %w", err)
	}
	o.logger.Debug(
		"encoded document",
		"entries",
		c.Size(),
		"bytes",
		pw.BytesWritten(),
		"byte_order",
		o.byteOrder.String(),
	)
	return nil
}

// Encode serializes c and returns the document bytes
func Encode(c *tag.Compound, opts ...OptionFunc) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read deserializes one document from r. Only the bytes belonging to the
// document are consumed, anything after it is left in r
func Read(r io.Reader, opts ...OptionFunc) (*tag.Compound, error) {
	o := newOptions(opts...)
	return read(r, o)
}

func read(r io.Reader, o *Options) (*tag.Compound, error) {
	pr := primitive.NewReader(r, o.byteOrder)
	c := tag.NewCompound()
	if err := c.DeserializeWithLimit(pr, o.maxDepth); err != nil {
		o.logger.Debug(
			"failed to decode document",
			"error",
			err,
			"bytes_read",
			pr.BytesRead(),
		)
		return nil, fmt.Errorf("decode document: %w", err)
	}
	o.logger.Debug(
		"decoded document",
		"entries",
		c.Size(),
		"bytes",
		pr.BytesRead(),
		"byte_order",
		o.byteOrder.String(),
	)
	return c, nil
}

// Decode deserializes a document that must span all of data
func Decode(data []byte, opts ...OptionFunc) (*tag.Compound, error) {
	o := newOptions(opts...)
	br := bytes.NewReader(data)
	c, err := read(br, o)
	if err != nil {
		return nil, err
	}
	if br.Len() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, br.Len())
	}
	return c, nil
}

// Digest returns the BLAKE2b-256 hash of the encoded document. Documents that
// are equal in content and order produce the same digest
func Digest(c *tag.Compound, opts ...OptionFunc) ([32]byte, error) {
	data, err := Encode(c, opts...)
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(data), nil
}
