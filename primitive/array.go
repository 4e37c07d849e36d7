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
)

// WriteArray writes a VarInt element count followed by each element encoded
// with encode. Method expressions such as (*Writer).WriteU32 can be passed
// directly
func WriteArray[T any](w *Writer, vals []T, encode func(*Writer, T) error) error {
	if err := w.WriteVarInt(uint64(len(vals))); err != nil {
		return err
	}
	for idx, val := range vals {
		if err := encode(w, val); err != nil {
			return fmt.Errorf("array element %d: %w", idx, err)
		}
	}
	return nil
}

// ReadArray reads an array written by WriteArray. The returned slice is never
// nil, even for an empty array
func ReadArray[T any](r *Reader, decode func(*Reader) (T, error)) ([]T, error) {
	count, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	ret := make([]T, 0, min(count, MaxPrealloc))
	for i := uint64(0); i < count; i++ {
		val, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", i, err)
		}
		ret = append(ret, val)
	}
	return ret, nil
}
