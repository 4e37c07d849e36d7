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
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of t. The copy shares no slices or child
// compounds with the original
func Clone(t Tag) (Tag, error) {
	if t == nil {
		return nil, ErrNilTag
	}
	if c, ok := t.(*Compound); ok {
		child, err := c.Clone()
		if err != nil {
			return nil, err
		}
		return child, nil
	}
	ret, err := New(t.TypeId())
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(ret, t, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone %s: %w", t.TypeId(), err)
	}
	return ret, nil
}

// Clone returns a deep copy of the compound and all of its descendants
func (c *Compound) Clone() (*Compound, error) {
	ret := &Compound{
		entries: make([]Entry, len(c.entries)),
		index:   slices.Clone(c.index),
	}
	for i, e := range c.entries {
		t, err := Clone(e.Tag)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Key, err)
		}
		ret.entries[i] = Entry{Key: e.Key, Tag: t}
	}
	return ret, nil
}
