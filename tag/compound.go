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
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gobtc/primitive"
)

// MaxKeyLength is the longest key (in bytes) that fits the single byte key
// length prefix
const MaxKeyLength = math.MaxUint8

// entryPrealloc caps the entry capacity reserved from a count prefix. Larger
// compounds grow by append as entries actually arrive
const entryPrealloc = 64

// DefaultMaxDepth limits compound nesting while decoding. The top level
// compound is depth 1
const DefaultMaxDepth = 256

// Entry is a key/tag pair as stored in a Compound
type Entry struct {
	Key string
	Tag Tag
}

type indexEntry struct {
	key string
	pos int
}

// Compound is an ordered collection of named tags.
//
// Entries keep their insertion order, which is also the order used when
// serializing. A separate index sorted by key provides O(log n) lookups.
// Read operations never modify either structure, so a Compound may be read
// from multiple goroutines as long as nothing mutates it concurrently.
type Compound struct {
	entries []Entry
	index   []indexEntry
}

func NewCompound() *Compound {
	return &Compound{}
}

func (c *Compound) TypeId() TypeId {
	return TypeCompound
}

func (c *Compound) Payload() any {
	return c
}

// search returns the index position of key, or the position where it would be
// inserted
func (c *Compound) search(key string) (int, bool) {
	return slices.BinarySearchFunc(
		c.index,
		key,
		func(e indexEntry, k string) int {
			return strings.Compare(e.key, k)
		},
	)
}

// Set stores t under key. An existing key keeps its position and has its tag
// replaced, a new key is appended at the end
func (c *Compound) Set(key string, t Tag) error {
	if isNil(t) {
		return ErrNilTag
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrKeyTooLong, len(key), MaxKeyLength)
	}
	if child, ok := t.(*Compound); ok {
		if child == c || child.contains(c) {
			return fmt.Errorf("%w: key %q", ErrCycle, key)
		}
	}
	idx, found := c.search(key)
	if found {
		c.entries[c.index[idx].pos].Tag = t
		return nil
	}
	c.entries = append(c.entries, Entry{Key: key, Tag: t})
	c.index = slices.Insert(
		c.index,
		idx,
		indexEntry{key: key, pos: len(c.entries) - 1},
	)
	return nil
}

// contains reports whether target appears anywhere below c
func (c *Compound) contains(target *Compound) bool {
	for _, e := range c.entries {
		child, ok := e.Tag.(*Compound)
		if !ok {
			continue
		}
		if child == target || child.contains(target) {
			return true
		}
	}
	return false
}

func (c *Compound) SetByte(key string, v uint8) error {
	return c.Set(key, NewByte(v))
}

func (c *Compound) SetShort(key string, v uint16) error {
	return c.Set(key, NewShort(v))
}

func (c *Compound) SetInt(key string, v uint32) error {
	return c.Set(key, NewInt(v))
}

func (c *Compound) SetLong(key string, v uint64) error {
	return c.Set(key, NewLong(v))
}

func (c *Compound) SetFloat(key string, v float32) error {
	return c.Set(key, NewFloat(v))
}

func (c *Compound) SetDouble(key string, v float64) error {
	return c.Set(key, NewDouble(v))
}

func (c *Compound) SetString(key string, v string) error {
	return c.Set(key, NewString(v))
}

func (c *Compound) SetByteArray(key string, v []uint8) error {
	return c.Set(key, NewByteArray(v))
}

func (c *Compound) SetShortArray(key string, v []uint16) error {
	return c.Set(key, NewShortArray(v))
}

func (c *Compound) SetIntArray(key string, v []uint32) error {
	return c.Set(key, NewIntArray(v))
}

func (c *Compound) SetLongArray(key string, v []uint64) error {
	return c.Set(key, NewLongArray(v))
}

func (c *Compound) SetFloatArray(key string, v []float32) error {
	return c.Set(key, NewFloatArray(v))
}

func (c *Compound) SetDoubleArray(key string, v []float64) error {
	return c.Set(key, NewDoubleArray(v))
}

func (c *Compound) SetStringArray(key string, v []string) error {
	return c.Set(key, NewStringArray(v))
}

func (c *Compound) SetCompound(key string, v *Compound) error {
	return c.Set(key, v)
}

// Get returns the tag stored under key. A missing key is reported with false,
// never with an error
func (c *Compound) Get(key string) (Tag, bool) {
	idx, found := c.search(key)
	if !found {
		return nil, false
	}
	return c.entries[c.index[idx].pos].Tag, true
}

// GetValue returns the raw payload of the tag stored under key
func (c *Compound) GetValue(key string) (any, bool) {
	t, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	return t.Payload(), true
}

func (c *Compound) GetCompound(key string) (*Compound, bool) {
	t, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := t.(*Compound)
	return child, ok
}

// ValueOf returns the payload under key as a T. It reports false when the key
// is missing or holds a different type
func ValueOf[T any](c *Compound, key string) (T, bool) {
	var zero T
	v, ok := c.GetValue(key)
	if !ok {
		return zero, false
	}
	ret, ok := v.(T)
	if !ok {
		return zero, false
	}
	return ret, true
}

func (c *Compound) Size() int {
	return len(c.entries)
}

// Entries iterates over key/tag pairs in insertion order
func (c *Compound) Entries() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, e := range c.entries {
			if !yield(e.Key, e.Tag) {
				return
			}
		}
	}
}

// Items returns a copy of the entries in insertion order
func (c *Compound) Items() []Entry {
	return slices.Clone(c.entries)
}

// Keys returns the keys in insertion order
func (c *Compound) Keys() []string {
	ret := make([]string, len(c.entries))
	for i, e := range c.entries {
		ret[i] = e.Key
	}
	return ret
}

// At returns the entry at position i in insertion order
func (c *Compound) At(i int) (string, Tag) {
	e := c.entries[i]
	return e.Key, e.Tag
}

// Serialize writes the entry count followed by each entry in insertion order
func (c *Compound) Serialize(w *primitive.Writer) error {
	if err := w.WriteVarInt(uint64(len(c.entries))); err != nil {
		return err
	}
	for _, e := range c.entries {
		if err := w.WriteKeyString(e.Key); err != nil {
			return fmt.Errorf("entry %q: %w", e.Key, err)
		}
		if err := w.WriteU8(uint8(e.Tag.TypeId())); err != nil {
			return fmt.Errorf("entry %q: %w", e.Key, err)
		}
		if err := e.Tag.Serialize(w); err != nil {
			return fmt.Errorf("entry %q: %w", e.Key, err)
		}
	}
	return nil
}

// Deserialize replaces the contents of c with a compound read from r, using
// DefaultMaxDepth as the nesting limit
func (c *Compound) Deserialize(r *primitive.Reader) error {
	return c.DeserializeWithLimit(r, DefaultMaxDepth)
}

// DeserializeWithLimit is Deserialize with an explicit nesting limit. A limit
// of zero or less disables the check. On error c is left unchanged
func (c *Compound) DeserializeWithLimit(r *primitive.Reader, maxDepth int) error {
	tmp := NewCompound()
	if err := tmp.deserialize(r, 1, maxDepth); err != nil {
		return err
	}
	c.entries = tmp.entries
	c.index = tmp.index
	return nil
}

func (c *Compound) deserialize(r *primitive.Reader, depth int, maxDepth int) error {
	if maxDepth > 0 && depth > maxDepth {
		return fmt.Errorf("%w: %d", ErrMaxDepthExceeded, maxDepth)
	}
	count, err := r.ReadVarInt()
	if err != nil {
		return fmt.Errorf("entry count: %w", err)
	}
	c.entries = make([]Entry, 0, min(count, entryPrealloc))
	for i := uint64(0); i < count; i++ {
		key, err := r.ReadKeyString()
		if err != nil {
			return fmt.Errorf("entry %d: key: %w", i, err)
		}
		id, err := r.ReadU8()
		if err != nil {
			return WithPath(key, fmt.Errorf("type id: %w", err))
		}
		t, err := New(TypeId(id))
		if err != nil {
			return WithPath(key, err)
		}
		if child, ok := t.(*Compound); ok {
			err = child.deserialize(r, depth+1, maxDepth)
		} else if err = t.Deserialize(r); err != nil {
			err = fmt.Errorf("%s: %w", t.TypeId(), err)
		}
		if err != nil {
			return WithPath(key, err)
		}
		c.entries = append(c.entries, Entry{Key: key, Tag: t})
	}
	c.rebuildIndex()
	return nil
}

// rebuildIndex sorts the index in a single pass after bulk loading. Repeated
// keys collapse the way repeated Set calls would: the first position wins and
// holds the last value
func (c *Compound) rebuildIndex() {
	index := make([]indexEntry, len(c.entries))
	for i, e := range c.entries {
		index[i] = indexEntry{key: e.Key, pos: i}
	}
	slices.SortStableFunc(index, func(a, b indexEntry) int {
		return strings.Compare(a.key, b.key)
	})
	var drop []bool
	for i := 1; i < len(index); i++ {
		if index[i].key != index[i-1].key {
			continue
		}
		if drop == nil {
			drop = make([]bool, len(c.entries))
		}
		// Find the first entry of this run of equal keys
		first := i - 1
		for first > 0 && index[first-1].key == index[i].key {
			first--
		}
		c.entries[index[first].pos].Tag = c.entries[index[i].pos].Tag
		drop[index[i].pos] = true
	}
	if drop == nil {
		c.index = index
		return
	}
	entries := make([]Entry, 0, len(c.entries))
	for i, e := range c.entries {
		if !drop[i] {
			entries = append(entries, e)
		}
	}
	c.entries = entries
	c.rebuildIndex()
}

func (c *Compound) String() string {
	return c.dump(0)
}

// Dump renders the compound and its children for debugging. Each entry is
// shown as (position,'key'):value, indented two spaces per nesting level
func (c *Compound) Dump(indent int) string {
	return c.dump(indent)
}

func (c *Compound) dump(indent int) string {
	if len(c.entries) == 0 {
		return "c{}"
	}
	var sb strings.Builder
	sb.WriteString("c{")
	pad := strings.Repeat("  ", indent+1)
	for i, e := range c.entries {
		sb.WriteString("\n")
		sb.WriteString(pad)
		sb.WriteString("(" + strconv.Itoa(i) + ",'" + e.Key + "'):")
		sb.WriteString(e.Tag.dump(indent + 1))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString("}")
	return sb.String()
}
