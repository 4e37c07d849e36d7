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

// Package bench provides benchmark utilities and document fixtures for
// allocation and throughput measurements.
package bench

import (
	"fmt"
	"strconv"

	"github.com/blinklabs-io/gobtc"
	"github.com/blinklabs-io/gobtc/internal/test"
	"github.com/blinklabs-io/gobtc/tag"
)

// DocumentFixture contains a pre-built document and its encoded form
type DocumentFixture struct {
	Name string
	Doc  *tag.Compound
	Data []byte
}

var fixtureBuilders = map[string]func() (*tag.Compound, error){
	"example":   exampleDocument,
	"all_kinds": allKindsDocument,
	"wide":      wideDocument,
	"deep":      deepDocument,
	"arrays":    arraysDocument,
}

// FixtureNames returns the names accepted by LoadDocumentFixture
func FixtureNames() []string {
	return []string{"example", "all_kinds", "wide", "deep", "arrays"}
}

// LoadDocumentFixture builds the named document and encodes it with the
// default options
func LoadDocumentFixture(name string) (*DocumentFixture, error) {
	build, ok := fixtureBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture: %s", name)
	}
	doc, err := build()
	if err != nil {
		return nil, fmt.Errorf("build %s fixture: %w", name, err)
	}
	data, err := btc.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s fixture: %w", name, err)
	}
	return &DocumentFixture{
		Name: name,
		Doc:  doc,
		Data: data,
	}, nil
}

// MustLoadDocumentFixture loads a fixture and panics on error.
// Use this in benchmark init() or setup code.
func MustLoadDocumentFixture(name string) *DocumentFixture {
	fixture, err := LoadDocumentFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s document fixture: %v", name, err))
	}
	return fixture
}

func exampleDocument() (*tag.Compound, error) {
	return test.ExampleCompound(), nil
}

func allKindsDocument() (*tag.Compound, error) {
	return test.AllKindsCompound(), nil
}

// wideDocument holds WideKeys integer entries added in reverse key order
func wideDocument() (*tag.Compound, error) {
	doc := tag.NewCompound()
	for i := WideKeys - 1; i >= 0; i-- {
		if err := doc.SetInt(WideKey(i), uint32(i)); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// deepDocument nests DeepLevels compounds, each carrying one string
func deepDocument() (*tag.Compound, error) {
	root := tag.NewCompound()
	cur := root
	for i := range DeepLevels - 1 {
		if err := cur.SetString("level", strconv.Itoa(i)); err != nil {
			return nil, err
		}
		child := tag.NewCompound()
		if err := cur.SetCompound("child", child); err != nil {
			return nil, err
		}
		cur = child
	}
	return root, nil
}

// arraysDocument holds one ArrayLen element array of each numeric kind
func arraysDocument() (*tag.Compound, error) {
	bytesArr := make([]uint8, ArrayLen)
	ints := make([]uint32, ArrayLen)
	longs := make([]uint64, ArrayLen)
	floats := make([]float32, ArrayLen)
	doubles := make([]float64, ArrayLen)
	for i := range ArrayLen {
		bytesArr[i] = uint8(i)
		ints[i] = uint32(i * 7)
		longs[i] = uint64(i) << 33
		floats[i] = float32(i) + 0.5
		doubles[i] = float64(i) / 3
	}
	doc := tag.NewCompound()
	steps := []error{
		doc.SetByteArray("bytes", bytesArr),
		doc.SetIntArray("ints", ints),
		doc.SetLongArray("longs", longs),
		doc.SetFloatArray("floats", floats),
		doc.SetDoubleArray("doubles", doubles),
	}
	for _, err := range steps {
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Fixture sizes
const (
	WideKeys   = 1000
	DeepLevels = 64
	ArrayLen   = 4096
)

// WideKey returns the key of entry i in the wide fixture
func WideKey(i int) string {
	return fmt.Sprintf("key-%04d", i)
}
