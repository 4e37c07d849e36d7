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

package bench

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/gobtc"
	"github.com/blinklabs-io/gobtc/cbor"
	"github.com/blinklabs-io/gobtc/tag"
)

// benchSink prevents compiler dead-code elimination in benchmarks.
var benchSink any

// BenchmarkDecode benchmarks document decoding by fixture.
func BenchmarkDecode(b *testing.B) {
	for _, name := range FixtureNames() {
		fixture := MustLoadDocumentFixture(name)
		b.Run("Fixture_"+name, func(b *testing.B) {
			b.SetBytes(int64(len(fixture.Data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = btc.Decode(fixture.Data)
			}
		})
	}
}

// BenchmarkEncode benchmarks document encoding by fixture.
func BenchmarkEncode(b *testing.B) {
	for _, name := range FixtureNames() {
		fixture := MustLoadDocumentFixture(name)
		b.Run("Fixture_"+name, func(b *testing.B) {
			var buf bytes.Buffer
			buf.Grow(len(fixture.Data))
			b.SetBytes(int64(len(fixture.Data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Reset()
				if err := btc.Write(&buf, fixture.Doc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDigest benchmarks document hashing.
func BenchmarkDigest(b *testing.B) {
	fixture := MustLoadDocumentFixture("example")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = btc.Digest(fixture.Doc)
	}
}

// BenchmarkLookup benchmarks keyed lookups in a wide compound.
func BenchmarkLookup(b *testing.B) {
	fixture := MustLoadDocumentFixture("wide")
	keys := make([]string, WideKeys)
	for i := range keys {
		keys[i] = WideKey(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = fixture.Doc.Get(keys[i%WideKeys])
	}
}

// BenchmarkSet benchmarks building a wide compound from scratch.
func BenchmarkSet(b *testing.B) {
	keys := make([]string, WideKeys)
	for i := range keys {
		keys[i] = WideKey(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc := tag.NewCompound()
		for j, key := range keys {
			_ = doc.SetInt(key, uint32(j))
		}
		benchSink = doc
	}
}

// BenchmarkToCbor benchmarks transcoding to CBOR by fixture.
func BenchmarkToCbor(b *testing.B) {
	for _, name := range FixtureNames() {
		fixture := MustLoadDocumentFixture(name)
		b.Run("Fixture_"+name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = cbor.ToCbor(fixture.Doc)
			}
		})
	}
}
