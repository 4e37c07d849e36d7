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
	"testing"

	"github.com/blinklabs-io/gobtc"
	"github.com/blinklabs-io/gobtc/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocumentFixture(t *testing.T) {
	for _, name := range FixtureNames() {
		t.Run(name, func(t *testing.T) {
			fixture, err := LoadDocumentFixture(name)
			require.NoError(t, err)
			require.NotNil(t, fixture)

			assert.Equal(t, name, fixture.Name)
			assert.NotEmpty(t, fixture.Data)
			decoded, err := btc.Decode(fixture.Data)
			require.NoError(t, err)
			assert.True(t, fixture.Doc.Equal(decoded))
		})
	}
}

func TestLoadDocumentFixture_Unknown(t *testing.T) {
	_, err := LoadDocumentFixture("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fixture")
}

func TestMustLoadDocumentFixture_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadDocumentFixture("unknown")
	})
}

func TestFixtureShapes(t *testing.T) {
	wide := MustLoadDocumentFixture("wide")
	assert.Equal(t, WideKeys, wide.Doc.Size())
	v, ok := tag.ValueOf[uint32](wide.Doc, WideKey(123))
	require.True(t, ok)
	assert.Equal(t, uint32(123), v)

	deep := MustLoadDocumentFixture("deep")
	levels := 1
	for cur := deep.Doc; ; levels++ {
		child, ok := cur.GetCompound("child")
		if !ok {
			break
		}
		cur = child
	}
	assert.Equal(t, DeepLevels, levels)

	arrays := MustLoadDocumentFixture("arrays")
	ints, ok := tag.ValueOf[[]uint32](arrays.Doc, "ints")
	require.True(t, ok)
	assert.Len(t, ints, ArrayLen)
}
