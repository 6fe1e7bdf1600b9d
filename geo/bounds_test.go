// Copyright 2025 the original author or authors.
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

package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alx741/naqsha/geo"
)

func london() geo.Bounds {
	return geo.Bounds{
		MaxLat: geo.Latitude(516_900_000),
		MinLat: geo.Latitude(512_800_000),
		MaxLon: geo.Longitude(3_300_000),
		MinLon: geo.Longitude(-5_100_000),
	}
}

func TestBoundsContains(t *testing.T) {
	test_cases := []struct {
		name     string
		point    geo.Geo
		expected bool
	}{
		{"inside", position(51.5, -0.12), true},
		{"on the corner", position(51.69, 0.33), true},
		{"north of", position(52.0, 0.0), false},
		{"west of", position(51.5, -1.0), false},
		{"antipodal", position(-51.5, 179.88), false},
	}

	b := london()

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Contains(tc.point))
		})
	}
}

func TestBoundsEqual(t *testing.T) {
	assert.True(t, london().Equal(london()))

	folded := london()
	folded.MaxLon = folded.MaxLon.Add(geo.Longitude(geo.Degrees(360)))
	assert.True(t, london().Equal(folded))

	other := london()
	other.MinLat = geo.Latitude(geo.Degrees(51.0))
	assert.False(t, london().Equal(other))
}

func TestBoundsString(t *testing.T) {
	assert.Equal(t, "[(51.69, -0.51) (51.28, 0.33)]", london().String())
}
