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

package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alx741/naqsha/geo"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12.5,77.5")
	assert.NoError(t, err)
	assert.Equal(t, geo.Latitude(geo.Degrees(12.5)), p.Lat)
	assert.Equal(t, geo.Longitude(geo.Degrees(77.5)), p.Lon)

	p, err = parsePoint(" -0.0000001 , 180 ")
	assert.NoError(t, err)
	assert.Equal(t, geo.Latitude(-1), p.Lat)
	assert.Equal(t, geo.Longitude(1_800_000_000), p.Lon)
}

func TestParsePointRejects(t *testing.T) {
	for _, s := range []string{"12.5", "12.5;77.5", "a,b", "12.5,"} {
		t.Run(s, func(t *testing.T) {
			_, err := parsePoint(s)
			assert.Error(t, err)
		})
	}
}
