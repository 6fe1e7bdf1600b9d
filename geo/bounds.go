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

package geo

import (
	"fmt"
)

// Bounds is an axis-aligned latitude/longitude rectangle, the payload
// of the OSM bounds element.  No ordering is enforced between the min
// and max fields; values round-trip as given.
type Bounds struct {
	MaxLat Latitude
	MinLat Latitude
	MaxLon Longitude
	MinLon Longitude
}

// Contains checks if the bounds contain the point.
func (b Bounds) Contains(g Geo) bool {
	lat := g.Lat.Normalize()
	lon := g.Lon.Normalize()

	return b.MinLat.Normalize() <= lat && lat <= b.MaxLat.Normalize() &&
		b.MinLon.Normalize() <= lon && lon <= b.MaxLon.Normalize()
}

// Equal compares the normalized corners of the two bounds.
func (b Bounds) Equal(o Bounds) bool {
	return b.MaxLat.Equal(o.MaxLat) && b.MinLat.Equal(o.MinLat) &&
		b.MaxLon.Equal(o.MaxLon) && b.MinLon.Equal(o.MinLon)
}

func (b Bounds) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]", b.MaxLat, b.MinLon, b.MinLat, b.MaxLon)
}
