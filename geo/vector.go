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
	"golang.org/x/exp/constraints"
)

// Vector is columnar storage for bulk coordinate data: a flat slice of
// fixed-point angles with no per-element boxing.  Large coordinate
// columns (all the latitudes of a dense node run, say) pack into
// 8 bytes per value.
type Vector []Angle

// PackDegrees converts a column of decimal degrees into fixed-point
// storage, truncating toward zero beyond the 1e-7 resolution.
func PackDegrees[T constraints.Float](degrees []T) Vector {
	v := make(Vector, len(degrees))

	for i, d := range degrees {
		v[i] = Degrees(float64(d))
	}

	return v
}

// UnpackDegrees converts fixed-point storage back into a column of
// decimal degrees.
func UnpackDegrees[T constraints.Float](v Vector) []T {
	degrees := make([]T, len(v))

	for i, a := range v {
		degrees[i] = T(a.Degrees())
	}

	return degrees
}

// Latitudes reinterprets the column as latitudes.
func (v Vector) Latitudes() []Latitude {
	lats := make([]Latitude, len(v))

	for i, a := range v {
		lats[i] = Latitude(a)
	}

	return lats
}

// Longitudes reinterprets the column as longitudes.
func (v Vector) Longitudes() []Longitude {
	lons := make([]Longitude, len(v))

	for i, a := range v {
		lons[i] = Longitude(a)
	}

	return lons
}
