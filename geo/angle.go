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

// Package geo contains the angular and positional model shared by the
// OpenStreetMap encoders/decoders.  Angles are stored as fixed-point
// integers scaled by 1e7, which resolves about 1.1 cm of ground distance
// at the equator and keeps coordinate arithmetic exact.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
)

// UnitsPerDegree is the fixed-point scale: one Angle unit is 1e-7 degree.
const UnitsPerDegree = 10_000_000

const (
	quarterTurn      = 90 * UnitsPerDegree
	halfTurn         = 180 * UnitsPerDegree
	threeQuarterTurn = 270 * UnitsPerDegree
	fullTurn         = 360 * UnitsPerDegree

	degreesPerRadian = 180 / math.Pi
)

// Angle is a 1D angle in ten-millionths of a degree.  Arithmetic is
// performed on the scaled integer; conversions from floating degrees or
// radians truncate toward zero.
type Angle int64

// Degrees converts decimal degrees to an Angle, truncating toward zero
// beyond the 1e-7 resolution.
func Degrees(d float64) Angle { return Angle(d * UnitsPerDegree) }

// Radians converts radians to an Angle, truncating toward zero beyond
// the 1e-7 degree resolution.
func Radians(r float64) Angle { return Degrees(r * degreesPerRadian) }

// Degrees returns the angle in decimal degrees.
func (a Angle) Degrees() float64 { return float64(a) / UnitsPerDegree }

// Radians returns the equivalent s1.Angle.
func (a Angle) Radians() s1.Angle { return s1.Angle(a.Degrees()) * s1.Degree }

// Add returns the sum of the two angles.
func (a Angle) Add(o Angle) Angle { return a + o }

// Neg returns the additive inverse of the angle.
func (a Angle) Neg() Angle { return -a }

// String renders the angle as decimal degrees: the integer part and,
// only when the scaled remainder is non-zero, a point followed by its
// significant digits with no trailing zero padding.
func (a Angle) String() string {
	u := int64(a)

	var sign string
	if u < 0 {
		sign = "-"
		u = -u
	}

	whole := u / UnitsPerDegree
	frac := u % UnitsPerDegree

	if frac == 0 {
		return sign + strconv.FormatInt(whole, 10)
	}

	digits := fmt.Sprintf("%07d", frac)
	digits = strings.TrimRight(digits, "0")

	return sign + strconv.FormatInt(whole, 10) + "." + digits
}

// ParseAngle converts decimal degree text to an Angle.  The conversion
// is performed digit-wise so that values survive a round trip exactly;
// digits beyond the 1e-7 resolution are truncated toward zero.
func ParseAngle(s string) (Angle, error) {
	rest := s

	var neg bool

	switch {
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}

	whole, frac := rest, ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		whole, frac = rest[:i], rest[i+1:]
		if frac == "" {
			return 0, fmt.Errorf("invalid decimal degrees %q", s)
		}
	}

	if whole == "" {
		return 0, fmt.Errorf("invalid decimal degrees %q", s)
	}

	// the sign was consumed above; a second one here is malformed
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal degrees %q", s)
	}

	units := int64(w) * UnitsPerDegree

	scale := int64(UnitsPerDegree)
	for _, c := range []byte(frac) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid decimal degrees %q", s)
		}

		if scale > 1 {
			scale /= 10
			units += int64(c-'0') * scale
		}
	}

	if neg {
		units = -units
	}

	return Angle(units), nil
}

// Latitude is an angle north of the equator, normalized into [-90, +90]
// degrees by a period-360 sawtooth.
type Latitude Angle

// Normalize folds the latitude into [-90, +90] degrees.  Values are
// reduced modulo 360 and then reflected across the poles, so 100
// degrees normalizes to 80 and 190 normalizes to -10.
func (l Latitude) Normalize() Latitude {
	r := int64(l) % fullTurn

	switch {
	case r > threeQuarterTurn:
		r -= fullTurn
	case r > quarterTurn:
		r = halfTurn - r
	case r < -threeQuarterTurn:
		r += fullTurn
	case r < -quarterTurn:
		r = -halfTurn - r
	}

	return Latitude(r)
}

// Add returns the sum of the two latitudes.
func (l Latitude) Add(o Latitude) Latitude { return l + o }

// Neg returns the additive inverse, reflecting across the equator.
func (l Latitude) Neg() Latitude { return -l }

// Equal compares the normalized latitudes.
func (l Latitude) Equal(o Latitude) bool { return l.Normalize() == o.Normalize() }

// Angle returns the raw, unnormalized angle.
func (l Latitude) Angle() Angle { return Angle(l) }

func (l Latitude) String() string { return Angle(l).String() }

// Longitude is an angle east of the Greenwich meridian, normalized into
// (-180, +180] degrees with wrap-around at the antimeridian.
type Longitude Angle

// Normalize folds the longitude into (-180, +180] degrees, so 190
// degrees normalizes to -170.
func (l Longitude) Normalize() Longitude {
	r := int64(l) % fullTurn

	switch {
	case r > halfTurn:
		r -= fullTurn
	case r <= -halfTurn:
		r += fullTurn
	}

	return Longitude(r)
}

// Add returns the sum of the two longitudes.
func (l Longitude) Add(o Longitude) Longitude { return l + o }

// Neg returns the additive inverse, reflecting across the meridian.
func (l Longitude) Neg() Longitude { return -l }

// Equal compares the normalized longitudes.
func (l Longitude) Equal(o Longitude) bool { return l.Normalize() == o.Normalize() }

// Angle returns the raw, unnormalized angle.
func (l Longitude) Angle() Angle { return Angle(l) }

func (l Longitude) String() string { return Angle(l).String() }
