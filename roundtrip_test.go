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

package naqsha

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alx741/naqsha/geo"
)

// A generated document parses back into the generating event sequence,
// bit for bit, including the 1e-7 fixed-point coordinates.
func TestRoundTrip(t *testing.T) {
	events := []Event{
		DocumentBegin{},
		OsmBegin{},
		Bounds{Bounds: geo.Bounds{
			MaxLat: geo.Latitude(516_900_000),
			MinLat: geo.Latitude(512_800_000),
			MaxLon: geo.Longitude(3_300_000),
			MinLon: geo.Longitude(-5_100_000),
		}},
		NodeBegin{
			Meta: Meta[NodeID]{
				ID:        ptr(NodeID(240_112_009)),
				User:      ptr("alice"),
				UID:       ptr(int64(7)),
				Timestamp: ptr(mustTime(t, "2014-03-24T21:55:02Z")),
				Version:   ptr(int64(3)),
				Changeset: ptr(int64(44)),
				Visible:   ptr(true),
			},
			Location: geo.Geo{Lat: geo.Latitude(1), Lon: geo.Longitude(-907_654_321)},
		},
		Tag{Key: "name", Value: "Fish & Chips"},
		NodeEnd{},
		NodeBegin{Location: position(12.5, 77.5)},
		NodeEnd{},
		WayBegin{Meta: Meta[WayID]{ID: ptr(WayID(10)), Visible: ptr(false)}},
		NodeRef{Ref: 240_112_009},
		NodeRef{Ref: 1},
		Tag{Key: "highway", Value: "residential"},
		WayEnd{},
		RelationBegin{Meta: Meta[RelationID]{ID: ptr(RelationID(20))}},
		Member{Type: WAY, Ref: 10, Role: "outer"},
		Member{Type: NODE, Ref: 240_112_009, Role: "stop"},
		Member{Type: RELATION, Ref: 19, Role: "parent"},
		Tag{Key: "type", Value: "multipolygon"},
		RelationEnd{},
		OsmEnd{},
		DocumentEnd{},
	}

	var buf bytes.Buffer

	e := NewEncoder(&buf)
	assert.NoError(t, e.EncodeBatch(events))
	assert.NoError(t, e.Close())

	decoded, err := decodeAll(buf.String())
	assert.NoError(t, err)
	assert.Equal(t, events, decoded)
}

// Decoding tolerates indented markup, so a formatting round trip is
// also lossless.
func TestRoundTripIndented(t *testing.T) {
	events := []Event{
		DocumentBegin{},
		OsmBegin{},
		NodeBegin{Location: position(12.5, 77.5)},
		Tag{Key: "name", Value: "Start"},
		NodeEnd{},
		OsmEnd{},
		DocumentEnd{},
	}

	var buf bytes.Buffer

	e := NewEncoder(&buf, WithIndent("    "))
	assert.NoError(t, e.EncodeBatch(events))
	assert.NoError(t, e.Close())

	assert.True(t, strings.Contains(buf.String(), "\n"))

	decoded, err := decodeAll(buf.String())
	assert.NoError(t, err)
	assert.Equal(t, events, decoded)
}
