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

package naqsha_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alx741/naqsha"
	"github.com/alx741/naqsha/geo"
)

func ExampleDecoder_Decode() {
	in := strings.NewReader(`<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="example" xmlns="http://openstreetmap.org/osm/0.6">
  <node id="1" lat="12.5" lon="77.5"/>
  <node id="2" lat="12.6" lon="77.6"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`)

	d := naqsha.NewDecoder(in)

	var nodes, ways, tags int

	for {
		ev, err := d.Decode()
		if err == io.EOF {
			break
		}

		if err != nil {
			log.Fatal(err)
		}

		switch ev.(type) {
		case naqsha.NodeBegin:
			nodes++
		case naqsha.WayBegin:
			ways++
		case naqsha.Tag:
			tags++
		}
	}

	fmt.Printf("nodes: %d, ways: %d, tags: %d\n", nodes, ways, tags)

	// Output: nodes: 2, ways: 1, tags: 1
}

func ExampleEncoder_Encode() {
	e := naqsha.NewEncoder(os.Stdout, naqsha.WithWritingProgram("example"))

	events := []naqsha.Event{
		naqsha.OsmBegin{},
		naqsha.NodeBegin{
			Location: geo.Geo{
				Lat: geo.Latitude(geo.Degrees(12.5)),
				Lon: geo.Longitude(geo.Degrees(77.5)),
			},
		},
		naqsha.NodeEnd{},
		naqsha.OsmEnd{},
	}

	for _, ev := range events {
		if err := e.Encode(ev); err != nil {
			log.Fatal(err)
		}
	}

	if err := e.Close(); err != nil {
		log.Fatal(err)
	}

	// Output: <osm version="0.6" generator="example" xmlns="http://openstreetmap.org/osm/0.6"><node lat="12.5" lon="77.5"></node></osm>
}
