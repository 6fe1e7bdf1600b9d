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
	"encoding/xml"
	"strconv"
	"time"
)

const (
	// Namespace is the XML namespace of OSM v0.6 documents.
	Namespace = "http://openstreetmap.org/osm/0.6"

	// SchemaVersion is the OSM API version spoken here.
	SchemaVersion = "0.6"

	// DefaultWritingProgram is the generator attribute emitted when no
	// writing program is configured.
	DefaultWritingProgram = "naqsha"

	timeLayout = time.RFC3339
)

// Tokens maps one event to its markup tokens using the default writing
// program.  The mapping is total: every event renders, in O(1) memory,
// without inspecting its neighbors.  Whether the overall sequence obeys
// the document grammar is the caller's contract.
func Tokens(ev Event) []xml.Token {
	return renderer{program: DefaultWritingProgram}.tokens(ev)
}

type renderer struct {
	program string
}

func (r renderer) tokens(ev Event) []xml.Token {
	switch ev := ev.(type) {
	case DocumentBegin:
		return []xml.Token{xml.ProcInst{
			Target: "xml",
			Inst:   []byte(`version="1.0" encoding="UTF-8"`),
		}}

	case DocumentEnd:
		return nil

	case OsmBegin:
		return []xml.Token{start("osm",
			attr("version", SchemaVersion),
			attr("generator", r.program),
			attr("xmlns", Namespace),
		)}

	case OsmEnd:
		return []xml.Token{end("osm")}

	case Bounds:
		return leaf("bounds",
			attr("minlat", ev.Bounds.MinLat.String()),
			attr("maxlat", ev.Bounds.MaxLat.String()),
			attr("minlon", ev.Bounds.MinLon.String()),
			attr("maxlon", ev.Bounds.MaxLon.String()),
		)

	case NodeBegin:
		attrs := idAttr(ev.Meta, nil)
		attrs = append(attrs,
			attr("lat", ev.Location.Lat.String()),
			attr("lon", ev.Location.Lon.String()),
		)
		attrs = metaAttrs(ev.Meta, attrs)

		return []xml.Token{start("node", attrs...)}

	case NodeEnd:
		return []xml.Token{end("node")}

	case WayBegin:
		return []xml.Token{start("way", metaAttrs(ev.Meta, idAttr(ev.Meta, nil))...)}

	case WayEnd:
		return []xml.Token{end("way")}

	case RelationBegin:
		return []xml.Token{start("relation", metaAttrs(ev.Meta, idAttr(ev.Meta, nil))...)}

	case RelationEnd:
		return []xml.Token{end("relation")}

	case NodeRef:
		return leaf("nd", attr("ref", strconv.FormatInt(int64(ev.Ref), 10)))

	case Member:
		return leaf("member",
			attr("type", ev.Type.String()),
			attr("ref", strconv.FormatInt(ev.Ref, 10)),
			attr("role", ev.Role),
		)

	case Tag:
		return leaf("tag", attr("k", ev.Key), attr("v", ev.Value))

	default:
		// Event is a closed set; this is unreachable.
		panic("unknown event type")
	}
}

func start(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

func end(name string) xml.EndElement {
	return xml.EndElement{Name: xml.Name{Local: name}}
}

// leaf renders an empty-body element as a start+end pair.
func leaf(name string, attrs ...xml.Attr) []xml.Token {
	return []xml.Token{start(name, attrs...), end(name)}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// idAttr emits the id attribute ahead of any positional attributes,
// which is where OSM tooling conventionally puts it.
func idAttr[K ElementID](m Meta[K], attrs []xml.Attr) []xml.Attr {
	if m.ID != nil {
		attrs = append(attrs, attr("id", strconv.FormatInt(int64(*m.ID), 10)))
	}

	return attrs
}

// metaAttrs appends the optional bookkeeping attributes.  Absent fields
// are omitted entirely, never rendered as empty or sentinel values.
func metaAttrs[K ElementID](m Meta[K], attrs []xml.Attr) []xml.Attr {
	if m.User != nil {
		attrs = append(attrs, attr("user", *m.User))
	}

	if m.UID != nil {
		attrs = append(attrs, attr("uid", strconv.FormatInt(*m.UID, 10)))
	}

	if m.Timestamp != nil {
		attrs = append(attrs, attr("timestamp", m.Timestamp.UTC().Format(timeLayout)))
	}

	if m.Version != nil {
		attrs = append(attrs, attr("version", strconv.FormatInt(*m.Version, 10)))
	}

	if m.Changeset != nil {
		attrs = append(attrs, attr("changeset", strconv.FormatInt(*m.Changeset, 10)))
	}

	if m.Visible != nil {
		attrs = append(attrs, attr("visible", strconv.FormatBool(*m.Visible)))
	}

	return attrs
}
