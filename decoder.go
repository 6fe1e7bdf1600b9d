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
	"errors"
	"fmt"
	"io"
)

type frameKind int

const (
	frameOsm frameKind = iota
	frameNode
	frameWay
	frameRelation
	frameLeaf
)

// frame is one in-progress element of the recursive descent.  The
// close event, if any, is emitted when the matching end tag arrives.
type frame struct {
	name  string
	kind  frameKind
	close Event

	// osm frame only: tracks which child candidates remain
	seenBounds bool
	seenBody   bool
}

// Decoder reads OSM XML markup and produces the corresponding event
// sequence, validating element nesting and attribute shapes as it goes.
//
// The decoder pulls exactly the markup it needs per event and holds
// only the stack of in-progress elements, so memory use is bounded by
// nesting depth, not document size.
type Decoder struct {
	cfg decoderOptions
	tok *xml.Decoder

	stack    []frame
	queue    []Event
	err      error
	started  bool
	rootSeen bool
	finished bool
}

// NewDecoder returns a new decoder, configured with options, that reads
// markup from rdr.
func NewDecoder(rdr io.Reader, opts ...DecoderOption) *Decoder {
	cfg := defaultDecoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Decoder{
		cfg: cfg,
		tok: xml.NewDecoder(rdr),
	}
}

// Decode returns the next event of the document in document order:
// DocumentBegin, OsmBegin, the body events, OsmEnd, DocumentEnd.  The
// end of the stream is reported by an io.EOF error.  Parse failures are
// unrecoverable; once an error is returned every subsequent call
// returns the same error.
func (d *Decoder) Decode() (Event, error) {
	if len(d.queue) > 0 {
		ev := d.queue[0]
		d.queue = d.queue[1:]

		return ev, nil
	}

	if d.err != nil {
		return nil, d.err
	}

	if !d.started {
		d.started = true

		return DocumentBegin{}, nil
	}

	if d.finished {
		d.err = io.EOF

		return nil, io.EOF
	}

	for {
		ev, err := d.step()
		if err != nil {
			d.err = err

			return nil, err
		}

		if ev != nil {
			return ev, nil
		}
	}
}

// step consumes one markup token.  It returns a nil event for tokens
// that carry no OSM content (character data, comments, processing
// instructions, closed leaf elements).
func (d *Decoder) step() (Event, error) {
	tok, err := d.tok.RawToken()
	if err != nil {
		return nil, d.readError(err)
	}

	switch t := tok.(type) {
	case xml.StartElement:
		return d.startElement(t)
	case xml.EndElement:
		return d.endElement(t)
	default:
		return nil, nil
	}
}

func (d *Decoder) startElement(t xml.StartElement) (Event, error) {
	name := rawName(t.Name)

	if len(d.stack) == 0 {
		if d.rootSeen || name != "osm" {
			return nil, &UnknownElementError{Element: name}
		}

		a := attributes{element: "osm", list: t.Attr}
		if ns, ok := a.lookup("xmlns"); ok && ns != Namespace {
			return nil, &AttributeValueError{
				Element: "osm",
				Attr:    "xmlns",
				Value:   ns,
				Err:     errors.New("unsupported namespace"),
			}
		}

		d.rootSeen = true
		d.push(frame{name: "osm", kind: frameOsm, close: OsmEnd{}})

		return OsmBegin{}, nil
	}

	top := &d.stack[len(d.stack)-1]
	a := attributes{element: name, list: t.Attr}

	switch top.kind {
	case frameOsm:
		switch name {
		case "bounds":
			// bounds is a candidate only once, ahead of the body
			if top.seenBounds || top.seenBody {
				return d.unknown(top.name, name)
			}

			top.seenBounds = true

			ev, err := parseBounds(a)
			if err != nil {
				return nil, err
			}

			d.push(frame{name: name, kind: frameLeaf})

			return ev, nil

		case "node":
			top.seenBody = true

			ev, err := parseNodeBegin(a)
			if err != nil {
				return nil, err
			}

			d.push(frame{name: name, kind: frameNode, close: NodeEnd{}})

			return ev, nil

		case "way":
			top.seenBody = true

			ev, err := parseWayBegin(a)
			if err != nil {
				return nil, err
			}

			d.push(frame{name: name, kind: frameWay, close: WayEnd{}})

			return ev, nil

		case "relation":
			top.seenBody = true

			ev, err := parseRelationBegin(a)
			if err != nil {
				return nil, err
			}

			d.push(frame{name: name, kind: frameRelation, close: RelationEnd{}})

			return ev, nil
		}

	case frameNode:
		if name == "tag" {
			ev, err := parseTag(a)

			return d.leaf(name, ev, err)
		}

	case frameWay:
		switch name {
		case "nd":
			ev, err := parseNodeRef(a)

			return d.leaf(name, ev, err)
		case "tag":
			ev, err := parseTag(a)

			return d.leaf(name, ev, err)
		}

	case frameRelation:
		switch name {
		case "member":
			ev, err := parseMember(a)

			return d.leaf(name, ev, err)
		case "tag":
			ev, err := parseTag(a)

			return d.leaf(name, ev, err)
		}
	}

	return d.unknown(top.name, name)
}

func (d *Decoder) endElement(t xml.EndElement) (Event, error) {
	name := rawName(t.Name)

	if len(d.stack) == 0 {
		return nil, fmt.Errorf("%w: unexpected </%s>", ErrBadNesting, name)
	}

	top := d.stack[len(d.stack)-1]
	if name != top.name {
		return nil, fmt.Errorf("%w: expected </%s> but got </%s>", ErrBadNesting, top.name, name)
	}

	d.stack = d.stack[:len(d.stack)-1]

	if len(d.stack) == 0 {
		// the single osm element has closed; nothing further is read
		d.finished = true
		d.queue = append(d.queue, DocumentEnd{})
	}

	if top.close != nil {
		return top.close, nil
	}

	return nil, nil
}

func (d *Decoder) push(f frame) {
	d.stack = append(d.stack, f)
}

// leaf enters an empty-body element whose event was fully parsed from
// its attributes.
func (d *Decoder) leaf(name string, ev Event, err error) (Event, error) {
	if err != nil {
		return nil, err
	}

	d.push(frame{name: name, kind: frameLeaf})

	return ev, nil
}

// unknown applies the configured policy to a start tag that matches no
// candidate child at the current level.
func (d *Decoder) unknown(parent, name string) (Event, error) {
	if d.cfg.unknown == SkipUnknown {
		return nil, d.skip()
	}

	return nil, &UnknownElementError{Parent: parent, Element: name}
}

// skip discards the subtree of the start tag just consumed.
func (d *Decoder) skip() error {
	for depth := 1; depth > 0; {
		tok, err := d.tok.RawToken()
		if err != nil {
			return d.readError(err)
		}

		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return nil
}

// readError maps tokenizer failures into the parse error taxonomy.
func (d *Decoder) readError(err error) error {
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}

	if n := len(d.stack); n > 0 {
		return fmt.Errorf("%w inside <%s>", ErrUnexpectedEOF, d.stack[n-1].name)
	}

	return fmt.Errorf("%w before <osm>", ErrUnexpectedEOF)
}

// rawName renders an element name as it appeared in the markup.  Names
// carrying a prefix never match the OSM grammar, which lives in the
// default namespace.
func rawName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}

	return n.Local
}
