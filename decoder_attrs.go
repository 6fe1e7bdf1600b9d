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
	"strconv"
	"time"

	"github.com/alx741/naqsha/geo"
)

// attributes is the start tag currently being parsed.  Each element's
// parser is a table of named extractors over it: required extractors
// fail on absence, optional extractors yield nil, and all of them
// surface conversion failures naming the element, attribute, and
// offending text.  Attributes outside an element's table are ignored.
type attributes struct {
	element string
	list    []xml.Attr
}

func (a attributes) lookup(name string) (string, bool) {
	for _, at := range a.list {
		if at.Name.Local == name && at.Name.Space == "" {
			return at.Value, true
		}
	}

	return "", false
}

func (a attributes) required(name string) (string, error) {
	text, ok := a.lookup(name)
	if !ok {
		return "", &MissingAttributeError{Element: a.element, Attr: name}
	}

	return text, nil
}

func (a attributes) angle(name string) (geo.Angle, error) {
	text, err := a.required(name)
	if err != nil {
		return 0, err
	}

	v, err := geo.ParseAngle(text)
	if err != nil {
		return 0, &AttributeValueError{Element: a.element, Attr: name, Value: text, Err: err}
	}

	return v, nil
}

func (a attributes) int64(name string) (int64, error) {
	text, err := a.required(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &AttributeValueError{Element: a.element, Attr: name, Value: text, Err: err}
	}

	return v, nil
}

func (a attributes) optionalInt64(name string) (*int64, error) {
	text, ok := a.lookup(name)
	if !ok {
		return nil, nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &AttributeValueError{Element: a.element, Attr: name, Value: text, Err: err}
	}

	return &v, nil
}

func (a attributes) optionalString(name string) *string {
	text, ok := a.lookup(name)
	if !ok {
		return nil
	}

	return &text
}

func (a attributes) optionalTime(name string) (*time.Time, error) {
	text, ok := a.lookup(name)
	if !ok {
		return nil, nil
	}

	t, err := time.Parse(timeLayout, text)
	if err != nil {
		return nil, &AttributeValueError{Element: a.element, Attr: name, Value: text, Err: err}
	}

	return &t, nil
}

// optionalBool accepts exactly the enumerated tokens true and false.
func (a attributes) optionalBool(name string) (*bool, error) {
	text, ok := a.lookup(name)
	if !ok {
		return nil, nil
	}

	switch text {
	case "true":
		b := true

		return &b, nil
	case "false":
		b := false

		return &b, nil
	default:
		return nil, &AttributeValueError{
			Element: a.element,
			Attr:    name,
			Value:   text,
			Err:     errors.New("not a boolean token"),
		}
	}
}

func parseMeta[K ElementID](a attributes) (Meta[K], error) {
	var m Meta[K]

	id, err := a.optionalInt64("id")
	if err != nil {
		return m, err
	}

	if id != nil {
		k := K(*id)
		m.ID = &k
	}

	m.User = a.optionalString("user")

	if m.UID, err = a.optionalInt64("uid"); err != nil {
		return m, err
	}

	if m.Timestamp, err = a.optionalTime("timestamp"); err != nil {
		return m, err
	}

	if m.Version, err = a.optionalInt64("version"); err != nil {
		return m, err
	}

	if m.Changeset, err = a.optionalInt64("changeset"); err != nil {
		return m, err
	}

	if m.Visible, err = a.optionalBool("visible"); err != nil {
		return m, err
	}

	return m, nil
}

func parseBounds(a attributes) (Bounds, error) {
	minlat, err := a.angle("minlat")
	if err != nil {
		return Bounds{}, err
	}

	maxlat, err := a.angle("maxlat")
	if err != nil {
		return Bounds{}, err
	}

	minlon, err := a.angle("minlon")
	if err != nil {
		return Bounds{}, err
	}

	maxlon, err := a.angle("maxlon")
	if err != nil {
		return Bounds{}, err
	}

	return Bounds{Bounds: geo.Bounds{
		MaxLat: geo.Latitude(maxlat),
		MinLat: geo.Latitude(minlat),
		MaxLon: geo.Longitude(maxlon),
		MinLon: geo.Longitude(minlon),
	}}, nil
}

func parseNodeBegin(a attributes) (NodeBegin, error) {
	lat, err := a.angle("lat")
	if err != nil {
		return NodeBegin{}, err
	}

	lon, err := a.angle("lon")
	if err != nil {
		return NodeBegin{}, err
	}

	meta, err := parseMeta[NodeID](a)
	if err != nil {
		return NodeBegin{}, err
	}

	return NodeBegin{
		Meta:     meta,
		Location: geo.Geo{Lat: geo.Latitude(lat), Lon: geo.Longitude(lon)},
	}, nil
}

func parseWayBegin(a attributes) (WayBegin, error) {
	meta, err := parseMeta[WayID](a)
	if err != nil {
		return WayBegin{}, err
	}

	return WayBegin{Meta: meta}, nil
}

func parseRelationBegin(a attributes) (RelationBegin, error) {
	meta, err := parseMeta[RelationID](a)
	if err != nil {
		return RelationBegin{}, err
	}

	return RelationBegin{Meta: meta}, nil
}

func parseNodeRef(a attributes) (NodeRef, error) {
	ref, err := a.int64("ref")
	if err != nil {
		return NodeRef{}, err
	}

	return NodeRef{Ref: NodeID(ref)}, nil
}

func parseMember(a attributes) (Member, error) {
	text, err := a.required("type")
	if err != nil {
		return Member{}, err
	}

	typ, err := ParseMemberType(text)
	if err != nil {
		return Member{}, &AttributeValueError{Element: a.element, Attr: "type", Value: text, Err: err}
	}

	ref, err := a.int64("ref")
	if err != nil {
		return Member{}, err
	}

	role, err := a.required("role")
	if err != nil {
		return Member{}, err
	}

	return Member{Type: typ, Ref: ref, Role: role}, nil
}

func parseTag(a attributes) (Tag, error) {
	k, err := a.required("k")
	if err != nil {
		return Tag{}, err
	}

	v, err := a.required("v")
	if err != nil {
		return Tag{}, err
	}

	return Tag{Key: k, Value: v}, nil
}
