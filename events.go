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

// Package naqsha streams OpenStreetMap documents between the OSM object
// model and the OSM XML wire format.  A well-formed document is
// represented as a flat sequence of Event values, the shared contract
// between the Decoder (XML to events) and the Encoder (events to XML).
package naqsha

import (
	"fmt"
	"time"

	"github.com/alx741/naqsha/geo"
)

// NodeID is the primary key of a node.
type NodeID int64

// WayID is the primary key of a way.
type WayID int64

// RelationID is the primary key of a relation.
type RelationID int64

// ElementID constrains the id kinds an element can carry.  The kinds
// share a representation but are not interchangeable.
type ElementID interface {
	NodeID | WayID | RelationID
}

// Meta is the optional bookkeeping attached to every node, way, and
// relation.  A minimal OSM document may omit any of these, so every
// field is a pointer; absence round-trips as attribute absence, never
// as a default value.
type Meta[K ElementID] struct {
	ID        *K
	User      *string
	UID       *int64
	Timestamp *time.Time
	Version   *int64
	Changeset *int64
	Visible   *bool
}

// MemberType is an enumeration of relation member kinds.
type MemberType int32

const (
	// NODE denotes that the member is a node.
	NODE MemberType = iota

	// WAY denotes that the member is a way.
	WAY

	// RELATION denotes that the member is a relation.
	RELATION
)

func (t MemberType) String() string {
	switch t {
	case NODE:
		return "node"
	case WAY:
		return "way"
	case RELATION:
		return "relation"
	default:
		return fmt.Sprintf("MemberType(%d)", int32(t))
	}
}

// ParseMemberType converts the textual member kind used on the wire.
func ParseMemberType(s string) (MemberType, error) {
	switch s {
	case "node":
		return NODE, nil
	case "way":
		return WAY, nil
	case "relation":
		return RELATION, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrBadMemberType, s)
	}
}

// Event is one step of a depth-first traversal of an OSM document.
// The set of variants is closed: DocumentBegin, DocumentEnd, OsmBegin,
// OsmEnd, Bounds, NodeBegin, NodeEnd, WayBegin, WayEnd, RelationBegin,
// RelationEnd, NodeRef, Member, and Tag.
//
// A valid sequence forms a well-nested tree: OsmBegin..OsmEnd contains
// at most one Bounds followed by node, way, and relation subtrees in
// document order; nodes contain Tag events; ways contain NodeRef and
// Tag events; relations contain Member and Tag events.  The Decoder
// enforces this grammar; the Encoder trusts its caller.
type Event interface {
	isEvent() // prevents extensions
}

// DocumentBegin opens a complete document.  Fragment streams omit the
// document bracket entirely.
type DocumentBegin struct{}

// DocumentEnd closes a complete document.
type DocumentEnd struct{}

// OsmBegin opens the toplevel osm element.
type OsmBegin struct{}

// OsmEnd closes the toplevel osm element.
type OsmEnd struct{}

// Bounds declares the region the document covers.
type Bounds struct {
	Bounds geo.Bounds
}

// NodeBegin opens a node subtree.
type NodeBegin struct {
	Meta     Meta[NodeID]
	Location geo.Geo
}

// NodeEnd closes a node subtree.
type NodeEnd struct{}

// WayBegin opens a way subtree.
type WayBegin struct {
	Meta Meta[WayID]
}

// WayEnd closes a way subtree.
type WayEnd struct{}

// RelationBegin opens a relation subtree.
type RelationBegin struct {
	Meta Meta[RelationID]
}

// RelationEnd closes a relation subtree.
type RelationEnd struct{}

// NodeRef records way membership of a node.
type NodeRef struct {
	Ref NodeID
}

// Member records relation membership of a node, way, or relation,
// tagged by kind and carrying that kind's id.
type Member struct {
	Type MemberType
	Ref  int64
	Role string
}

// Tag is one key/value annotation of the enclosing element.
type Tag struct {
	Key   string
	Value string
}

func (DocumentBegin) isEvent() {}
func (DocumentEnd) isEvent()   {}
func (OsmBegin) isEvent()      {}
func (OsmEnd) isEvent()        {}
func (Bounds) isEvent()        {}
func (NodeBegin) isEvent()     {}
func (NodeEnd) isEvent()       {}
func (WayBegin) isEvent()      {}
func (WayEnd) isEvent()        {}
func (RelationBegin) isEvent() {}
func (RelationEnd) isEvent()   {}
func (NodeRef) isEvent()       {}
func (Member) isEvent()        {}
func (Tag) isEvent()           {}
