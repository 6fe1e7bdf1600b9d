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
	"errors"
	"fmt"
)

var (
	// ErrBadNesting reports an end tag that does not close the
	// currently open element.
	ErrBadNesting = errors.New("bad nesting")

	// ErrUnexpectedEOF reports input that ends before the currently
	// open element closes.
	ErrUnexpectedEOF = errors.New("eof encountered")

	// ErrBadMemberType reports a member type outside node, way, and
	// relation.
	ErrBadMemberType = errors.New("bad member type")
)

// MissingAttributeError reports a required attribute absent from an
// element's start tag.  Parsing of the element aborts; no partial
// element is emitted.
type MissingAttributeError struct {
	Element string
	Attr    string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element <%s> is missing required attribute %q", e.Element, e.Attr)
}

// AttributeValueError reports attribute text that failed type
// conversion.
type AttributeValueError struct {
	Element string
	Attr    string
	Value   string
	Err     error
}

func (e *AttributeValueError) Error() string {
	return fmt.Sprintf("element <%s> attribute %q has bad value %q: %v",
		e.Element, e.Attr, e.Value, e.Err)
}

func (e *AttributeValueError) Unwrap() error { return e.Err }

// UnknownElementError reports a start tag that matches none of the
// candidate children at the current nesting level.
type UnknownElementError struct {
	Parent  string
	Element string
}

func (e *UnknownElementError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("unknown toplevel element <%s>", e.Element)
	}

	return fmt.Sprintf("unknown element <%s> inside <%s>", e.Element, e.Parent)
}
