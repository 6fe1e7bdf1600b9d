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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeAll(t *testing.T, events []Event, opts ...EncoderOption) string {
	var buf bytes.Buffer

	e := NewEncoder(&buf, opts...)

	for _, ev := range events {
		assert.NoError(t, e.Encode(ev))
	}

	assert.NoError(t, e.Close())

	return buf.String()
}

func minimalDocument() []Event {
	return []Event{
		DocumentBegin{},
		OsmBegin{},
		NodeBegin{
			Meta:     Meta[NodeID]{ID: ptr(NodeID(1))},
			Location: position(12.5, 77.5),
		},
		NodeEnd{},
		OsmEnd{},
		DocumentEnd{},
	}
}

func TestEncodeMinimalDocument(t *testing.T) {
	markup := encodeAll(t, minimalDocument(), WithWritingProgram("test"))

	expected := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<osm version="0.6" generator="test" xmlns="http://openstreetmap.org/osm/0.6">` +
		`<node id="1" lat="12.5" lon="77.5"></node>` +
		`</osm>`
	assert.Equal(t, expected, markup)
}

func TestEncodeBatch(t *testing.T) {
	var buf bytes.Buffer

	e := NewEncoder(&buf, WithWritingProgram("test"))
	assert.NoError(t, e.EncodeBatch(minimalDocument()))
	assert.NoError(t, e.Close())

	assert.Equal(t, encodeAll(t, minimalDocument(), WithWritingProgram("test")), buf.String())
}

func TestEncodeDefaultWritingProgram(t *testing.T) {
	markup := encodeAll(t, []Event{OsmBegin{}, OsmEnd{}})
	assert.Contains(t, markup, `generator="naqsha"`)
}

func TestEncodeMetaOmission(t *testing.T) {
	markup := encodeAll(t, []Event{
		OsmBegin{},
		WayBegin{Meta: Meta[WayID]{Version: ptr(int64(2))}},
		WayEnd{},
		OsmEnd{},
	})

	assert.Contains(t, markup, `<way version="2"></way>`)
	assert.NotContains(t, markup, "id=")
	assert.NotContains(t, markup, "visible=")
}

func TestEncodeMember(t *testing.T) {
	markup := encodeAll(t, []Event{
		OsmBegin{},
		RelationBegin{Meta: Meta[RelationID]{ID: ptr(RelationID(20))}},
		Member{Type: WAY, Ref: 10, Role: "outer"},
		Member{Type: NODE, Ref: 7, Role: ""},
		RelationEnd{},
		OsmEnd{},
	})

	assert.Contains(t, markup, `<member type="way" ref="10" role="outer"></member>`)
	assert.Contains(t, markup, `<member type="node" ref="7" role=""></member>`)
}

func TestEncodeEscaping(t *testing.T) {
	markup := encodeAll(t, []Event{
		OsmBegin{},
		NodeBegin{Location: position(1, 2)},
		Tag{Key: "name", Value: `Fish & <Chips>`},
		NodeEnd{},
		OsmEnd{},
	})

	assert.Contains(t, markup, `v="Fish &amp; &lt;Chips&gt;"`)
}

func TestEncodeIndent(t *testing.T) {
	markup := encodeAll(t, minimalDocument(), WithIndent("  "))
	assert.Contains(t, markup, "\n  <node")
}

func TestTokens(t *testing.T) {
	assert.Len(t, Tokens(Tag{Key: "k", Value: "v"}), 2)
	assert.Len(t, Tokens(NodeBegin{}), 1)
	assert.Empty(t, Tokens(DocumentEnd{}))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestEncodeWriteFailure(t *testing.T) {
	e := NewEncoder(failWriter{})

	for _, ev := range minimalDocument() {
		assert.NoError(t, e.Encode(ev))
	}

	err := e.Close()
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "broken pipe"))
}
