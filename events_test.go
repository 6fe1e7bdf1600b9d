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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberTypeString(t *testing.T) {
	assert.Equal(t, "node", NODE.String())
	assert.Equal(t, "way", WAY.String())
	assert.Equal(t, "relation", RELATION.String())
	assert.Equal(t, "MemberType(9)", MemberType(9).String())
}

func TestParseMemberType(t *testing.T) {
	for _, mt := range []MemberType{NODE, WAY, RELATION} {
		parsed, err := ParseMemberType(mt.String())
		assert.NoError(t, err)
		assert.Equal(t, mt, parsed)
	}

	_, err := ParseMemberType("vehicle")
	assert.ErrorIs(t, err, ErrBadMemberType)
}
