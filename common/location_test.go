/*
 * Castcheck - Optional downcast checking for compiler front ends
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLocation_ID(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		LocationID("S.test.swift"),
		StringLocation("test.swift").ID(),
	)
}

func TestStringLocation_MarshalJSON(t *testing.T) {

	t.Parallel()

	actual, err := json.Marshal(StringLocation("test"))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"Type": "StringLocation", "String": "test"}`,
		string(actual),
	)
}

func TestLocationsMatch(t *testing.T) {

	t.Parallel()

	assert.True(t, LocationsMatch(nil, nil))
	assert.False(t, LocationsMatch(StringLocation("a"), nil))
	assert.False(t, LocationsMatch(nil, StringLocation("a")))
	assert.True(t, LocationsMatch(StringLocation("a"), StringLocation("a")))
	assert.False(t, LocationsMatch(StringLocation("a"), StringLocation("b")))
}
