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

package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nominal(name string, column int) *NominalType {
	return &NominalType{
		Identifier: Identifier{
			Identifier: name,
			Pos:        Position{Offset: column, Line: 1, Column: column},
		},
	}
}

func TestTypeString(t *testing.T) {

	t.Parallel()

	t.Run("nominal", func(t *testing.T) {
		t.Parallel()

		ty := &NominalType{
			Identifier: Identifier{Identifier: "Outer"},
			NestedIdentifiers: []Identifier{
				{Identifier: "Inner"},
			},
		}
		assert.Equal(t, "Outer.Inner", ty.String())
	})

	t.Run("double optional", func(t *testing.T) {
		t.Parallel()

		ty := &OptionalType{
			Type: &OptionalType{
				Type: nominal("Int", 0),
			},
		}
		assert.Equal(t, "Int??", ty.String())
	})

	t.Run("optional array", func(t *testing.T) {
		t.Parallel()

		ty := &OptionalType{
			Type: &VariableSizedType{
				Type: nominal("Base", 1),
			},
		}
		assert.Equal(t, "[Base]?", ty.String())
	})

	t.Run("optional dictionary", func(t *testing.T) {
		t.Parallel()

		ty := &OptionalType{
			Type: &DictionaryType{
				KeyType:   nominal("Base", 1),
				ValueType: nominal("Base", 8),
			},
		}
		assert.Equal(t, "[Base : Base]?", ty.String())
	})
}

func TestOptionalType_Positions(t *testing.T) {

	t.Parallel()

	ty := &OptionalType{
		Type:   nominal("Int", 4),
		EndPos: Position{Offset: 7, Line: 1, Column: 7},
	}

	assert.Equal(t,
		Range{
			StartPos: Position{Offset: 4, Line: 1, Column: 4},
			EndPos:   Position{Offset: 7, Line: 1, Column: 7},
		},
		NewRangeFromPositioned(ty),
	)
}

func TestNominalType_MarshalJSON(t *testing.T) {

	t.Parallel()

	ty := nominal("Int", 2)

	actual, err := json.Marshal(ty)
	require.NoError(t, err)

	assert.JSONEq(t,
		// language=json
		`
        {
            "Type": "NominalType",
            "Identifier": {
                "Identifier": "Int",
                "Pos": {"Offset": 2, "Line": 1, "Column": 2}
            },
            "StartPos": {"Offset": 2, "Line": 1, "Column": 2},
            "EndPos": {"Offset": 4, "Line": 1, "Column": 4}
        }
        `,
		string(actual),
	)
}
