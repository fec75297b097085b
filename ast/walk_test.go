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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onflow/castcheck/common"
)

func TestInspect(t *testing.T) {

	t.Parallel()

	inner := &CastingExpression{
		Expression: &IdentifierExpression{
			Identifier: Identifier{Identifier: "x"},
		},
		Operation:  OperationCast,
		TargetType: nominal("Int", 0),
	}

	outer := &CastingExpression{
		Expression: inner,
		Operation:  OperationForceCast,
		TargetType: nominal("Int", 0),
	}

	program := NewProgram(
		[]Declaration{
			&CompositeDeclaration{
				Kind:       common.DeclarationKindClass,
				Identifier: Identifier{Identifier: "Base"},
			},
			&FunctionDeclaration{
				Identifier:    Identifier{Identifier: "f"},
				ParameterList: &ParameterList{},
				FunctionBlock: &Block{
					Statements: []Statement{
						&VariableDeclaration{
							IsConstant: true,
							Identifier: Identifier{Identifier: "y"},
							Value:      outer,
						},
						&ReturnStatement{},
					},
				},
			},
		},
		nil,
	)

	var casts []*CastingExpression
	var nilCount int

	Inspect(program, func(element Element) bool {
		switch element := element.(type) {
		case nil:
			nilCount++
		case *CastingExpression:
			casts = append(casts, element)
		}
		return true
	})

	assert.Equal(t, []*CastingExpression{outer, inner}, casts)
	assert.Positive(t, nilCount)

	t.Run("stop descending", func(t *testing.T) {
		t.Parallel()

		var visited int
		Inspect(program, func(element Element) bool {
			if element != nil {
				visited++
			}
			_, isFunction := element.(*FunctionDeclaration)
			return !isFunction
		})

		// program, composite declaration, function declaration
		assert.Equal(t, 3, visited)
	})
}

func TestCastingExpression_String(t *testing.T) {

	t.Parallel()

	expression := &CastingExpression{
		Expression: &CastingExpression{
			Expression: &IdentifierExpression{
				Identifier: Identifier{Identifier: "x"},
			},
			Operation:  OperationFailableCast,
			TargetType: &OptionalType{Type: nominal("Int", 0)},
		},
		Operation:  OperationForceCast,
		TargetType: nominal("Int", 0),
	}

	assert.Equal(t, "x as? Int? as! Int", expression.String())
}

func TestTextEdit_ApplyTo(t *testing.T) {

	t.Parallel()

	const code = "let x = i as Int"

	replacement := TextEdit{
		Replacement: "i!",
		Range: Range{
			StartPos: Position{Offset: 8},
			EndPos:   Position{Offset: 15},
		},
	}
	assert.Equal(t, "let x = i!", replacement.ApplyTo(code))

	insertion := TextEdit{
		Insertion: "!",
		Range: Range{
			StartPos: Position{Offset: 9},
			EndPos:   Position{Offset: 9},
		},
	}
	assert.Equal(t, "let x = i! as Int", insertion.ApplyTo(code))
}

func TestRange_Source(t *testing.T) {

	t.Parallel()

	code := []byte("let x = i as Int")

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		assert.True(t, EmptyRange.IsEmpty())
		assert.True(t, Range{}.IsEmpty())
	})

	t.Run("single character at start", func(t *testing.T) {
		t.Parallel()

		r := Range{
			StartPos: Position{Offset: 0, Line: 1},
			EndPos:   Position{Offset: 0, Line: 1},
		}
		assert.False(t, r.IsEmpty())
		assert.Equal(t, "l", string(r.Source(code)))
	})

	t.Run("cast", func(t *testing.T) {
		t.Parallel()

		r := NewRange(
			Position{Offset: 8, Line: 1, Column: 8},
			Position{Offset: 15, Line: 1, Column: 15},
		)
		assert.Equal(t, "i as Int", string(r.Source(code)))
	})
}
