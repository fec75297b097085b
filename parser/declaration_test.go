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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
)

const testProgramCode = `
class Base : Hashable {
  var hashValue: Int { return 0 }
}

func ==(lhs: Base, rhs: Base) -> Bool { return false }

func f1(i: Int?, ii: Int??, a: [Base]?, d: [Base : Base]?) {
  let i2 = i as Int // downcast
  let i3 = ii as? Int
  let a2 = a! as! [Base]
  var d2: [Base : Base]? = d
}
`

func TestParseProgram(t *testing.T) {

	t.Parallel()

	program, err := ParseProgram([]byte(testProgramCode), Config{})
	require.NoError(t, err)

	require.Len(t, program.Declarations(), 3)

	composites := program.CompositeDeclarations()
	require.Len(t, composites, 1)

	base := composites[0]
	assert.Equal(t, common.DeclarationKindClass, base.DeclarationKind())
	assert.Equal(t, "Base", base.Identifier.Identifier)
	require.Len(t, base.Conformances, 1)
	assert.Equal(t, "Hashable", base.Conformances[0].Identifier.Identifier)
	assert.Equal(t, 2, base.StartPos.Line)
	assert.Equal(t, 4, base.EndPos.Line)

	functions := program.FunctionDeclarations()
	require.Len(t, functions, 2)

	equal := functions[0]
	assert.Equal(t, "==", equal.Identifier.Identifier)
	require.Len(t, equal.ParameterList.Parameters, 2)
	assert.Equal(t, "lhs", equal.ParameterList.Parameters[0].Identifier.Identifier)
	assert.Equal(t, "Bool", equal.ReturnType.String())

	f1 := functions[1]
	assert.Equal(t, "f1", f1.Identifier.Identifier)
	assert.Nil(t, f1.ReturnType)

	var parameterTypes []string
	for _, parameter := range f1.ParameterList.Parameters {
		parameterTypes = append(parameterTypes, parameter.TypeAnnotation.String())
	}
	assert.Equal(t,
		[]string{"Int?", "Int??", "[Base]?", "[Base : Base]?"},
		parameterTypes,
	)

	statements := f1.FunctionBlock.Statements
	require.Len(t, statements, 4)

	var values []string
	for _, statement := range statements {
		declaration, ok := statement.(*ast.VariableDeclaration)
		require.True(t, ok)
		values = append(values, declaration.Value.String())
	}
	assert.Equal(t,
		[]string{
			"i as Int",
			"ii as? Int",
			"a! as! [Base]",
			"d",
		},
		values,
	)

	last := statements[3].(*ast.VariableDeclaration)
	assert.False(t, last.IsConstant)
	assert.Equal(t, "[Base : Base]?", last.TypeAnnotation.String())

	comments := program.Comments()
	require.Len(t, comments, 1)
	assert.Equal(t, " downcast", string(comments[0].Text()))
}

func TestParseCastPositions(t *testing.T) {

	t.Parallel()

	const code = "let x = y as Int?"

	program, err := ParseProgram([]byte(code), Config{})
	require.NoError(t, err)

	variables := program.VariableDeclarations()
	require.Len(t, variables, 1)

	cast, ok := variables[0].Value.(*ast.CastingExpression)
	require.True(t, ok)

	assert.Equal(t, ast.OperationCast, cast.Operation)
	assert.Equal(t,
		ast.Position{Offset: 8, Line: 1, Column: 8},
		cast.StartPosition(),
	)
	assert.Equal(t,
		ast.Position{Offset: 16, Line: 1, Column: 16},
		cast.EndPosition(),
	)
	assert.Equal(t, "y as Int?", string(ast.NewRangeFromPositioned(cast).Source([]byte(code))))
}

func TestParseParenthesizedExpression(t *testing.T) {

	t.Parallel()

	const code = "let x = (y) as Int"

	program, err := ParseProgram([]byte(code), Config{})
	require.NoError(t, err)

	cast, ok := program.VariableDeclarations()[0].Value.(*ast.CastingExpression)
	require.True(t, ok)

	assert.Equal(t,
		ast.Position{Offset: 8, Line: 1, Column: 8},
		cast.StartPosition(),
	)

	parenthesized, ok := cast.Expression.(*ast.ParenthesizedExpression)
	require.True(t, ok)
	assert.Equal(t, "(y)", string(parenthesized.Source([]byte(code))))
	assert.Equal(t, "(y) as Int", cast.String())

	_, ok = parenthesized.Expression.(*ast.IdentifierExpression)
	assert.True(t, ok)
}

func TestParseChainedCasts(t *testing.T) {

	t.Parallel()

	program, err := ParseProgram([]byte("let x = y as? Int? as! Int"), Config{})
	require.NoError(t, err)

	outer, ok := program.VariableDeclarations()[0].Value.(*ast.CastingExpression)
	require.True(t, ok)
	assert.Equal(t, ast.OperationForceCast, outer.Operation)

	inner, ok := outer.Expression.(*ast.CastingExpression)
	require.True(t, ok)
	assert.Equal(t, ast.OperationFailableCast, inner.Operation)
	assert.Equal(t, "Int?", inner.TargetType.String())
}

func TestParseModifiers(t *testing.T) {

	t.Parallel()

	program, err := ParseProgram(
		[]byte("public final class C {}\nprivate func f() {}"),
		Config{},
	)
	require.NoError(t, err)
	require.Len(t, program.CompositeDeclarations(), 1)
	require.Len(t, program.FunctionDeclarations(), 1)
}

func TestParseProgramErrors(t *testing.T) {

	t.Parallel()

	requireSyntaxError := func(t *testing.T, code string, message string) *SyntaxError {
		t.Helper()

		_, err := ParseProgram([]byte(code), Config{})
		require.Error(t, err)

		parseErr, ok := err.(Error)
		require.True(t, ok)
		require.Len(t, parseErr.Errors, 1)

		var syntaxErr *SyntaxError
		require.ErrorAs(t, parseErr.Errors[0], &syntaxErr)
		assert.Equal(t, message, syntaxErr.Message)
		return syntaxErr
	}

	t.Run("uninitialized variable", func(t *testing.T) {
		t.Parallel()

		err := requireSyntaxError(t, "let x: Int", "expected '=', got EOF")
		assert.Equal(t, "variables must be initialized", err.SecondaryError())
	})

	t.Run("keyword as name", func(t *testing.T) {
		t.Parallel()

		err := requireSyntaxError(t, "let return = 1", "expected identifier, got keyword `return`")
		assert.Equal(t, ast.Position{Offset: 4, Line: 1, Column: 4}, err.Pos)
	})

	t.Run("unterminated body", func(t *testing.T) {
		t.Parallel()

		requireSyntaxError(t, "class C {", "missing '}' to close body starting at 1:8")
	})

	t.Run("lexer error", func(t *testing.T) {
		t.Parallel()

		requireSyntaxError(t, "let x = $", "unrecognized character: U+0024 '$'")
	})

	t.Run("missing expression", func(t *testing.T) {
		t.Parallel()

		requireSyntaxError(t, "let x = as Int", "expected identifier, got keyword `as`")
	})

	t.Run("error message", func(t *testing.T) {
		t.Parallel()

		_, err := ParseProgram([]byte("let x: Int"), Config{})
		require.Error(t, err)
		assert.Equal(t,
			"Parsing failed:\n"+
				"error: expected '=', got EOF\n"+
				" --> 1:10\n"+
				"  |\n"+
				"1 | let x: Int\n"+
				"  |           ^ variables must be initialized\n",
			err.Error(),
		)
	})
}
