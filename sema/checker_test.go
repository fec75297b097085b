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

package sema_test

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/parser"
	. "github.com/onflow/castcheck/sema"
	. "github.com/onflow/castcheck/test_utils/common_utils"
)

type ParseAndCheckOptions struct {
	Config *Config
}

func ParseAndCheck(t testing.TB, code string) (*Checker, error) {
	return ParseAndCheckWithOptions(t, code, ParseAndCheckOptions{})
}

func ParseAndCheckWithOptions(
	t testing.TB,
	code string,
	options ParseAndCheckOptions,
) (*Checker, error) {
	t.Helper()

	program, err := parser.ParseProgram([]byte(code), parser.Config{})
	require.NoError(t, err)

	config := options.Config
	if config == nil {
		config = &Config{}
	}

	checker, err := NewChecker(program, TestLocation, config)
	require.NoError(t, err)

	err = checker.Check()
	return checker, err
}

const optionalDowncastCode = `
class Base : Hashable {
  var hashValue: Int { return 0 }
}

func ==(lhs: Base, rhs: Base) -> Bool { return false }

// Inputs that are more optional than the output.
func f1(i: Int?, ii: Int??, a: [Base]?, d: [Base : Base]?) {
  let i2 = i as Int
  let i3 = ii as Int
  let a2 = a as [Base]
  let d2 = d as [Base : Base]
}
`

func TestCheckOptionalDowncasts(t *testing.T) {

	t.Parallel()

	_, err := ParseAndCheck(t, optionalDowncastCode)

	errs := RequireCheckerErrors(t, err, 4)

	expected := []struct {
		message string
		line    int
		fix     string
	}{
		{"downcast from 'Int?' to 'Int' only unwraps optionals", 10, "i!"},
		{"downcast from 'Int??' to 'Int' only unwraps optionals", 11, "ii!!"},
		{"downcast from '[Base]?' to '[Base]' only unwraps optionals", 12, "a!"},
		{"downcast from '[Base : Base]?' to '[Base : Base]' only unwraps optionals", 13, "d!"},
	}

	for i, expected := range expected {
		var castErr *OnlyUnwrapsOptionalsError
		require.ErrorAs(t, errs[i], &castErr)

		assert.Equal(t, expected.message, castErr.Error())
		assert.Equal(t, expected.line, castErr.StartPosition().Line)
		assert.Equal(t, 11, castErr.StartPosition().Column)
		assert.Equal(t, 11, castErr.OperandRange.StartPos.Column)

		fixes := castErr.SuggestFixes(optionalDowncastCode)
		require.Len(t, fixes, 1)
		require.Len(t, fixes[0].TextEdits, 1)
		assert.Equal(t, expected.fix, fixes[0].TextEdits[0].Replacement)
	}
}

func TestCheckOptionalDowncastFixApplies(t *testing.T) {

	t.Parallel()

	const code = `
      func test(ii: Int??) {
          let x = ii as Int
      }
    `

	_, err := ParseAndCheck(t, code)
	errs := RequireCheckerErrors(t, err, 1)

	var castErr *OnlyUnwrapsOptionalsError
	require.ErrorAs(t, errs[0], &castErr)

	fixes := castErr.SuggestFixes(code)
	require.Len(t, fixes, 1)

	fixed := fixes[0].TextEdits[0].ApplyTo(code)
	assert.Contains(t, fixed, "let x = ii!!\n")

	_, err = ParseAndCheck(t, fixed)
	require.NoError(t, err)
}

func TestCheckParenthesizedOperand(t *testing.T) {

	t.Parallel()

	t.Run("fix keeps parentheses", func(t *testing.T) {
		t.Parallel()

		const code = "func test(i: Int?) {\n  let x = (i) as Int\n}\n"

		_, err := ParseAndCheck(t, code)
		errs := RequireCheckerErrors(t, err, 1)

		var castErr *OnlyUnwrapsOptionalsError
		require.ErrorAs(t, errs[0], &castErr)
		assert.Equal(t, 2, castErr.StartPosition().Line)
		assert.Equal(t, 10, castErr.StartPosition().Column)

		fixes := castErr.SuggestFixes(code)
		require.Len(t, fixes, 1)

		fixed := fixes[0].TextEdits[0].ApplyTo(code)
		assert.Equal(t, "func test(i: Int?) {\n  let x = (i)!\n}\n", fixed)

		_, err = ParseAndCheck(t, fixed)
		require.NoError(t, err)
	})

	t.Run("parenthesized cast", func(t *testing.T) {
		t.Parallel()

		const code = "func test(ii: Int??) {\n  let x = (ii as Int?) as Int\n}\n"

		_, err := ParseAndCheck(t, code)
		errs := RequireCheckerErrors(t, err, 2)

		var outer *OnlyUnwrapsOptionalsError
		require.ErrorAs(t, errs[1], &outer)
		assert.False(t, outer.OperandNeedsParentheses)

		fixes := outer.SuggestFixes(code)
		require.Len(t, fixes, 1)
		assert.Equal(t, "(ii as Int?)!", fixes[0].TextEdits[0].Replacement)

		fixed := fixes[0].TextEdits[0].ApplyTo(code)
		_, err = ParseAndCheck(t, fixed)
		errs = RequireCheckerErrors(t, err, 1)
		assert.Equal(t,
			"downcast from 'Int??' to 'Int?' only unwraps optionals",
			errs[0].Error(),
		)
	})
}

func TestCheckCastOperations(t *testing.T) {

	t.Parallel()

	t.Run("failable cast", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          func test(i: Int?, ii: Int??) {
              let x = i as? Int
              let y = ii as? Int
          }
        `)

		errs := RequireCheckerErrors(t, err, 2)

		var first *OnlyUnwrapsOptionalsError
		require.ErrorAs(t, errs[0], &first)
		assert.Equal(t, 0, first.UnwrapCount)
		assert.Equal(t, "consider removing the cast", first.SecondaryError())

		var second *OnlyUnwrapsOptionalsError
		require.ErrorAs(t, errs[1], &second)
		assert.Equal(t, 1, second.UnwrapCount)
	})

	t.Run("force cast", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          func test(a: [Int]?) {
              let x = a as! [Int]
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var castErr *OnlyUnwrapsOptionalsError
		require.ErrorAs(t, errs[0], &castErr)
		assert.Equal(t, 1, castErr.UnwrapCount)
	})

	t.Run("narrowing", func(t *testing.T) {
		t.Parallel()

		checker, err := ParseAndCheck(t, `
          class Animal {}
          class Dog : Animal {}

          func test(a: Animal?) {
              let d = a as Dog
          }
        `)
		require.NoError(t, err)

		casts := checker.Elaboration.CastingExpressions()
		require.Len(t, casts, 1)
		assert.Equal(t,
			CastClassificationOtherNarrowing,
			checker.Elaboration.CastingExpressionTypes(casts[0]).Classification,
		)
	})

	t.Run("not more optional", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          func test(i: Int, j: Int?) {
              let x = i as Int?
              let y = j as Int?
              let z = 1 as Int
          }
        `)
		require.NoError(t, err)
	})
}

func TestCheckForceExpression(t *testing.T) {

	t.Parallel()

	_, err := ParseAndCheck(t, `
      func test(ii: Int??, i: Int) {
          let x = ii! as Int
          let y = ii!! as Int
          let z = i! as Int
      }
    `)

	errs := RequireCheckerErrors(t, err, 1)

	var castErr *OnlyUnwrapsOptionalsError
	require.ErrorAs(t, errs[0], &castErr)
	assert.Equal(t, "downcast from 'Int?' to 'Int' only unwraps optionals", castErr.Error())
	assert.Equal(t, 3, castErr.StartPosition().Line)
}

func TestCheckChainedCasts(t *testing.T) {

	t.Parallel()

	const code = `
      func test(ii: Int??) {
          let x = ii as Int? as Int
      }
    `

	_, err := ParseAndCheck(t, code)

	errs := RequireCheckerErrors(t, err, 2)

	var inner *OnlyUnwrapsOptionalsError
	require.ErrorAs(t, errs[0], &inner)
	assert.Equal(t, "downcast from 'Int??' to 'Int?' only unwraps optionals", inner.Error())
	assert.Equal(t, "ii!", inner.SuggestFixes(code)[0].TextEdits[0].Replacement)

	var outer *OnlyUnwrapsOptionalsError
	require.ErrorAs(t, errs[1], &outer)
	assert.Equal(t, "downcast from 'Int?' to 'Int' only unwraps optionals", outer.Error())
	assert.True(t, outer.OperandNeedsParentheses)
	assert.Equal(t, "(ii as Int?)!", outer.SuggestFixes(code)[0].TextEdits[0].Replacement)
}

func TestCheckNotDeclared(t *testing.T) {

	t.Parallel()

	t.Run("type, with suggestion", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          func test(i: Itn?) {}
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var notDeclaredErr *NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		assert.Equal(t, "cannot find type in this scope: `Itn`", notDeclaredErr.Error())
		assert.Equal(t,
			"not found in this scope; did you mean `Int`?",
			notDeclaredErr.SecondaryError(),
		)

		fixes := notDeclaredErr.SuggestFixes("")
		require.Len(t, fixes, 1)
		assert.Equal(t, "Int", fixes[0].TextEdits[0].Replacement)
	})

	t.Run("variable, without suggestion", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          func test() {
              let x = zzzzzzzzzz as Int
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var notDeclaredErr *NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		assert.Equal(t, "cannot find variable in this scope: `zzzzzzzzzz`", notDeclaredErr.Error())
		assert.Equal(t, "not found in this scope", notDeclaredErr.SecondaryError())
		assert.Empty(t, notDeclaredErr.SuggestFixes(""))
	})

	t.Run("invalid operand is not reported as downcast", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          func test(i: Unknown?) {
              let x = i as Int
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &NotDeclaredError{}, errs[0])
	})

	t.Run("nested type", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          class Outer {}

          func test(i: Outer.Inner?) {
              let x = i as Outer.Inner
          }
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var castErr *OnlyUnwrapsOptionalsError
		require.ErrorAs(t, errs[0], &castErr)
		assert.Equal(t,
			"downcast from 'Outer.Inner?' to 'Outer.Inner' only unwraps optionals",
			castErr.Error(),
		)
	})
}

func TestCheckRedeclaration(t *testing.T) {

	t.Parallel()

	t.Run("composite", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct A {}
          struct A {}
        `)

		errs := RequireCheckerErrors(t, err, 1)

		var redeclarationErr *RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t,
			"cannot redeclare structure: `A` is already declared",
			redeclarationErr.Error(),
		)

		notes := redeclarationErr.ErrorNotes()
		require.Len(t, notes, 1)
		assert.Equal(t, "previously declared here", notes[0].Message())
	})

	t.Run("parameter", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          func test(x: Int, x: Int) {}
        `)

		errs := RequireCheckerErrors(t, err, 1)
		assert.Equal(t,
			"cannot redeclare parameter: `x` is already declared",
			errs[0].Error(),
		)
	})

	t.Run("global constant", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          let v = 1
          let v = 2
        `)

		errs := RequireCheckerErrors(t, err, 1)
		assert.Equal(t,
			"cannot redeclare constant: `v` is already declared",
			errs[0].Error(),
		)
	})

	t.Run("function overload", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          class A {}
          class B {}

          func ==(lhs: A, rhs: A) -> Bool { return false }
          func ==(lhs: B, rhs: B) -> Bool { return false }
        `)
		require.NoError(t, err)
	})

	t.Run("shadowing base type", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndCheck(t, `
          struct Int {}
          let true = 1
        `)
		require.NoError(t, err)
	})
}

func TestCheckParameterShadowing(t *testing.T) {

	t.Parallel()

	checker, err := ParseAndCheck(t, `
      let i = 1

      func test(i: Int?) {
          let i = i as Int
      }
    `)

	errs := RequireCheckerErrors(t, err, 1)

	var castErr *OnlyUnwrapsOptionalsError
	require.ErrorAs(t, errs[0], &castErr)
	assert.Equal(t, "downcast from 'Int?' to 'Int' only unwraps optionals", castErr.Error())

	program := checker.Program
	global := program.VariableDeclarations()[0]
	assert.Equal(t, IntType, checker.Elaboration.VariableDeclarationType(global))
}

func TestCheckHints(t *testing.T) {

	t.Parallel()

	const code = `
      func test(i: Int, a: [Int]) {
          let x = i as Int
          let y = i as? Int
          let z = a as! [Int]
      }
    `

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()

		checker, err := ParseAndCheckWithOptions(t, code,
			ParseAndCheckOptions{
				Config: &Config{
					HintsEnabled: true,
				},
			},
		)
		require.NoError(t, err)

		hints := checker.Hints()
		require.Len(t, hints, 3)

		require.IsType(t, &UnnecessaryCastHint{}, hints[0])
		assert.Equal(t, "cast to `Int` is redundant", hints[0].Hint())

		require.IsType(t, &AlwaysSucceedingFailableCastHint{}, hints[1])
		assert.Equal(t,
			"failable cast ('as?') from `Int` to `Int` always succeeds",
			hints[1].Hint(),
		)

		require.IsType(t, &AlwaysSucceedingForceCastHint{}, hints[2])
		assert.Equal(t,
			"force cast ('as!') from `[Int]` to `[Int]` always succeeds",
			hints[2].Hint(),
		)

		assert.Equal(t, 3, hints[0].StartPosition().Line)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		checker, err := ParseAndCheck(t, code)
		require.NoError(t, err)
		assert.Empty(t, checker.Hints())
	})
}

func TestCheckTracing(t *testing.T) {

	t.Parallel()

	var operations []string
	var castAttributes [][]attribute.KeyValue

	config := &Config{
		Tracer: Tracer{
			TracingEnabled: true,
			OnRecordTrace: func(
				checker Traceable,
				operationName string,
				_ time.Duration,
				attrs []attribute.KeyValue,
			) {
				assert.Equal(t, TestLocation, checker.GetLocation())
				operations = append(operations, operationName)
				if operationName == "cast" {
					castAttributes = append(castAttributes, attrs)
				}
			},
		},
	}

	_, err := ParseAndCheckWithOptions(t, `
      func test(ii: Int??) {
          let x = ii as Int? as Int
      }
    `,
		ParseAndCheckOptions{
			Config: config,
		},
	)
	RequireCheckerErrors(t, err, 2)

	assert.Equal(t, []string{"cast", "cast", "check"}, operations)

	require.Len(t, castAttributes, 2)
	assert.Equal(t,
		[]attribute.KeyValue{
			attribute.String("value type", "Int??"),
			attribute.String("target type", "Int?"),
			attribute.String("classification", "only unwraps optionals"),
		},
		castAttributes[0],
	)
}

func TestCheckElaboration(t *testing.T) {

	t.Parallel()

	checker, err := ParseAndCheck(t, `
      class Base {}

      let b: Base? = 1
      let c = b as? Base
    `)

	errs := RequireCheckerErrors(t, err, 1)

	var castErr *OnlyUnwrapsOptionalsError
	require.ErrorAs(t, errs[0], &castErr)
	assert.Equal(t, 0, castErr.UnwrapCount)

	program := checker.Program

	composite := program.CompositeDeclarations()[0]
	assert.Equal(t,
		NewNamedType("Base"),
		checker.Elaboration.CompositeDeclarationType(composite),
	)

	variables := program.VariableDeclarations()
	require.Len(t, variables, 2)

	assert.Equal(t,
		NewOptionalType(NewNamedType("Base")),
		checker.Elaboration.VariableDeclarationType(variables[0]),
	)
	assert.Equal(t,
		NewOptionalType(NewNamedType("Base")),
		checker.Elaboration.VariableDeclarationType(variables[1]),
	)

	casts := checker.Elaboration.CastingExpressions()
	require.Len(t, casts, 1)

	types := checker.Elaboration.CastingExpressionTypes(casts[0])
	assert.Equal(t, CastClassificationOnlyUnwrapsOptionals, types.Classification)
	assert.Equal(t, "Base?", types.ValueType.String())
	assert.Equal(t, "Base", types.TargetType.String())
}

func TestCheckCheckerErrorMessage(t *testing.T) {

	t.Parallel()

	const code = "let x: Int? = 1\nlet y = x as Int"

	_, err := ParseAndCheck(t, code)
	RequireCheckerErrors(t, err, 1)

	var checkerErr *CheckerError
	require.ErrorAs(t, err, &checkerErr)

	checkerErr.Codes = map[common.Location][]byte{
		TestLocation: []byte(code),
	}

	assert.Equal(t,
		"Checking failed:\n"+
			"error: downcast from 'Int?' to 'Int' only unwraps optionals\n"+
			" --> test:2:8\n"+
			"  |\n"+
			"2 | let y = x as Int\n"+
			"  |         ^^^^^^^^ consider force-unwrapping with `!`, or unwrapping with optional binding\n",
		checkerErr.Error(),
	)

	assert.True(t, errors.IsUserError(err))
	assert.Equal(t, TestLocation, checkerErr.ImportLocation())
}

func TestCheckTwice(t *testing.T) {

	t.Parallel()

	checker, err := ParseAndCheck(t, `
      func test(i: Int?) {
          let x = i as Int
      }
    `)
	RequireCheckerErrors(t, err, 1)

	err = checker.Check()
	RequireCheckerErrors(t, err, 1)
	assert.Len(t, checker.Elaboration.CastingExpressions(), 1)
}

func TestNewCheckerErrors(t *testing.T) {

	t.Parallel()

	_, err := NewChecker(nil, TestLocation, &Config{})
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))

	program, err := parser.ParseProgram([]byte("let x = 1"), parser.Config{})
	require.NoError(t, err)

	_, err = NewChecker(program, TestLocation, nil)
	require.Error(t, err)
	assert.Equal(t, "cannot create checker, no config provided", err.Error())
}

func TestCheckConfigBaseTypes(t *testing.T) {

	t.Parallel()

	_, err := ParseAndCheckWithOptions(t, `
      func test(a: Animal?) {
          let d = a as Animal
      }
    `,
		ParseAndCheckOptions{
			Config: &Config{
				BaseTypes: []string{"Animal"},
			},
		},
	)

	errs := RequireCheckerErrors(t, err, 1)
	require.IsType(t, &OnlyUnwrapsOptionalsError{}, errs[0])
}

func TestConvertTypeProperties(t *testing.T) {

	t.Parallel()

	names := []string{"Int", "String", "Base", "Animal", "Dog"}

	build := func(seed []uint8) string {
		var sb strings.Builder
		var write func(depth int)
		write = func(depth int) {
			if len(seed) == 0 || depth > 4 {
				sb.WriteString("Int")
				return
			}
			b := seed[0]
			seed = seed[1:]
			switch b % 4 {
			case 0:
				sb.WriteString(names[int(b/4)%len(names)])
			case 1:
				write(depth + 1)
				sb.WriteString("?")
			case 2:
				sb.WriteString("[")
				write(depth + 1)
				sb.WriteString("]")
			default:
				sb.WriteString("[")
				write(depth + 1)
				sb.WriteString(" : ")
				write(depth + 1)
				sb.WriteString("]")
			}
		}
		write(0)
		return sb.String()
	}

	config := &Config{
		BaseTypes: []string{"Base", "Animal", "Dog"},
	}

	properties := gopter.NewProperties(nil)

	properties.Property("parsed and converted types render as written", prop.ForAll(
		func(seed []uint8) bool {
			typeString := build(seed)

			code := "func test(x: " + typeString + ") {}"
			program, err := parser.ParseProgram([]byte(code), parser.Config{})
			if err != nil {
				return false
			}

			checker, err := NewChecker(program, TestLocation, config)
			if err != nil {
				return false
			}

			parameter := program.FunctionDeclarations()[0].ParameterList.Parameters[0]
			ty := checker.ConvertType(parameter.TypeAnnotation)

			return ty.String() == typeString &&
				parameter.TypeAnnotation.String() == typeString
		},
		gen.SliceOfN(12, gen.UInt8()),
	))

	properties.TestingRun(t)
}
