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

package sema

import (
	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/errors"
)

// CastExpression is an explicit cast, with resolved types.
type CastExpression struct {
	ValueType  Type
	TargetType Type
	Operation  ast.Operation
	// Range is the range of the whole casting expression
	ast.Range
	// OperandRange is the range of the casted expression.
	// It is empty if the cast is not part of a program
	OperandRange ast.Range
	// OperandNeedsParentheses is true if the casted expression
	// must be parenthesized before a postfix operator can be applied
	OperandNeedsParentheses bool
}

// ClassifyCast decides if a cast from the value type to the target type
// only removes optional wrappers.
//
// The cast does not apply if the target type is at least as optional as the value type.
// Otherwise, the cast only unwraps optionals if the non-optional types are structurally equal.
// Arrays and dictionaries are compared component-wise,
// so a change in nesting, like `[[T]]?` to `[T]`, is a narrowing.
func ClassifyCast(valueType, targetType Type) CastClassification {
	valueCore, valueDepth := StripOptionals(valueType)
	targetCore, targetDepth := StripOptionals(targetType)

	if targetDepth >= valueDepth {
		return CastClassificationNotApplicable
	}

	if valueCore.Equal(targetCore) {
		return CastClassificationOnlyUnwrapsOptionals
	}

	return CastClassificationOtherNarrowing
}

// CheckCast classifies the given cast, and returns an error if it only unwraps optionals.
// Casts involving invalid types are not applicable, the invalid type was already reported.
func CheckCast(cast CastExpression) (CastClassification, *OnlyUnwrapsOptionalsError) {
	if cast.ValueType == nil || cast.TargetType == nil {
		panic(errors.NewUnreachableError())
	}

	if cast.ValueType.IsInvalidType() || cast.TargetType.IsInvalidType() {
		return CastClassificationNotApplicable, nil
	}

	classification := ClassifyCast(cast.ValueType, cast.TargetType)
	if classification != CastClassificationOnlyUnwrapsOptionals {
		return classification, nil
	}

	return classification, &OnlyUnwrapsOptionalsError{
		ValueType:               cast.ValueType,
		TargetType:              cast.TargetType,
		UnwrapCount:             requiredUnwrapCount(cast),
		OperandRange:            cast.OperandRange,
		OperandNeedsParentheses: cast.OperandNeedsParentheses,
		Range:                   cast.Range,
	}
}

// requiredUnwrapCount returns the number of force-unwrap operators
// which produce the same result type as the cast.
// A failable cast results in an optional of the target type.
func requiredUnwrapCount(cast CastExpression) int {
	count := OptionalDepth(cast.ValueType) - OptionalDepth(cast.TargetType)
	if cast.Operation == ast.OperationFailableCast {
		count--
	}
	return count
}

// CastResultType returns the type of a casting expression with the given operation.
func CastResultType(operation ast.Operation, targetType Type) Type {
	switch operation {
	case ast.OperationCast, ast.OperationForceCast:
		return targetType

	case ast.OperationFailableCast:
		return NewOptionalType(targetType)
	}

	panic(errors.NewUnreachableError())
}
