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
	"time"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/errors"
)

func (checker *Checker) VisitCastingExpression(expression *ast.CastingExpression) Type {

	tracer := checker.Config.Tracer

	var startTime time.Time
	if tracer.enabled() {
		startTime = time.Now()
	}

	// Visit type annotation

	targetType := checker.ConvertType(expression.TargetType)

	// Visit the expression

	valueExpression := expression.Expression
	valueType := checker.checkExpression(valueExpression)

	_, operandIsCast := valueExpression.(*ast.CastingExpression)

	classification, err := CheckCast(
		CastExpression{
			ValueType:               valueType,
			TargetType:              targetType,
			Operation:               expression.Operation,
			Range:                   ast.NewRangeFromPositioned(expression),
			OperandRange:            ast.NewRangeFromPositioned(valueExpression),
			OperandNeedsParentheses: operandIsCast,
		},
	)
	if err != nil {
		checker.report(err)
	}

	checker.Elaboration.SetCastingExpressionTypes(
		expression,
		CastingExpressionTypes{
			ValueType:      valueType,
			TargetType:     targetType,
			Classification: classification,
		},
	)

	if checker.Config.HintsEnabled &&
		!valueType.IsInvalidType() &&
		!targetType.IsInvalidType() &&
		valueType.Equal(targetType) {

		checker.recordAlwaysSucceedingCastHint(expression, valueType, targetType)
	}

	if tracer.enabled() {
		tracer.reportCastTrace(
			checker,
			valueType.String(),
			targetType.String(),
			classification,
			time.Since(startTime),
		)
	}

	return CastResultType(expression.Operation, targetType)
}

func (checker *Checker) recordAlwaysSucceedingCastHint(
	expression *ast.CastingExpression,
	valueType Type,
	targetType Type,
) {
	castRange := ast.NewRangeFromPositioned(expression)

	switch expression.Operation {
	case ast.OperationCast:
		checker.hint(
			&UnnecessaryCastHint{
				TargetType: targetType,
				Range:      castRange,
			},
		)

	case ast.OperationFailableCast:
		checker.hint(
			&AlwaysSucceedingFailableCastHint{
				ValueType:  valueType,
				TargetType: targetType,
				Range:      castRange,
			},
		)

	case ast.OperationForceCast:
		checker.hint(
			&AlwaysSucceedingForceCastHint{
				ValueType:  valueType,
				TargetType: targetType,
				Range:      castRange,
			},
		)

	default:
		panic(errors.NewUnreachableError())
	}
}
