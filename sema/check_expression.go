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
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
)

// checkExpression checks the given expression and returns its type.
// The type is invalid if the expression could not be checked.
func (checker *Checker) checkExpression(expression ast.Expression) Type {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		return checker.VisitIdentifierExpression(expression)

	case *ast.IntegerExpression:
		return IntType

	case *ast.ForceExpression:
		return checker.VisitForceExpression(expression)

	case *ast.ParenthesizedExpression:
		return checker.checkExpression(expression.Expression)

	case *ast.CastingExpression:
		return checker.VisitCastingExpression(expression)
	}

	panic(errors.NewUnreachableError())
}

func (checker *Checker) VisitIdentifierExpression(expression *ast.IdentifierExpression) Type {
	identifier := expression.Identifier

	variable := checker.valueActivations.Find(identifier.Identifier)
	if variable == nil {
		checker.report(
			&NotDeclaredError{
				ExpectedKind: common.DeclarationKindVariable,
				Name:         identifier.Identifier,
				Pos:          identifier.Pos,
				Candidates:   checker.valueActivations.Names(),
			},
		)
		return InvalidTypeValue
	}

	return variable.Type
}

// VisitForceExpression returns the type of the force-unwrapped value.
// Force-unwrapping a non-optional value is a no-op.
func (checker *Checker) VisitForceExpression(expression *ast.ForceExpression) Type {
	valueType := checker.checkExpression(expression.Expression)

	optionalType, ok := valueType.(*OptionalType)
	if !ok {
		return valueType
	}

	return optionalType.Type
}
