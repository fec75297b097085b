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

func (checker *Checker) checkFunctionDeclaration(declaration *ast.FunctionDeclaration) {

	checker.valueActivations.Enter()
	defer checker.valueActivations.Leave()

	checker.declareParameters(declaration.ParameterList)

	if declaration.ReturnType != nil {
		checker.ConvertType(declaration.ReturnType)
	}

	if declaration.FunctionBlock != nil {
		checker.checkBlock(declaration.FunctionBlock)
	}
}

func (checker *Checker) checkBlock(block *ast.Block) {
	checker.valueActivations.Enter()
	defer checker.valueActivations.Leave()

	checker.checkStatements(block.Statements)
}

func (checker *Checker) declareParameters(parameterList *ast.ParameterList) {
	if parameterList == nil {
		return
	}

	for _, parameter := range parameterList.Parameters {
		identifier := parameter.Identifier

		ty := checker.ConvertType(parameter.TypeAnnotation)

		_, err := checker.valueActivations.Declare(
			variableDeclaration{
				identifier: identifier.Identifier,
				ty:         ty,
				kind:       common.DeclarationKindParameter,
				pos:        identifier.Pos,
				isConstant: true,
				// parameters shadow global declarations,
				// but not other parameters
				allowOuterScopeShadowing: true,
			},
		)
		checker.report(err)
	}
}

func (checker *Checker) checkStatements(statements []ast.Statement) {
	for _, statement := range statements {
		checker.checkStatement(statement)
	}
}

func (checker *Checker) checkStatement(statement ast.Statement) {
	switch statement := statement.(type) {
	case *ast.VariableDeclaration:
		checker.checkVariableDeclaration(statement)

	case *ast.FunctionDeclaration:
		checker.declareFunction(statement)
		checker.checkFunctionDeclaration(statement)

	case *ast.ReturnStatement:
		if statement.Expression != nil {
			checker.checkExpression(statement.Expression)
		}

	case *ast.ExpressionStatement:
		checker.checkExpression(statement.Expression)

	default:
		panic(errors.NewUnreachableError())
	}
}
