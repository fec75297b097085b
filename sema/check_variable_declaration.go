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
)

func (checker *Checker) checkVariableDeclaration(declaration *ast.VariableDeclaration) {

	// The annotated type, if any, is the type of the variable.
	// Otherwise, the type is inferred from the value.

	var declarationType Type
	if declaration.TypeAnnotation != nil {
		declarationType = checker.ConvertType(declaration.TypeAnnotation)
	}

	// Check the value before declaring the variable,
	// so the value can not refer to the variable

	valueType := checker.checkExpression(declaration.Value)

	if declarationType == nil {
		declarationType = valueType
	}

	checker.Elaboration.SetVariableDeclarationType(declaration, declarationType)

	kind := common.DeclarationKindVariable
	if declaration.IsConstant {
		kind = common.DeclarationKindConstant
	}

	identifier := declaration.Identifier

	_, err := checker.valueActivations.Declare(
		variableDeclaration{
			identifier:               identifier.Identifier,
			ty:                       declarationType,
			kind:                     kind,
			pos:                      identifier.Pos,
			isConstant:               declaration.IsConstant,
			allowOuterScopeShadowing: true,
		},
	)
	checker.report(err)
}
