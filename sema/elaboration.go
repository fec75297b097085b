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
)

type CastingExpressionTypes struct {
	ValueType      Type
	TargetType     Type
	Classification CastClassification
}

// Elaboration records the types the checker determined for the elements of a program.
type Elaboration struct {
	castingExpressionTypes    map[*ast.CastingExpression]CastingExpressionTypes
	variableDeclarationTypes  map[*ast.VariableDeclaration]Type
	compositeDeclarationTypes map[*ast.CompositeDeclaration]*NamedType
	// castingExpressions are the checked casting expressions, in checking order
	castingExpressions []*ast.CastingExpression
}

func NewElaboration() *Elaboration {
	return &Elaboration{
		castingExpressionTypes:    map[*ast.CastingExpression]CastingExpressionTypes{},
		variableDeclarationTypes:  map[*ast.VariableDeclaration]Type{},
		compositeDeclarationTypes: map[*ast.CompositeDeclaration]*NamedType{},
	}
}

func (e *Elaboration) CastingExpressionTypes(expression *ast.CastingExpression) (types CastingExpressionTypes) {
	return e.castingExpressionTypes[expression]
}

func (e *Elaboration) SetCastingExpressionTypes(
	expression *ast.CastingExpression,
	types CastingExpressionTypes,
) {
	if _, ok := e.castingExpressionTypes[expression]; !ok {
		e.castingExpressions = append(e.castingExpressions, expression)
	}
	e.castingExpressionTypes[expression] = types
}

// CastingExpressions returns all checked casting expressions, in checking order.
func (e *Elaboration) CastingExpressions() []*ast.CastingExpression {
	return e.castingExpressions
}

func (e *Elaboration) VariableDeclarationType(declaration *ast.VariableDeclaration) Type {
	return e.variableDeclarationTypes[declaration]
}

func (e *Elaboration) SetVariableDeclarationType(declaration *ast.VariableDeclaration, ty Type) {
	e.variableDeclarationTypes[declaration] = ty
}

func (e *Elaboration) CompositeDeclarationType(declaration *ast.CompositeDeclaration) *NamedType {
	return e.compositeDeclarationTypes[declaration]
}

func (e *Elaboration) SetCompositeDeclarationType(declaration *ast.CompositeDeclaration, ty *NamedType) {
	e.compositeDeclarationTypes[declaration] = ty
}
