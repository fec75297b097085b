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
	"github.com/onflow/castcheck/activations"
	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
)

type VariableActivations struct {
	activations *activations.Activations[*Variable]
}

func NewVariableActivations(parent *activations.Activation[*Variable]) *VariableActivations {
	return &VariableActivations{
		activations: activations.NewActivations(parent),
	}
}

func (a *VariableActivations) Enter() {
	a.activations.PushNewWithCurrent()
}

func (a *VariableActivations) Leave() {
	a.activations.Pop()
}

func (a *VariableActivations) Find(name string) *Variable {
	return a.activations.Find(name)
}

// Names returns the sorted names of all variables visible in the current scope
func (a *VariableActivations) Names() []string {
	current := a.activations.Current()
	if current == nil {
		return nil
	}
	return current.Names()
}

func (a *VariableActivations) Depth() int {
	return a.activations.Depth()
}

type variableDeclaration struct {
	ty                       Type
	identifier               string
	pos                      ast.Position
	kind                     common.DeclarationKind
	isConstant               bool
	allowOuterScopeShadowing bool
}

func (a *VariableActivations) Declare(declaration variableDeclaration) (variable *Variable, err error) {

	depth := a.activations.Depth()

	// Check if a variable with this name is already declared.
	// Report an error if shadowing variables of outer scopes is not allowed,
	// or the existing variable is declared in the current scope.
	// Functions may be overloaded.

	existingVariable := a.Find(declaration.identifier)
	if existingVariable != nil &&
		!existingVariable.IsBaseValue &&
		(!declaration.allowOuterScopeShadowing ||
			existingVariable.ActivationDepth == depth) &&
		!isOverload(existingVariable, declaration) {

		err = &RedeclarationError{
			Kind:        declaration.kind,
			Name:        declaration.identifier,
			Pos:         declaration.pos,
			PreviousPos: existingVariable.Pos,
		}

		// NOTE: Don't return if there is an error,
		// still declare the variable and return it
	}

	pos := declaration.pos

	variable = &Variable{
		Identifier:      declaration.identifier,
		DeclarationKind: declaration.kind,
		IsConstant:      declaration.isConstant,
		ActivationDepth: depth,
		Type:            declaration.ty,
		Pos:             &pos,
	}
	a.activations.Set(declaration.identifier, variable)
	return variable, err
}

func isOverload(existingVariable *Variable, declaration variableDeclaration) bool {
	return existingVariable.DeclarationKind == common.DeclarationKindFunction &&
		declaration.kind == common.DeclarationKindFunction
}

type typeDeclaration struct {
	ty                       Type
	identifier               ast.Identifier
	declarationKind          common.DeclarationKind
	allowOuterScopeShadowing bool
}

func (a *VariableActivations) DeclareType(declaration typeDeclaration) (*Variable, error) {
	return a.Declare(
		variableDeclaration{
			identifier:               declaration.identifier.Identifier,
			ty:                       declaration.ty,
			kind:                     declaration.declarationKind,
			pos:                      declaration.identifier.Pos,
			isConstant:               true,
			allowOuterScopeShadowing: declaration.allowOuterScopeShadowing,
		},
	)
}
