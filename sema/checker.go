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

	"github.com/onflow/castcheck/activations"
	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
)

// Checker resolves the types of a program's declarations and expressions,
// and checks its explicit casts.
//
// A checker is not safe for concurrent use.
// Independent programs may be checked concurrently by independent checkers.
type Checker struct {
	Program          *ast.Program
	Location         common.Location
	Config           *Config
	Elaboration      *Elaboration
	valueActivations *VariableActivations
	typeActivations  *VariableActivations
	errors           []error
	hints            []Hint
	isChecked        bool
}

func NewChecker(
	program *ast.Program,
	location common.Location,
	config *Config,
) (*Checker, error) {

	if program == nil {
		return nil, errors.NewDefaultUserError("cannot create checker for nil program")
	}

	if config == nil {
		return nil, errors.NewDefaultUserError("cannot create checker, no config provided")
	}

	typeActivation := BaseTypeActivation
	if len(config.BaseTypes) > 0 {
		typeActivation = activations.NewActivation(BaseTypeActivation)
		for _, name := range config.BaseTypes {
			ty := NewNamedType(name)
			declareBaseVariable(typeActivation, ty.Identifier, ty, common.DeclarationKindType)
		}
	}

	return &Checker{
		Program:          program,
		Location:         location,
		Config:           config,
		Elaboration:      NewElaboration(),
		valueActivations: NewVariableActivations(BaseValueActivation),
		typeActivations:  NewVariableActivations(typeActivation),
	}, nil
}

func (checker *Checker) GetLocation() common.Location {
	return checker.Location
}

func (checker *Checker) report(err error) {
	if err == nil {
		return
	}
	checker.errors = append(checker.errors, err)
}

func (checker *Checker) hint(hint Hint) {
	if !checker.Config.HintsEnabled {
		return
	}
	checker.hints = append(checker.hints, hint)
}

// Hints returns the hints recorded while checking, in source order.
func (checker *Checker) Hints() []Hint {
	return checker.hints
}

// Check checks the program.
// Checking a program a second time returns the result of the first check.
func (checker *Checker) Check() error {
	if !checker.isChecked {
		checker.errors = nil

		tracer := checker.Config.Tracer
		if tracer.enabled() {
			startTime := time.Now()
			checker.CheckProgram(checker.Program)
			tracer.reportCheckTrace(
				checker,
				len(checker.Elaboration.CastingExpressions()),
				len(checker.errors),
				time.Since(startTime),
			)
		} else {
			checker.CheckProgram(checker.Program)
		}

		checker.isChecked = true
	}

	err := checker.CheckerError()
	if err != nil {
		return err
	}
	return nil
}

func (checker *Checker) CheckerError() *CheckerError {
	if len(checker.errors) > 0 {
		return &CheckerError{
			Location: checker.Location,
			Errors:   checker.errors,
		}
	}
	return nil
}

func (checker *Checker) CheckProgram(program *ast.Program) {

	// Declare all nominal types first,
	// so they can be used before their declaration

	compositeDeclarations := program.CompositeDeclarations()

	for _, declaration := range compositeDeclarations {
		checker.declareCompositeType(declaration)
	}

	for _, declaration := range compositeDeclarations {
		checker.checkConformances(declaration)
	}

	// Declare all global functions,
	// so they can be referred to before their declaration

	for _, declaration := range program.FunctionDeclarations() {
		checker.declareFunction(declaration)
	}

	for _, declaration := range program.Declarations() {
		switch declaration := declaration.(type) {
		case *ast.CompositeDeclaration:
			// already declared

		case *ast.FunctionDeclaration:
			checker.checkFunctionDeclaration(declaration)

		case *ast.VariableDeclaration:
			checker.checkVariableDeclaration(declaration)

		default:
			panic(errors.NewUnreachableError())
		}
	}
}

func (checker *Checker) declareCompositeType(declaration *ast.CompositeDeclaration) {
	identifier := declaration.Identifier
	ty := NewNamedType(identifier.Identifier)

	_, err := checker.typeActivations.DeclareType(
		typeDeclaration{
			identifier: ast.Identifier{
				Identifier: ty.Identifier,
				Pos:        identifier.Pos,
			},
			ty:              ty,
			declarationKind: declaration.DeclarationKind(),
		},
	)
	checker.report(err)

	checker.Elaboration.SetCompositeDeclarationType(declaration, ty)
}

func (checker *Checker) checkConformances(declaration *ast.CompositeDeclaration) {
	for _, conformance := range declaration.Conformances {
		checker.ConvertType(conformance)
	}
}

func (checker *Checker) declareFunction(declaration *ast.FunctionDeclaration) {
	identifier := declaration.Identifier

	_, err := checker.valueActivations.Declare(
		variableDeclaration{
			identifier:               identifier.Identifier,
			ty:                       InvalidTypeValue,
			kind:                     common.DeclarationKindFunction,
			pos:                      identifier.Pos,
			isConstant:               true,
			allowOuterScopeShadowing: true,
		},
	)
	checker.report(err)
}
