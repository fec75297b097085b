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

package ast

import (
	"encoding/json"
)

type Program struct {
	declarations []Declaration
	comments     []Comment
}

func NewProgram(declarations []Declaration, comments []Comment) *Program {
	return &Program{
		declarations: declarations,
		comments:     comments,
	}
}

func (p *Program) Declarations() []Declaration {
	return p.declarations
}

// Comments returns all comments of the program, in source order.
func (p *Program) Comments() []Comment {
	return p.comments
}

func (p *Program) CompositeDeclarations() []*CompositeDeclaration {
	return filterDeclarations[*CompositeDeclaration](p.declarations)
}

func (p *Program) FunctionDeclarations() []*FunctionDeclaration {
	return filterDeclarations[*FunctionDeclaration](p.declarations)
}

func (p *Program) VariableDeclarations() []*VariableDeclaration {
	return filterDeclarations[*VariableDeclaration](p.declarations)
}

func filterDeclarations[T Declaration](declarations []Declaration) []T {
	var result []T
	for _, declaration := range declarations {
		if typedDeclaration, ok := declaration.(T); ok {
			result = append(result, typedDeclaration)
		}
	}
	return result
}

func (p *Program) Walk(walkChild func(Element)) {
	for _, declaration := range p.declarations {
		walkChild(declaration)
	}
}

func (p *Program) StartPosition() Position {
	if len(p.declarations) == 0 {
		return EmptyPosition
	}
	return p.declarations[0].StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.declarations)
	if count == 0 {
		return EmptyPosition
	}
	return p.declarations[count-1].EndPosition()
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type         string
		Declarations []Declaration
		Range
	}{
		Type:         "Program",
		Declarations: p.declarations,
		Range:        NewRangeFromPositioned(p),
	})
}
