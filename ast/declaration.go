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

	"github.com/onflow/castcheck/common"
)

type Declaration interface {
	Element
	isDeclaration()
	DeclarationIdentifier() *Identifier
	DeclarationKind() common.DeclarationKind
}

// CompositeDeclaration declares a nominal type, e.g. a class.
// Members of the declaration are not represented.

type CompositeDeclaration struct {
	Kind         common.DeclarationKind
	Identifier   Identifier
	Conformances []*NominalType
	Range
}

var _ Declaration = &CompositeDeclaration{}

func (*CompositeDeclaration) isDeclaration() {}

func (*CompositeDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *CompositeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *CompositeDeclaration) DeclarationKind() common.DeclarationKind {
	return d.Kind
}

func (d *CompositeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias CompositeDeclaration
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "CompositeDeclaration",
		Alias: (*Alias)(d),
	})
}

// Parameter

type Parameter struct {
	// Label is the argument label, or "_" if the argument is unlabeled,
	// or empty if the label is the identifier
	Label          string
	Identifier     Identifier
	TypeAnnotation Type
	StartPos       Position `json:"-"`
}

func (p *Parameter) StartPosition() Position {
	return p.StartPos
}

func (p *Parameter) EndPosition() Position {
	return p.TypeAnnotation.EndPosition()
}

func (p *Parameter) MarshalJSON() ([]byte, error) {
	type Alias Parameter
	return json.Marshal(&struct {
		Range
		*Alias
	}{
		Range: NewRangeFromPositioned(p),
		Alias: (*Alias)(p),
	})
}

type ParameterList struct {
	Parameters []*Parameter
	Range
}

// FunctionDeclaration

type FunctionDeclaration struct {
	Identifier    Identifier
	ParameterList *ParameterList
	ReturnType    Type `json:",omitempty"`
	FunctionBlock *Block
	StartPos      Position `json:"-"`
}

var _ Declaration = &FunctionDeclaration{}
var _ Statement = &FunctionDeclaration{}

func (*FunctionDeclaration) isDeclaration() {}

func (*FunctionDeclaration) isStatement() {}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	if d.FunctionBlock != nil {
		walkChild(d.FunctionBlock)
	}
}

func (d *FunctionDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *FunctionDeclaration) EndPosition() Position {
	if d.FunctionBlock != nil {
		return d.FunctionBlock.EndPosition()
	}
	if d.ReturnType != nil {
		return d.ReturnType.EndPosition()
	}
	if d.ParameterList != nil {
		return d.ParameterList.EndPosition()
	}
	return d.Identifier.EndPosition()
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FunctionDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// VariableDeclaration

type VariableDeclaration struct {
	IsConstant     bool
	Identifier     Identifier
	TypeAnnotation Type `json:",omitempty"`
	Value          Expression
	StartPos       Position `json:"-"`
}

var _ Declaration = &VariableDeclaration{}
var _ Statement = &VariableDeclaration{}

func (*VariableDeclaration) isDeclaration() {}

func (*VariableDeclaration) isStatement() {}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Value)
}

func (d *VariableDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *VariableDeclaration) DeclarationKind() common.DeclarationKind {
	if d.IsConstant {
		return common.DeclarationKindConstant
	}
	return common.DeclarationKindVariable
}

func (d *VariableDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *VariableDeclaration) EndPosition() Position {
	return d.Value.EndPosition()
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "VariableDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
