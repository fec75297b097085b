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
	"math/big"

	"github.com/turbolent/prettier"
)

// Expression

type Expression interface {
	Element
	Doc() prettier.Doc
	String() string
	isExpression()
	precedence() precedence
}

// Element is any node of the syntax tree.
type Element interface {
	HasPosition
	Walk(walkChild func(Element))
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) String() string {
	return e.Identifier.Identifier
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		*Alias
		Range
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*IdentifierExpression) precedence() precedence {
	return precedenceLiteral
}

// IntegerExpression

type IntegerExpression struct {
	PositiveLiteral string
	Value           *big.Int `json:"Value"`
	Range
}

var _ Expression = &IntegerExpression{}

func (*IntegerExpression) isExpression() {}

func (*IntegerExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IntegerExpression) String() string {
	return e.PositiveLiteral
}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(e.PositiveLiteral)
}

func (e *IntegerExpression) MarshalJSON() ([]byte, error) {
	type Alias IntegerExpression
	return json.Marshal(&struct {
		Type  string
		Value string
		*Alias
	}{
		Type:  "IntegerExpression",
		Value: e.Value.String(),
		Alias: (*Alias)(e),
	})
}

func (*IntegerExpression) precedence() precedence {
	return precedenceLiteral
}

// CastingExpression

type CastingExpression struct {
	Expression Expression
	Operation  Operation
	TargetType Type
}

var _ Expression = &CastingExpression{}

func (*CastingExpression) isExpression() {}

func (e *CastingExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *CastingExpression) String() string {
	return Prettier(e)
}

func (e *CastingExpression) Doc() prettier.Doc {
	doc := parenthesizedExpressionDoc(
		e.Expression,
		e.precedence(),
	)

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Group{
				Doc: doc,
			},
			prettier.Line{},
			prettier.Text(e.Operation.Symbol()),
			prettier.Line{},
			e.TargetType.Doc(),
		},
	}
}

func (e *CastingExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *CastingExpression) EndPosition() Position {
	return e.TargetType.EndPosition()
}

func (e *CastingExpression) MarshalJSON() ([]byte, error) {
	type Alias CastingExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "CastingExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*CastingExpression) precedence() precedence {
	return precedenceCasting
}

// precedence

type precedence uint

const (
	precedenceUnknown precedence = iota
	precedenceCasting
	precedencePostfix
	precedenceLiteral
)

var openParenthesisDoc prettier.Doc = prettier.Text("(")
var closeParenthesisDoc prettier.Doc = prettier.Text(")")

// parenthesizedExpressionDoc wraps the document of the expression in parentheses,
// if the expression binds weaker than the parent
func parenthesizedExpressionDoc(e Expression, parentPrecedence precedence) prettier.Doc {
	doc := e.Doc()
	if e.precedence() >= parentPrecedence {
		return doc
	}
	return prettier.Concat{
		openParenthesisDoc,
		doc,
		closeParenthesisDoc,
	}
}

// ForceExpression

type ForceExpression struct {
	Expression Expression
	EndPos     Position `json:"-"`
}

var _ Expression = &ForceExpression{}

func (*ForceExpression) isExpression() {}

func (e *ForceExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *ForceExpression) String() string {
	return Prettier(e)
}

var forceExpressionSymbolDoc prettier.Doc = prettier.Text("!")

func (e *ForceExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedExpressionDoc(
			e.Expression,
			e.precedence(),
		),
		forceExpressionSymbolDoc,
	}
}

func (e *ForceExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *ForceExpression) EndPosition() Position {
	return e.EndPos
}

func (e *ForceExpression) MarshalJSON() ([]byte, error) {
	type Alias ForceExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ForceExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*ForceExpression) precedence() precedence {
	return precedencePostfix
}

// ParenthesizedExpression

type ParenthesizedExpression struct {
	Expression Expression
	Range
}

var _ Expression = &ParenthesizedExpression{}

func (*ParenthesizedExpression) isExpression() {}

func (e *ParenthesizedExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *ParenthesizedExpression) String() string {
	return Prettier(e)
}

func (e *ParenthesizedExpression) Doc() prettier.Doc {
	return prettier.Concat{
		openParenthesisDoc,
		e.Expression.Doc(),
		closeParenthesisDoc,
	}
}

func (e *ParenthesizedExpression) MarshalJSON() ([]byte, error) {
	type Alias ParenthesizedExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ParenthesizedExpression",
		Alias: (*Alias)(e),
	})
}

func (*ParenthesizedExpression) precedence() precedence {
	return precedenceLiteral
}
