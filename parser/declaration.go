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

package parser

import (
	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/parser/lexer"
)

func parseDeclarations(p *parser, endTokenType lexer.TokenType) (declarations []ast.Declaration) {
	for {
		switch p.current.Type {
		case lexer.TokenSemicolon:
			p.next()
			continue

		case endTokenType, lexer.TokenEOF:
			return

		default:
			declaration := parseDeclaration(p)
			declarations = append(declarations, declaration)
		}
	}
}

func parseDeclaration(p *parser) ast.Declaration {

	skipModifiers(p)

	if !p.current.Is(lexer.TokenIdentifier) {
		panic(NewSyntaxError(
			p.current.StartPos,
			"unexpected %s, expected declaration",
			p.describeCurrent(),
		))
	}

	switch p.currentTokenSource() {
	case KeywordLet, KeywordVar:
		return parseVariableDeclaration(p)

	case KeywordFunc:
		return parseFunctionDeclaration(p)

	case KeywordClass:
		return parseCompositeDeclaration(p, common.DeclarationKindClass)

	case KeywordStruct:
		return parseCompositeDeclaration(p, common.DeclarationKindStructure)

	case KeywordProtocol:
		return parseCompositeDeclaration(p, common.DeclarationKindProtocol)

	case KeywordEnum:
		return parseCompositeDeclaration(p, common.DeclarationKindEnum)
	}

	panic(NewSyntaxError(
		p.current.StartPos,
		"unexpected %s, expected declaration",
		p.describeCurrent(),
	))
}

func skipModifiers(p *parser) {
	for p.current.Is(lexer.TokenIdentifier) &&
		isModifier(p.currentTokenSource()) &&
		p.peek().Is(lexer.TokenIdentifier) {

		p.next()
	}
}

// parseVariableDeclaration parses a variable declaration.
//
//	variableDeclaration :
//	    ( 'let' | 'var' ) identifier ( ':' type )? '=' expression
func parseVariableDeclaration(p *parser) *ast.VariableDeclaration {

	startToken := p.current
	isConstant := p.currentTokenSource() == KeywordLet
	p.next()

	identifier := p.mustIdentifier()

	var typeAnnotation ast.Type
	if p.current.Is(lexer.TokenColon) {
		p.next()
		typeAnnotation = parseType(p)
	}

	if !p.current.Is(lexer.TokenEqual) {
		panic(NewSyntaxError(
			p.current.StartPos,
			"expected %s, got %s",
			lexer.TokenEqual,
			p.describeCurrent(),
		).WithSecondary("variables must be initialized"))
	}
	p.next()

	value := parseExpression(p)

	return &ast.VariableDeclaration{
		IsConstant:     isConstant,
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Value:          value,
		StartPos:       startToken.StartPos,
	}
}

// parseFunctionDeclaration parses a function declaration.
// The name may be an identifier or an operator.
//
//	functionDeclaration :
//	    'func' ( identifier | operator ) parameterList ( '->' type )? block
func parseFunctionDeclaration(p *parser) *ast.FunctionDeclaration {

	startToken := p.current
	p.next()

	var identifier ast.Identifier
	switch p.current.Type {
	case lexer.TokenOperator:
		identifier = p.tokenToIdentifier(p.current)
		p.next()
	default:
		identifier = p.mustIdentifier()
	}

	parameterList := parseParameterList(p)

	var returnType ast.Type
	if p.current.Is(lexer.TokenRightArrow) {
		p.next()
		returnType = parseType(p)
	}

	block := parseBlock(p)

	return &ast.FunctionDeclaration{
		Identifier:    identifier,
		ParameterList: parameterList,
		ReturnType:    returnType,
		FunctionBlock: block,
		StartPos:      startToken.StartPos,
	}
}

// parseParameterList parses a parameter list.
//
//	parameterList : '(' ( parameter ( ',' parameter )* )? ')'
func parseParameterList(p *parser) *ast.ParameterList {

	startToken := p.mustOne(lexer.TokenParenOpen)

	var parameters []*ast.Parameter

	for !p.current.Is(lexer.TokenParenClose) {
		if len(parameters) > 0 {
			p.mustOne(lexer.TokenComma)
		}
		parameters = append(parameters, parseParameter(p))
	}

	endToken := p.mustOne(lexer.TokenParenClose)

	return &ast.ParameterList{
		Parameters: parameters,
		Range: ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	}
}

// parseParameter parses a parameter.
//
//	parameter : ( argumentLabel )? identifier ':' type
func parseParameter(p *parser) *ast.Parameter {

	startPos := p.current.StartPos

	label := ""
	identifier := p.mustIdentifier()

	if p.current.Is(lexer.TokenIdentifier) {
		label = identifier.Identifier
		identifier = p.mustIdentifier()
	}

	p.mustOne(lexer.TokenColon)

	typeAnnotation := parseType(p)

	return &ast.Parameter{
		Label:          label,
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		StartPos:       startPos,
	}
}

// parseCompositeDeclaration parses a nominal type declaration.
// The members are skipped, they are not needed for checking casts.
//
//	compositeDeclaration :
//	    ( 'class' | 'struct' | 'protocol' | 'enum' ) identifier
//	    ( ':' nominalType ( ',' nominalType )* )?
//	    '{' ... '}'
func parseCompositeDeclaration(p *parser, kind common.DeclarationKind) *ast.CompositeDeclaration {

	startToken := p.current
	p.next()

	identifier := p.mustIdentifier()

	var conformances []*ast.NominalType
	if p.current.Is(lexer.TokenColon) {
		p.next()
		for {
			conformances = append(conformances, parseNominalType(p))
			if !p.current.Is(lexer.TokenComma) {
				break
			}
			p.next()
		}
	}

	endToken := skipBalancedBraces(p)

	return &ast.CompositeDeclaration{
		Kind:         kind,
		Identifier:   identifier,
		Conformances: conformances,
		Range: ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	}
}

// skipBalancedBraces skips a brace-delimited body, including nested bodies,
// and returns the closing brace token.
func skipBalancedBraces(p *parser) lexer.Token {
	startToken := p.mustOne(lexer.TokenBraceOpen)

	depth := 1
	for {
		switch p.current.Type {
		case lexer.TokenEOF:
			panic(NewSyntaxError(
				p.current.StartPos,
				"missing %s to close body starting at %d:%d",
				lexer.TokenBraceClose,
				startToken.StartPos.Line,
				startToken.StartPos.Column,
			))

		case lexer.TokenBraceOpen:
			depth++

		case lexer.TokenBraceClose:
			depth--
			if depth == 0 {
				endToken := p.current
				p.next()
				return endToken
			}
		}

		p.next()
	}
}
