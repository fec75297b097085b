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
	"math/big"
	"strings"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/parser/lexer"
)

// parseExpression parses an expression.
//
//	expression : postfixExpression ( castingOperator type )*
//	castingOperator : 'as' | 'as?' | 'as!'
func parseExpression(p *parser) ast.Expression {
	left := parsePostfixExpression(p)

	for {
		operation, ok := castingOperation(p)
		if !ok {
			return left
		}
		p.next()

		targetType := parseType(p)

		left = &ast.CastingExpression{
			Expression: left,
			Operation:  operation,
			TargetType: targetType,
		}
	}
}

func castingOperation(p *parser) (ast.Operation, bool) {
	if !p.current.Is(lexer.TokenIdentifier) {
		return ast.OperationUnknown, false
	}

	switch p.currentTokenSource() {
	case KeywordAs:
		return ast.OperationCast, true
	case KeywordAsOptional:
		return ast.OperationFailableCast, true
	case KeywordAsForce:
		return ast.OperationForceCast, true
	}

	return ast.OperationUnknown, false
}

// parsePostfixExpression parses a primary expression,
// followed by optional force-unwrap operators.
//
//	postfixExpression : primaryExpression ( '!' )*
func parsePostfixExpression(p *parser) ast.Expression {
	expression := parsePrimaryExpression(p)

	for p.current.Is(lexer.TokenExclamationMark) {
		expression = &ast.ForceExpression{
			Expression: expression,
			EndPos:     p.current.EndPos,
		}
		p.next()
	}

	return expression
}

func parsePrimaryExpression(p *parser) ast.Expression {
	token := p.current

	switch token.Type {
	case lexer.TokenIdentifier:
		identifier := p.mustIdentifier()
		return &ast.IdentifierExpression{
			Identifier: identifier,
		}

	case lexer.TokenDecimalIntegerLiteral:
		p.next()
		return parseIntegerLiteral(p, token)

	case lexer.TokenParenOpen:
		p.next()
		expression := parseExpression(p)
		endToken := p.mustOne(lexer.TokenParenClose)
		return &ast.ParenthesizedExpression{
			Expression: expression,
			Range: ast.NewRange(
				token.StartPos,
				endToken.EndPos,
			),
		}
	}

	panic(NewSyntaxError(
		token.StartPos,
		"unexpected %s, expected expression",
		p.describeCurrent(),
	))
}

func parseIntegerLiteral(p *parser, token lexer.Token) *ast.IntegerExpression {
	literal := string(p.tokenSource(token))

	value, ok := new(big.Int).SetString(
		strings.ReplaceAll(literal, "_", ""),
		10,
	)
	if !ok {
		panic(NewSyntaxError(
			token.StartPos,
			"invalid integer literal `%s`",
			literal,
		))
	}

	return &ast.IntegerExpression{
		PositiveLiteral: literal,
		Value:           value,
		Range:           token.Range,
	}
}

func canStartExpression(p *parser) bool {
	switch p.current.Type {
	case lexer.TokenDecimalIntegerLiteral,
		lexer.TokenParenOpen:

		return true

	case lexer.TokenIdentifier:
		return !IsHardKeyword(p.currentTokenSource())

	default:
		return false
	}
}
