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
	"github.com/onflow/castcheck/parser/lexer"
)

func parseBlock(p *parser) *ast.Block {
	startToken := p.mustOne(lexer.TokenBraceOpen)
	statements := parseStatements(p, lexer.TokenBraceClose)
	endToken := p.mustOne(lexer.TokenBraceClose)

	return &ast.Block{
		Statements: statements,
		Range: ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	}
}

func parseStatements(p *parser, endTokenType lexer.TokenType) (statements []ast.Statement) {
	for {
		switch p.current.Type {
		case lexer.TokenSemicolon:
			p.next()
			continue

		case endTokenType, lexer.TokenEOF:
			return

		default:
			statements = append(statements, parseStatement(p))
		}
	}
}

func parseStatement(p *parser) ast.Statement {

	if p.current.Is(lexer.TokenIdentifier) {
		switch p.currentTokenSource() {
		case KeywordLet, KeywordVar:
			return parseVariableDeclaration(p)

		case KeywordFunc:
			return parseFunctionDeclaration(p)

		case KeywordReturn:
			return parseReturnStatement(p)
		}
	}

	expression := parseExpression(p)
	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

// parseReturnStatement parses a return statement.
// The returned value is optional.
//
//	returnStatement : 'return' ( expression )?
func parseReturnStatement(p *parser) *ast.ReturnStatement {

	startToken := p.current
	p.next()

	var expression ast.Expression
	endPos := startToken.EndPos

	if canStartExpression(p) {
		expression = parseExpression(p)
		endPos = expression.EndPosition()
	}

	return &ast.ReturnStatement{
		Expression: expression,
		Range: ast.NewRange(
			startToken.StartPos,
			endPos,
		),
	}
}
