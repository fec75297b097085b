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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/onflow/castcheck/ast"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type token struct {
	Token
	Source string
}

func testLex(t *testing.T, input string, expected []token) {
	t.Helper()

	tokens := Lex([]byte(input))

	actual := make([]token, 0, len(tokens))
	for _, tok := range tokens {
		actual = append(actual, token{
			Token:  tok,
			Source: string(tok.Source([]byte(input))),
		})
	}

	// Error values are compared by message
	for i := range actual {
		if err, ok := actual[i].SpaceOrError.(error); ok {
			actual[i].SpaceOrError = err.Error()
		}
	}

	assert.Equal(t, expected, actual)
}

func pos(offset, line, column int) ast.Position {
	return ast.Position{Offset: offset, Line: line, Column: column}
}

func TestLexBasic(t *testing.T) {

	t.Parallel()

	t.Run("optional type", func(t *testing.T) {
		t.Parallel()

		testLex(t,
			"Int??",
			[]token{
				{
					Token: Token{
						Type:  TokenIdentifier,
						Range: ast.NewRange(pos(0, 1, 0), pos(2, 1, 2)),
					},
					Source: "Int",
				},
				{
					Token: Token{
						Type:  TokenDoubleQuestionMark,
						Range: ast.NewRange(pos(3, 1, 3), pos(4, 1, 4)),
					},
					Source: "??",
				},
				{
					Token: Token{
						Type:  TokenEOF,
						Range: ast.NewRange(pos(5, 1, 5), pos(5, 1, 5)),
					},
					Source: "",
				},
			},
		)
	})

	t.Run("casting keywords", func(t *testing.T) {
		t.Parallel()

		testLex(t,
			"as? as!",
			[]token{
				{
					Token: Token{
						Type:  TokenIdentifier,
						Range: ast.NewRange(pos(0, 1, 0), pos(2, 1, 2)),
					},
					Source: "as?",
				},
				{
					Token: Token{
						Type:         TokenSpace,
						SpaceOrError: Space{ContainsNewline: false},
						Range:        ast.NewRange(pos(3, 1, 3), pos(3, 1, 3)),
					},
					Source: " ",
				},
				{
					Token: Token{
						Type:  TokenIdentifier,
						Range: ast.NewRange(pos(4, 1, 4), pos(6, 1, 6)),
					},
					Source: "as!",
				},
				{
					Token: Token{
						Type:  TokenEOF,
						Range: ast.NewRange(pos(7, 1, 7), pos(7, 1, 7)),
					},
					Source: "",
				},
			},
		)
	})

	t.Run("newline and comment", func(t *testing.T) {
		t.Parallel()

		testLex(t,
			"// c\n==",
			[]token{
				{
					Token: Token{
						Type:  TokenLineComment,
						Range: ast.NewRange(pos(0, 1, 0), pos(3, 1, 3)),
					},
					Source: "// c",
				},
				{
					Token: Token{
						Type:         TokenSpace,
						SpaceOrError: Space{ContainsNewline: true},
						Range:        ast.NewRange(pos(4, 1, 4), pos(4, 1, 4)),
					},
					Source: "\n",
				},
				{
					Token: Token{
						Type:  TokenOperator,
						Range: ast.NewRange(pos(5, 2, 0), pos(6, 2, 1)),
					},
					Source: "==",
				},
				{
					Token: Token{
						Type:  TokenEOF,
						Range: ast.NewRange(pos(7, 2, 2), pos(7, 2, 2)),
					},
					Source: "",
				},
			},
		)
	})
}

func TestLexTokenTypes(t *testing.T) {

	t.Parallel()

	const input = `func ==(a: [K : V]?) -> Bool { return x! as Int; } /* a /* b */ */ "s\"" 1_000 = .`

	var types []TokenType
	for _, tok := range Lex([]byte(input)) {
		if tok.Is(TokenSpace) {
			continue
		}
		types = append(types, tok.Type)
	}

	assert.Equal(t,
		[]TokenType{
			TokenIdentifier,
			TokenOperator,
			TokenParenOpen,
			TokenIdentifier,
			TokenColon,
			TokenBracketOpen,
			TokenIdentifier,
			TokenColon,
			TokenIdentifier,
			TokenBracketClose,
			TokenQuestionMark,
			TokenParenClose,
			TokenRightArrow,
			TokenIdentifier,
			TokenBraceOpen,
			TokenIdentifier,
			TokenIdentifier,
			TokenExclamationMark,
			TokenIdentifier,
			TokenIdentifier,
			TokenSemicolon,
			TokenBraceClose,
			TokenBlockComment,
			TokenString,
			TokenDecimalIntegerLiteral,
			TokenEqual,
			TokenDot,
			TokenEOF,
		},
		types,
	)
}

func TestLexErrors(t *testing.T) {

	t.Parallel()

	t.Run("unrecognized character", func(t *testing.T) {
		t.Parallel()

		tokens := Lex([]byte("x $"))
		require.Len(t, tokens, 4)

		errorToken := tokens[2]
		require.Equal(t, TokenError, errorToken.Type)
		assert.EqualError(t,
			errorToken.SpaceOrError.(error),
			"unrecognized character: U+0024 '$'",
		)
		assert.Equal(t, TokenEOF, tokens[3].Type)
	})

	t.Run("unterminated block comment", func(t *testing.T) {
		t.Parallel()

		tokens := Lex([]byte("/* /* */"))
		require.Len(t, tokens, 2)
		assert.Equal(t, TokenError, tokens[0].Type)
	})

	t.Run("unterminated string", func(t *testing.T) {
		t.Parallel()

		tokens := Lex([]byte("\"abc\n"))
		require.Len(t, tokens, 2)
		assert.Equal(t, TokenError, tokens[0].Type)
	})
}

func TestLexMultiByteIdentifier(t *testing.T) {

	t.Parallel()

	tokens := Lex([]byte("Größe?"))
	require.Len(t, tokens, 3)

	// "ö" and "ß" take two bytes each
	assert.Equal(t,
		ast.NewRange(pos(0, 1, 0), pos(6, 1, 6)),
		tokens[0].Range,
	)
	assert.Equal(t,
		ast.NewRange(pos(7, 1, 7), pos(7, 1, 7)),
		tokens[1].Range,
	)
}

func TestTokenIsTrivia(t *testing.T) {

	t.Parallel()

	var trivia []TokenType
	for _, tok := range Lex([]byte("x // line\n/* block */ y")) {
		if tok.IsTrivia() {
			trivia = append(trivia, tok.Type)
		}
	}

	assert.Equal(t,
		[]TokenType{
			TokenSpace,
			TokenLineComment,
			TokenSpace,
			TokenBlockComment,
			TokenSpace,
		},
		trivia,
	)
}
