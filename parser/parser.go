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
	"fmt"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/parser/lexer"
)

const defaultTypeDepthLimit = 1 << 5

type Config struct {
	// TypeDepthLimit is the maximum nesting depth of types.
	// Zero means the default limit
	TypeDepthLimit int
}

type parser struct {
	// code is the source code that is parsed
	code []byte
	// tokens is the list of non-trivia tokens
	tokens []lexer.Token
	// offset is the index of the current token
	offset int
	// current is the current token being parsed
	current lexer.Token
	// errors are the parsing errors encountered
	errors []error
	// comments are all comments of the code, in source order
	comments []ast.Comment
	// typeDepth is the current depth of nested types
	typeDepth int
	config    Config
}

// Parse creates a lexer to scan the given input string,
// and uses the given `parse` function to parse tokens into a result.
//
// It can be composed with different parse functions to parse the input string into different results.
// See "ParseProgram", "ParseType" as examples.
func Parse[T any](
	input []byte,
	parse func(*parser) (T, error),
	config Config,
) (
	result T,
	errs []error,
) {
	p := newParser(input, config)

	defer func() {
		if r := recover(); r != nil {
			var err error
			switch r := r.(type) {
			case ParseError:
				err = r
			case errors.InternalError:
				panic(r)
			case error:
				err = errors.NewUnexpectedErrorFromCause(r)
			default:
				err = errors.NewUnexpectedError("parser: %v", r)
			}

			p.report(err)

			var zero T
			result = zero
			errs = p.errors
		}
	}()

	p.next()

	var err error
	result, err = parse(p)
	if err != nil {
		p.report(err)
		var zero T
		return zero, p.errors
	}

	if !p.current.Is(lexer.TokenEOF) {
		p.report(NewSyntaxError(
			p.current.StartPos,
			"unexpected token: %s",
			p.current.Type,
		))
	}

	return result, p.errors
}

func newParser(input []byte, config Config) *parser {
	if config.TypeDepthLimit <= 0 {
		config.TypeDepthLimit = defaultTypeDepthLimit
	}

	p := &parser{
		code:   input,
		config: config,
	}

	for _, token := range lexer.Lex(input) {
		if !token.IsTrivia() {
			p.tokens = append(p.tokens, token)
			continue
		}
		if token.Is(lexer.TokenLineComment) || token.Is(lexer.TokenBlockComment) {
			p.comments = append(
				p.comments,
				ast.NewComment(token.Source(input), token.Range),
			)
		}
	}

	p.offset = -1

	return p
}

func (p *parser) report(errs ...error) {
	p.errors = append(p.errors, errs...)
}

// next advances to the next token.
// Lexer errors are turned into syntax errors.
func (p *parser) next() {
	if p.offset < len(p.tokens)-1 {
		p.offset++
	}
	p.current = p.tokens[p.offset]

	if p.current.Is(lexer.TokenError) {
		err, ok := p.current.SpaceOrError.(error)
		if !ok {
			panic(errors.NewUnreachableError())
		}
		panic(NewSyntaxError(p.current.StartPos, "%s", err.Error()))
	}
}

// peek returns the token after the current token, without advancing.
func (p *parser) peek() lexer.Token {
	if p.offset < len(p.tokens)-1 {
		return p.tokens[p.offset+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) tokenSource(token lexer.Token) []byte {
	return token.Source(p.code)
}

func (p *parser) currentTokenSource() string {
	return string(p.tokenSource(p.current))
}

func (p *parser) isToken(token lexer.Token, tokenType lexer.TokenType, expected string) bool {
	if !token.Is(tokenType) {
		return false
	}
	return string(p.tokenSource(token)) == expected
}

func (p *parser) isKeyword(keyword string) bool {
	return p.isToken(p.current, lexer.TokenIdentifier, keyword)
}

func (p *parser) mustOne(tokenType lexer.TokenType) lexer.Token {
	t := p.current
	if !t.Is(tokenType) {
		panic(NewSyntaxError(
			t.StartPos,
			"expected token %s, got %s",
			tokenType,
			p.describeCurrent(),
		))
	}
	p.next()
	return t
}

func (p *parser) describeCurrent() string {
	switch p.current.Type {
	case lexer.TokenIdentifier, lexer.TokenOperator, lexer.TokenDecimalIntegerLiteral:
		return fmt.Sprintf("%s `%s`", p.current.Type, p.currentTokenSource())
	default:
		return p.current.Type.String()
	}
}

func (p *parser) tokenToIdentifier(token lexer.Token) ast.Identifier {
	return ast.NewIdentifier(
		string(p.tokenSource(token)),
		token.StartPos,
	)
}

// mustIdentifier parses an identifier which is not a hard keyword.
func (p *parser) mustIdentifier() ast.Identifier {
	token := p.mustOne(lexer.TokenIdentifier)
	identifier := p.tokenToIdentifier(token)
	if IsHardKeyword(identifier.Identifier) {
		panic(NewSyntaxError(
			token.StartPos,
			"expected identifier, got keyword `%s`",
			identifier.Identifier,
		))
	}
	return identifier
}

// ParseProgram parses the code of a program.
func ParseProgram(code []byte, config Config) (program *ast.Program, err error) {
	var errs []error
	program, errs = Parse(code, parseProgram, config)
	if len(errs) > 0 {
		err = Error{
			Code:   code,
			Errors: errs,
		}
	}
	return
}

// ParseType parses a single type, e.g. `[Base : Base]?`.
func ParseType(code []byte, config Config) (ty ast.Type, err error) {
	var errs []error
	ty, errs = Parse(
		code,
		func(p *parser) (ast.Type, error) {
			return parseType(p), nil
		},
		config,
	)
	if len(errs) > 0 {
		err = Error{
			Code:   code,
			Errors: errs,
		}
	}
	return
}

func parseProgram(p *parser) (*ast.Program, error) {
	declarations := parseDeclarations(p, lexer.TokenEOF)
	return ast.NewProgram(declarations, p.comments), nil
}
