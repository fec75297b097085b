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
	"github.com/onflow/castcheck/parser/lexer"
)

const (
	typeLeftBindingPowerOptional = 10 * (iota + 1)
)

const lowestBindingPower = 0

type typeNullDenotationFunc func(parser *parser, token lexer.Token) ast.Type

var typeNullDenotations [lexer.TokenMax]typeNullDenotationFunc

type typeLeftDenotationFunc func(parser *parser, token lexer.Token, left ast.Type) ast.Type

var typeLeftBindingPowers [lexer.TokenMax]int
var typeLeftDenotations [lexer.TokenMax]typeLeftDenotationFunc

func setTypeNullDenotation(tokenType lexer.TokenType, nullDenotation typeNullDenotationFunc) {
	current := typeNullDenotations[tokenType]
	if current != nil {
		panic(fmt.Errorf(
			"type null denotation for token %s already exists",
			tokenType,
		))
	}
	typeNullDenotations[tokenType] = nullDenotation
}

func setTypeLeftBindingPower(tokenType lexer.TokenType, power int) {
	current := typeLeftBindingPowers[tokenType]
	if current > power {
		return
	}
	typeLeftBindingPowers[tokenType] = power
}

func setTypeLeftDenotation(tokenType lexer.TokenType, leftDenotation typeLeftDenotationFunc) {
	current := typeLeftDenotations[tokenType]
	if current != nil {
		panic(fmt.Errorf(
			"type left denotation for token %s already exists",
			tokenType,
		))
	}
	typeLeftDenotations[tokenType] = leftDenotation
}

type postfixTypeFunc func(left ast.Type, tokenRange ast.Range) ast.Type

type postfixType struct {
	tokenType      lexer.TokenType
	bindingPower   int
	leftDenotation postfixTypeFunc
}

func definePostfixType(def postfixType) {
	tokenType := def.tokenType
	setTypeLeftBindingPower(tokenType, def.bindingPower)
	setTypeLeftDenotation(
		tokenType,
		func(p *parser, token lexer.Token, left ast.Type) ast.Type {
			return def.leftDenotation(left, token.Range)
		},
	)
}

func init() {
	defineNominalType()
	defineArrayOrDictionaryType()
	defineParenthesizedType()
	defineOptionalType()
}

func defineNominalType() {
	setTypeNullDenotation(
		lexer.TokenIdentifier,
		func(p *parser, token lexer.Token) ast.Type {
			return parseNominalTypeRemainder(p, token)
		},
	)
}

func parseNominalTypeRemainder(p *parser, token lexer.Token) *ast.NominalType {
	identifier := p.tokenToIdentifier(token)
	if IsHardKeyword(identifier.Identifier) {
		panic(NewSyntaxError(
			token.StartPos,
			"expected type, got keyword `%s`",
			identifier.Identifier,
		))
	}

	var nestedIdentifiers []ast.Identifier

	for p.current.Is(lexer.TokenDot) {
		p.next()
		nestedIdentifiers = append(
			nestedIdentifiers,
			p.mustIdentifier(),
		)
	}

	return &ast.NominalType{
		Identifier:        identifier,
		NestedIdentifiers: nestedIdentifiers,
	}
}

func parseNominalType(p *parser) *ast.NominalType {
	token := p.mustOne(lexer.TokenIdentifier)
	return parseNominalTypeRemainder(p, token)
}

func defineArrayOrDictionaryType() {
	setTypeNullDenotation(
		lexer.TokenBracketOpen,
		func(p *parser, startToken lexer.Token) ast.Type {

			firstType := parseType(p)

			var secondType ast.Type
			if p.current.Is(lexer.TokenColon) {
				p.next()
				secondType = parseType(p)
			}

			endToken := p.mustOne(lexer.TokenBracketClose)

			typeRange := ast.NewRange(
				startToken.StartPos,
				endToken.EndPos,
			)

			if secondType == nil {
				return &ast.VariableSizedType{
					Type:  firstType,
					Range: typeRange,
				}
			}

			return &ast.DictionaryType{
				KeyType:   firstType,
				ValueType: secondType,
				Range:     typeRange,
			}
		},
	)
}

func defineParenthesizedType() {
	setTypeNullDenotation(
		lexer.TokenParenOpen,
		func(p *parser, token lexer.Token) ast.Type {
			innerType := parseType(p)
			p.mustOne(lexer.TokenParenClose)
			return innerType
		},
	)
}

func defineOptionalType() {

	// Postfix optional type:
	// The left denotation for the question mark

	definePostfixType(postfixType{
		tokenType:    lexer.TokenQuestionMark,
		bindingPower: typeLeftBindingPowerOptional,
		leftDenotation: func(left ast.Type, tokenRange ast.Range) ast.Type {
			return &ast.OptionalType{
				Type:   left,
				EndPos: tokenRange.EndPos,
			}
		},
	})

	// Postfix double optional type:
	// The left denotation for the double question mark,
	// which the lexer produces for two consecutive question marks

	definePostfixType(postfixType{
		tokenType:    lexer.TokenDoubleQuestionMark,
		bindingPower: typeLeftBindingPowerOptional,
		leftDenotation: func(left ast.Type, tokenRange ast.Range) ast.Type {
			return &ast.OptionalType{
				Type: &ast.OptionalType{
					Type:   left,
					EndPos: tokenRange.StartPos,
				},
				EndPos: tokenRange.EndPos,
			}
		},
	})
}

func parseType(p *parser) ast.Type {
	return parseTypeWithBindingPower(p, lowestBindingPower)
}

// parseTypeWithBindingPower uses the given binding power and parses a type.
func parseTypeWithBindingPower(p *parser, rightBindingPower int) ast.Type {

	p.typeDepth++
	defer func() {
		p.typeDepth--
	}()

	if p.typeDepth > p.config.TypeDepthLimit {
		panic(TypeDepthLimitReachedError{
			Limit: p.config.TypeDepthLimit,
			Pos:   p.current.StartPos,
		})
	}

	t := p.current
	p.next()

	left := applyTypeNullDenotation(p, t)

	for rightBindingPower < typeLeftBindingPowers[p.current.Type] {
		t = p.current
		p.next()

		left = applyTypeLeftDenotation(p, t, left)
	}

	return left
}

func applyTypeNullDenotation(p *parser, token lexer.Token) ast.Type {
	tokenType := token.Type
	nullDenotation := typeNullDenotations[tokenType]
	if nullDenotation == nil {
		panic(NewSyntaxError(
			token.StartPos,
			"unexpected token in type: %s",
			tokenType,
		))
	}
	return nullDenotation(p, token)
}

func applyTypeLeftDenotation(p *parser, token lexer.Token, left ast.Type) ast.Type {
	leftDenotation := typeLeftDenotations[token.Type]
	if leftDenotation == nil {
		panic(NewSyntaxError(
			token.StartPos,
			"unexpected token in type: %s",
			token.Type,
		))
	}
	return leftDenotation(p, token, left)
}
