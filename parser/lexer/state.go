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
	"fmt"
	"unicode"
)

const keywordAs = "as"

// stateFn uses the input lexer to read runes and emit tokens.
//
// It either returns nil when reaching end of file,
// or returns another stateFn for more scanning work.
type stateFn func(*lexer) stateFn

// rootState returns a stateFn that scans the file and emits tokens until
// reaching the end of the file.
func rootState(l *lexer) stateFn {
	for {
		var ty TokenType

		r := l.next()
		switch r {
		case EOF:
			return nil
		case '(':
			ty = TokenParenOpen
		case ')':
			ty = TokenParenClose
		case '{':
			ty = TokenBraceOpen
		case '}':
			ty = TokenBraceClose
		case '[':
			ty = TokenBracketOpen
		case ']':
			ty = TokenBracketClose
		case ',':
			ty = TokenComma
		case ';':
			ty = TokenSemicolon
		case ':':
			ty = TokenColon
		case '.':
			ty = TokenDot
		case '?':
			if l.acceptOne('?') {
				ty = TokenDoubleQuestionMark
			} else {
				ty = TokenQuestionMark
			}
		case '!':
			if l.peek() == '=' {
				return operatorState
			}
			ty = TokenExclamationMark
		case '/':
			switch l.next() {
			case '/':
				return lineCommentState
			case '*':
				return blockCommentState
			default:
				l.backupOne()
				return operatorState
			}
		case '"':
			return stringState
		case ' ', '\t', '\r':
			return spaceState(false)
		case '\n':
			return spaceState(true)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return numberState
		default:
			switch {
			case r == '_' || unicode.IsLetter(r):
				return identifierState
			case isOperatorCharacter(r):
				return operatorState
			default:
				return l.error(fmt.Errorf("unrecognized character: %#U", r))
			}
		}

		l.emitType(ty)
	}
}

func (l *lexer) error(err error) stateFn {
	l.emitError(err)
	return nil
}

func isOperatorCharacter(r rune) bool {
	switch r {
	case '=', '-', '+', '*', '/', '%', '<', '>', '!', '&', '|', '^', '~':
		return true
	default:
		return false
	}
}

func isIdentifierCharacter(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r)
}

func identifierState(l *lexer) stateFn {
	l.acceptWhile(isIdentifierCharacter)

	// `as?` and `as!` are single tokens
	if string(l.word()) == keywordAs {
		switch l.next() {
		case '?', '!':
			break
		default:
			l.backupOne()
		}
	}

	l.emitType(TokenIdentifier)
	return rootState
}

func numberState(l *lexer) stateFn {
	l.acceptWhile(func(r rune) bool {
		return r == '_' || (r >= '0' && r <= '9')
	})
	l.emitType(TokenDecimalIntegerLiteral)
	return rootState
}

func operatorState(l *lexer) stateFn {
	for {
		r := l.next()
		if r == EOF {
			break
		}
		if !isOperatorCharacter(r) {
			l.backupOne()
			break
		}
		// comments start a new token
		if r == '/' {
			switch l.peek() {
			case '/', '*':
				l.backupOne()
				return emitOperator(l)
			}
		}
	}
	return emitOperator(l)
}

func emitOperator(l *lexer) stateFn {
	switch string(l.word()) {
	case "=":
		l.emitType(TokenEqual)
	case "->":
		l.emitType(TokenRightArrow)
	default:
		l.emitType(TokenOperator)
	}
	return rootState
}

func spaceState(startIsNewline bool) stateFn {
	return func(l *lexer) stateFn {
		containsNewline := startIsNewline

		l.acceptWhile(func(r rune) bool {
			switch r {
			case ' ', '\t', '\r':
				return true
			case '\n':
				containsNewline = true
				return true
			default:
				return false
			}
		})

		l.emit(
			TokenSpace,
			Space{
				ContainsNewline: containsNewline,
			},
		)

		return rootState
	}
}

func lineCommentState(l *lexer) stateFn {
	l.acceptWhile(func(r rune) bool {
		return r != '\n'
	})
	l.emitType(TokenLineComment)
	return rootState
}

func blockCommentState(l *lexer) stateFn {
	nesting := 1
	for nesting > 0 {
		switch l.next() {
		case EOF:
			return l.error(fmt.Errorf("missing comment end %q", "*/"))
		case '/':
			if l.acceptOne('*') {
				nesting++
			}
		case '*':
			if l.acceptOne('/') {
				nesting--
			}
		}
	}
	l.emitType(TokenBlockComment)
	return rootState
}

func stringState(l *lexer) stateFn {
	for {
		switch l.next() {
		case EOF, '\n':
			return l.error(fmt.Errorf("missing end of string literal: expected '\"'"))
		case '\\':
			if l.next() == EOF {
				return l.error(fmt.Errorf("incomplete escape sequence"))
			}
		case '"':
			l.emitType(TokenString)
			return rootState
		}
	}
}
