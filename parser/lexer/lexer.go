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
	"unicode/utf8"

	"github.com/onflow/castcheck/ast"
)

type position struct {
	line   int
	column int
}

type lexer struct {
	// the input to lex
	input []byte
	// the emitted tokens
	tokens []Token
	// the start offset of the current token
	startOffset int
	// the end offset of the current token, exclusive
	endOffset int
	// the end offset before the last rune was read
	prevEndOffset int
	// the position of the start of the current token
	startPos position
	// the position of the next rune to be read
	current position
	// the position of the last rune that was read
	prev position
	// the column of the most recently read newline character
	newlineColumn int
	// canBackup indicates whether stepping back is allowed
	canBackup bool
}

// Lex tokenizes the input.
// The resulting token list always ends with an EOF token.
// Lexing stops at the first error, which is emitted as an error token.
func Lex(input []byte) []Token {
	l := &lexer{
		input: input,
		startPos: position{
			line: 1,
		},
		current: position{
			line: 1,
		},
	}
	l.run(rootState)
	return l.tokens
}

func (l *lexer) run(state stateFn) {
	for state != nil {
		state = state(l)
	}
	l.emitType(TokenEOF)
}

// next decodes the next rune (UTF8 character) from the input string.
//
// NOTE: next can be called at EOF,
// in which case EOF is returned and the position does not advance.
func (l *lexer) next() rune {
	l.canBackup = true
	l.prevEndOffset = l.endOffset
	l.prev = l.current

	if l.endOffset >= len(l.input) {
		return EOF
	}

	r, width := utf8.DecodeRune(l.input[l.endOffset:])
	l.endOffset += width

	if r == '\n' {
		l.newlineColumn = l.current.column
		l.current.line++
		l.current.column = 0
	} else {
		l.current.column += width
	}

	return r
}

// backupOne steps back one rune.
// It can only be called once per call of next.
func (l *lexer) backupOne() {
	if !l.canBackup {
		panic(fmt.Errorf("lexer: cannot backup more than once"))
	}
	l.canBackup = false
	l.endOffset = l.prevEndOffset
	l.current = l.prev
}

func (l *lexer) peek() rune {
	if l.endOffset >= len(l.input) {
		return EOF
	}
	r, _ := utf8.DecodeRune(l.input[l.endOffset:])
	return r
}

func (l *lexer) acceptOne(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backupOne()
	return false
}

func (l *lexer) acceptWhile(f func(rune) bool) {
	for {
		r := l.next()
		if r == EOF {
			return
		}
		if !f(r) {
			l.backupOne()
			return
		}
	}
}

func (l *lexer) word() []byte {
	return l.input[l.startOffset:l.endOffset]
}

func (l *lexer) startPosition() ast.Position {
	return ast.Position{
		Offset: l.startOffset,
		Line:   l.startPos.line,
		Column: l.startPos.column,
	}
}

// endPosition returns the position of the last byte of the current token.
func (l *lexer) endPosition() ast.Position {
	if l.endOffset <= l.startOffset {
		return l.startPosition()
	}

	// the last read rune was a newline
	if l.current.column == 0 {
		return ast.Position{
			Offset: l.endOffset - 1,
			Line:   l.current.line - 1,
			Column: l.newlineColumn,
		}
	}

	return ast.Position{
		Offset: l.endOffset - 1,
		Line:   l.current.line,
		Column: l.current.column - 1,
	}
}

func (l *lexer) emit(ty TokenType, spaceOrError any) {
	token := Token{
		Type:         ty,
		SpaceOrError: spaceOrError,
		Range: ast.NewRange(
			l.startPosition(),
			l.endPosition(),
		),
	}

	l.tokens = append(l.tokens, token)

	l.startOffset = l.endOffset
	l.startPos = l.current
	l.canBackup = false
}

func (l *lexer) emitType(ty TokenType) {
	l.emit(ty, nil)
}

func (l *lexer) emitError(err error) {
	l.emit(TokenError, err)
}
