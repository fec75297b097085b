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
	"github.com/onflow/castcheck/ast"
)

type Token struct {
	SpaceOrError any
	ast.Range
	Type TokenType
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

func (t Token) Source(input []byte) []byte {
	return t.Range.Source(input)
}

// IsTrivia returns true if the token carries no meaning for the parser,
// i.e. it is a space or a comment.
func (t Token) IsTrivia() bool {
	switch t.Type {
	case TokenSpace, TokenLineComment, TokenBlockComment:
		return true
	default:
		return false
	}
}

type Space struct {
	ContainsNewline bool
}
