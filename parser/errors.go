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
	"strings"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/pretty"
)

// Error

type Error struct {
	Code   []byte
	Errors []error
}

var _ errors.UserError = Error{}
var _ errors.ParentError = Error{}

func (Error) IsUserError() {}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, nil, map[common.Location][]byte{nil: e.Code})
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e Error) ChildErrors() []error {
	return e.Errors
}

// ParseError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError

type SyntaxError struct {
	Message   string
	Secondary string
	Pos       ast.Position
}

var _ ParseError = &SyntaxError{}
var _ errors.SecondaryError = &SyntaxError{}

func NewSyntaxError(pos ast.Position, message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Pos:     pos,
		Message: fmt.Sprintf(message, params...),
	}
}

func (e *SyntaxError) WithSecondary(secondary string) *SyntaxError {
	e.Secondary = secondary
	return e
}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) SecondaryError() string {
	return e.Secondary
}

// TypeDepthLimitReachedError is reported when a type is nested too deeply

type TypeDepthLimitReachedError struct {
	Limit int
	Pos   ast.Position
}

var _ ParseError = TypeDepthLimitReachedError{}

func (TypeDepthLimitReachedError) isParseError() {}

func (TypeDepthLimitReachedError) IsUserError() {}

func (e TypeDepthLimitReachedError) Error() string {
	return fmt.Sprintf(
		"program too complex, reached maximum type depth limit %d",
		e.Limit,
	)
}

func (e TypeDepthLimitReachedError) StartPosition() ast.Position {
	return e.Pos
}

func (e TypeDepthLimitReachedError) EndPosition() ast.Position {
	return e.Pos
}
