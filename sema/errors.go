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

package sema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/pretty"
)

// CheckerError

type CheckerError struct {
	Location common.Location
	Codes    map[common.Location][]byte
	Errors   []error
}

var _ errors.UserError = CheckerError{}
var _ errors.ParentError = CheckerError{}

func (CheckerError) IsUserError() {}

func (e CheckerError) Error() string {
	var sb strings.Builder
	sb.WriteString("Checking failed:\n")
	codes := e.Codes
	if codes == nil {
		codes = map[common.Location][]byte{}
	}
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, e.Location, codes)
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e CheckerError) ChildErrors() []error {
	return e.Errors
}

func (e CheckerError) Unwrap() []error {
	return e.Errors
}

func (e CheckerError) ImportLocation() common.Location {
	return e.Location
}

// SemanticError

type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

// OnlyUnwrapsOptionalsError is reported for a cast
// which only removes optional wrappers from the value type

type OnlyUnwrapsOptionalsError struct {
	ValueType  Type
	TargetType Type
	// UnwrapCount is the number of force-unwrap operators
	// which replace the cast
	UnwrapCount             int
	OperandRange            ast.Range
	OperandNeedsParentheses bool
	ast.Range
}

var _ SemanticError = &OnlyUnwrapsOptionalsError{}
var _ errors.UserError = &OnlyUnwrapsOptionalsError{}
var _ errors.SecondaryError = &OnlyUnwrapsOptionalsError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &OnlyUnwrapsOptionalsError{}

func (*OnlyUnwrapsOptionalsError) isSemanticError() {}

func (*OnlyUnwrapsOptionalsError) IsUserError() {}

func (e *OnlyUnwrapsOptionalsError) Error() string {
	return fmt.Sprintf(
		"downcast from '%s' to '%s' only unwraps optionals",
		e.ValueType,
		e.TargetType,
	)
}

func (e *OnlyUnwrapsOptionalsError) SecondaryError() string {
	if e.UnwrapCount <= 0 {
		return "consider removing the cast"
	}
	return fmt.Sprintf(
		"consider force-unwrapping with `%s`, or unwrapping with optional binding",
		strings.Repeat("!", e.UnwrapCount),
	)
}

func (e *OnlyUnwrapsOptionalsError) SuggestFixes(code string) []errors.SuggestedFix[ast.TextEdit] {
	if e.OperandRange.IsEmpty() {
		return nil
	}

	operand := e.OperandRange.Source([]byte(code))
	if len(operand) == 0 {
		return nil
	}

	var sb strings.Builder
	if e.OperandNeedsParentheses && e.UnwrapCount > 0 {
		sb.WriteByte('(')
		sb.Write(operand)
		sb.WriteByte(')')
	} else {
		sb.Write(operand)
	}
	sb.WriteString(strings.Repeat("!", max(e.UnwrapCount, 0)))

	message := "force-unwrap the value"
	if e.UnwrapCount <= 0 {
		message = "remove the cast"
	}

	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: message,
			TextEdits: []ast.TextEdit{
				{
					Replacement: sb.String(),
					Range:       e.Range,
				},
			},
		},
	}
}

// RedeclarationError

type RedeclarationError struct {
	PreviousPos *ast.Position
	Name        string
	Pos         ast.Position
	Kind        common.DeclarationKind
}

var _ SemanticError = &RedeclarationError{}
var _ errors.UserError = &RedeclarationError{}
var _ errors.ErrorNotes = &RedeclarationError{}

func (*RedeclarationError) isSemanticError() {}

func (*RedeclarationError) IsUserError() {}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf(
		"cannot redeclare %s: `%s` is already declared",
		e.Kind.Name(),
		e.Name,
	)
}

func (e *RedeclarationError) StartPosition() ast.Position {
	return e.Pos
}

func (e *RedeclarationError) EndPosition() ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(length - 1)
}

func (e *RedeclarationError) ErrorNotes() []errors.ErrorNote {
	if e.PreviousPos == nil || e.PreviousPos.Line < 1 {
		return nil
	}

	previousStartPos := *e.PreviousPos
	length := len(e.Name)
	previousEndPos := previousStartPos.Shifted(length - 1)

	return []errors.ErrorNote{
		&RedeclarationNote{
			Range: ast.NewRange(
				previousStartPos,
				previousEndPos,
			),
		},
	}
}

// RedeclarationNote

type RedeclarationNote struct {
	ast.Range
}

func (n RedeclarationNote) Message() string {
	return "previously declared here"
}

// NotDeclaredError

type NotDeclaredError struct {
	Name         string
	Pos          ast.Position
	ExpectedKind common.DeclarationKind
	// Candidates are the names which are declared at the position
	Candidates []string
}

var _ SemanticError = &NotDeclaredError{}
var _ errors.UserError = &NotDeclaredError{}
var _ errors.SecondaryError = &NotDeclaredError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &NotDeclaredError{}

func (*NotDeclaredError) isSemanticError() {}

func (*NotDeclaredError) IsUserError() {}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf(
		"cannot find %s in this scope: `%s`",
		e.ExpectedKind.Name(),
		e.Name,
	)
}

func (e *NotDeclaredError) SecondaryError() string {
	closestName := e.findClosestName()
	if closestName != "" {
		return fmt.Sprintf("not found in this scope; did you mean `%s`?", closestName)
	}
	return "not found in this scope"
}

func (e *NotDeclaredError) SuggestFixes(_ string) []errors.SuggestedFix[ast.TextEdit] {
	closestName := e.findClosestName()
	if closestName == "" {
		return nil
	}

	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: fmt.Sprintf("replace with `%s`", closestName),
			TextEdits: []ast.TextEdit{
				{
					Replacement: closestName,
					Range: ast.NewRange(
						e.StartPosition(),
						e.EndPosition(),
					),
				},
			},
		},
	}
}

func (e *NotDeclaredError) StartPosition() ast.Position {
	return e.Pos
}

func (e *NotDeclaredError) EndPosition() ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(length - 1)
}

// findClosestName searches the candidate names,
// and finds the name with the smallest edit distance from the name the user
// tried to use. In cases of typos, this should provide a helpful hint.
func (e *NotDeclaredError) findClosestName() (closestName string) {
	nameRunes := []rune(e.Name)

	closestDistance := len(nameRunes)

	sortedCandidates := make([]string, len(e.Candidates))
	copy(sortedCandidates, e.Candidates)
	sort.Strings(sortedCandidates)

	for _, candidate := range sortedCandidates {
		candidateRunes := []rune(candidate)

		distance := levenshtein.DistanceForStrings(
			nameRunes,
			candidateRunes,
			levenshtein.DefaultOptions,
		)

		// Don't update the closest name if the distance is greater than one already found,
		// or if the edits required would involve a complete replacement of the name's text
		if distance < closestDistance && distance < len(candidateRunes) {
			closestName = candidate
			closestDistance = distance
		}
	}

	return
}
