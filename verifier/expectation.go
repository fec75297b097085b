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

package verifier

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/errors"
)

const expectationMarkerPrefix = "expected-"
const expectationMessageStart = "{{"
const expectationMessageEnd = "}}"
const runLinePrefix = "RUN:"

// commentDelimiterLength is the length of `//` and `/*`
const commentDelimiterLength = 2

// DiagnosticKind is the kind of diagnostic a fixture expects
type DiagnosticKind uint8

const (
	DiagnosticKindUnknown DiagnosticKind = iota
	DiagnosticKindError
	DiagnosticKindHint
)

func (k DiagnosticKind) Name() string {
	switch k {
	case DiagnosticKindError:
		return "error"
	case DiagnosticKindHint:
		return "hint"
	}

	return "unknown"
}

func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.Name()), nil
}

func diagnosticKind(name string) DiagnosticKind {
	switch name {
	case "error":
		return DiagnosticKindError
	case "hint":
		return DiagnosticKindHint
	}

	return DiagnosticKindUnknown
}

// Diagnostic is an expected or an emitted diagnostic.
// Diagnostics are compared by kind, line, and message.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s: %s", d.Line, d.Kind.Name(), d.Message)
}

// MarkerError is reported for malformed expectation markers
type MarkerError struct {
	Message string
	ast.Position
}

var _ errors.UserError = &MarkerError{}
var _ ast.HasPosition = &MarkerError{}

func (*MarkerError) IsUserError() {}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("invalid expectation: %s", e.Message)
}

func (e *MarkerError) StartPosition() ast.Position {
	return e.Position
}

func (e *MarkerError) EndPosition() ast.Position {
	return e.Position
}

// ParseExpectations extracts the expectation markers from the comments of the given program.
//
// A marker has the form `expected-<kind>{{<message>}}`, and refers to the line it is written on.
// The line can be adjusted with a relative offset, e.g. `expected-error@+1{{...}}`.
// A comment may contain multiple markers. `RUN:` lines are ignored.
// The code is the source of the program, markers must refer to one of its lines.
func ParseExpectations(code []byte, program *ast.Program) ([]Diagnostic, error) {
	var expectations []Diagnostic

	lineCount := bytes.Count(code, []byte{'\n'}) + 1

	for _, comment := range program.Comments() {
		text := comment.Text()

		if bytes.HasPrefix(bytes.TrimSpace(text), []byte(runLinePrefix)) {
			continue
		}

		textStartPos := comment.StartPos.Shifted(commentDelimiterLength)

		commentExpectations, err := parseCommentExpectations(text, textStartPos, lineCount)
		if err != nil {
			return nil, err
		}

		expectations = append(expectations, commentExpectations...)
	}

	return expectations, nil
}

func parseCommentExpectations(text []byte, startPos ast.Position, lineCount int) ([]Diagnostic, error) {
	var expectations []Diagnostic

	offset := 0
	for {
		index := bytes.Index(text[offset:], []byte(expectationMarkerPrefix))
		if index < 0 {
			return expectations, nil
		}

		markerOffset := offset + index
		line := startPos.Line + bytes.Count(text[:markerOffset], []byte{'\n'})
		markerPos := ast.Position{
			Offset: startPos.Offset + markerOffset,
			Line:   line,
			Column: markerColumn(text, markerOffset, startPos),
		}

		expectation, end, err := parseExpectation(
			text,
			markerOffset+len(expectationMarkerPrefix),
			markerPos,
			lineCount,
		)
		if err != nil {
			return nil, err
		}

		expectations = append(expectations, expectation)
		offset = end
	}
}

func markerColumn(text []byte, offset int, startPos ast.Position) int {
	lineStart := bytes.LastIndexByte(text[:offset], '\n')
	if lineStart < 0 {
		return startPos.Column + offset
	}
	return offset - lineStart - 1
}

// parseExpectation parses a marker after its prefix,
// and returns the expectation and the offset after the marker
func parseExpectation(
	text []byte,
	offset int,
	markerPos ast.Position,
	lineCount int,
) (Diagnostic, int, error) {

	kindStart := offset
	for offset < len(text) && isKindCharacter(text[offset]) {
		offset++
	}

	kindName := string(text[kindStart:offset])
	kind := diagnosticKind(kindName)
	if kind == DiagnosticKindUnknown {
		return Diagnostic{}, 0, &MarkerError{
			Message:  fmt.Sprintf("unknown kind `%s`", kindName),
			Position: markerPos,
		}
	}

	line := markerPos.Line

	if offset < len(text) && text[offset] == '@' {
		offset++

		lineOffsetStart := offset
		if offset < len(text) && (text[offset] == '+' || text[offset] == '-') {
			offset++
		}
		for offset < len(text) && text[offset] >= '0' && text[offset] <= '9' {
			offset++
		}

		lineOffsetLiteral := string(text[lineOffsetStart:offset])
		lineOffset, err := strconv.Atoi(lineOffsetLiteral)
		if err != nil || lineOffsetLiteral[0] != '+' && lineOffsetLiteral[0] != '-' {
			return Diagnostic{}, 0, &MarkerError{
				Message:  fmt.Sprintf("invalid line offset `%s`", lineOffsetLiteral),
				Position: markerPos,
			}
		}

		line += lineOffset
		if line < 1 {
			return Diagnostic{}, 0, &MarkerError{
				Message:  fmt.Sprintf("line offset `%s` is before the start of the file", lineOffsetLiteral),
				Position: markerPos,
			}
		}
		if line > lineCount {
			return Diagnostic{}, 0, &MarkerError{
				Message:  fmt.Sprintf("line offset `%s` is after the end of the file", lineOffsetLiteral),
				Position: markerPos,
			}
		}
	}

	if !bytes.HasPrefix(text[offset:], []byte(expectationMessageStart)) {
		return Diagnostic{}, 0, &MarkerError{
			Message:  fmt.Sprintf("expected `%s` after `%s%s`", expectationMessageStart, expectationMarkerPrefix, kindName),
			Position: markerPos,
		}
	}
	offset += len(expectationMessageStart)

	messageLength := bytes.Index(text[offset:], []byte(expectationMessageEnd))
	if messageLength < 0 {
		return Diagnostic{}, 0, &MarkerError{
			Message:  fmt.Sprintf("missing `%s`", expectationMessageEnd),
			Position: markerPos,
		}
	}

	message := string(text[offset : offset+messageLength])
	offset += messageLength + len(expectationMessageEnd)

	return Diagnostic{
		Kind:    kind,
		Line:    line,
		Message: message,
	}, offset, nil
}

func isKindCharacter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
