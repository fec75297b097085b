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

package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
)

const errorPrefix = "error"
const hintPrefix = "hint"
const notePrefix = "note"
const excerptArrow = "--> "
const excerptSeparator = " |"
const excerptNoteMarker = " = "

// Hint is a positioned, non-fatal diagnostic
type Hint interface {
	ast.HasPosition
	Hint() string
}

type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

// writeFailure wraps a failure of the underlying writer,
// so it can be told apart from other panics
type writeFailure struct {
	err error
}

func (p ErrorPrettyPrinter) writeString(str string) {
	_, err := io.WriteString(p.writer, str)
	if err != nil {
		panic(writeFailure{err: err})
	}
}

func recoverWriteFailure(printErr *error) {
	if r := recover(); r != nil {
		failure, ok := r.(writeFailure)
		if !ok {
			panic(r)
		}
		*printErr = failure.err
	}
}

// PrettyPrintError prints the given error.
// Parent errors print each of their children, in order.
// The code excerpt is taken from the code of the error's location,
// or the given location if the error has none.
func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location][]byte,
) (printErr error) {
	defer recoverWriteFailure(&printErr)

	var count int
	var printError func(err error)
	printError = func(err error) {
		if parentError, ok := err.(errors.ParentError); ok {
			for _, childError := range parentError.ChildErrors() {
				printError(childError)
			}
			return
		}

		if count > 0 {
			p.writeString("\n")
		}
		count++

		errLocation := location
		if hasLocation, ok := err.(common.HasLocation); ok {
			if importLocation := hasLocation.ImportLocation(); importLocation != nil {
				errLocation = importLocation
			}
		}

		p.writeError(err, errLocation, codes[errLocation])
	}

	printError(err)

	return nil
}

// PrettyPrintHint prints the given hint.
func (p ErrorPrettyPrinter) PrettyPrintHint(
	hint Hint,
	location common.Location,
	codes map[common.Location][]byte,
) (printErr error) {
	defer recoverWriteFailure(&printErr)

	p.writeString(p.colorizeHint(hintPrefix))
	p.writeString(p.colorizeMessage(": " + hint.Hint()))
	p.writeString("\n")

	p.writeCodeExcerpt(
		location,
		codes[location],
		hint.StartPosition(),
		hint.EndPosition(),
		"",
	)

	return nil
}

func (p ErrorPrettyPrinter) writeError(err error, location common.Location, code []byte) {
	p.writeString(p.colorizeError(errorPrefix))
	p.writeString(p.colorizeMessage(": " + err.Error()))
	p.writeString("\n")

	var secondary string
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		secondary = secondaryError.SecondaryError()
	}

	positioned, ok := err.(ast.HasPosition)
	if ok {
		p.writeCodeExcerpt(
			location,
			code,
			positioned.StartPosition(),
			positioned.EndPosition(),
			secondary,
		)
	} else if secondary != "" {
		p.writeNote(1, secondary)
	}

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range errorNotes.ErrorNotes() {
			p.writeNote(1, notePrefix+": "+note.Message())
		}
	}
}

func (p ErrorPrettyPrinter) writeNote(width int, message string) {
	p.writeString(strings.Repeat(" ", width))
	p.writeString(p.colorizeMeta(excerptNoteMarker))
	p.writeString(message)
	p.writeString("\n")
}

// writeCodeExcerpt writes the location header and, if the start line is part of the code,
// the line of the start position, with the range underlined.
// Ranges spanning multiple lines are underlined until the end of the first line.
func (p ErrorPrettyPrinter) writeCodeExcerpt(
	location common.Location,
	code []byte,
	startPos ast.Position,
	endPos ast.Position,
	message string,
) {
	lineNumberString := strconv.Itoa(startPos.Line)
	width := len(lineNumberString)
	indent := strings.Repeat(" ", width)

	p.writeString(indent)
	p.writeString(p.colorizeMeta(excerptArrow))
	if location != nil {
		p.writeString(location.String())
		p.writeString(":")
	}
	p.writeString(fmt.Sprintf("%d:%d\n", startPos.Line, startPos.Column))

	lines := strings.Split(string(code), "\n")
	if code == nil || startPos.Line < 1 || startPos.Line > len(lines) {
		return
	}

	line := lines[startPos.Line-1]

	separator := p.colorizeMeta(excerptSeparator)

	p.writeString(indent)
	p.writeString(separator)
	p.writeString("\n")

	p.writeString(p.colorizeMeta(lineNumberString))
	p.writeString(separator)
	p.writeString(" ")
	p.writeString(line)
	p.writeString("\n")

	startColumn := clamp(startPos.Column, 0, len(line))
	endColumn := len(line)
	if endPos.Line == startPos.Line {
		endColumn = clamp(endPos.Column+1, startColumn, len(line))
	}

	underline := strings.Repeat("^", max(displayWidth(line[startColumn:endColumn]), 1))

	p.writeString(indent)
	p.writeString(separator)
	p.writeString(" ")
	p.writeString(excerptIndentation(line[:startColumn]))
	p.writeString(p.colorizeError(underline))
	if message != "" {
		p.writeString(" ")
		p.writeString(p.colorizeError(message))
	}
	p.writeString("\n")
}

// excerptIndentation returns the whitespace which aligns with the given prefix of a line.
// Tabs are preserved, all other grapheme clusters are replaced by spaces of the same display width.
func excerptIndentation(prefix string) string {
	var sb strings.Builder
	graphemes := uniseg.NewGraphemes(prefix)
	for graphemes.Next() {
		cluster := graphemes.Str()
		if cluster == "\t" {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", uniseg.StringWidth(cluster)))
	}
	return sb.String()
}

func displayWidth(s string) int {
	var width int
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() {
		cluster := graphemes.Str()
		if cluster == "\t" {
			width++
			continue
		}
		width += uniseg.StringWidth(cluster)
	}
	return width
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func (p ErrorPrettyPrinter) colorize(str string, color aurora.Color) string {
	if !p.useColor {
		return str
	}
	return aurora.Colorize(str, color).String()
}

func (p ErrorPrettyPrinter) colorizeError(str string) string {
	return p.colorize(str, aurora.RedFg|aurora.BrightFg|aurora.BoldFm)
}

func (p ErrorPrettyPrinter) colorizeHint(str string) string {
	return p.colorize(str, aurora.CyanFg|aurora.BrightFg|aurora.BoldFm)
}

func (p ErrorPrettyPrinter) colorizeMessage(str string) string {
	return p.colorize(str, aurora.BoldFm)
}

func (p ErrorPrettyPrinter) colorizeMeta(str string) string {
	return p.colorize(str, aurora.BlueFg|aurora.BrightFg|aurora.BoldFm)
}
