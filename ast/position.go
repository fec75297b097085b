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

package ast

import (
	"fmt"
)

// Position defines a row/column within a program.
type Position struct {
	// offset, starting at 0
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (byte count)
	Column int
}

var EmptyPosition = Position{}

func (position Position) Shifted(length int) Position {
	return Position{
		Line:   position.Line,
		Column: position.Column + length,
		Offset: position.Offset + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf(
		"%d(%d:%d)",
		position.Offset,
		position.Line,
		position.Column,
	)
}

// HasPosition

type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// Range

type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func NewRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition() Position {
	return e.EndPos
}

// IsEmpty returns true if the range is the empty range,
// i.e. it does not refer to any source.
func (e Range) IsEmpty() bool {
	return e == EmptyRange
}

// Source returns the source covered by the range.
// The end position is inclusive.
func (e Range) Source(input []byte) []byte {
	startOffset := e.StartPos.Offset
	endOffset := e.EndPos.Offset + 1

	if startOffset < 0 || endOffset > len(input) || startOffset > endOffset {
		return nil
	}

	return input[startOffset:endOffset]
}

func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}

// TextEdit is a replacement of the text in a range.
// An empty range with an insertion is an insertion,
// a range with no insertion and no replacement is a deletion.
type TextEdit struct {
	Replacement string
	Insertion   string
	Range
}

// ApplyTo applies the edit to the given code.
func (edit TextEdit) ApplyTo(code string) string {
	if edit.Insertion != "" {
		offset := edit.StartPos.Offset
		return code[:offset] + edit.Insertion + code[offset:]
	}

	return code[:edit.StartPos.Offset] +
		edit.Replacement +
		code[edit.EndPos.Offset+1:]
}
