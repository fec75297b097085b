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
	"bytes"
)

var lineCommentPrefix = []byte("//")
var blockCommentStart = []byte("/*")
var blockCommentEnd = []byte("*/")

type Comment struct {
	source []byte
	Range
}

func NewComment(source []byte, r Range) Comment {
	return Comment{
		source: source,
		Range:  r,
	}
}

func (c Comment) Multiline() bool {
	return bytes.HasPrefix(c.source, blockCommentStart)
}

// Text returns the content of the comment, without the comment delimiters.
func (c Comment) Text() []byte {
	if c.Multiline() {
		text := bytes.TrimPrefix(c.source, blockCommentStart)
		return bytes.TrimSuffix(text, blockCommentEnd)
	}
	return bytes.TrimPrefix(c.source, lineCommentPrefix)
}

func (c Comment) Source() []byte {
	return c.source
}
