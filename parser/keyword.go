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

import "github.com/SaveTheRbtz/mph"

// NOTE: ensure to update allKeywords when adding a new keyword
const (
	KeywordLet         = "let"
	KeywordVar         = "var"
	KeywordFunc        = "func"
	KeywordReturn      = "return"
	KeywordAs          = "as"
	KeywordAsOptional  = "as?"
	KeywordAsForce     = "as!"
	KeywordClass       = "class"
	KeywordStruct      = "struct"
	KeywordProtocol    = "protocol"
	KeywordEnum        = "enum"
	KeywordPublic      = "public"
	KeywordPrivate     = "private"
	KeywordInternal    = "internal"
	KeywordFilePrivate = "fileprivate"
	KeywordOpen        = "open"
	KeywordFinal       = "final"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

var allKeywords = []string{
	KeywordLet,
	KeywordVar,
	KeywordFunc,
	KeywordReturn,
	KeywordAs,
	KeywordAsOptional,
	KeywordAsForce,
	KeywordClass,
	KeywordStruct,
	KeywordProtocol,
	KeywordEnum,
	KeywordPublic,
	KeywordPrivate,
	KeywordInternal,
	KeywordFilePrivate,
	KeywordOpen,
	KeywordFinal,
}

// Keywords that can be used in identifier position without ambiguity.
// They are declaration modifiers, which are accepted and ignored.
var softKeywords = []string{
	KeywordPublic,
	KeywordPrivate,
	KeywordInternal,
	KeywordFilePrivate,
	KeywordOpen,
	KeywordFinal,
}

var softKeywordsTable = mph.Build(softKeywords)

// Keywords that aren't allowed in identifier position.
var hardKeywords = filter(
	allKeywords,
	func(keyword string) bool {
		_, ok := softKeywordsTable.Lookup(keyword)
		return !ok
	},
)

var hardKeywordsTable = mph.Build(hardKeywords)

func IsHardKeyword(identifier string) bool {
	_, ok := hardKeywordsTable.Lookup(identifier)
	return ok
}

func isModifier(identifier string) bool {
	_, ok := softKeywordsTable.Lookup(identifier)
	return ok
}

func filter[T comparable](items []T, f func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if f(item) {
			result = append(result, item)
		}
	}
	return result
}
