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

package main

import (
	goerrors "errors"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/encoding/ccf"
	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/sema"
)

type fix struct {
	Message     string `json:"message" cbor:"1,keyasint"`
	Replacement string `json:"replacement" cbor:"2,keyasint"`
	StartOffset int    `json:"startOffset" cbor:"3,keyasint"`
	EndOffset   int    `json:"endOffset" cbor:"4,keyasint"`
}

type diagnostic struct {
	Kind       string `json:"kind" cbor:"1,keyasint"`
	Line       int    `json:"line" cbor:"2,keyasint"`
	Column     int    `json:"column" cbor:"3,keyasint"`
	Message    string `json:"message" cbor:"4,keyasint"`
	Secondary  string `json:"secondary,omitempty" cbor:"5,keyasint,omitempty"`
	Fixes      []fix  `json:"fixes,omitempty" cbor:"6,keyasint,omitempty"`
	ValueType  string `json:"valueType,omitempty" cbor:"7,keyasint,omitempty"`
	TargetType string `json:"targetType,omitempty" cbor:"8,keyasint,omitempty"`
	// EncodedValueType and EncodedTargetType are the structural encodings of the types
	EncodedValueType  cbor.RawMessage `json:"-" cbor:"9,keyasint,omitempty"`
	EncodedTargetType cbor.RawMessage `json:"-" cbor:"10,keyasint,omitempty"`
}

type fileReport struct {
	Path        string       `json:"path" cbor:"1,keyasint"`
	Casts       int          `json:"casts" cbor:"2,keyasint"`
	Diagnostics []diagnostic `json:"diagnostics" cbor:"3,keyasint"`
}

func errorDiagnostics(err error, code []byte) []diagnostic {
	if err == nil {
		return nil
	}

	var parentErr errors.ParentError
	if !goerrors.As(err, &parentErr) {
		return []diagnostic{newErrorDiagnostic(err, code)}
	}

	childErrs := parentErr.ChildErrors()
	diagnostics := make([]diagnostic, 0, len(childErrs))
	for _, childErr := range childErrs {
		diagnostics = append(diagnostics, newErrorDiagnostic(childErr, code))
	}
	return diagnostics
}

func newErrorDiagnostic(err error, code []byte) diagnostic {
	result := diagnostic{
		Kind:    "error",
		Message: err.Error(),
	}

	if positioned, ok := err.(ast.HasPosition); ok {
		startPos := positioned.StartPosition()
		result.Line = startPos.Line
		result.Column = startPos.Column
	}

	if secondaryErr, ok := err.(errors.SecondaryError); ok {
		result.Secondary = secondaryErr.SecondaryError()
	}

	if hasFixes, ok := err.(errors.HasSuggestedFixes[ast.TextEdit]); ok {
		for _, suggestedFix := range hasFixes.SuggestFixes(string(code)) {
			for _, edit := range suggestedFix.TextEdits {
				result.Fixes = append(result.Fixes,
					fix{
						Message:     suggestedFix.Message,
						Replacement: edit.Replacement,
						StartOffset: edit.StartPos.Offset,
						EndOffset:   edit.EndPos.Offset,
					},
				)
			}
		}
	}

	var castErr *sema.OnlyUnwrapsOptionalsError
	if goerrors.As(err, &castErr) {
		result.ValueType = castErr.ValueType.String()
		result.TargetType = castErr.TargetType.String()
		// The types of the diagnostic are fully resolved, so they can always be encoded
		result.EncodedValueType = ccf.MustEncodeType(castErr.ValueType)
		result.EncodedTargetType = ccf.MustEncodeType(castErr.TargetType)
	}

	return result
}

func hintDiagnostics(hints []sema.Hint) []diagnostic {
	diagnostics := make([]diagnostic, 0, len(hints))
	for _, hint := range hints {
		startPos := hint.StartPosition()
		diagnostics = append(diagnostics,
			diagnostic{
				Kind:    "hint",
				Line:    startPos.Line,
				Column:  startPos.Column,
				Message: hint.Hint(),
			},
		)
	}
	return diagnostics
}
