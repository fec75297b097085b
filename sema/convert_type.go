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
	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
)

// ConvertType converts an AST type representation to a sema type.
// Unknown type names are reported, and result in an invalid type.
func (checker *Checker) ConvertType(t ast.Type) Type {
	switch t := t.(type) {
	case *ast.NominalType:
		return checker.convertNominalType(t)

	case *ast.OptionalType:
		return NewOptionalType(checker.ConvertType(t.Type))

	case *ast.VariableSizedType:
		return NewVariableSizedType(checker.ConvertType(t.Type))

	case *ast.DictionaryType:
		return NewDictionaryType(
			checker.ConvertType(t.KeyType),
			checker.ConvertType(t.ValueType),
		)

	case nil:
		return InvalidTypeValue
	}

	panic(errors.NewUnreachableError())
}

// convertNominalType resolves a named type.
// Nested types are resolved through their outermost type, as type bodies are not checked.
func (checker *Checker) convertNominalType(t *ast.NominalType) Type {
	qualifiedName := NewNamedType(t.String()).Identifier

	variable := checker.typeActivations.Find(qualifiedName)
	if variable != nil {
		return variable.Type
	}

	identifier := t.Identifier

	if len(t.NestedIdentifiers) > 0 {
		name := NewNamedType(identifier.Identifier).Identifier
		if checker.typeActivations.Find(name) != nil {
			return NewNamedType(qualifiedName)
		}
	}

	checker.report(
		&NotDeclaredError{
			ExpectedKind: common.DeclarationKindType,
			Name:         identifier.Identifier,
			Pos:          identifier.Pos,
			Candidates:   checker.typeActivations.Names(),
		},
	)

	return InvalidTypeValue
}
