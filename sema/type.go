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

	"github.com/turbolent/prettier"
	"golang.org/x/text/unicode/norm"
)

// TypeID is the structural encoding of a type.
// Two types are equal if and only if their type IDs are equal.
type TypeID string

type Type interface {
	isType()
	ID() TypeID
	String() string
	Doc() prettier.Doc
	Equal(other Type) bool
	IsInvalidType() bool
}

// NamedType represents a nominal type, e.g. a builtin type like `Int`,
// or a declared type like a class.
// Two named types are equal if their identifiers are equal.
type NamedType struct {
	Identifier string
}

var _ Type = &NamedType{}

// NewNamedType returns a named type for the given identifier.
// The identifier is NFC-normalized,
// so canonically equivalent spellings result in equal types.
func NewNamedType(identifier string) *NamedType {
	return &NamedType{
		Identifier: norm.NFC.String(identifier),
	}
}

func (*NamedType) isType() {}

func (t *NamedType) ID() TypeID {
	return TypeID(t.Identifier)
}

func (t *NamedType) String() string {
	return t.Identifier
}

func (t *NamedType) Doc() prettier.Doc {
	return prettier.Text(t.Identifier)
}

func (t *NamedType) Equal(other Type) bool {
	otherNamed, ok := other.(*NamedType)
	if !ok {
		return false
	}
	return t.Identifier == otherNamed.Identifier
}

func (*NamedType) IsInvalidType() bool {
	return false
}

// InvalidType represents a type that is invalid.
// It is the result of type checking failing and
// can't be expressed in programs.
type InvalidType struct{}

var _ Type = &InvalidType{}

func (*InvalidType) isType() {}

func (*InvalidType) ID() TypeID {
	return "<<invalid>>"
}

func (*InvalidType) String() string {
	return "<<invalid>>"
}

func (t *InvalidType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*InvalidType) Equal(other Type) bool {
	_, ok := other.(*InvalidType)
	return ok
}

func (*InvalidType) IsInvalidType() bool {
	return true
}

// OptionalType represents the optional variant of another type
type OptionalType struct {
	Type Type
}

var _ Type = &OptionalType{}

func NewOptionalType(ty Type) *OptionalType {
	return &OptionalType{
		Type: ty,
	}
}

func (*OptionalType) isType() {}

func FormatOptionalTypeID[T ~string](elementTypeID T) T {
	return T(fmt.Sprintf("%s?", elementTypeID))
}

func (t *OptionalType) ID() TypeID {
	return FormatOptionalTypeID(t.Type.ID())
}

func (t *OptionalType) String() string {
	return FormatOptionalTypeID(t.Type.String())
}

var optionalTypeSymbolDoc prettier.Doc = prettier.Text("?")

func (t *OptionalType) Doc() prettier.Doc {
	return prettier.Concat{
		t.Type.Doc(),
		optionalTypeSymbolDoc,
	}
}

func (t *OptionalType) Equal(other Type) bool {
	otherOptional, ok := other.(*OptionalType)
	if !ok {
		return false
	}
	return t.Type.Equal(otherOptional.Type)
}

func (t *OptionalType) IsInvalidType() bool {
	return t.Type.IsInvalidType()
}

// VariableSizedType is a variable sized array type
type VariableSizedType struct {
	Type Type
}

var _ Type = &VariableSizedType{}

func NewVariableSizedType(elementType Type) *VariableSizedType {
	return &VariableSizedType{
		Type: elementType,
	}
}

func (*VariableSizedType) isType() {}

func FormatVariableSizedTypeID[T ~string](elementTypeID T) T {
	return T(fmt.Sprintf("[%s]", elementTypeID))
}

func (t *VariableSizedType) ID() TypeID {
	return FormatVariableSizedTypeID(t.Type.ID())
}

func (t *VariableSizedType) String() string {
	return FormatVariableSizedTypeID(t.Type.String())
}

func (t *VariableSizedType) Doc() prettier.Doc {
	return prettier.WrapBrackets(
		t.Type.Doc(),
		prettier.SoftLine{},
	)
}

func (t *VariableSizedType) Equal(other Type) bool {
	otherArray, ok := other.(*VariableSizedType)
	if !ok {
		return false
	}
	return t.Type.Equal(otherArray.Type)
}

func (t *VariableSizedType) IsInvalidType() bool {
	return t.Type.IsInvalidType()
}

// DictionaryType consists of the key and value type
// for all key-value pairs in the dictionary:
// All keys have to be a subtype of the key type,
// and all values have to be a subtype of the value type.
type DictionaryType struct {
	KeyType   Type
	ValueType Type
}

var _ Type = &DictionaryType{}

func NewDictionaryType(keyType, valueType Type) *DictionaryType {
	return &DictionaryType{
		KeyType:   keyType,
		ValueType: valueType,
	}
}

func (*DictionaryType) isType() {}

func FormatDictionaryTypeID[T ~string](keyTypeID T, valueTypeID T) T {
	return T(fmt.Sprintf("[%s : %s]", keyTypeID, valueTypeID))
}

func (t *DictionaryType) ID() TypeID {
	return FormatDictionaryTypeID(
		t.KeyType.ID(),
		t.ValueType.ID(),
	)
}

func (t *DictionaryType) String() string {
	return FormatDictionaryTypeID(
		t.KeyType.String(),
		t.ValueType.String(),
	)
}

var typeSeparatorSpaceDoc prettier.Doc = prettier.Text(" : ")

func (t *DictionaryType) Doc() prettier.Doc {
	return prettier.WrapBrackets(
		prettier.Concat{
			t.KeyType.Doc(),
			typeSeparatorSpaceDoc,
			t.ValueType.Doc(),
		},
		prettier.SoftLine{},
	)
}

func (t *DictionaryType) Equal(other Type) bool {
	otherDictionary, ok := other.(*DictionaryType)
	if !ok {
		return false
	}

	return otherDictionary.KeyType.Equal(t.KeyType) &&
		otherDictionary.ValueType.Equal(t.ValueType)
}

func (t *DictionaryType) IsInvalidType() bool {
	return t.KeyType.IsInvalidType() ||
		t.ValueType.IsInvalidType()
}

// StripOptionals removes all outer optional wrappers of the given type.
// It returns the first non-optional type and the number of wrappers removed.
func StripOptionals(ty Type) (core Type, depth int) {
	core = ty
	for {
		optionalType, ok := core.(*OptionalType)
		if !ok {
			return core, depth
		}
		core = optionalType.Type
		depth++
	}
}

// OptionalDepth returns the number of outer optional wrappers of the given type,
// e.g. 2 for `Int??` and 0 for `Int`.
func OptionalDepth(ty Type) int {
	_, depth := StripOptionals(ty)
	return depth
}

// WrapOptionals wraps the given type in the given number of optional types.
func WrapOptionals(ty Type, depth int) Type {
	for i := 0; i < depth; i++ {
		ty = NewOptionalType(ty)
	}
	return ty
}
