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
	"github.com/onflow/castcheck/activations"
	"github.com/onflow/castcheck/common"
)

var (
	AnyType       = NewNamedType("Any")
	AnyObjectType = NewNamedType("AnyObject")
	BoolType      = NewNamedType("Bool")
	CharacterType = NewNamedType("Character")
	DoubleType    = NewNamedType("Double")
	FloatType     = NewNamedType("Float")
	IntType       = NewNamedType("Int")
	Int8Type      = NewNamedType("Int8")
	Int16Type     = NewNamedType("Int16")
	Int32Type     = NewNamedType("Int32")
	Int64Type     = NewNamedType("Int64")
	UIntType      = NewNamedType("UInt")
	UInt8Type     = NewNamedType("UInt8")
	UInt16Type    = NewNamedType("UInt16")
	UInt32Type    = NewNamedType("UInt32")
	UInt64Type    = NewNamedType("UInt64")
	StringType    = NewNamedType("String")
	VoidType      = NewNamedType("Void")

	HashableType   = NewNamedType("Hashable")
	EquatableType  = NewNamedType("Equatable")
	ComparableType = NewNamedType("Comparable")
)

var InvalidTypeValue Type = &InvalidType{}

type baseTypeDeclaration struct {
	ty   *NamedType
	kind common.DeclarationKind
}

var baseTypeDeclarations = []baseTypeDeclaration{
	{AnyType, common.DeclarationKindType},
	{AnyObjectType, common.DeclarationKindProtocol},
	{BoolType, common.DeclarationKindStructure},
	{CharacterType, common.DeclarationKindStructure},
	{DoubleType, common.DeclarationKindStructure},
	{FloatType, common.DeclarationKindStructure},
	{IntType, common.DeclarationKindStructure},
	{Int8Type, common.DeclarationKindStructure},
	{Int16Type, common.DeclarationKindStructure},
	{Int32Type, common.DeclarationKindStructure},
	{Int64Type, common.DeclarationKindStructure},
	{UIntType, common.DeclarationKindStructure},
	{UInt8Type, common.DeclarationKindStructure},
	{UInt16Type, common.DeclarationKindStructure},
	{UInt32Type, common.DeclarationKindStructure},
	{UInt64Type, common.DeclarationKindStructure},
	{StringType, common.DeclarationKindStructure},
	{VoidType, common.DeclarationKindType},
	{HashableType, common.DeclarationKindProtocol},
	{EquatableType, common.DeclarationKindProtocol},
	{ComparableType, common.DeclarationKindProtocol},
}

// BaseTypeActivation is the activation which contains
// the types available in all programs
var BaseTypeActivation = func() *activations.Activation[*Variable] {
	activation := activations.NewActivation[*Variable](nil)
	for _, declaration := range baseTypeDeclarations {
		declareBaseVariable(activation, declaration.ty.Identifier, declaration.ty, declaration.kind)
	}
	return activation
}()

// BaseValueActivation is the activation which contains
// the values available in all programs
var BaseValueActivation = func() *activations.Activation[*Variable] {
	activation := activations.NewActivation[*Variable](nil)
	declareBaseVariable(activation, "true", BoolType, common.DeclarationKindConstant)
	declareBaseVariable(activation, "false", BoolType, common.DeclarationKindConstant)
	return activation
}()

func declareBaseVariable(
	activation *activations.Activation[*Variable],
	name string,
	ty Type,
	kind common.DeclarationKind,
) {
	activation.Set(
		name,
		&Variable{
			Identifier:      name,
			Type:            ty,
			DeclarationKind: kind,
			IsConstant:      true,
			IsBaseValue:     true,
		},
	)
}
