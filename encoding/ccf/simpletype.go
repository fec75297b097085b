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

package ccf

import (
	"github.com/onflow/castcheck/sema"
)

var simpleTypes = map[uint64]*sema.NamedType{
	TypeBool:       sema.BoolType,
	TypeString:     sema.StringType,
	TypeCharacter:  sema.CharacterType,
	TypeInt:        sema.IntType,
	TypeInt8:       sema.Int8Type,
	TypeInt16:      sema.Int16Type,
	TypeInt32:      sema.Int32Type,
	TypeInt64:      sema.Int64Type,
	TypeUInt:       sema.UIntType,
	TypeUInt8:      sema.UInt8Type,
	TypeUInt16:     sema.UInt16Type,
	TypeUInt32:     sema.UInt32Type,
	TypeUInt64:     sema.UInt64Type,
	TypeFloat:      sema.FloatType,
	TypeDouble:     sema.DoubleType,
	TypeVoid:       sema.VoidType,
	TypeAny:        sema.AnyType,
	TypeAnyObject:  sema.AnyObjectType,
	TypeHashable:   sema.HashableType,
	TypeEquatable:  sema.EquatableType,
	TypeComparable: sema.ComparableType,
}

var simpleTypeIDs = func() map[string]uint64 {
	ids := make(map[string]uint64, len(simpleTypes))
	for id, ty := range simpleTypes {
		ids[ty.Identifier] = id
	}
	return ids
}()

// simpleTypeID returns the simple type ID of the given named type, if it is a base type
func simpleTypeID(ty *sema.NamedType) (uint64, bool) {
	id, ok := simpleTypeIDs[ty.Identifier]
	return id, ok
}
