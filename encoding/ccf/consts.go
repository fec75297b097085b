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

// CBOR tag numbers of encoded types
const (
	// CBORTagNamedType is the tag of a named type which is not a simple type,
	// and holds the identifier of the type
	CBORTagNamedType = 136 + iota
	CBORTagSimpleType
	CBORTagOptionalType
	CBORTagVarsizedArrayType
	_
	CBORTagDictType
)

// Simple type IDs of the base types
const (
	TypeBool uint64 = iota
	TypeString
	TypeCharacter
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUInt
	TypeUInt8
	TypeUInt16
	TypeUInt32
	TypeUInt64
	TypeFloat
	TypeDouble
	TypeVoid
	TypeAny
	TypeAnyObject
	TypeHashable
	TypeEquatable
	TypeComparable
)
