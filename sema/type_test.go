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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/onflow/castcheck/ast"
)

var testTypeNames = []string{"Int", "String", "Base", "Animal", "Dog"}

// typeFromSeed deterministically builds a type from the given seed,
// and returns the unused rest of the seed
func typeFromSeed(seed []uint8, depth int) (Type, []uint8) {
	if len(seed) == 0 || depth > 4 {
		return IntType, seed
	}

	b := seed[0]
	seed = seed[1:]

	switch b % 4 {
	case 0:
		name := testTypeNames[int(b/4)%len(testTypeNames)]
		return NewNamedType(name), seed

	case 1:
		innerType, rest := typeFromSeed(seed, depth+1)
		return NewOptionalType(innerType), rest

	case 2:
		elementType, rest := typeFromSeed(seed, depth+1)
		return NewVariableSizedType(elementType), rest

	default:
		keyType, rest := typeFromSeed(seed, depth+1)
		valueType, rest := typeFromSeed(rest, depth+1)
		return NewDictionaryType(keyType, valueType), rest
	}
}

func genType() gopter.Gen {
	return gen.SliceOfN(12, gen.UInt8()).
		Map(func(seed []uint8) Type {
			ty, _ := typeFromSeed(seed, 0)
			return ty
		})
}

func TestTypeString(t *testing.T) {

	t.Parallel()

	base := NewNamedType("Base")

	tests := map[string]Type{
		"Int":                 IntType,
		"Int?":                NewOptionalType(IntType),
		"Int??":               NewOptionalType(NewOptionalType(IntType)),
		"[Base]":              NewVariableSizedType(base),
		"[Base]?":             NewOptionalType(NewVariableSizedType(base)),
		"[Base?]":             NewVariableSizedType(NewOptionalType(base)),
		"[Base : Base]":       NewDictionaryType(base, base),
		"[Base : Base]?":      NewOptionalType(NewDictionaryType(base, base)),
		"[String : [Int?]]??": WrapOptionals(NewDictionaryType(StringType, NewVariableSizedType(NewOptionalType(IntType))), 2),
		"<<invalid>>":         InvalidTypeValue,
	}

	for expected, ty := range tests {
		expected, ty := expected, ty
		t.Run(expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, expected, ty.String())
			assert.Equal(t, expected, ast.Prettier(ty))
		})
	}
}

func TestTypeEqual(t *testing.T) {

	t.Parallel()

	base := NewNamedType("Base")

	t.Run("structural", func(t *testing.T) {
		t.Parallel()

		a := NewOptionalType(NewDictionaryType(base, NewVariableSizedType(IntType)))
		b := NewOptionalType(NewDictionaryType(NewNamedType("Base"), NewVariableSizedType(NewNamedType("Int"))))

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.ID(), b.ID())
	})

	t.Run("different shape", func(t *testing.T) {
		t.Parallel()

		assert.False(t, NewVariableSizedType(base).Equal(NewOptionalType(base)))
		assert.False(t, NewDictionaryType(base, IntType).Equal(NewDictionaryType(IntType, base)))
		assert.False(t, base.Equal(NewOptionalType(base)))
	})

	t.Run("normalized identifiers", func(t *testing.T) {
		t.Parallel()

		// U+00F6 and U+006F U+0308 are canonically equivalent
		composed := NewNamedType("Gr\u00F6\u00DFe")
		decomposed := NewNamedType("Gro\u0308\u00DFe")

		assert.True(t, composed.Equal(decomposed))
		assert.Equal(t, composed.ID(), decomposed.ID())
		assert.Equal(t, "Gr\u00F6\u00DFe", decomposed.String())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		assert.True(t, InvalidTypeValue.Equal(&InvalidType{}))
		assert.True(t, NewOptionalType(InvalidTypeValue).IsInvalidType())
		assert.True(t, NewDictionaryType(IntType, InvalidTypeValue).IsInvalidType())
		assert.False(t, NewVariableSizedType(IntType).IsInvalidType())
	})
}

func TestStripOptionals(t *testing.T) {

	t.Parallel()

	core, depth := StripOptionals(NewOptionalType(NewOptionalType(IntType)))
	assert.Equal(t, IntType, core)
	assert.Equal(t, 2, depth)

	core, depth = StripOptionals(IntType)
	assert.Equal(t, IntType, core)
	assert.Equal(t, 0, depth)

	array := NewVariableSizedType(NewOptionalType(IntType))
	core, depth = StripOptionals(NewOptionalType(array))
	assert.Equal(t, array, core)
	assert.Equal(t, 1, depth)

	assert.Equal(t, 3, OptionalDepth(WrapOptionals(StringType, 3)))
}

func TestTypeDocLineBreaks(t *testing.T) {

	t.Parallel()

	long := NewNamedType("AVeryLongTypeNameWhichDoesNotFitOnOneLineWithTheOther")

	ty := NewDictionaryType(long, NewVariableSizedType(long))

	assert.Equal(t,
		"[AVeryLongTypeNameWhichDoesNotFitOnOneLineWithTheOther : [AVeryLongTypeNameWhichDoesNotFitOnOneLineWithTheOther]]",
		ty.String(),
	)
	assert.Contains(t, ast.Prettier(ty), "\n")
}

func TestTypeProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("equal types have equal IDs", prop.ForAll(
		func(a, b Type) bool {
			return a.Equal(b) == (a.ID() == b.ID())
		},
		genType(),
		genType(),
	))

	properties.Property("types are equal to themselves", prop.ForAll(
		func(a Type) bool {
			return a.Equal(a)
		},
		genType(),
	))

	properties.Property("rendering is deterministic", prop.ForAll(
		func(seed []uint8) bool {
			a, _ := typeFromSeed(seed, 0)
			b, _ := typeFromSeed(seed, 0)
			return a.Equal(b) && a.String() == b.String()
		},
		gen.SliceOfN(12, gen.UInt8()),
	))

	properties.Property("stripping optionals removes all outer optionals", prop.ForAll(
		func(a Type, depth uint8) bool {
			wrapped := WrapOptionals(a, int(depth%4))

			core, strippedDepth := StripOptionals(wrapped)
			originalCore, originalDepth := StripOptionals(a)

			_, coreIsOptional := core.(*OptionalType)

			return !coreIsOptional &&
				core.Equal(originalCore) &&
				strippedDepth == originalDepth+int(depth%4)
		},
		genType(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
