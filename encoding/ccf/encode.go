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
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/sema"
)

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	options.BigIntConvert = cbor.BigIntConvertNone
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// An Encoder converts types into their deterministic CBOR encoding.
type Encoder struct {
	enc *cbor.StreamEncoder
}

// EncodeType returns the CBOR-encoded representation of the given type.
// Equal types have identical encodings.
//
// This function returns an error if the type cannot be encoded, e.g. the invalid type.
func EncodeType(ty sema.Type) ([]byte, error) {
	var w bytes.Buffer

	enc := NewEncoder(&w)

	err := enc.Encode(ty)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// MustEncodeType returns the CBOR-encoded representation of the given type, or panics
// if the type cannot be encoded.
func MustEncodeType(ty sema.Type) []byte {
	b, err := EncodeType(ty)
	if err != nil {
		panic(err)
	}
	return b
}

// NewEncoder initializes an Encoder that will write CBOR-encoded bytes to the
// given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		enc: CBOREncMode.NewStreamEncoder(w),
	}
}

// Encode writes the CBOR-encoded representation of the given type to this
// encoder's io.Writer.
func (e *Encoder) Encode(ty sema.Type) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf(
				"ccf: failed to encode type (%T, %q): %w",
				ty,
				ty.ID(),
				err,
			)
		}
	}()

	err = e.encodeType(ty)
	if err != nil {
		return err
	}

	return e.enc.Flush()
}

// encodeType encodes a type as
// language=CDDL
// type =
//
//	simple-type
//	/ named-type
//	/ optional-type
//	/ varsized-array-type
//	/ dict-type
func (e *Encoder) encodeType(ty sema.Type) error {
	switch ty := ty.(type) {
	case *sema.NamedType:
		return e.encodeNamedType(ty)

	case *sema.OptionalType:
		return e.encodeOptionalType(ty)

	case *sema.VariableSizedType:
		return e.encodeVarSizedArrayType(ty)

	case *sema.DictionaryType:
		return e.encodeDictType(ty)

	case *sema.InvalidType:
		return errors.NewDefaultUserError("invalid type cannot be encoded")

	case nil:
		panic(errors.NewUnreachableError())

	default:
		return fmt.Errorf("unsupported type %T", ty)
	}
}

// encodeNamedType encodes a named type as
// language=CDDL
// simple-type =
//
//	; cbor-tag-simple-type
//	#6.137(simple-type-id)
//
// named-type =
//
//	; cbor-tag-named-type
//	#6.136(identifier: tstr)
func (e *Encoder) encodeNamedType(ty *sema.NamedType) error {
	if id, ok := simpleTypeID(ty); ok {
		rawTagNum := []byte{0xd8, CBORTagSimpleType}
		err := e.enc.EncodeRawBytes(rawTagNum)
		if err != nil {
			return err
		}
		return e.enc.EncodeUint64(id)
	}

	rawTagNum := []byte{0xd8, CBORTagNamedType}
	err := e.enc.EncodeRawBytes(rawTagNum)
	if err != nil {
		return err
	}
	return e.enc.EncodeString(ty.Identifier)
}

// encodeOptionalType encodes an optional type as
// language=CDDL
// optional-type =
//
//	; cbor-tag-optional-type
//	#6.138(type)
func (e *Encoder) encodeOptionalType(ty *sema.OptionalType) error {
	rawTagNum := []byte{0xd8, CBORTagOptionalType}
	err := e.enc.EncodeRawBytes(rawTagNum)
	if err != nil {
		return err
	}
	return e.encodeType(ty.Type)
}

// encodeVarSizedArrayType encodes a variable sized array type as
// language=CDDL
// varsized-array-type =
//
//	; cbor-tag-varsized-array-type
//	#6.139(type)
func (e *Encoder) encodeVarSizedArrayType(ty *sema.VariableSizedType) error {
	rawTagNum := []byte{0xd8, CBORTagVarsizedArrayType}
	err := e.enc.EncodeRawBytes(rawTagNum)
	if err != nil {
		return err
	}
	return e.encodeType(ty.Type)
}

// encodeDictType encodes a dictionary type as
// language=CDDL
// dict-type =
//
//	; cbor-tag-dict-type
//	#6.141([
//	  key-type: type,
//	  value-type: type
//	])
func (e *Encoder) encodeDictType(ty *sema.DictionaryType) error {
	rawTagNum := []byte{0xd8, CBORTagDictType}
	err := e.enc.EncodeRawBytes(rawTagNum)
	if err != nil {
		return err
	}

	err = e.enc.EncodeArrayHead(2)
	if err != nil {
		return err
	}

	err = e.encodeType(ty.KeyType)
	if err != nil {
		return err
	}

	return e.encodeType(ty.ValueType)
}
