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
	"fmt"
	goRuntime "runtime"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/sema"
)

// maxTypeNestingLevels is the maximum number of nested CBOR data items of an encoded type
const maxTypeNestingLevels = 1 << 10

var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		IntDec:           cbor.IntDecConvertNone,
		MaxArrayElements: 1 << 10,
		MaxMapPairs:      1 << 10,
		MaxNestedLevels:  maxTypeNestingLevels,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// Decoder decodes CBOR-encoded representations of types.
type Decoder struct {
	dec *cbor.StreamDecoder
}

// DecodeType returns a type decoded from its CBOR-encoded representation.
//
// This function returns an error if the bytes are malformed,
// or if they contain more than one encoded type.
func DecodeType(b []byte) (sema.Type, error) {
	dec := NewDecoder(b)

	ty, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	if dec.dec.NumBytesDecoded() != len(b) {
		return nil, errors.NewDefaultUserError(
			"ccf: failed to decode: decoded %d bytes, received %d bytes",
			dec.dec.NumBytesDecoded(),
			len(b),
		)
	}

	return ty, nil
}

// NewDecoder initializes a Decoder that will decode CBOR-encoded bytes from the
// given bytes.
func NewDecoder(b []byte) *Decoder {
	// NOTE: encoded data is not copied by decoder.
	return &Decoder{
		dec: CBORDecMode.NewByteStreamDecoder(b),
	}
}

// Decode reads CBOR-encoded bytes and decodes them to a type.
func (d *Decoder) Decode() (ty sema.Type, err error) {
	// Capture panics that occur during decoding.
	defer func() {
		if r := recover(); r != nil {
			// Don't recover Go errors, internal errors, or non-errors.
			switch r := r.(type) {
			case goRuntime.Error, errors.InternalError:
				panic(r)
			case error:
				err = r
			default:
				panic(r)
			}
		}

		if err != nil {
			err = errors.NewDefaultUserError("ccf: failed to decode: %s", err)
		}
	}()

	return d.decodeType(0)
}

func (d *Decoder) decodeType(depth int) (sema.Type, error) {
	if depth > maxTypeNestingLevels {
		return nil, fmt.Errorf("type exceeds maximum nesting depth %d", maxTypeNestingLevels)
	}

	tagNum, err := d.dec.DecodeTagNumber()
	if err != nil {
		return nil, err
	}

	switch tagNum {
	case CBORTagSimpleType:
		return d.decodeSimpleTypeID()

	case CBORTagNamedType:
		return d.decodeNamedType()

	case CBORTagOptionalType:
		innerType, err := d.decodeType(depth + 1)
		if err != nil {
			return nil, err
		}
		return sema.NewOptionalType(innerType), nil

	case CBORTagVarsizedArrayType:
		elementType, err := d.decodeType(depth + 1)
		if err != nil {
			return nil, err
		}
		return sema.NewVariableSizedType(elementType), nil

	case CBORTagDictType:
		return d.decodeDictType(depth)

	default:
		return nil, fmt.Errorf("unsupported encoded type with CBOR tag number %d", tagNum)
	}
}

// decodeSimpleTypeID decodes encoded simple-type-id.
func (d *Decoder) decodeSimpleTypeID() (sema.Type, error) {
	simpleTypeID, err := d.dec.DecodeUint64()
	if err != nil {
		return nil, err
	}

	ty, ok := simpleTypes[simpleTypeID]
	if !ok {
		return nil, fmt.Errorf("unsupported encoded simple type ID %d", simpleTypeID)
	}

	return ty, nil
}

func (d *Decoder) decodeNamedType() (sema.Type, error) {
	identifier, err := d.dec.DecodeString()
	if err != nil {
		return nil, err
	}

	if identifier == "" {
		return nil, fmt.Errorf("encoded named type has empty identifier")
	}

	ty := sema.NewNamedType(identifier)

	// Base types are always encoded as simple types
	if _, ok := simpleTypeID(ty); ok {
		return nil, fmt.Errorf("encoded named type `%s` must be a simple type", identifier)
	}

	return ty, nil
}

func (d *Decoder) decodeDictType(depth int) (sema.Type, error) {
	err := decodeCBORArrayWithKnownSize(d.dec, 2)
	if err != nil {
		return nil, err
	}

	keyType, err := d.decodeType(depth + 1)
	if err != nil {
		return nil, err
	}

	valueType, err := d.decodeType(depth + 1)
	if err != nil {
		return nil, err
	}

	return sema.NewDictionaryType(keyType, valueType), nil
}

func decodeCBORArrayWithKnownSize(dec *cbor.StreamDecoder, n uint64) error {
	c, err := dec.DecodeArrayHead()
	if err != nil {
		return err
	}
	if c != n {
		return fmt.Errorf("CBOR array has %d elements (expected %d elements)", c, n)
	}
	return nil
}
