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

package common

import (
	"encoding/json"

	"github.com/onflow/castcheck/errors"
)

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindValue
	DeclarationKindFunction
	DeclarationKindConstant
	DeclarationKindVariable
	DeclarationKindParameter
	DeclarationKindClass
	DeclarationKindStructure
	DeclarationKindProtocol
	DeclarationKindEnum
	DeclarationKindType
)

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindValue:
		return "value"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindConstant:
		return "constant"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindStructure:
		return "structure"
	case DeclarationKindProtocol:
		return "protocol"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindType:
		return "type"
	case DeclarationKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Name())
}
