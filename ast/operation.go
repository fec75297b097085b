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

package ast

import (
	"encoding/json"

	"github.com/onflow/castcheck/errors"
)

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationCast
	OperationFailableCast
	OperationForceCast
)

func (s Operation) Symbol() string {
	switch s {
	case OperationCast:
		return "as"
	case OperationFailableCast:
		return "as?"
	case OperationForceCast:
		return "as!"
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) String() string {
	switch s {
	case OperationCast:
		return "OperationCast"
	case OperationFailableCast:
		return "OperationFailableCast"
	case OperationForceCast:
		return "OperationForceCast"
	}
	return "OperationUnknown"
}

func (s Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
