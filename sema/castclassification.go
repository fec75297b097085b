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
	"encoding/json"

	"github.com/onflow/castcheck/errors"
)

//go:generate stringer -type=CastClassification

// CastClassification is the result of classifying an explicit cast
// from a value type to a target type.
type CastClassification uint8

const (
	// CastClassificationNotApplicable indicates that the target type is not less optional
	// than the value type, so the cast is handled by the ordinary casting rules
	CastClassificationNotApplicable CastClassification = iota
	// CastClassificationOnlyUnwrapsOptionals indicates that the cast removes
	// optional wrappers and nothing else
	CastClassificationOnlyUnwrapsOptionals
	// CastClassificationOtherNarrowing indicates that the cast removes optional wrappers,
	// but also narrows the wrapped type
	CastClassificationOtherNarrowing
)

func (c CastClassification) Name() string {
	switch c {
	case CastClassificationNotApplicable:
		return "not applicable"
	case CastClassificationOnlyUnwrapsOptionals:
		return "only unwraps optionals"
	case CastClassificationOtherNarrowing:
		return "other narrowing"
	}

	panic(errors.NewUnreachableError())
}

func (c CastClassification) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Name())
}
