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

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/pretty"
)

type Hint interface {
	Hint() string
	ast.HasPosition
	isHint()
}

var _ pretty.Hint = Hint(nil)

// UnnecessaryCastHint

type UnnecessaryCastHint struct {
	TargetType Type
	ast.Range
}

var _ Hint = &UnnecessaryCastHint{}

func (h *UnnecessaryCastHint) Hint() string {
	return fmt.Sprintf(
		"cast to `%s` is redundant",
		h.TargetType,
	)
}

func (*UnnecessaryCastHint) isHint() {}

// AlwaysSucceedingFailableCastHint

type AlwaysSucceedingFailableCastHint struct {
	ValueType  Type
	TargetType Type
	ast.Range
}

var _ Hint = &AlwaysSucceedingFailableCastHint{}

func (h *AlwaysSucceedingFailableCastHint) Hint() string {
	return fmt.Sprintf(
		"failable cast ('%s') from `%s` to `%s` always succeeds",
		ast.OperationFailableCast.Symbol(),
		h.ValueType,
		h.TargetType,
	)
}

func (*AlwaysSucceedingFailableCastHint) isHint() {}

// AlwaysSucceedingForceCastHint

type AlwaysSucceedingForceCastHint struct {
	ValueType  Type
	TargetType Type
	ast.Range
}

var _ Hint = &AlwaysSucceedingForceCastHint{}

func (h *AlwaysSucceedingForceCastHint) Hint() string {
	return fmt.Sprintf(
		"force cast ('%s') from `%s` to `%s` always succeeds",
		ast.OperationForceCast.Symbol(),
		h.ValueType,
		h.TargetType,
	)
}

func (*AlwaysSucceedingForceCastHint) isHint() {}
