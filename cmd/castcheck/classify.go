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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/parser"
	"github.com/onflow/castcheck/sema"
)

type classification struct {
	valueType      sema.Type
	targetType     sema.Type
	operation      ast.Operation
	classification sema.CastClassification
	err            *sema.OnlyUnwrapsOptionalsError
}

func (c classification) write(w io.Writer, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s %s %s: %s\n",
		c.valueType,
		c.operation.Symbol(),
		c.targetType,
		colorizeResult(c.classification.Name(), useColor),
	)

	if c.err == nil {
		return
	}

	_, _ = fmt.Fprintf(w, "%s: %s\n", colorizeError("error", useColor), c.err.Error())
	_, _ = fmt.Fprintf(w, "  = %s\n", c.err.SecondaryError())
}

var castOperations = []ast.Operation{
	ast.OperationFailableCast,
	ast.OperationForceCast,
	ast.OperationCast,
}

// splitCast splits an input like `Int?? as Int` into the value type, the operation, and the target type
func splitCast(input string) (valueType string, operation ast.Operation, targetType string, ok bool) {
	for _, operation := range castOperations {
		separator := " " + operation.Symbol() + " "
		valueType, targetType, found := strings.Cut(input, separator)
		if found {
			return strings.TrimSpace(valueType), operation, strings.TrimSpace(targetType), true
		}
	}
	return "", ast.OperationUnknown, "", false
}

// classifyCast parses and classifies the cast between the given types.
// Names in the types are declared as base types.
func classifyCast(valueTypeString string, operation ast.Operation, targetTypeString string) (classification, error) {

	valueSyntax, err := parser.ParseType([]byte(valueTypeString), parser.Config{})
	if err != nil {
		return classification{}, err
	}

	targetSyntax, err := parser.ParseType([]byte(targetTypeString), parser.Config{})
	if err != nil {
		return classification{}, err
	}

	program := ast.NewProgram(nil, nil)

	checker, err := sema.NewChecker(
		program,
		common.StringLocation("classify"),
		&sema.Config{
			BaseTypes: append(rootTypeNames(valueSyntax), rootTypeNames(targetSyntax)...),
		},
	)
	if err != nil {
		return classification{}, err
	}

	valueType := checker.ConvertType(valueSyntax)
	targetType := checker.ConvertType(targetSyntax)

	if checkerErr := checker.CheckerError(); checkerErr != nil {
		return classification{}, errors.NewUnexpectedErrorFromCause(checkerErr)
	}

	result, castErr := sema.CheckCast(
		sema.CastExpression{
			ValueType:  valueType,
			TargetType: targetType,
			Operation:  operation,
		},
	)

	return classification{
		valueType:      valueType,
		targetType:     targetType,
		operation:      operation,
		classification: result,
		err:            castErr,
	}, nil
}

// rootTypeNames returns the outermost names of all named types in the given type
func rootTypeNames(ty ast.Type) []string {
	switch ty := ty.(type) {
	case *ast.NominalType:
		return []string{ty.Identifier.Identifier}

	case *ast.OptionalType:
		return rootTypeNames(ty.Type)

	case *ast.VariableSizedType:
		return rootTypeNames(ty.Type)

	case *ast.DictionaryType:
		return append(rootTypeNames(ty.KeyType), rootTypeNames(ty.ValueType)...)
	}

	panic(errors.NewUnreachableError())
}

func runClassify(args []string, stdout, stderr io.Writer) int {
	flags, shared := newFlagSet("classify", stderr)
	operationSymbol := flags.String("op", "as", "cast operation: as, as?, or as!")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if flags.NArg() != 2 {
		_, _ = fmt.Fprintln(stderr, "usage: castcheck classify [flags] <source-type> <target-type>")
		return exitUsage
	}

	conf, err := shared.loadConfig()
	if err != nil {
		printFailure(stderr, err, false)
		return exitUsage
	}

	operation, ok := parseOperation(*operationSymbol)
	if !ok {
		printFailure(stderr, fmt.Errorf("invalid cast operation `%s`", *operationSymbol), conf.Color)
		return exitUsage
	}

	result, err := classifyCast(flags.Arg(0), operation, flags.Arg(1))
	if err != nil {
		printFailure(stderr, err, conf.Color)
		return exitFailure
	}

	result.write(stdout, conf.Color)

	if result.err != nil {
		return exitFailure
	}
	return exitSuccess
}

func parseOperation(symbol string) (ast.Operation, bool) {
	for _, operation := range castOperations {
		if operation.Symbol() == symbol {
			return operation, true
		}
	}
	return ast.OperationUnknown, false
}
