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

package verifier

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/sync/errgroup"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/errors"
	"github.com/onflow/castcheck/parser"
	"github.com/onflow/castcheck/sema"
)

type Config struct {
	Parser parser.Config
	// Checker is the config of the checker.
	// Hint expectations are only verified if hints are enabled
	Checker sema.Config
}

// Mismatch is an expected diagnostic which was not emitted
type Mismatch struct {
	Diagnostic
	// Suggestion is the closest unexpected message of the same kind on the same line, if any
	Suggestion string
}

type Result struct {
	Location   common.Location
	Expected   []Diagnostic
	Actual     []Diagnostic
	Missing    []Mismatch
	Unexpected []Diagnostic
	// CastCount is the number of casting expressions in the program
	CastCount int
}

// Passed returns true if exactly the expected diagnostics were emitted
func (r *Result) Passed() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

func (r *Result) String() string {
	var sb strings.Builder

	for _, missing := range r.Missing {
		fmt.Fprintf(&sb, "%s:%d: expected %s not produced: %s\n",
			r.Location,
			missing.Line,
			missing.Kind.Name(),
			missing.Message,
		)
		if missing.Suggestion != "" {
			fmt.Fprintf(&sb, "%s:%d: did you mean: %s\n",
				r.Location,
				missing.Line,
				missing.Suggestion,
			)
		}
	}

	for _, unexpected := range r.Unexpected {
		fmt.Fprintf(&sb, "%s:%d: unexpected %s produced: %s\n",
			r.Location,
			unexpected.Line,
			unexpected.Kind.Name(),
			unexpected.Message,
		)
	}

	return sb.String()
}

// Verify parses and checks the given code,
// and compares the emitted diagnostics against the expectations written in its comments.
//
// The returned error is non-nil if the code could not be parsed,
// or if an expectation is malformed.
func Verify(code []byte, location common.Location, config Config) (*Result, error) {

	program, err := parser.ParseProgram(code, config.Parser)
	if err != nil {
		return nil, err
	}

	expectations, err := ParseExpectations(code, program)
	if err != nil {
		return nil, err
	}

	checkerConfig := config.Checker

	checker, err := sema.NewChecker(program, location, &checkerConfig)
	if err != nil {
		return nil, err
	}

	checkErr := checker.Check()

	actual, err := emittedDiagnostics(checkErr, checker.Hints())
	if err != nil {
		return nil, err
	}

	if !checkerConfig.HintsEnabled {
		expectations = withoutKind(expectations, DiagnosticKindHint)
	}

	missing, unexpected := compare(expectations, actual)

	return &Result{
		Location:   location,
		Expected:   expectations,
		Actual:     actual,
		Missing:    suggest(missing, unexpected),
		Unexpected: unexpected,
		CastCount:  countCasts(program),
	}, nil
}

// VerifyFile reads and verifies the file at the given path.
func VerifyFile(path string, config Config) (*Result, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	return Verify(code, common.StringLocation(path), config)
}

// VerifyFiles verifies the files at the given paths concurrently.
// The results are in the order of the paths.
// onDone is called after each file was verified, and may be nil.
func VerifyFiles(
	ctx context.Context,
	paths []string,
	config Config,
	concurrency int,
	onDone func(path string),
) ([]*Result, error) {

	results := make([]*Result, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		group.SetLimit(concurrency)
	}

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := VerifyFile(path, config)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result

			if onDone != nil {
				onDone(path)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func emittedDiagnostics(checkErr error, hints []sema.Hint) ([]Diagnostic, error) {
	var diagnostics []Diagnostic

	if checkErr != nil {
		var parentErr errors.ParentError
		if !goerrors.As(checkErr, &parentErr) {
			return nil, errors.NewUnexpectedErrorFromCause(checkErr)
		}

		for _, childErr := range parentErr.ChildErrors() {
			diagnostics = append(diagnostics,
				Diagnostic{
					Kind:    DiagnosticKindError,
					Line:    diagnosticLine(childErr),
					Message: childErr.Error(),
				},
			)
		}
	}

	for _, hint := range hints {
		diagnostics = append(diagnostics,
			Diagnostic{
				Kind:    DiagnosticKindHint,
				Line:    hint.StartPosition().Line,
				Message: hint.Hint(),
			},
		)
	}

	return diagnostics, nil
}

// diagnosticLine returns the line of the given error, or 0 if it has no position
func diagnosticLine(err error) int {
	positioned, ok := err.(ast.HasPosition)
	if !ok {
		return 0
	}
	return positioned.StartPosition().Line
}

func withoutKind(diagnostics []Diagnostic, kind DiagnosticKind) []Diagnostic {
	var result []Diagnostic
	for _, diagnostic := range diagnostics {
		if diagnostic.Kind == kind {
			continue
		}
		result = append(result, diagnostic)
	}
	return result
}

// compare compares the expected and the actual diagnostics as multisets.
// The missing diagnostics are in the order of the expectations,
// the unexpected diagnostics are in the order they were emitted.
func compare(expected, actual []Diagnostic) (missing, unexpected []Diagnostic) {
	remaining := make(map[Diagnostic]int, len(actual))
	for _, diagnostic := range actual {
		remaining[diagnostic]++
	}

	for _, diagnostic := range expected {
		if remaining[diagnostic] > 0 {
			remaining[diagnostic]--
			continue
		}
		missing = append(missing, diagnostic)
	}

	for _, diagnostic := range actual {
		if remaining[diagnostic] > 0 {
			remaining[diagnostic]--
			unexpected = append(unexpected, diagnostic)
		}
	}

	return missing, unexpected
}

func suggest(missing, unexpected []Diagnostic) []Mismatch {
	var mismatches []Mismatch
	for _, diagnostic := range missing {
		mismatches = append(mismatches,
			Mismatch{
				Diagnostic: diagnostic,
				Suggestion: closestMessage(diagnostic, unexpected),
			},
		)
	}
	return mismatches
}

func closestMessage(expected Diagnostic, candidates []Diagnostic) string {
	expectedRunes := []rune(expected.Message)

	closestDistance := -1
	var closestMessage string

	for _, candidate := range candidates {
		if candidate.Kind != expected.Kind ||
			candidate.Line != expected.Line {

			continue
		}

		distance := levenshtein.DistanceForStrings(
			expectedRunes,
			[]rune(candidate.Message),
			levenshtein.DefaultOptions,
		)

		if closestDistance < 0 || distance < closestDistance {
			closestDistance = distance
			closestMessage = candidate.Message
		}
	}

	return closestMessage
}

func countCasts(program *ast.Program) int {
	var count int
	ast.Inspect(program, func(element ast.Element) bool {
		if _, ok := element.(*ast.CastingExpression); ok {
			count++
		}
		return true
	})
	return count
}
