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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/itchyny/gojq"
	"github.com/tidwall/pretty"
	"golang.org/x/sync/errgroup"

	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/config"
	"github.com/onflow/castcheck/encoding/ccf"
	"github.com/onflow/castcheck/parser"
	"github.com/onflow/castcheck/sema"
)

// checkResult is the result of parsing and checking a file
type checkResult struct {
	location common.StringLocation
	code     []byte
	// err is the parsing or checking error, if any
	err   error
	hints []sema.Hint
	casts int
}

func (r checkResult) report() fileReport {
	diagnostics := append(
		errorDiagnostics(r.err, r.code),
		hintDiagnostics(r.hints)...,
	)
	if diagnostics == nil {
		diagnostics = []diagnostic{}
	}

	return fileReport{
		Path:        string(r.location),
		Casts:       r.casts,
		Diagnostics: diagnostics,
	}
}

func checkCode(code []byte, location common.StringLocation, checkerConfig *sema.Config) checkResult {
	result := checkResult{
		location: location,
		code:     code,
	}

	program, err := parser.ParseProgram(code, parser.Config{})
	if err != nil {
		result.err = err
		return result
	}

	checker, err := sema.NewChecker(program, location, checkerConfig)
	if err != nil {
		result.err = err
		return result
	}

	result.err = checker.Check()
	result.hints = checker.Hints()
	result.casts = len(checker.Elaboration.CastingExpressions())

	return result
}

// checkFiles parses and checks the given files concurrently, using one checker per file.
// The results are in the order of the paths.
func checkFiles(ctx context.Context, paths []string, checkerConfig *sema.Config) ([]checkResult, error) {
	results := make([]checkResult, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			code, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			// Each checker gets its own copy of the configuration
			fileConfig := *checkerConfig
			results[i] = checkCode(code, common.StringLocation(path), &fileConfig)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	flags, shared := newFlagSet("check", stderr)
	format := flags.String("format", "", "output format: text, json, or cbor (default: text)")
	jqFilter := flags.String("jq", "", "jq filter applied to the JSON output")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	paths := flags.Args()
	if len(paths) == 0 {
		_, _ = fmt.Fprintln(stderr, "no files given")
		return exitUsage
	}

	conf, err := shared.loadConfig()
	if err != nil {
		printFailure(stderr, err, false)
		return exitUsage
	}

	if *format != "" {
		conf.Format = config.Format(*format)
	}
	if *jqFilter != "" && conf.Format == config.FormatText {
		conf.Format = config.FormatJSON
	}
	if !conf.Format.Valid() {
		printFailure(stderr, fmt.Errorf("invalid format `%s`", conf.Format), conf.Color)
		return exitUsage
	}
	if *jqFilter != "" && conf.Format != config.FormatJSON {
		printFailure(stderr, fmt.Errorf("--jq requires the JSON format"), conf.Color)
		return exitUsage
	}

	results, err := checkFiles(context.Background(), paths, conf.CheckerConfig())
	if err != nil {
		printFailure(stderr, err, conf.Color)
		return exitFailure
	}

	switch conf.Format {
	case config.FormatText:
		writeTextReport(stdout, results, conf.Color)

	case config.FormatJSON:
		err = writeJSONReport(stdout, results, *jqFilter, conf.Color)

	case config.FormatCBOR:
		err = writeCBORReport(stdout, results)
	}

	if err != nil {
		printFailure(stderr, err, conf.Color)
		return exitFailure
	}

	for _, result := range results {
		if result.err != nil {
			return exitFailure
		}
	}

	return exitSuccess
}

func writeTextReport(w io.Writer, results []checkResult, useColor bool) {
	var errorCount, hintCount int

	for _, result := range results {
		codes := map[common.Location][]byte{
			result.location: result.code,
		}

		if result.err != nil {
			printError(w, result.err, result.location, codes, useColor)
			errorCount += len(errorDiagnostics(result.err, nil))
		}

		for _, hint := range result.hints {
			printHint(w, hint, result.location, codes, useColor)
			hintCount++
		}
	}

	summary := fmt.Sprintf(
		"%d error(s), %d hint(s) in %d file(s)",
		errorCount,
		hintCount,
		len(results),
	)
	if errorCount > 0 {
		summary = colorizeError(summary, useColor)
	} else {
		summary = colorizeSuccess(summary, useColor)
	}
	_, _ = fmt.Fprintln(w, summary)
}

func reports(results []checkResult) []fileReport {
	reports := make([]fileReport, 0, len(results))
	for _, result := range results {
		reports = append(reports, result.report())
	}
	return reports
}

func writeJSONReport(w io.Writer, results []checkResult, filter string, useColor bool) error {
	encoded, err := json.Marshal(reports(results))
	if err != nil {
		return err
	}

	if filter == "" {
		return writeJSON(w, encoded, useColor)
	}

	query, err := gojq.Parse(filter)
	if err != nil {
		return fmt.Errorf("invalid jq filter: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("invalid jq filter: %w", err)
	}

	// gojq operates on generic JSON values
	var input any
	err = json.Unmarshal(encoded, &input)
	if err != nil {
		return err
	}

	iter := code.Run(input)
	for {
		value, ok := iter.Next()
		if !ok {
			return nil
		}

		if err, ok := value.(error); ok {
			return fmt.Errorf("jq filter failed: %w", err)
		}

		output, err := json.Marshal(value)
		if err != nil {
			return err
		}

		err = writeJSON(w, output, useColor)
		if err != nil {
			return err
		}
	}
}

func writeJSON(w io.Writer, encoded []byte, useColor bool) error {
	output := pretty.Pretty(encoded)
	if useColor {
		output = pretty.Color(output, nil)
	}
	_, err := w.Write(output)
	return err
}

func writeCBORReport(w io.Writer, results []checkResult) error {
	encoded, err := ccf.CBOREncMode.Marshal(reports(results))
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}
