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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/parser"
)

func runParse(args []string, stdout, stderr io.Writer) int {
	flags, shared := newFlagSet("parse", stderr)

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if flags.NArg() != 1 {
		_, _ = fmt.Fprintln(stderr, "usage: castcheck parse [flags] <file>")
		return exitUsage
	}

	conf, err := shared.loadConfig()
	if err != nil {
		printFailure(stderr, err, false)
		return exitUsage
	}

	path := flags.Arg(0)
	location := common.StringLocation(path)

	code, err := os.ReadFile(path)
	if err != nil {
		printFailure(stderr, fmt.Errorf("failed to read file: %w", err), conf.Color)
		return exitFailure
	}

	program, err := parser.ParseProgram(code, parser.Config{})
	if err != nil {
		printError(stderr, err, location, map[common.Location][]byte{location: code}, conf.Color)
		return exitFailure
	}

	encoded, err := json.Marshal(program)
	if err != nil {
		printFailure(stderr, err, conf.Color)
		return exitFailure
	}

	err = writeJSON(stdout, encoded, conf.Color)
	if err != nil {
		printFailure(stderr, err, conf.Color)
		return exitFailure
	}

	return exitSuccess
}
