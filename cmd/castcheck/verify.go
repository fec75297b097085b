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
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/onflow/castcheck/verifier"
)

func runVerify(args []string, stdout, stderr io.Writer) int {
	flags, shared := newFlagSet("verify", stderr)
	hints := flags.Bool("hints", false, "verify hint expectations")
	concurrency := flags.Int("concurrency", 0, "maximum number of fixtures verified concurrently (default: unlimited)")
	showProgress := flags.Bool("progress", true, "show a progress bar when verifying multiple fixtures")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	paths := flags.Args()
	if len(paths) == 0 {
		_, _ = fmt.Fprintln(stderr, "no fixtures given")
		return exitUsage
	}

	conf, err := shared.loadConfig()
	if err != nil {
		printFailure(stderr, err, false)
		return exitUsage
	}

	checkerConfig := conf.CheckerConfig()
	checkerConfig.HintsEnabled = checkerConfig.HintsEnabled || *hints

	var onDone func(string)
	if *showProgress && len(paths) > 1 {
		bar := progressbar.NewOptions(
			len(paths),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("verifying"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		onDone = func(_ string) {
			_ = bar.Add(1)
		}
	}

	results, err := verifier.VerifyFiles(
		context.Background(),
		paths,
		verifier.Config{
			Checker: *checkerConfig,
		},
		*concurrency,
		onDone,
	)
	if err != nil {
		printFailure(stderr, err, conf.Color)
		return exitFailure
	}

	var failed int
	for _, result := range results {
		if result.Passed() {
			continue
		}
		failed++
		_, _ = fmt.Fprint(stdout, result.String())
	}

	summary := fmt.Sprintf("%d of %d fixture(s) passed", len(results)-failed, len(results))
	if failed > 0 {
		_, _ = fmt.Fprintln(stdout, colorizeError(summary, conf.Color))
		return exitFailure
	}

	_, _ = fmt.Fprintln(stdout, colorizeSuccess(summary, conf.Color))
	return exitSuccess
}
