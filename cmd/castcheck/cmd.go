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
	"flag"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora/v4"

	"github.com/onflow/castcheck/common"
	"github.com/onflow/castcheck/config"
	"github.com/onflow/castcheck/pretty"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

type commonFlags struct {
	configPath string
	noColor    bool
}

// newFlagSet returns a flag set for the given command,
// with the flags shared by all commands
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *commonFlags) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)

	shared := &commonFlags{}
	flags.StringVar(&shared.configPath, "config", "", "path of the configuration file (default: "+config.DefaultFileName+", if it exists)")
	flags.BoolVar(&shared.noColor, "no-color", false, "disable colored output")

	return flags, shared
}

// loadConfig loads the configuration, and applies the shared flags to it
func (f *commonFlags) loadConfig() (config.Config, error) {
	conf, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.noColor {
		conf.Color = false
	}
	return conf, nil
}

// printError pretty prints the given error, e.g. a parsing or checking error
func printError(
	w io.Writer,
	err error,
	location common.Location,
	codes map[common.Location][]byte,
	useColor bool,
) {
	printErr := pretty.NewErrorPrettyPrinter(w, useColor).
		PrettyPrintError(err, location, codes)
	if printErr != nil {
		panic(printErr)
	}
}

func printHint(
	w io.Writer,
	hint pretty.Hint,
	location common.Location,
	codes map[common.Location][]byte,
	useColor bool,
) {
	printErr := pretty.NewErrorPrettyPrinter(w, useColor).
		PrettyPrintHint(hint, location, codes)
	if printErr != nil {
		panic(printErr)
	}
}

func printFailure(w io.Writer, err error, useColor bool) {
	_, _ = fmt.Fprintln(w, colorizeError(err.Error(), useColor))
}

func colorize(message string, color aurora.Color, useColor bool) string {
	if !useColor {
		return message
	}
	return aurora.Colorize(message, color).String()
}

func colorizeSuccess(message string, useColor bool) string {
	return colorize(message, aurora.GreenFg|aurora.BrightFg|aurora.BoldFm, useColor)
}

func colorizeError(message string, useColor bool) string {
	return colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm, useColor)
}

func colorizeResult(message string, useColor bool) string {
	return colorize(message, aurora.YellowFg|aurora.BrightFg, useColor)
}
