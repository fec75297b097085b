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

	"github.com/c-bata/go-prompt"
)

const replHelpMessage = `
Enter a cast to classify it, e.g. ` + "`Int?? as Int`" + `.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the prompt
.help     Print this help message

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

var replTypeSuggestions = []prompt.Suggest{
	{Text: "Int", Description: "Signed integer"},
	{Text: "String", Description: "String"},
	{Text: "Bool", Description: "Boolean"},
	{Text: "Double", Description: "Double-precision floating point number"},
	{Text: "Any", Description: "Any type"},
	{Text: "as", Description: "Cast"},
	{Text: "as?", Description: "Failable cast"},
	{Text: "as!", Description: "Force cast"},
}

// replSession evaluates the lines entered into the prompt
type replSession struct {
	out      io.Writer
	useColor bool
	exited   bool
}

func (s *replSession) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if strings.HasPrefix(line, ".") {
		s.handleCommand(line)
		return
	}

	valueType, operation, targetType, ok := splitCast(line)
	if !ok {
		_, _ = fmt.Fprintln(s.out, colorizeError("Expected a cast, e.g. `Int?? as Int`. "+replAssistanceMessage, s.useColor))
		return
	}

	result, err := classifyCast(valueType, operation, targetType)
	if err != nil {
		_, _ = fmt.Fprintln(s.out, colorizeError(err.Error(), s.useColor))
		return
	}

	result.write(s.out, s.useColor)
}

func (s *replSession) handleCommand(command string) {
	switch command {
	case ".exit":
		s.exited = true
	case ".help":
		_, _ = fmt.Fprintln(s.out, replHelpMessage)
	default:
		_, _ = fmt.Fprintln(s.out, colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage), s.useColor))
	}
}

func runREPL(args []string, stdout, stderr io.Writer) int {
	flags, shared := newFlagSet("repl", stderr)

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	conf, err := shared.loadConfig()
	if err != nil {
		printFailure(stderr, err, false)
		return exitUsage
	}

	_, _ = fmt.Fprintf(stdout, "Welcome to castcheck!\n%s\n\n", replAssistanceMessage)

	session := &replSession{
		out:      stdout,
		useColor: conf.Color,
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		if len(d.GetWordBeforeCursor()) == 0 {
			return nil
		}

		return prompt.FilterHasPrefix(replTypeSuggestions, d.GetWordBeforeCursor(), false)
	}

	options := []prompt.Option{
		prompt.OptionPrefix("> "),
		prompt.OptionSetExitCheckerOnInput(func(_ string, breakline bool) bool {
			return breakline && session.exited
		}),
	}
	prompt.New(session.execute, suggest, options...).Run()

	return exitSuccess
}
