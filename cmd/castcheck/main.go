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
	"os"
	"sort"
)

type command struct {
	help    string
	handler func(args []string, stdout, stderr io.Writer) int
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"check": {
			help:    "Checks the casts of the given files",
			handler: runCheck,
		},
		"verify": {
			help:    "Verifies the diagnostics of the given fixture files against their expectations",
			handler: runVerify,
		},
		"classify": {
			help:    "Classifies a cast from a source type to a target type",
			handler: runClassify,
		},
		"parse": {
			help:    "Parses the given file and prints its syntax tree as JSON",
			handler: runParse,
		},
		"repl": {
			help:    "Starts an interactive cast classification prompt",
			handler: runREPL,
		},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printAvailableCommands(stderr)
		return exitUsage
	}

	commandName := args[0]

	command, ok := commands[commandName]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "Unknown command %s\n", commandName)
		printAvailableCommands(stderr)
		return exitUsage
	}

	return command.handler(args[1:], stdout, stderr)
}

func printAvailableCommands(w io.Writer) {
	type commandHelp struct {
		name string
		help string
	}

	commandHelps := make([]commandHelp, 0, len(commands))

	for name, command := range commands {
		commandHelps = append(commandHelps,
			commandHelp{
				name: name,
				help: command.help,
			},
		)
	}

	sort.Slice(commandHelps, func(i, j int) bool {
		return commandHelps[i].name < commandHelps[j].name
	})

	_, _ = fmt.Fprintf(w, "Available commands:\n")

	for _, commandHelp := range commandHelps {
		_, _ = fmt.Fprintf(w, "  %-10s %s\n", commandHelp.name, commandHelp.help)
	}
}
