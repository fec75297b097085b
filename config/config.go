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

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/onflow/castcheck/ast"
	"github.com/onflow/castcheck/parser"
	"github.com/onflow/castcheck/sema"
)

// DefaultFileName is the name of the configuration file
// which is loaded from the working directory, if it exists
const DefaultFileName = "castcheck.yaml"

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatCBOR:
		return true
	}
	return false
}

// Config is the configuration of the command line tool
type Config struct {
	// Hints enables the reporting of hints, e.g. for redundant casts
	Hints bool `yaml:"hints"`
	// Color enables colored output
	Color bool `yaml:"color"`
	// BaseTypes are additional type names which are declared in all programs
	BaseTypes []string `yaml:"baseTypes"`
	// Format is the output format of diagnostics
	Format Format `yaml:"format"`
}

func Default() Config {
	return Config{
		Color:  true,
		Format: FormatText,
	}
}

// options are the options set in a configuration file.
// Options which are absent are nil.
type options struct {
	Hints     *bool    `yaml:"hints"`
	Color     *bool    `yaml:"color"`
	BaseTypes []string `yaml:"baseTypes"`
	Format    *Format  `yaml:"format"`
}

func (o options) apply(config *Config) {
	if o.Hints != nil {
		config.Hints = *o.Hints
	}
	if o.Color != nil {
		config.Color = *o.Color
	}
	if len(o.BaseTypes) > 0 {
		config.BaseTypes = o.BaseTypes
	}
	if o.Format != nil && *o.Format != "" {
		config.Format = *o.Format
	}
}

// Parse parses a YAML configuration.
// Unset options have their default value, unknown options are rejected.
func Parse(data []byte) (Config, error) {
	var opts options
	err := yaml.UnmarshalWithOptions(data, &opts, yaml.DisallowUnknownField())
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	config := Default()
	opts.apply(&config)

	err = config.validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

// Load loads the configuration file at the given path.
// If the path is empty, the default file is loaded if it exists,
// and the default configuration is returned otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

func (c Config) validate() error {
	if !c.Format.Valid() {
		return fmt.Errorf("invalid format `%s`, expected one of `text`, `json`, `cbor`", c.Format)
	}

	for _, name := range c.BaseTypes {
		ty, err := parser.ParseType([]byte(name), parser.Config{})
		if err != nil {
			return fmt.Errorf("invalid base type `%s`", name)
		}
		if _, ok := ty.(*ast.NominalType); !ok {
			return fmt.Errorf("invalid base type `%s`: not a named type", name)
		}
	}

	return nil
}

// CheckerConfig returns the checker configuration for this configuration
func (c Config) CheckerConfig() *sema.Config {
	return &sema.Config{
		BaseTypes:    c.BaseTypes,
		HintsEnabled: c.Hints,
	}
}
