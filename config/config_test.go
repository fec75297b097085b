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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {

	t.Parallel()

	t.Run("all options", func(t *testing.T) {
		t.Parallel()

		config, err := Parse([]byte(`
hints: true
color: false
baseTypes:
  - Animal
  - Dog
format: json
`))
		require.NoError(t, err)

		assert.Equal(t,
			Config{
				Hints:     true,
				Color:     false,
				BaseTypes: []string{"Animal", "Dog"},
				Format:    FormatJSON,
			},
			config,
		)

		checkerConfig := config.CheckerConfig()
		assert.True(t, checkerConfig.HintsEnabled)
		assert.Equal(t, []string{"Animal", "Dog"}, checkerConfig.BaseTypes)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		config, err := Parse([]byte("hints: true\n"))
		require.NoError(t, err)

		assert.True(t, config.Color)
		assert.Equal(t, FormatText, config.Format)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		config, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("only comments", func(t *testing.T) {
		t.Parallel()

		config, err := Parse([]byte("# just a comment\n"))
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
		assert.True(t, config.Color)
	})

	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("colour: true\n"))
		require.ErrorContains(t, err, `unknown field "colour"`)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("format: xml\n"))
		require.EqualError(t, err, "invalid format `xml`, expected one of `text`, `json`, `cbor`")
	})

	t.Run("invalid base type", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("baseTypes: ['Int?']\n"))
		require.EqualError(t, err, "invalid base type `Int?`: not a named type")

		_, err = Parse([]byte("baseTypes: ['let']\n"))
		require.EqualError(t, err, "invalid base type `let`")
	})
}

func TestLoad(t *testing.T) {

	t.Parallel()

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		err := os.WriteFile(path, []byte("format: cbor\n"), 0o600)
		require.NoError(t, err)

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, FormatCBOR, config.Format)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "failed to read configuration")
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "invalid.yaml")
		err := os.WriteFile(path, []byte("format: xml\n"), 0o600)
		require.NoError(t, err)

		_, err = Load(path)
		require.ErrorContains(t, err, "invalid.yaml: invalid format `xml`")
	})
}
