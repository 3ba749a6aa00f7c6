// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/cookbook/pkg/cookbook"
)

const pancakeYAML = `kind: Cookbook
apiVersion: cookbook.mchmarny.dev/v1alpha1
entries:
  - type: ingredient
    name: egg
    cookTime: 2
  - type: ingredient
    name: flour
    cookTime: 1
  - type: recipe
    name: batter
    requiredItems:
      - name: egg
        quantity: 2
      - name: flour
        quantity: 1
  - type: recipe
    name: pancake
    requiredItems:
      - name: batter
        quantity: 3
`

const brokenYAML = `kind: Cookbook
apiVersion: cookbook.mchmarny.dev/v1alpha1
entries:
  - type: ingredient
    name: egg
    cookTime: 2
  - type: recipe
    name: omelette
    requiredItems:
      - name: egg
        quantity: 3
  - type: recipe
    name: souffle
    requiredItems:
      - name: meringue
        quantity: 1
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &buf
	cmd.ErrWriter = &buf
	err := cmd.Run(t.Context(), append([]string{name}, args...))
	return buf.String(), err
}

func TestSummaryCmd(t *testing.T) {
	in := writeFile(t, "cookbook.yaml", pancakeYAML)
	out := filepath.Join(t.TempDir(), "summary.json")

	_, err := run(t, "summary", "--file", in, "--name", "pancake", "-t", "json", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc cookbook.SummaryDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotNil(t, doc.Summary)
	assert.Equal(t, "pancake", doc.Summary.Name)
	assert.Equal(t, 15, doc.Summary.CookTime)
	assert.Equal(t, []cookbook.RequiredItem{
		cookbook.Item("egg", 6),
		cookbook.Item("flour", 3),
	}, doc.Summary.Ingredients)
}

func TestSummaryCmdErrors(t *testing.T) {
	in := writeFile(t, "cookbook.yaml", pancakeYAML)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file flag", []string{"summary", "--name", "pancake"}},
		{"missing name flag", []string{"summary", "--file", in}},
		{"unknown format", []string{"summary", "--file", in, "--name", "pancake", "-t", "xml"}},
		{"file not found", []string{"summary", "--file", filepath.Join(t.TempDir(), "nope.yaml"), "--name", "pancake"}},
		{"not a recipe", []string{"summary", "--file", in, "--name", "egg"}},
		{"unknown recipe", []string{"summary", "--file", in, "--name", "waffle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCheckCmd(t *testing.T) {
	t.Run("all recipes resolve", func(t *testing.T) {
		in := writeFile(t, "cookbook.yaml", pancakeYAML)
		out := filepath.Join(t.TempDir(), "check.json")

		_, err := run(t, "check", "--file", in, "-t", "json", "-o", out)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		var res cookbook.CheckResult
		require.NoError(t, json.Unmarshal(data, &res))
		assert.Equal(t, 2, res.Passed)
		assert.Equal(t, 0, res.Failed)
	})

	t.Run("missing reference fails", func(t *testing.T) {
		in := writeFile(t, "cookbook.yaml", brokenYAML)
		out := filepath.Join(t.TempDir(), "check.json")

		_, err := run(t, "check", "--file", in, "-t", "json", "-o", out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 recipes failed")

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		var res cookbook.CheckResult
		require.NoError(t, json.Unmarshal(data, &res))
		require.Len(t, res.Recipes, 2)
		assert.Equal(t, "omelette", res.Recipes[0].Name)
		assert.Equal(t, cookbook.CheckStatusOK, res.Recipes[0].Status)
		assert.Equal(t, "souffle", res.Recipes[1].Name)
		assert.Equal(t, cookbook.CheckStatusError, res.Recipes[1].Status)
		assert.Equal(t, "missing_reference", res.Recipes[1].Reason)
	})
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "cool-", "recipe_42!!")
	require.NoError(t, err)
	assert.Equal(t, "Cool Recipe\n", out)

	_, err = run(t, "parse")
	assert.Error(t, err)

	_, err = run(t, "parse", "123@")
	assert.Error(t, err)
}

func TestRootCmdCommands(t *testing.T) {
	cmd := newRootCmd()
	names := make([]string, 0, len(cmd.Commands))
	for _, c := range cmd.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "summary", "check", "parse"}, names)
}
