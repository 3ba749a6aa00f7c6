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

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"cookbook.json", FormatJSON},
		{"cookbook.JSON", FormatJSON},
		{"cookbook.yaml", FormatYAML},
		{"cookbook.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"https://example.com/cookbook.yaml?ref=main", FormatYAML},
		{"cookbook", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        Format
	}{
		{"application/json", FormatJSON},
		{"application/json; charset=utf-8", FormatJSON},
		{"", FormatJSON},
		{"application/yaml", FormatYAML},
		{"application/x-yaml", FormatYAML},
		{"Text/YAML; charset=utf-8", FormatYAML},
		{"text/plain", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromContentType(tt.contentType))
		})
	}
}

func TestNewReader_Errors(t *testing.T) {
	_, err := NewReader("xml", strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"egg","value":2}`},
		{"yaml", FormatYAML, "name: egg\nvalue: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)
			defer r.Close()

			var got testConfig
			require.NoError(t, r.Deserialize(&got))
			assert.Equal(t, testConfig{Name: "egg", Value: 2}, got)
		})
	}
}

func TestReader_DeserializeInvalid(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{invalid}`))
	require.NoError(t, err)

	var got testConfig
	assert.Error(t, r.Deserialize(&got))

	var nilReader *Reader
	assert.Error(t, nilReader.Deserialize(&got))
	assert.NoError(t, nilReader.Close())
}

func TestFromFileWithContext_Local(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: flour\nvalue: 1\n"), 0o600))

	got, err := FromFileWithContext[testConfig](t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, "flour", got.Name)
	assert.Equal(t, 1, got.Value)
}

func TestFromFileWithContext_Missing(t *testing.T) {
	_, err := FromFileWithContext[testConfig](t.Context(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFromFileWithContext_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cookbook.json" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, HttpReaderUserAgent, r.UserAgent())
		_, _ = w.Write([]byte(`{"name":"remote","value":9}`))
	}))
	defer srv.Close()

	got, err := FromFileWithContext[testConfig](context.Background(), srv.URL+"/cookbook.json")
	require.NoError(t, err)
	assert.Equal(t, "remote", got.Name)

	_, err = FromFileWithContext[testConfig](t.Context(), srv.URL+"/missing.json")
	assert.Error(t, err)
}
