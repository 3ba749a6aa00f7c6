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

package cookbook

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mchmarny/cookbook/pkg/defaults"
	cnserrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/normalize"
	"github.com/mchmarny/cookbook/pkg/serializer"
	"github.com/mchmarny/cookbook/pkg/server"
)

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Input string `json:"input" yaml:"input"`
}

// ParseResponse is the result of POST /parse.
type ParseResponse struct {
	Msg string `json:"msg" yaml:"msg"`
}

// HandleParse normalizes free-form text into an entry name.
func (c *Cookbook) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteMethodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req ParseRequest
	if err := decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid parse request", nil)
		return
	}

	name, err := normalize.Name(req.Input)
	if err != nil {
		server.WriteErrorFromErr(w, r, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"input does not contain a valid name", err, map[string]any{"input": req.Input}),
			"Invalid recipe name", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{Msg: name})
}

// HandleEntry adds one ingredient or recipe. The body is JSON unless the
// Content-Type names YAML.
func (c *Cookbook) HandleEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteMethodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req EntryRequest
	if err := decodeBody(w, r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid entry request", nil)
		return
	}

	if err := c.Add(req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to add entry", nil)
		return
	}

	slog.Debug("entry added", "type", req.Type, "name", req.Name)

	serializer.RespondJSON(w, http.StatusOK, struct{}{})
}

// HandleSummary resolves the recipe named by the name query parameter.
func (c *Cookbook) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.CookbookHandlerTimeout)
	defer cancel()

	// Names are matched exactly as stored, surrounding spaces included.
	name := r.URL.Query().Get("name")
	if name == "" {
		server.WriteErrorFromErr(w, r, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"query parameter name is required", map[string]any{"parameter": "name"}), "Failed to summarize recipe", nil)
		return
	}

	s, err := c.Summary(ctx, name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to summarize recipe", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, s)
}

// decodeBody reads a size-limited JSON or YAML request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "request body is required")
	}
	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)

	reader, err := serializer.NewReader(serializer.FormatFromContentType(r.Header.Get("Content-Type")), body)
	if err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "unsupported request body", err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Debug("failed to close request body", "error", closeErr)
		}
	}()

	if err := reader.Deserialize(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, "request body too large", err,
				map[string]any{"limit": tooLarge.Limit})
		}
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "malformed request body", err)
	}
	return nil
}
