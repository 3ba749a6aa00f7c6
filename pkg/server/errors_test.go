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

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/mchmarny/cookbook/pkg/errors"
)

func TestStatusAndRetryFromCode(t *testing.T) {
	tests := []struct {
		code      cnserrors.ErrorCode
		status    int
		retryable bool
	}{
		{cnserrors.ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{cnserrors.ErrCodeUnauthorized, http.StatusUnauthorized, false},
		{cnserrors.ErrCodeNotFound, http.StatusNotFound, false},
		{cnserrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, false},
		{cnserrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{cnserrors.ErrCodeUnavailable, http.StatusServiceUnavailable, true},
		{cnserrors.ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{cnserrors.ErrCodeInternal, http.StatusInternalServerError, true},
		{cnserrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatusFromCode(tt.code))
			assert.Equal(t, tt.retryable, retryableFromCode(tt.code))
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, map[string]any{}))

	got := mergeDetails(
		map[string]any{"recipe": "pancake", "item": "old"},
		map[string]any{"item": "batter", "error": "missing"},
	)
	assert.Equal(t, map[string]any{"recipe": "pancake", "item": "batter", "error": "missing"}, got)
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/entry", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	rec := httptest.NewRecorder()

	WriteError(rec, req, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
		"entry name already exists", false, map[string]any{"name": "egg"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, string(cnserrors.ErrCodeInvalidRequest), resp.Code)
	assert.Equal(t, "entry name already exists", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Retryable)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Equal(t, "egg", resp.Details["name"])
}

func TestWriteErrorFromErr(t *testing.T) {
	missing := errors.New("required item not found")

	tests := []struct {
		name      string
		err       error
		status    int
		code      cnserrors.ErrorCode
		message   string
		retryable bool
		details   map[string]any
	}{
		{
			name:    "structured with context and cause",
			err:     cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, "required item not found", missing, map[string]any{"recipe": "pancake", "item": "batter"}),
			status:  http.StatusBadRequest,
			code:    cnserrors.ErrCodeInvalidRequest,
			message: "required item not found",
			details: map[string]any{"recipe": "pancake", "item": "batter", "error": "required item not found", "route": "/summary"},
		},
		{
			name:    "structured without cause",
			err:     cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest, "query parameter name is required", map[string]any{"parameter": "name"}),
			status:  http.StatusBadRequest,
			code:    cnserrors.ErrCodeInvalidRequest,
			message: "query parameter name is required",
			details: map[string]any{"parameter": "name", "route": "/summary"},
		},
		{
			name:      "wrapped structured timeout",
			err:       fmt.Errorf("summary: %w", cnserrors.Wrap(cnserrors.ErrCodeTimeout, "resolution canceled", context.DeadlineExceeded)),
			status:    http.StatusGatewayTimeout,
			code:      cnserrors.ErrCodeTimeout,
			message:   "resolution canceled",
			retryable: true,
			details:   map[string]any{"error": context.DeadlineExceeded.Error(), "route": "/summary"},
		},
		{
			name:      "plain error falls back to internal",
			err:       errors.New("boom"),
			status:    http.StatusInternalServerError,
			code:      cnserrors.ErrCodeInternal,
			message:   "Failed to summarize recipe",
			retryable: true,
			details:   map[string]any{"error": "boom", "route": "/summary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteErrorFromErr(rec, httptest.NewRequest(http.MethodGet, "/summary", nil), tt.err,
				"Failed to summarize recipe", map[string]any{"route": "/summary"})

			require.Equal(t, tt.status, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.Equal(t, string(tt.code), resp.Code)
			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, tt.retryable, resp.Retryable)
			assert.Equal(t, tt.details, resp.Details)
		})
	}
}

func TestWriteMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteMethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/entry", nil), http.MethodGet, http.MethodPost)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, string(cnserrors.ErrCodeMethodNotAllowed), resp.Code)
	assert.Equal(t, http.MethodDelete, resp.Details["method"])
	assert.Equal(t, []any{http.MethodGet, http.MethodPost}, resp.Details["allowed"])
}
