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
	"net/http"
	"time"

	"github.com/mchmarny/cookbook/pkg/serializer"
)

// Probe statuses reported by /health and /ready.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth reports liveness. It succeeds whenever the process serves HTTP.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeProbe(w, r, http.StatusOK, StatusHealthy, "")
}

// handleReady reports readiness. The server turns ready once it is
// listening, which happens only after the cookbook has been seeded.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.isReady() {
		s.writeProbe(w, r, http.StatusServiceUnavailable, StatusNotReady, "cookbook is not serving yet")
		return
	}
	s.writeProbe(w, r, http.StatusOK, StatusReady, "")
}

func (s *Server) writeProbe(w http.ResponseWriter, r *http.Request, code int, status, reason string) {
	if r.Method != http.MethodGet {
		WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	serializer.RespondJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	})
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}
