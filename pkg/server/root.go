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
	"log/slog"
	"net/http"
	"slices"
	"time"

	cnserrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/serializer"
)

// RootResponse describes the service and the routes it serves.
type RootResponse struct {
	Name      string   `json:"name" yaml:"name"`
	Version   string   `json:"version" yaml:"version"`
	Ready     bool     `json:"ready" yaml:"ready"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Routes    []string `json:"routes" yaml:"routes"`
}

// handleRoot serves GET / and reports 404 for any path no other route matched.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	slog.Debug("handling root route",
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	})
}

// routes returns the sorted list of served paths, system endpoints included.
func (s *Server) routes() []string {
	routes := []string{pathHealth, pathReady, pathMetrics}
	for path := range s.config.Handlers {
		if path == "/" || isSystemPath(path) {
			continue
		}
		routes = append(routes, path)
	}
	slices.Sort(routes)
	return routes
}
