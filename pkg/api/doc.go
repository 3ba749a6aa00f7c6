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

// Package api wires the cookbook HTTP service.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/mchmarny/cookbook/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Creating the cookbook and optionally seeding it from a cookbook file
//   - Setting up route handlers
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /parse   - Normalize free-form text into an entry name
//   - POST /entry   - Add an ingredient or recipe (JSON or YAML body)
//   - GET /summary  - Resolve a recipe (?name=<recipe>)
//
// System Endpoints (no rate limiting):
//   - GET /        - Service name, version and routes
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/entry \
//	  -H "Content-Type: application/json" \
//	  -d '{"type": "ingredient", "name": "Egg", "cookTime": 2}'
//
//	curl "http://localhost:8080/summary?name=Pancake"
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - COOKBOOK_FILE: cookbook file (path or http(s) URL) loaded at start-up
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/cookbook/pkg/api.version=1.0.0'"
package api
