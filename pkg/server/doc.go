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

// Package server provides the HTTP server shared by the cookbook API.
//
// The server wraps API handlers with a common middleware chain:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for correlating logs and error responses
//   - API version negotiation through the Accept header
//   - Panic recovery
//   - Prometheus request metrics
//
// Health, readiness and metrics endpoints are served outside the chain.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookbookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/summary": book.HandleSummary,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads defaults and overrides them from the environment:
//
//	PORT                      listen port (default: 8080)
//	RATE_LIMIT                requests per second (default: 100)
//	RATE_LIMIT_BURST          burst size (default: 200)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown window (default: 30)
//
// LoadConfigFile reads the same keys in lower case from a YAML, JSON or
// TOML file. Environment variables still take precedence.
//
// # System Endpoints
//
//	GET /         service name, version and served routes
//	GET /health   always 200 while the process is up (liveness)
//	GET /ready    200 when serving, 503 before start and during shutdown
//	GET /metrics  Prometheus metrics
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per second
//	  X-RateLimit-Remaining: Tokens remaining in the bucket
//	  X-RateLimit-Reset: Unix timestamp when the bucket refills
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "recipe not found",
//	  "details": {"name": "Pancake", "error": "recipe not found"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the status from the error code of a
// pkg/errors.StructuredError:
//   - INVALID_REQUEST: 400
//   - NOT_FOUND: 404
//   - METHOD_NOT_ALLOWED: 405
//   - RATE_LIMIT_EXCEEDED: 429
//   - SERVICE_UNAVAILABLE: 503
//   - TIMEOUT: 504
//   - INTERNAL and anything else: 500
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Configuration: https://pkg.go.dev/github.com/spf13/viper
package server
