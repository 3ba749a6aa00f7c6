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

// Package logging provides structured logging utilities for the cookbook binaries.
//
// It wraps the standard library slog package with consistent defaults:
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Module and version attributes on every record
//   - Source location tracking for debug logs
//
// Supported log levels (case-insensitive): debug, info (default), warn or
// warning, error. Unknown values fall back to info.
//
// Setting the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("cookbookd", version)
//	slog.Info("server starting", "port", 8080)
//
// Setting an explicit level (for example from a CLI flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("cookbook", version, "warn")
//
// Records look like:
//
//	{"time":"...","level":"INFO","msg":"cookbook seeded","module":"cookbookd","version":"v1.0.0","entries":12}
package logging
