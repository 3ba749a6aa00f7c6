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

// Package cli implements the cookbook command-line interface.
//
// # Commands
//
// serve - run the HTTP API:
//
//	cookbook serve [--file cookbook.yaml] [--config server.yaml]
//
// summary - resolve one recipe from a cookbook file:
//
//	cookbook summary --file cookbook.yaml --name Pancake [--format yaml|json|table] [--output FILE]
//
// check - resolve every recipe in a cookbook file, failing if any does not resolve:
//
//	cookbook check --file cookbook.yaml [--format yaml|json|table] [--output FILE]
//
// parse - normalize free-form text into an entry name:
//
//	cookbook parse "cool- recipe_42!!"
//
// # Global Flags
//
//   - --log-level: debug, info, warn or error (env LOG_LEVEL)
//   - --config: server config file used by serve (env COOKBOOK_CONFIG)
//
// Cookbook files may be local paths or http(s) URLs and are read as YAML or
// JSON based on their extension.
package cli
