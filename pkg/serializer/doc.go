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

// Package serializer reads and writes cookbook documents in several formats.
//
// Output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys (write-only)
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, summary); err != nil {
//		return err
//	}
//
// Reading a document from a local path or an http(s) URL:
//
//	doc, err := serializer.FromFileWithContext[cookbook.File](ctx, "cookbook.yaml")
//
// HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON buffers the encoding before writing headers so a failed
// encode never produces a partial response.
package serializer
