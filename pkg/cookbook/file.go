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
	"fmt"
	"log/slog"

	cnserrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/header"
	"github.com/mchmarny/cookbook/pkg/serializer"
)

// File is a cookbook document: a header followed by entries in insert order.
//
//	kind: Cookbook
//	apiVersion: cookbook.mchmarny.dev/v1alpha1
//	entries:
//	  - type: ingredient
//	    name: Egg
//	    cookTime: 2
//	  - type: recipe
//	    name: Batter
//	    requiredItems:
//	      - name: Egg
//	        quantity: 2
type File struct {
	header.Header `json:",inline" yaml:",inline"`

	Entries []EntryRequest `json:"entries" yaml:"entries"`
}

// NewFile returns a File with an initialized header.
func NewFile(version string, entries ...EntryRequest) *File {
	f := &File{Entries: entries}
	f.Init(header.KindCookbook, header.APIVersion, version)
	return f
}

// LoadFile reads a cookbook document from a local path or an http(s) URL.
// The format is taken from the path extension.
func LoadFile(ctx context.Context, path string) (*File, error) {
	f, err := serializer.FromFileWithContext[File](ctx, path)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"failed to read cookbook file", err, map[string]any{"path": path})
	}

	if err := f.Validate(header.KindCookbook); err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"not a cookbook file", err, map[string]any{"path": path})
	}

	return f, nil
}

// Load adds the entries of f in order. It stops at the first rejected entry
// and returns its error annotated with the entry position; entries before it
// stay in the cookbook.
func (c *Cookbook) Load(f *File) error {
	if f == nil {
		return nil
	}

	for i, req := range f.Entries {
		if err := c.Add(req); err != nil {
			return fmt.Errorf("entry %d (%s %q): %w", i, req.Type, req.Name, err)
		}
	}

	ingredients, recipes := c.Counts()
	slog.Info("cookbook loaded",
		"entries", len(f.Entries),
		"ingredients", ingredients,
		"recipes", recipes,
	)
	return nil
}

// SummaryDocument wraps a RecipeSummary with a document header for output.
type SummaryDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Summary *RecipeSummary `json:"summary" yaml:"summary"`
}

// NewSummaryDocument returns a SummaryDocument for s.
func NewSummaryDocument(version string, s *RecipeSummary) *SummaryDocument {
	d := &SummaryDocument{Summary: s}
	d.Init(header.KindRecipeSummary, header.APIVersion, version)
	return d
}
