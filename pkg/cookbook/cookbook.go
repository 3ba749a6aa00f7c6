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
	"sync"
	"time"

	"github.com/mchmarny/cookbook/pkg/defaults"
	cnserrors "github.com/mchmarny/cookbook/pkg/errors"
)

// Option configures a Cookbook.
type Option func(*Cookbook)

// WithMaxExpansionDepth overrides defaults.MaxExpansionDepth.
func WithMaxExpansionDepth(depth int) Option {
	return func(c *Cookbook) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// Cookbook is a store guarded for concurrent use. Each Add runs its
// validation and insert under the write lock and each Summary runs its whole
// expansion under the read lock, so a resolution always sees one consistent
// set of entries.
type Cookbook struct {
	mu        sync.RWMutex
	store     *Store
	validator *Validator
	resolver  *Resolver
	maxDepth  int
}

// New returns an empty Cookbook.
func New(opts ...Option) *Cookbook {
	c := &Cookbook{
		store:    NewStore(),
		maxDepth: defaults.MaxExpansionDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.validator = NewValidator(c.store)
	c.resolver = NewResolver(c.store, WithMaxDepth(c.maxDepth))
	return c
}

// Add validates req and stores the entry it describes.
func (c *Cookbook) Add(req EntryRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validator.ValidateAndInsert(req); err != nil {
		entriesRejected.WithLabelValues(Reason(err)).Inc()
		return err
	}

	entriesAdded.WithLabelValues(string(req.Type)).Inc()
	ingredients, recipes := c.store.Len()
	entriesStored.WithLabelValues(string(EntryTypeIngredient)).Set(float64(ingredients))
	entriesStored.WithLabelValues(string(EntryTypeRecipe)).Set(float64(recipes))
	return nil
}

// Summary resolves the named recipe. It returns ctx's error, wrapped as a
// timeout, when ctx is already done.
func (c *Cookbook) Summary(ctx context.Context, name string) (*RecipeSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeTimeout, "summary canceled", err, map[string]any{
			"name": name,
		})
	}

	start := time.Now()

	c.mu.RLock()
	s, depth, err := c.resolver.resolve(name)
	c.mu.RUnlock()

	resolutionDuration.Observe(time.Since(start).Seconds())
	if depth > 0 {
		resolutionDepth.Observe(float64(depth))
	}
	if err != nil {
		resolutionsTotal.WithLabelValues("error").Inc()
		resolutionFailures.WithLabelValues(Reason(err)).Inc()
		return nil, err
	}

	resolutionsTotal.WithLabelValues("ok").Inc()
	return s, nil
}

// Lookup returns the named entry.
func (c *Cookbook) Lookup(name string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Lookup(name)
}

// Names returns all entry names in sorted order.
func (c *Cookbook) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Names()
}

// RecipeNames returns all recipe names in sorted order.
func (c *Cookbook) RecipeNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.RecipeNames()
}

// Counts returns the number of stored ingredients and recipes.
func (c *Cookbook) Counts() (ingredients, recipes int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Len()
}
