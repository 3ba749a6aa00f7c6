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
	"math"
	"math/bits"
	"slices"
	"strings"

	"github.com/mchmarny/cookbook/pkg/defaults"
)

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMaxDepth limits how many recipes may be nested inside one another,
// counting the recipe being resolved. Values below 1 are ignored.
func WithMaxDepth(depth int) ResolverOption {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// Resolver expands recipes read from a Reader. It never writes to the
// reader, and callers are responsible for keeping the reader unchanged for
// the duration of a Resolve call.
type Resolver struct {
	reader   Reader
	maxDepth int
}

// NewResolver returns a Resolver over reader.
func NewResolver(reader Reader, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		reader:   reader,
		maxDepth: defaults.MaxExpansionDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the flattened ingredients and total cook time for one unit
// of the named recipe.
func (r *Resolver) Resolve(name string) (*RecipeSummary, error) {
	s, _, err := r.resolve(name)
	return s, err
}

// resolve also reports the deepest recipe nesting reached.
func (r *Resolver) resolve(name string) (*RecipeSummary, int, error) {
	recipe, ok := r.reader.LookupRecipe(name)
	if !ok {
		ctx := map[string]any{"name": name}
		if _, isIngredient := r.reader.LookupIngredient(name); isIngredient {
			ctx["kind"] = string(EntryTypeIngredient)
		}
		return nil, 0, invalid(ErrRecipeNotFound, "recipe not found", ctx)
	}

	e := &expansion{
		reader:   r.reader,
		maxDepth: r.maxDepth,
		index:    make(map[string]int),
		items:    []RequiredItem{},
		active:   make(map[string]bool),
	}
	if err := e.expand(recipe, 1, 1); err != nil {
		return nil, e.deepest, err
	}

	return &RecipeSummary{
		Name:        recipe.Name,
		Ingredients: e.items,
		CookTime:    e.cookTime,
	}, e.deepest, nil
}

// expansion accumulates the result of one Resolve call.
type expansion struct {
	reader   Reader
	maxDepth int

	index    map[string]int
	items    []RequiredItem
	cookTime int

	// active and path hold the recipes on the current call path.
	active  map[string]bool
	path    []string
	deepest int
}

func (e *expansion) expand(recipe *Recipe, multiplier, depth int) error {
	if e.active[recipe.Name] {
		path := append(slices.Clone(e.path), recipe.Name)
		return invalid(ErrCyclicReference, "recipe requires itself", map[string]any{
			"recipe": recipe.Name,
			"path":   strings.Join(path, " -> "),
		})
	}
	if depth > e.maxDepth {
		return invalid(ErrExpansionTooDeep, "recipe nesting exceeds the expansion limit", map[string]any{
			"recipe":   recipe.Name,
			"maxDepth": e.maxDepth,
		})
	}

	e.active[recipe.Name] = true
	e.path = append(e.path, recipe.Name)
	e.deepest = max(e.deepest, depth)
	defer func() {
		delete(e.active, recipe.Name)
		e.path = e.path[:len(e.path)-1]
	}()

	for _, item := range recipe.RequiredItems {
		effective, ok := mulInt(item.Quantity, multiplier)
		if !ok {
			return overflow(recipe.Name, item.Name)
		}

		if ingredient, ok := e.reader.LookupIngredient(item.Name); ok {
			if err := e.addIngredient(recipe.Name, ingredient, effective); err != nil {
				return err
			}
			continue
		}

		if sub, ok := e.reader.LookupRecipe(item.Name); ok {
			if err := e.expand(sub, effective, depth+1); err != nil {
				return err
			}
			continue
		}

		return invalid(ErrMissingReference, "required item not found", map[string]any{
			"recipe": recipe.Name,
			"item":   item.Name,
		})
	}

	return nil
}

// addIngredient merges quantity units of ingredient into the running totals.
func (e *expansion) addIngredient(recipe string, ingredient *Ingredient, quantity int) error {
	t, ok := mulInt(ingredient.CookTime, quantity)
	if !ok {
		return overflow(recipe, ingredient.Name)
	}
	if e.cookTime, ok = addInt(e.cookTime, t); !ok {
		return overflow(recipe, ingredient.Name)
	}

	if i, seen := e.index[ingredient.Name]; seen {
		if e.items[i].Quantity, ok = addInt(e.items[i].Quantity, quantity); !ok {
			return overflow(recipe, ingredient.Name)
		}
		return nil
	}

	e.index[ingredient.Name] = len(e.items)
	e.items = append(e.items, RequiredItem{Name: ingredient.Name, Quantity: quantity})
	return nil
}

func overflow(recipe, item string) error {
	return invalid(ErrNumericOverflow, "recipe totals exceed the supported range", map[string]any{
		"recipe": recipe,
		"item":   item,
	})
}

// mulInt multiplies two non-negative ints, reporting false on overflow or
// negative input.
func mulInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// addInt adds two non-negative ints, reporting false on overflow or
// negative input.
func addInt(a, b int) (int, bool) {
	if a < 0 || b < 0 || b > math.MaxInt-a {
		return 0, false
	}
	return a + b, true
}
