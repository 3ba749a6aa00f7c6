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
	"maps"
	"slices"
)

// Reader is the read-only view of a store used during resolution.
type Reader interface {
	LookupIngredient(name string) (*Ingredient, bool)
	LookupRecipe(name string) (*Recipe, bool)
}

// Store holds ingredients and recipes by name. It performs no validation;
// callers keep the two maps disjoint. Store is not safe for concurrent use.
type Store struct {
	ingredients map[string]*Ingredient
	recipes     map[string]*Recipe
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		ingredients: make(map[string]*Ingredient),
		recipes:     make(map[string]*Recipe),
	}
}

// LookupIngredient returns the named ingredient. The result must not be modified.
func (s *Store) LookupIngredient(name string) (*Ingredient, bool) {
	i, ok := s.ingredients[name]
	return i, ok
}

// LookupRecipe returns the named recipe. The result must not be modified.
func (s *Store) LookupRecipe(name string) (*Recipe, bool) {
	r, ok := s.recipes[name]
	return r, ok
}

// Lookup returns the named entry of either kind.
func (s *Store) Lookup(name string) (Entry, bool) {
	if i, ok := s.ingredients[name]; ok {
		return i, true
	}
	if r, ok := s.recipes[name]; ok {
		return r, true
	}
	return nil, false
}

// NameExists reports whether name is used by an ingredient or a recipe.
func (s *Store) NameExists(name string) bool {
	_, isIngredient := s.ingredients[name]
	_, isRecipe := s.recipes[name]
	return isIngredient || isRecipe
}

// InsertIngredient stores a copy of i.
func (s *Store) InsertIngredient(i *Ingredient) {
	c := *i
	s.ingredients[c.Name] = &c
}

// InsertRecipe stores a copy of r, including its required items.
func (s *Store) InsertRecipe(r *Recipe) {
	c := Recipe{
		Name:          r.Name,
		RequiredItems: slices.Clone(r.RequiredItems),
	}
	s.recipes[c.Name] = &c
}

// Len returns the number of stored ingredients and recipes.
func (s *Store) Len() (ingredients, recipes int) {
	return len(s.ingredients), len(s.recipes)
}

// Names returns all entry names in sorted order.
func (s *Store) Names() []string {
	names := slices.AppendSeq(make([]string, 0, len(s.ingredients)+len(s.recipes)), maps.Keys(s.ingredients))
	names = slices.AppendSeq(names, maps.Keys(s.recipes))
	slices.Sort(names)
	return names
}

// RecipeNames returns the names of all recipes in sorted order.
func (s *Store) RecipeNames() []string {
	return slices.Sorted(maps.Keys(s.recipes))
}
