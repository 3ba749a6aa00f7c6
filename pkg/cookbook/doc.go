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

// Package cookbook stores ingredients and recipes and resolves a recipe into
// the flat list of base ingredients and the total cook time needed to make
// one unit of it.
//
// # Entries
//
// Every entry is either an *Ingredient or a *Recipe, and names are unique
// across both. A recipe lists required items by name; an item may refer to an
// ingredient, to another recipe, or to a name that does not exist yet.
// References are only checked when a recipe is resolved.
//
// # Resolution
//
// Resolve expands a recipe depth-first, left to right. The quantity of each
// required item is multiplied by the quantity of every recipe above it, and
// ingredients are merged by name in first-seen order:
//
//	book := cookbook.New()
//	_ = book.Add(cookbook.IngredientRequest("Egg", 2))
//	_ = book.Add(cookbook.IngredientRequest("Flour", 1))
//	_ = book.Add(cookbook.RecipeRequest("Batter", cookbook.Item("Egg", 2), cookbook.Item("Flour", 1)))
//	_ = book.Add(cookbook.RecipeRequest("Pancake", cookbook.Item("Batter", 3)))
//
//	s, _ := book.Summary(ctx, "Pancake")
//	// s.Ingredients: Egg 6, Flour 3
//	// s.CookTime:    15
//
// Expansion fails on an unknown name (ErrMissingReference), on a recipe that
// requires itself directly or through other recipes (ErrCyclicReference), on
// chains nested deeper than defaults.MaxExpansionDepth (ErrExpansionTooDeep)
// and on quantities or cook times that do not fit in an int
// (ErrNumericOverflow).
//
// # Errors
//
// All errors returned by this package are *errors.StructuredError values with
// code INVALID_REQUEST wrapping one of the sentinel errors below, so callers
// can use errors.Is on the result.
//
// # HTTP
//
// Cookbook exposes HandleEntry, HandleSummary and HandleParse for the
// /entry, /summary and /parse routes.
package cookbook
