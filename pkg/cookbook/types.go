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

// Entry is a stored cookbook entry: either an *Ingredient or a *Recipe.
type Entry interface {
	// EntryName returns the unique name of the entry.
	EntryName() string

	// entry seals the interface to the two types in this package.
	entry()
}

// Ingredient is a base entry that does not expand any further.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	CookTime int    `json:"cookTime" yaml:"cookTime"`
}

// EntryName returns the ingredient name.
func (i *Ingredient) EntryName() string { return i.Name }

func (*Ingredient) entry() {}

// RequiredItem references another entry by name with a quantity.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Item is a shorthand for building a RequiredItem.
func Item(name string, quantity int) RequiredItem {
	return RequiredItem{Name: name, Quantity: quantity}
}

// Recipe is an entry made of other entries.
type Recipe struct {
	Name          string         `json:"name" yaml:"name"`
	RequiredItems []RequiredItem `json:"requiredItems" yaml:"requiredItems"`
}

// EntryName returns the recipe name.
func (r *Recipe) EntryName() string { return r.Name }

func (*Recipe) entry() {}

// EntryType names the kind of entry in an EntryRequest.
type EntryType string

const (
	EntryTypeIngredient EntryType = "ingredient"
	EntryTypeRecipe     EntryType = "recipe"
)

// EntryRequest is the wire form of an entry, as posted to /entry or listed
// in a cookbook file. CookTime applies to ingredients and RequiredItems to
// recipes.
type EntryRequest struct {
	Type          EntryType      `json:"type" yaml:"type"`
	Name          string         `json:"name" yaml:"name"`
	CookTime      *int           `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty"`
}

// IngredientRequest builds an EntryRequest for an ingredient.
func IngredientRequest(name string, cookTime int) EntryRequest {
	return EntryRequest{
		Type:     EntryTypeIngredient,
		Name:     name,
		CookTime: &cookTime,
	}
}

// RecipeRequest builds an EntryRequest for a recipe.
func RecipeRequest(name string, items ...RequiredItem) EntryRequest {
	return EntryRequest{
		Type:          EntryTypeRecipe,
		Name:          name,
		RequiredItems: items,
	}
}

// RecipeSummary is the resolved form of a recipe. Ingredients holds each base
// ingredient once, in the order it was first reached.
type RecipeSummary struct {
	Name        string         `json:"name" yaml:"name"`
	Ingredients []RequiredItem `json:"ingredients" yaml:"ingredients"`
	CookTime    int            `json:"cookTime" yaml:"cookTime"`
}
