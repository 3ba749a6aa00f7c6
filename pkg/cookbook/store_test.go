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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := NewStore()

	_, ok := s.Lookup("Egg")
	assert.False(t, ok)
	assert.False(t, s.NameExists("Egg"))

	s.InsertIngredient(&Ingredient{Name: "Egg", CookTime: 2})
	s.InsertRecipe(&Recipe{Name: "Batter", RequiredItems: []RequiredItem{Item("Egg", 1)}})

	i, ok := s.LookupIngredient("Egg")
	require.True(t, ok)
	assert.Equal(t, 2, i.CookTime)

	_, ok = s.LookupRecipe("Egg")
	assert.False(t, ok, "ingredient must not be visible as recipe")

	r, ok := s.LookupRecipe("Batter")
	require.True(t, ok)
	assert.Equal(t, "Batter", r.EntryName())

	e, ok := s.Lookup("Batter")
	require.True(t, ok)
	switch v := e.(type) {
	case *Recipe:
		assert.Len(t, v.RequiredItems, 1)
	case *Ingredient:
		t.Fatalf("expected recipe, got ingredient %q", v.Name)
	}

	assert.True(t, s.NameExists("Egg"))
	assert.True(t, s.NameExists("Batter"))

	ingredients, recipes := s.Len()
	assert.Equal(t, 1, ingredients)
	assert.Equal(t, 1, recipes)
}

func TestStoreNames(t *testing.T) {
	s := NewStore()
	s.InsertIngredient(&Ingredient{Name: "Flour"})
	s.InsertRecipe(&Recipe{Name: "Batter"})
	s.InsertIngredient(&Ingredient{Name: "Egg"})
	s.InsertRecipe(&Recipe{Name: "Pancake"})

	assert.Equal(t, []string{"Batter", "Egg", "Flour", "Pancake"}, s.Names())
	assert.Equal(t, []string{"Batter", "Pancake"}, s.RecipeNames())
	assert.Empty(t, NewStore().Names())
}

func TestStoreInsertCopies(t *testing.T) {
	s := NewStore()
	in := &Ingredient{Name: "Egg", CookTime: 2}
	s.InsertIngredient(in)
	in.CookTime = 10

	got, ok := s.LookupIngredient("Egg")
	require.True(t, ok)
	assert.Equal(t, 2, got.CookTime)
}
