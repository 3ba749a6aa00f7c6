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
	"errors"
	"testing"

	cnserrors "github.com/mchmarny/cookbook/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndInsert(t *testing.T) {
	tests := []struct {
		name    string
		seed    []EntryRequest
		req     EntryRequest
		wantErr error
	}{
		{
			name: "ingredient",
			req:  IngredientRequest("Egg", 2),
		},
		{
			name: "zero cook time",
			req:  IngredientRequest("Salt", 0),
		},
		{
			name:    "negative cook time",
			req:     IngredientRequest("Egg", -1),
			wantErr: ErrInvalidCookTime,
		},
		{
			name:    "missing cook time",
			req:     EntryRequest{Type: EntryTypeIngredient, Name: "Egg"},
			wantErr: ErrInvalidCookTime,
		},
		{
			name: "recipe with forward references",
			req:  RecipeRequest("Batter", Item("Egg", 2), Item("Flour", 1)),
		},
		{
			name: "empty recipe",
			req:  RecipeRequest("Nothing"),
		},
		{
			name:    "duplicate ingredient name",
			seed:    []EntryRequest{IngredientRequest("Egg", 2)},
			req:     IngredientRequest("Egg", 3),
			wantErr: ErrDuplicateName,
		},
		{
			name:    "recipe reusing ingredient name",
			seed:    []EntryRequest{IngredientRequest("Egg", 2)},
			req:     RecipeRequest("Egg", Item("Flour", 1)),
			wantErr: ErrDuplicateName,
		},
		{
			name:    "ingredient reusing recipe name",
			seed:    []EntryRequest{RecipeRequest("Batter", Item("Egg", 1))},
			req:     IngredientRequest("Batter", 1),
			wantErr: ErrDuplicateName,
		},
		{
			name:    "duplicate name wins over bad cook time",
			seed:    []EntryRequest{IngredientRequest("Egg", 2)},
			req:     IngredientRequest("Egg", -5),
			wantErr: ErrDuplicateName,
		},
		{
			name:    "duplicate required item",
			req:     RecipeRequest("Double Beef", Item("Beef", 1), Item("Beef", 1)),
			wantErr: ErrDuplicateRequiredItem,
		},
		{
			name:    "duplicate required item wins over bad quantity",
			req:     RecipeRequest("Double Beef", Item("Beef", 0), Item("Beef", 1)),
			wantErr: ErrDuplicateRequiredItem,
		},
		{
			name:    "zero quantity",
			req:     RecipeRequest("Batter", Item("Egg", 0)),
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			req:     RecipeRequest("Batter", Item("Egg", -2)),
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "empty required item name",
			req:     RecipeRequest("Batter", Item(" ", 1)),
			wantErr: ErrInvalidName,
		},
		{
			name:    "empty name",
			req:     IngredientRequest("", 1),
			wantErr: ErrInvalidName,
		},
		{
			name:    "unknown type",
			req:     EntryRequest{Type: "sauce", Name: "Gravy"},
			wantErr: ErrUnknownEntryType,
		},
		{
			name:    "missing type",
			req:     EntryRequest{Name: "Gravy"},
			wantErr: ErrUnknownEntryType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			v := NewValidator(store)
			for _, s := range tt.seed {
				require.NoError(t, v.ValidateAndInsert(s))
			}
			beforeIngredients, beforeRecipes := store.Len()

			err := v.ValidateAndInsert(tt.req)

			afterIngredients, afterRecipes := store.Len()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				code, ok := cnserrors.CodeOf(err)
				assert.True(t, ok)
				assert.Equal(t, cnserrors.ErrCodeInvalidRequest, code)
				assert.Equal(t, beforeIngredients, afterIngredients, "ingredients changed on failure")
				assert.Equal(t, beforeRecipes, afterRecipes, "recipes changed on failure")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, beforeIngredients+beforeRecipes+1, afterIngredients+afterRecipes)
			assert.True(t, store.NameExists(tt.req.Name))
		})
	}
}

func TestValidateAndInsertCookTimeRoundTrip(t *testing.T) {
	store := NewStore()
	v := NewValidator(store)

	for i, cookTime := range []int{0, 1, 7, 1 << 40} {
		name := string(rune('A' + i))
		require.NoError(t, v.ValidateAndInsert(IngredientRequest(name, cookTime)))

		got, ok := store.LookupIngredient(name)
		require.True(t, ok)
		assert.Equal(t, cookTime, got.CookTime)
	}
}

func TestValidateAndInsertStoresRecipeAsGiven(t *testing.T) {
	store := NewStore()
	v := NewValidator(store)

	items := []RequiredItem{Item("Flour", 1), Item("Egg", 2)}
	require.NoError(t, v.ValidateAndInsert(RecipeRequest("Batter", items...)))

	// later changes by the caller must not leak into the store
	items[0].Quantity = 99

	got, ok := store.LookupRecipe("Batter")
	require.True(t, ok)
	assert.Equal(t, []RequiredItem{Item("Flour", 1), Item("Egg", 2)}, got.RequiredItems)
}

func TestReason(t *testing.T) {
	err := invalid(ErrCyclicReference, "cycle", nil)
	assert.Equal(t, "cyclic_reference", Reason(err))
	assert.Equal(t, "other", Reason(errors.New("boom")))
	assert.Equal(t, "other", Reason(nil))
}
