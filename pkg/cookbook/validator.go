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

import "strings"

// Validator checks entry requests and commits the valid ones to a store.
type Validator struct {
	store *Store
}

// NewValidator returns a Validator writing into store.
func NewValidator(store *Store) *Validator {
	return &Validator{store: store}
}

// ValidateAndInsert inserts the entry described by req. The first failed
// check is returned and nothing is written; on success exactly one entry is
// added. Required items are not resolved, so a recipe may refer to entries
// that are added later.
func (v *Validator) ValidateAndInsert(req EntryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid(ErrInvalidName, "entry name is required", map[string]any{
			"type": string(req.Type),
		})
	}

	if v.store.NameExists(req.Name) {
		return invalid(ErrDuplicateName, "entry name already exists", map[string]any{
			"name": req.Name,
		})
	}

	switch req.Type {
	case EntryTypeIngredient:
		return v.insertIngredient(req)
	case EntryTypeRecipe:
		return v.insertRecipe(req)
	default:
		return invalid(ErrUnknownEntryType, "entry type must be ingredient or recipe", map[string]any{
			"name": req.Name,
			"type": string(req.Type),
		})
	}
}

func (v *Validator) insertIngredient(req EntryRequest) error {
	if req.CookTime == nil || *req.CookTime < 0 {
		ctx := map[string]any{"name": req.Name}
		if req.CookTime != nil {
			ctx["cookTime"] = *req.CookTime
		}
		return invalid(ErrInvalidCookTime, "ingredient cook time is invalid", ctx)
	}

	v.store.InsertIngredient(&Ingredient{
		Name:     req.Name,
		CookTime: *req.CookTime,
	})
	return nil
}

func (v *Validator) insertRecipe(req EntryRequest) error {
	seen := make(map[string]struct{}, len(req.RequiredItems))
	for _, item := range req.RequiredItems {
		if _, dup := seen[item.Name]; dup {
			return invalid(ErrDuplicateRequiredItem, "recipe lists a required item more than once", map[string]any{
				"recipe": req.Name,
				"item":   item.Name,
			})
		}
		seen[item.Name] = struct{}{}
	}

	for _, item := range req.RequiredItems {
		if strings.TrimSpace(item.Name) == "" {
			return invalid(ErrInvalidName, "required item name is required", map[string]any{
				"recipe": req.Name,
			})
		}
		if item.Quantity <= 0 {
			return invalid(ErrInvalidQuantity, "required item quantity is invalid", map[string]any{
				"recipe":   req.Name,
				"item":     item.Name,
				"quantity": item.Quantity,
			})
		}
	}

	v.store.InsertRecipe(&Recipe{
		Name:          req.Name,
		RequiredItems: req.RequiredItems,
	})
	return nil
}
