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

	cnserrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/normalize"
)

// Sentinel causes for every cookbook failure. Use errors.Is to test for them.
var (
	// ErrInvalidName is shared with the normalize package.
	ErrInvalidName = normalize.ErrInvalidName

	ErrDuplicateName         = errors.New("name already exists")
	ErrInvalidCookTime       = errors.New("cook time must be a non-negative integer")
	ErrDuplicateRequiredItem = errors.New("required item listed more than once")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrUnknownEntryType      = errors.New("unknown entry type")

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrMissingReference = errors.New("required item not found")
	ErrCyclicReference  = errors.New("recipe requires itself")
	ErrExpansionTooDeep = errors.New("recipe nesting too deep")
	ErrNumericOverflow  = errors.New("numeric overflow")
)

// reasons maps each sentinel to the label used in metrics.
var reasons = []struct {
	err   error
	label string
}{
	{ErrInvalidName, "invalid_name"},
	{ErrDuplicateName, "duplicate_name"},
	{ErrInvalidCookTime, "invalid_cook_time"},
	{ErrDuplicateRequiredItem, "duplicate_required_item"},
	{ErrInvalidQuantity, "invalid_quantity"},
	{ErrUnknownEntryType, "unknown_entry_type"},
	{ErrRecipeNotFound, "recipe_not_found"},
	{ErrMissingReference, "missing_reference"},
	{ErrCyclicReference, "cyclic_reference"},
	{ErrExpansionTooDeep, "expansion_too_deep"},
	{ErrNumericOverflow, "numeric_overflow"},
}

// Reason returns a short snake_case label for the cookbook sentinel in err's
// chain, or "other".
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "other"
}

func invalid(cause error, message string, context map[string]any) error {
	return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, message, cause, context)
}
