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

	"github.com/mchmarny/cookbook/pkg/header"
)

// Check statuses.
const (
	CheckStatusOK    = "ok"
	CheckStatusError = "error"
)

// RecipeCheck is the outcome of resolving one recipe.
type RecipeCheck struct {
	Name     string `json:"name" yaml:"name"`
	Status   string `json:"status" yaml:"status"`
	CookTime int    `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CheckResult reports whether every stored recipe resolves.
type CheckResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []RecipeCheck `json:"recipes" yaml:"recipes"`
	Passed  int           `json:"passed" yaml:"passed"`
	Failed  int           `json:"failed" yaml:"failed"`
}

// Check resolves every recipe in name order. It stops early only when ctx
// is done.
func (c *Cookbook) Check(ctx context.Context, version string) (*CheckResult, error) {
	res := &CheckResult{Recipes: []RecipeCheck{}}
	res.Init(header.KindCheckResult, header.APIVersion, version)

	for _, name := range c.RecipeNames() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s, err := c.Summary(ctx, name)
		if err != nil {
			res.Failed++
			res.Recipes = append(res.Recipes, RecipeCheck{
				Name:   name,
				Status: CheckStatusError,
				Reason: Reason(err),
				Error:  err.Error(),
			})
			continue
		}

		res.Passed++
		res.Recipes = append(res.Recipes, RecipeCheck{
			Name:     name,
			Status:   CheckStatusOK,
			CookTime: s.CookTime,
		})
	}

	return res, nil
}
