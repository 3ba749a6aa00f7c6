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

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/cookbook"
)

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "summary",
		EnableShellCompletion: true,
		Usage:                 "Resolve a recipe from a cookbook file",
		Description: `Load a cookbook file and print the flattened ingredients and total cook
time of one recipe as a RecipeSummary document.

# Examples

  cookbook summary --file cookbook.yaml --name Pancake
  cookbook summary -f https://example.com/cookbook.yaml -n Pancake -t json -o pancake.json`,
		Flags: []cli.Flag{
			fileFlag(true),
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "name of the recipe to resolve",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			book, err := loadCookbook(ctx, cmd.String("file"))
			if err != nil {
				return err
			}

			recipeName := cmd.String("name")
			s, err := book.Summary(ctx, recipeName)
			if err != nil {
				return fmt.Errorf("failed to resolve %q: %w", recipeName, err)
			}

			return writeOutput(ctx, cmd, outFormat, cookbook.NewSummaryDocument(version, s))
		},
	}
}
