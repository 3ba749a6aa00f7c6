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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/normalize"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Normalize free-form text into an entry name",
		ArgsUsage: "TEXT...",
		Description: `Print the canonical name for the given text. Hyphens and underscores
separate words, anything other than letters is dropped and each word is
title-cased. Arguments are joined with spaces.

# Examples

  cookbook parse "cool- recipe_42!!"   # Cool Recipe`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("text to parse is required")
			}

			raw := strings.Join(cmd.Args().Slice(), " ")
			parsed, err := normalize.Name(raw)
			if err != nil {
				return fmt.Errorf("invalid name %q: %w", raw, err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, parsed)
			return err
		},
	}
}
