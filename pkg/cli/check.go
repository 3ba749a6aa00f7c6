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
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Resolve every recipe in a cookbook file",
		Description: `Load a cookbook file, resolve each recipe and report which ones succeed.
Missing references, cycles and overflowing totals are reported per recipe.
The command fails when any recipe does not resolve, which makes it usable
as a CI gate for cookbook files.

# Examples

  cookbook check --file cookbook.yaml
  cookbook check -f cookbook.yaml -t table`,
		Flags: []cli.Flag{
			fileFlag(true),
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

			res, err := book.Check(ctx, version)
			if err != nil {
				return fmt.Errorf("check interrupted: %w", err)
			}

			if err := writeOutput(ctx, cmd, outFormat, res); err != nil {
				return err
			}

			if res.Failed > 0 {
				return fmt.Errorf("%d of %d recipes failed to resolve", res.Failed, res.Failed+res.Passed)
			}
			return nil
		},
	}
}
