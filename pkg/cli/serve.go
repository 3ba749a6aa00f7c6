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

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the cookbook HTTP API",
		Description: `Serve the cookbook API until interrupted:

  POST /parse    normalize free-form text into an entry name
  POST /entry    add an ingredient or recipe
  GET  /summary  resolve a recipe (?name=<recipe>)

The store starts empty unless --file names a cookbook file to load first.
Server settings come from the environment (PORT, RATE_LIMIT,
RATE_LIMIT_BURST, SHUTDOWN_TIMEOUT_SECONDS) or from --config.

# Examples

  cookbook serve
  cookbook serve --file cookbook.yaml --config server.yaml`,
		Flags: []cli.Flag{
			fileFlag(false),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Run(ctx, api.Options{
				Version:    version,
				File:       cmd.String("file"),
				ConfigFile: cmd.String("config"),
			})
		},
	}
}
