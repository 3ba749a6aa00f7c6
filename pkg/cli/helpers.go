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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/cookbook"
	"github.com/mchmarny/cookbook/pkg/defaults"
	"github.com/mchmarny/cookbook/pkg/serializer"
)

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %s)", serializer.SupportedFormats()),
	}
}

func fileFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Required: required,
		Usage:    "cookbook file path or http(s) URL",
		Sources:  cli.EnvVars("COOKBOOK_FILE"),
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// loadCookbook reads the cookbook file at path into a new Cookbook.
func loadCookbook(ctx context.Context, path string) (*cookbook.Cookbook, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CookbookLoadTimeout)
	defer cancel()

	f, err := cookbook.LoadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load cookbook from %q: %w", path, err)
	}

	book := cookbook.New()
	if err := book.Load(f); err != nil {
		return nil, fmt.Errorf("invalid cookbook %q: %w", path, err)
	}
	return book, nil
}

// writeOutput serializes v to the --output destination in the given format.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
