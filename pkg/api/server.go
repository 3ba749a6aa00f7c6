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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mchmarny/cookbook/pkg/cookbook"
	"github.com/mchmarny/cookbook/pkg/defaults"
	"github.com/mchmarny/cookbook/pkg/logging"
	"github.com/mchmarny/cookbook/pkg/server"
)

const (
	name           = "cookbookd"
	versionDefault = "dev"

	// EnvCookbookFile names a cookbook file loaded into the store at start-up.
	EnvCookbookFile = "COOKBOOK_FILE"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/cookbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options configures Run.
type Options struct {
	// Version reported by the server. Defaults to the build version.
	Version string

	// File is an optional cookbook file to seed the store with.
	File string

	// ConfigFile is an optional server config file. When empty, server
	// settings come from the environment only.
	ConfigFile string
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, seeds the cookbook from COOKBOOK_FILE when set,
// sets up routes, and handles graceful shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	return Run(context.Background(), Options{
		File: os.Getenv(EnvCookbookFile),
	})
}

// Run builds the server described by opts and blocks until ctx is canceled
// or the process is signaled.
func Run(ctx context.Context, opts Options) error {
	s, _, err := newServer(ctx, opts)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// Routes returns the application routes served for book.
func Routes(book *cookbook.Cookbook) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/parse":   book.HandleParse,
		"/entry":   book.HandleEntry,
		"/summary": book.HandleSummary,
	}
}

func newServer(ctx context.Context, opts Options) (*server.Server, *cookbook.Cookbook, error) {
	if opts.Version == "" {
		opts.Version = version
	}

	cfg := server.NewConfig()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = server.LoadConfigFile(opts.ConfigFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load server config %q: %w", opts.ConfigFile, err)
		}
	}

	book := cookbook.New()
	if opts.File != "" {
		if err := seed(ctx, book, opts.File); err != nil {
			return nil, nil, err
		}
	}

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(opts.Version),
		server.WithHandler(Routes(book)),
	)
	return s, book, nil
}

func seed(ctx context.Context, book *cookbook.Cookbook, path string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.CookbookLoadTimeout)
	defer cancel()

	f, err := cookbook.LoadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load cookbook %q: %w", path, err)
	}

	if err := book.Load(f); err != nil {
		return fmt.Errorf("failed to seed cookbook from %q: %w", path, err)
	}

	slog.Info("cookbook seeded", "file", path, "entries", len(f.Entries))
	return nil
}
