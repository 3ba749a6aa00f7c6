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

package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}

		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}

		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}

		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}

		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}

		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}

		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}

		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		os.Setenv("PORT", "9090")
		defer os.Unsetenv("PORT")

		cfg := parseConfig()

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		os.Setenv("PORT", "invalid")
		defer os.Unsetenv("PORT")

		cfg := parseConfig()

		if cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for invalid env, got %d", cfg.Port)
		}
	})
}

func TestParseConfigRateLimitFromEnvironment(t *testing.T) {
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg := parseConfig()

	if cfg.RateLimit != 2.5 {
		t.Errorf("expected rate limit 2.5, got %v", cfg.RateLimit)
	}
	if cfg.RateLimitBurst != 7 {
		t.Errorf("expected burst 7, got %d", cfg.RateLimitBurst)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
	}
}

func TestParseConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "fast")
	t.Setenv("RATE_LIMIT_BURST", "-1")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")
	t.Setenv("PORT", "70000")

	cfg := parseConfig()

	if cfg.RateLimit != defaultRateLimit {
		t.Errorf("expected default rate limit, got %v", cfg.RateLimit)
	}
	if cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Errorf("expected default burst, got %d", cfg.RateLimitBurst)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Port != defaultPort {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "port: 9191\nrate_limit: 10\nrate_limit_burst: 20\nshutdown_timeout_seconds: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Run("file values", func(t *testing.T) {
		cfg, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9191 {
			t.Errorf("expected port 9191, got %d", cfg.Port)
		}
		if cfg.RateLimit != 10 || cfg.RateLimitBurst != 20 {
			t.Errorf("expected rate 10/20, got %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
		if cfg.ShutdownTimeout != 3*time.Second {
			t.Errorf("expected shutdown 3s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("PORT", "9292")

		cfg, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9292 {
			t.Errorf("expected port 9292 from env, got %d", cfg.Port)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
