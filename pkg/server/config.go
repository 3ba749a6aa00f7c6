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
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mchmarny/cookbook/pkg/defaults"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// Configuration keys. Each key is also read from the environment in upper case
// (for example rate_limit from RATE_LIMIT).
const (
	keyPort            = "port"
	keyRateLimit       = "rate_limit"
	keyRateLimitBurst  = "rate_limit_burst"
	keyShutdownSeconds = "shutdown_timeout_seconds"

	defaultPort           = 8080
	defaultRateLimit      = 100
	defaultRateLimitBurst = 200
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// LoadConfigFile reads server settings from a YAML, JSON or TOML file.
// Environment variables take precedence over values in the file.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	v.AutomaticEnv()
	return configFrom(v), nil
}

// parseConfig returns sensible defaults overridden by the environment.
func parseConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	return configFrom(v)
}

func configFrom(v *viper.Viper) *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              defaultPort,
		RateLimit:         defaultRateLimit,
		RateLimitBurst:    defaultRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if port, ok := intSetting(v, keyPort); ok && port > 0 && port < 65536 {
		cfg.Port = port
	}

	if burst, ok := intSetting(v, keyRateLimitBurst); ok && burst > 0 {
		cfg.RateLimitBurst = burst
	}

	if s := strings.TrimSpace(v.GetString(keyRateLimit)); s != "" {
		if limit, err := strconv.ParseFloat(s, 64); err == nil && limit > 0 {
			cfg.RateLimit = rate.Limit(limit)
		} else {
			slog.Warn("ignoring invalid rate limit", "value", s)
		}
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if seconds, ok := intSetting(v, keyShutdownSeconds); ok && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	return cfg
}

// intSetting returns the integer value of key, or false when the key is unset
// or does not hold an integer.
func intSetting(v *viper.Viper, key string) (int, bool) {
	s := strings.TrimSpace(v.GetString(key))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		slog.Warn("ignoring invalid setting", "key", key, "value", s)
		return 0, false
	}
	return n, true
}
