// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads the topology engine settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel         = "TOPOLOGY_LOG_LEVEL"
	EnvLogFormat        = "TOPOLOGY_LOG_FORMAT"
	EnvMetricsNamespace = "TOPOLOGY_METRICS_NAMESPACE"
	EnvSnapRadius       = "TOPOLOGY_SNAP_RADIUS"
)

// Config holds the engine settings.
type Config struct {
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
	// SnapRadius is the distance under which line end points are merged
	// when assembling polygons.
	SnapRadius float64
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:         "info",
		LogFormat:        "text",
		MetricsNamespace: "topology",
	}
}

// Load reads the given .env files, if present, and then the environment.
// Variables already set in the environment win over .env files.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg := Default()
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		cfg.MetricsNamespace = v
	}
	if v := os.Getenv(EnvSnapRadius); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", EnvSnapRadius, err)
		}
		if r < 0 {
			return Config{}, fmt.Errorf("%s must not be negative, got %v", EnvSnapRadius, r)
		}
		cfg.SnapRadius = r
	}
	return cfg, nil
}
