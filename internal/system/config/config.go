/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config handles loading the service configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MatchingConfig holds the tunable matching engine parameters. Zero values
// fall back to the engine defaults when the engine configuration is built.
type MatchingConfig struct {
	MinScore            float64            `yaml:"min_score"`
	StrongMatchScore    float64            `yaml:"strong_match_score"`
	HighValueFieldScore float64            `yaml:"high_value_field_score"`
	MergeIdentityScore  float64            `yaml:"merge_identity_score"`
	MaxConcurrency      int                `yaml:"max_concurrency"`
	FieldWeights        map[string]float64 `yaml:"field_weights"`
	DefaultWeight       float64            `yaml:"default_weight"`
	NameOnlyStrongScore float64            `yaml:"name_only_strong_score"`
}

// RecordSourceConfig describes a single record source file to load at startup.
type RecordSourceConfig struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// RecordsConfig holds the record loading configuration.
type RecordsConfig struct {
	Sources []RecordSourceConfig `yaml:"sources"`
}

// CacheConfig holds the in-memory cache configuration.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// Config is the root configuration for the profile resolution service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Matching MatchingConfig `yaml:"matching"`
	Records  RecordsConfig  `yaml:"records"`
	Cache    CacheConfig    `yaml:"cache"`
}

// LoadConfig reads the YAML configuration from the given path, expanding
// environment variable references before unmarshalling.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(raw))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8900
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	// Matching defaults are owned by the engine; unset values stay zero and
	// fall back when the engine configuration is built.
}
