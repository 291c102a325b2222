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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")

	path := writeConfig(t, `
server:
  port: 9000
database:
  host: "${TEST_DB_HOST}"
  port: 5432
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  host: localhost\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8900, cfg.Server.Port)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
}

func TestLoadConfigLeavesMatchingUnset(t *testing.T) {
	path := writeConfig(t, "server:\n  host: localhost\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Unset matching values stay zero so the engine defaults apply.
	assert.Zero(t, cfg.Matching.MinScore)
	assert.Zero(t, cfg.Matching.HighValueFieldScore)
	assert.Empty(t, cfg.Matching.FieldWeights)
}

func TestLoadConfigReadsMatchingThresholds(t *testing.T) {
	path := writeConfig(t, `
matching:
  min_score: 50
  strong_match_score: 80
  high_value_field_score: 88
  merge_identity_score: 92
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, float64(50), cfg.Matching.MinScore)
	assert.Equal(t, float64(80), cfg.Matching.StrongMatchScore)
	assert.Equal(t, float64(88), cfg.Matching.HighValueFieldScore)
	assert.Equal(t, float64(92), cfg.Matching.MergeIdentityScore)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
