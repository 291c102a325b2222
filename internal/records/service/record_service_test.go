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

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-profile-resolution-service/internal/records/store"
	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

type staticMappings struct {
	mappings map[string]map[string]string
}

func (s *staticMappings) ResolveMapping(sourceName string) (map[string]string, error) {
	return s.mappings[sourceName], nil
}

func TestReloadLoadsAllSources(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bank.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("customer_id,full_name\nC100,Leonardo DiCaprio\n"), 0o600))
	jsonPath := filepath.Join(dir, "insurance.json")
	require.NoError(t, os.WriteFile(jsonPath,
		[]byte(`[{"cust_no": "C100", "name": "Leo DiCaprio"}]`), 0o600))

	sources := []config.RecordSourceConfig{
		{Name: "bank_records", Path: csvPath, Format: "csv"},
		{Name: "insurance_records", Path: jsonPath, Format: "json"},
	}
	mappings := &staticMappings{mappings: map[string]map[string]string{
		"insurance_records": {"cust_no": "customer_id", "name": "full_name"},
	}}

	svc := NewRecordService(sources, store.NewPoolStore(), mappings)

	result, err := svc.Reload()
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, 2, result.SourcesLoaded)

	pool := svc.Pool()
	require.Len(t, pool, 2)
	assert.Equal(t, "Leonardo DiCaprio", pool[0].FullName)
	assert.Equal(t, "Leo DiCaprio", pool[1].FullName)
	assert.Equal(t, "C100", pool[1].CustomerID)
}

func TestReloadFailureKeepsPreviousPool(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bank.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("full_name\nKate Winslet\n"), 0o600))

	poolStore := store.NewPoolStore()
	mappings := &staticMappings{}

	good := NewRecordService([]config.RecordSourceConfig{
		{Name: "bank_records", Path: csvPath, Format: "csv"},
	}, poolStore, mappings)
	_, err := good.Reload()
	require.NoError(t, err)

	bad := NewRecordService([]config.RecordSourceConfig{
		{Name: "bank_records", Path: filepath.Join(dir, "missing.csv"), Format: "csv"},
	}, poolStore, mappings)
	_, err = bad.Reload()
	require.Error(t, err)

	assert.Len(t, bad.Pool(), 1)
}

func TestStatsReflectLoadedSources(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bank.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("full_name\nA\nB\n"), 0o600))

	svc := NewRecordService([]config.RecordSourceConfig{
		{Name: "bank_records", Path: csvPath, Format: "csv"},
	}, store.NewPoolStore(), &staticMappings{})

	_, err := svc.Reload()
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.TotalRecords)
	require.Len(t, stats.Sources, 1)
	assert.Equal(t, "bank_records", stats.Sources[0].Name)
}
