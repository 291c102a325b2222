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

// Package store persists schema mappings in the database.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/model"
	"github.com/wso2/identity-profile-resolution-service/internal/system/database/provider"
)

const (
	queryGetAllMappings = `SELECT id, source_name, mapping, created_at, updated_at
		FROM schema_mappings ORDER BY source_name`
	queryGetMappingBySource = `SELECT id, source_name, mapping, created_at, updated_at
		FROM schema_mappings WHERE source_name = $1`
	stmtInsertMapping = `INSERT INTO schema_mappings (id, source_name, mapping, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)`
	stmtUpdateMapping = `UPDATE schema_mappings SET mapping = $2, updated_at = $3
		WHERE source_name = $1`
	stmtDeleteMapping = `DELETE FROM schema_mappings WHERE source_name = $1`
)

// GetMappings returns all stored schema mappings.
func GetMappings() ([]model.SchemaMapping, error) {
	rows, err := provider.GetDBClient().ExecuteQuery(queryGetAllMappings)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schema mappings: %w", err)
	}

	mappings := make([]model.SchemaMapping, 0, len(rows))
	for _, row := range rows {
		mapping, err := rowToMapping(row)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, mapping)
	}
	return mappings, nil
}

// GetMappingBySource returns the mapping for a source, or nil when absent.
func GetMappingBySource(sourceName string) (*model.SchemaMapping, error) {
	rows, err := provider.GetDBClient().ExecuteQuery(queryGetMappingBySource, sourceName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schema mapping: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	mapping, err := rowToMapping(rows[0])
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// InsertMapping stores a new schema mapping.
func InsertMapping(mapping model.SchemaMapping) error {
	encoded, err := json.Marshal(mapping.Mapping)
	if err != nil {
		return fmt.Errorf("error serializing schema mapping: %w", err)
	}
	_, err = provider.GetDBClient().ExecuteStatement(
		stmtInsertMapping, mapping.ID, mapping.SourceName, string(encoded), mapping.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting schema mapping: %w", err)
	}
	return nil
}

// UpdateMapping replaces the mapping for a source. Returns the number of
// updated rows.
func UpdateMapping(sourceName string, mapping map[string]string) (int64, error) {
	encoded, err := json.Marshal(mapping)
	if err != nil {
		return 0, fmt.Errorf("error serializing schema mapping: %w", err)
	}
	affected, err := provider.GetDBClient().ExecuteStatement(
		stmtUpdateMapping, sourceName, string(encoded), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("error updating schema mapping: %w", err)
	}
	return affected, nil
}

// DeleteMapping removes the mapping for a source. Returns the number of
// deleted rows.
func DeleteMapping(sourceName string) (int64, error) {
	affected, err := provider.GetDBClient().ExecuteStatement(stmtDeleteMapping, sourceName)
	if err != nil {
		return 0, fmt.Errorf("error deleting schema mapping: %w", err)
	}
	return affected, nil
}

func rowToMapping(row map[string]interface{}) (model.SchemaMapping, error) {
	var mapping model.SchemaMapping

	mapping.ID, _ = row["id"].(string)
	mapping.SourceName, _ = row["source_name"].(string)

	if raw, ok := row["mapping"].(string); ok {
		if err := json.Unmarshal([]byte(raw), &mapping.Mapping); err != nil {
			return mapping, fmt.Errorf("error parsing stored schema mapping: %w", err)
		}
	}
	if t, ok := row["created_at"].(time.Time); ok {
		mapping.CreatedAt = t
	}
	if t, ok := row["updated_at"].(time.Time); ok {
		mapping.UpdatedAt = t
	}
	return mapping, nil
}
