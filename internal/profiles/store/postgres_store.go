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

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/system/database/provider"
)

const (
	stmtInsertProfile = `INSERT INTO resolved_profiles
		(id, profile, sources, match_count, match_quality, merged_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	queryListProfiles = `SELECT id, profile, sources, match_count, match_quality, merged_at
		FROM resolved_profiles ORDER BY merged_at DESC LIMIT $1`
	queryGetProfileByID = `SELECT id, profile, sources, match_count, match_quality, merged_at
		FROM resolved_profiles WHERE id = $1`
)

// PostgresProfileStore persists resolved profiles in PostgreSQL.
type PostgresProfileStore struct{}

// NewPostgresProfileStore creates a Postgres backed profile store.
func NewPostgresProfileStore() *PostgresProfileStore {
	return &PostgresProfileStore{}
}

// Insert stores a resolved profile.
func (s *PostgresProfileStore) Insert(_ context.Context, profile model.MergedProfile) error {
	encodedProfile, err := json.Marshal(profile.Profile)
	if err != nil {
		return fmt.Errorf("error serializing profile: %w", err)
	}
	encodedSources, err := json.Marshal(profile.Sources)
	if err != nil {
		return fmt.Errorf("error serializing sources: %w", err)
	}
	encodedQuality, err := json.Marshal(profile.MatchQuality)
	if err != nil {
		return fmt.Errorf("error serializing match quality: %w", err)
	}

	_, err = provider.GetDBClient().ExecuteStatement(stmtInsertProfile,
		profile.ID, string(encodedProfile), string(encodedSources),
		profile.MatchCount, string(encodedQuality), profile.MergedAt)
	if err != nil {
		return fmt.Errorf("error inserting resolved profile: %w", err)
	}
	return nil
}

// List returns the most recently merged profiles.
func (s *PostgresProfileStore) List(_ context.Context, limit int) ([]model.MergedProfile, error) {
	rows, err := provider.GetDBClient().ExecuteQuery(queryListProfiles, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing resolved profiles: %w", err)
	}

	profiles := make([]model.MergedProfile, 0, len(rows))
	for _, row := range rows {
		profile, err := rowToProfile(row)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// GetByID returns a stored profile, or nil when absent.
func (s *PostgresProfileStore) GetByID(_ context.Context, id string) (*model.MergedProfile, error) {
	rows, err := provider.GetDBClient().ExecuteQuery(queryGetProfileByID, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving resolved profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	profile, err := rowToProfile(rows[0])
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func rowToProfile(row map[string]interface{}) (model.MergedProfile, error) {
	var profile model.MergedProfile

	profile.ID, _ = row["id"].(string)
	if raw, ok := row["profile"].(string); ok {
		if err := json.Unmarshal([]byte(raw), &profile.Profile); err != nil {
			return profile, fmt.Errorf("error parsing stored profile: %w", err)
		}
	}
	if raw, ok := row["sources"].(string); ok {
		if err := json.Unmarshal([]byte(raw), &profile.Sources); err != nil {
			return profile, fmt.Errorf("error parsing stored sources: %w", err)
		}
	}
	switch v := row["match_count"].(type) {
	case int64:
		profile.MatchCount = int(v)
	case int:
		profile.MatchCount = v
	}
	if raw, ok := row["match_quality"].(string); ok {
		if err := json.Unmarshal([]byte(raw), &profile.MatchQuality); err != nil {
			return profile, fmt.Errorf("error parsing stored match quality: %w", err)
		}
	}
	if t, ok := row["merged_at"].(time.Time); ok {
		profile.MergedAt = t
	}
	return profile, nil
}
