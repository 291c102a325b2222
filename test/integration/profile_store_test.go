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

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchmodel "github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/profiles/store"
)

func sampleProfile() matchmodel.MergedProfile {
	return matchmodel.MergedProfile{
		ID: uuid.New().String(),
		Profile: matchmodel.UnifiedRecord{
			CustomerID: "C100",
			FullName:   "Leonardo DiCaprio",
			DOB:        "1974-11-11",
			NationalID: "BANK001",
			SourceName: "bank_records",
		},
		Sources:    []string{"bank_records", "insurance_records"},
		MatchCount: 2,
		MatchQuality: matchmodel.MatchQuality{
			OverallScore:  100,
			IsStrongMatch: true,
			FieldScores:   map[string]float64{"full_name": 100, "dob": 100, "national_id": 100},
		},
		MergedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestProfileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	profileStore := store.NewPostgresProfileStore()
	profile := sampleProfile()

	require.NoError(t, profileStore.Insert(ctx, profile))

	fetched, err := profileStore.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, profile.Profile.FullName, fetched.Profile.FullName)
	assert.Equal(t, profile.Sources, fetched.Sources)
	assert.Equal(t, profile.MatchCount, fetched.MatchCount)
	assert.True(t, fetched.MatchQuality.IsStrongMatch)
	assert.Equal(t, float64(100), fetched.MatchQuality.OverallScore)
}

func TestProfileStoreListOrdersByMergedAt(t *testing.T) {
	ctx := context.Background()
	profileStore := store.NewPostgresProfileStore()

	older := sampleProfile()
	older.MergedAt = time.Now().UTC().Add(-time.Hour)
	newer := sampleProfile()

	require.NoError(t, profileStore.Insert(ctx, older))
	require.NoError(t, profileStore.Insert(ctx, newer))

	profiles, err := profileStore.List(ctx, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(profiles), 2)
	assert.Equal(t, newer.ID, profiles[0].ID)
}

func TestProfileStoreGetMissing(t *testing.T) {
	profileStore := store.NewPostgresProfileStore()

	fetched, err := profileStore.GetByID(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
