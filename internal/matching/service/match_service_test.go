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
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	recordmodel "github.com/wso2/identity-profile-resolution-service/internal/records/model"
	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/workers"
)

type stubRecordService struct {
	pool []model.UnifiedRecord
}

func (s *stubRecordService) Reload() (*recordmodel.ReloadResult, error) { return nil, nil }
func (s *stubRecordService) Stats() recordmodel.PoolStats               { return recordmodel.PoolStats{} }
func (s *stubRecordService) Pool() []model.UnifiedRecord                { return s.pool }

type stubProfileService struct {
	mu     sync.Mutex
	stored []model.MergedProfile
}

func (s *stubProfileService) StoreProfile(_ context.Context, profile model.MergedProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored = append(s.stored, profile)
	return nil
}

func (s *stubProfileService) ListProfiles(context.Context, int) ([]model.MergedProfile, error) {
	return nil, nil
}

func (s *stubProfileService) GetProfile(context.Context, string) (*model.MergedProfile, error) {
	return nil, nil
}

func newTestMatchService(pool []model.UnifiedRecord, profiles *stubProfileService, workerPool *workers.Pool) *MatchService {
	return NewMatchService(newTestEngine(), &stubRecordService{pool: pool}, profiles, workerPool)
}

func TestSearchProfilesRejectsEmptyQuery(t *testing.T) {
	svc := newTestMatchService(rankingPool(), nil, nil)

	_, err := svc.SearchProfiles(context.Background(), model.Query{})
	require.Error(t, err)

	clientErr, ok := err.(*svcerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, svcerrors.ErrorEmptyQuery, clientErr.Code)
}

func TestSearchProfilesRejectsBlankQueryValues(t *testing.T) {
	svc := newTestMatchService(rankingPool(), nil, nil)

	_, err := svc.SearchProfiles(context.Background(), model.Query{constants.FieldFullName: "   "})
	require.Error(t, err)
}

func TestSearchProfilesReturnsMatches(t *testing.T) {
	svc := newTestMatchService(rankingPool(), nil, nil)

	result, err := svc.SearchProfiles(context.Background(), rankingQuery())
	require.NoError(t, err)
	require.NotNil(t, result.Profile)
	assert.Equal(t, 2, result.MatchSummary.TotalMatches)
	assert.True(t, result.MatchSummary.HasStrongMatches)
}

func TestSearchProfilesCancelledContext(t *testing.T) {
	svc := newTestMatchService(rankingPool(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SearchProfiles(ctx, rankingQuery())
	require.Error(t, err)

	serverErr, ok := err.(*svcerrors.ServerError)
	require.True(t, ok)
	assert.Equal(t, svcerrors.ErrorWhileSearchingProfiles, serverErr.Code)
}

func TestSearchProfilesEmptyPool(t *testing.T) {
	svc := newTestMatchService(nil, nil, nil)

	result, err := svc.SearchProfiles(context.Background(), rankingQuery())
	require.NoError(t, err)
	assert.Nil(t, result.Profile)
	assert.Empty(t, result.IndividualMatches)
	assert.Equal(t, model.MatchSummary{}, result.MatchSummary)
}

func TestSearchProfilesPersistsResolvedProfile(t *testing.T) {
	profiles := &stubProfileService{}
	workerPool := workers.StartPool("test", 1, 4)
	svc := newTestMatchService(rankingPool(), profiles, workerPool)

	result, err := svc.SearchProfiles(context.Background(), rankingQuery())
	require.NoError(t, err)
	require.NotNil(t, result.Profile)

	workerPool.Stop()

	profiles.mu.Lock()
	defer profiles.mu.Unlock()
	require.Len(t, profiles.stored, 1)
	assert.Equal(t, result.Profile.ID, profiles.stored[0].ID)
}
