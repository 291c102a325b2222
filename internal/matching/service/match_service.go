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

// Package service implements the profile matching engine and the search
// service built on top of it.
package service

import (
	"context"
	"time"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	profileservice "github.com/wso2/identity-profile-resolution-service/internal/profiles/service"
	recordservice "github.com/wso2/identity-profile-resolution-service/internal/records/service"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
	"github.com/wso2/identity-profile-resolution-service/internal/system/workers"
)

const persistTimeout = 10 * time.Second

// MatchServiceInterface defines the profile search operations.
type MatchServiceInterface interface {
	SearchProfiles(ctx context.Context, query model.Query) (*model.MatchResult, error)
}

// MatchService resolves partial identity queries against the record pool.
type MatchService struct {
	engine   *Engine
	records  recordservice.RecordServiceInterface
	profiles profileservice.ProfileServiceInterface
	workers  *workers.Pool
	logger   *log.Logger
}

// NewMatchService creates a match service. The worker pool is optional;
// without one, resolved profiles are not persisted.
func NewMatchService(engine *Engine, records recordservice.RecordServiceInterface,
	profiles profileservice.ProfileServiceInterface, workerPool *workers.Pool) *MatchService {
	return &MatchService{
		engine:   engine,
		records:  records,
		profiles: profiles,
		workers:  workerPool,
		logger:   log.GetLogger().With(log.String("component", "MatchService")),
	}
}

// SearchProfiles matches the query against the current record pool. The
// merged profile, when one is produced, is persisted in the background so
// the response is not delayed by storage.
func (s *MatchService) SearchProfiles(ctx context.Context, query model.Query) (*model.MatchResult, error) {
	if query.IsEmpty() {
		return nil, svcerrors.NewClientError(svcerrors.ErrorEmptyQuery,
			"Empty search query", "At least one query field must be non-empty.")
	}

	pool := s.records.Pool()
	result := s.engine.Match(ctx, query, pool)
	if err := ctx.Err(); err != nil {
		s.logger.Warn("Profile search aborted", log.Error(err))
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileSearchingProfiles,
			"Profile search aborted", "The search did not complete.")
	}

	s.logger.Debug("Completed profile search",
		log.Int("pool_size", len(pool)),
		log.Int("matches", result.MatchSummary.TotalMatches),
		log.Float64("highest_score", result.MatchSummary.HighestScore),
		log.Bool("strong_matches", result.MatchSummary.HasStrongMatches))

	if result.Profile != nil {
		s.logger.Audit(log.AuditEvent{
			InitiatorType: log.InitiatorTypeSystem,
			ActionID:      log.ActionMergeProfiles,
			TargetType:    log.TargetTypeProfile,
			TargetID:      result.Profile.ID,
			Data: map[string]interface{}{
				"match_count": result.Profile.MatchCount,
				"sources":     result.Profile.Sources,
			},
		})
		if s.workers != nil && s.profiles != nil {
			profile := *result.Profile
			s.workers.Submit(func() {
				persistCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
				defer cancel()
				if err := s.profiles.StoreProfile(persistCtx, profile); err != nil {
					s.logger.Error("Background profile persistence failed",
						log.String("profile_id", profile.ID), log.Error(err))
				}
			})
		}
	}

	s.logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		ActionID:      log.ActionSearchProfiles,
		TargetType:    log.TargetTypeProfile,
		Data: map[string]interface{}{
			"query_fields":   query.Fields(),
			"total_matches":  result.MatchSummary.TotalMatches,
			"strong_matches": result.MatchSummary.HasStrongMatches,
		},
	})
	return &result, nil
}
