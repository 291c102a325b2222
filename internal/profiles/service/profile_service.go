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

// Package service manages stored resolved profiles.
package service

import (
	"context"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/profiles/store"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

const defaultListLimit = 100

// ProfileServiceInterface defines resolved profile operations.
type ProfileServiceInterface interface {
	StoreProfile(ctx context.Context, profile model.MergedProfile) error
	ListProfiles(ctx context.Context, limit int) ([]model.MergedProfile, error)
	GetProfile(ctx context.Context, id string) (*model.MergedProfile, error)
}

// ProfileService persists and retrieves resolved profiles.
type ProfileService struct {
	store  store.ProfileStoreInterface
	logger *log.Logger
}

// NewProfileService creates a profile service over the given store.
func NewProfileService(profileStore store.ProfileStoreInterface) *ProfileService {
	return &ProfileService{
		store:  profileStore,
		logger: log.GetLogger().With(log.String("component", "ProfileService")),
	}
}

// StoreProfile persists a resolved profile.
func (s *ProfileService) StoreProfile(ctx context.Context, profile model.MergedProfile) error {
	if err := s.store.Insert(ctx, profile); err != nil {
		s.logger.Error("Failed to store resolved profile",
			log.String("profile_id", profile.ID), log.Error(err))
		return svcerrors.NewServerError(svcerrors.ErrorWhileStoringProfile,
			"Failed to store resolved profile", "")
	}

	s.logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeSystem,
		ActionID:      log.ActionStoreResolvedProfile,
		TargetID:      profile.ID,
		TargetType:    log.TargetTypeProfile,
	})
	return nil
}

// ListProfiles returns the most recently merged profiles.
func (s *ProfileService) ListProfiles(ctx context.Context, limit int) ([]model.MergedProfile, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	profiles, err := s.store.List(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list resolved profiles", log.Error(err))
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileRetrievingProfiles,
			"Failed to retrieve resolved profiles", "")
	}
	return profiles, nil
}

// GetProfile returns a stored profile by its identifier.
func (s *ProfileService) GetProfile(ctx context.Context, id string) (*model.MergedProfile, error) {
	profile, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to retrieve resolved profile",
			log.String("profile_id", id), log.Error(err))
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileRetrievingProfiles,
			"Failed to retrieve resolved profile", "")
	}
	if profile == nil {
		return nil, svcerrors.NewClientError(svcerrors.ErrorProfileNotFound,
			"Profile not found", "No resolved profile exists with id "+id+".")
	}
	return profile, nil
}
