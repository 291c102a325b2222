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
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
	"github.com/wso2/identity-profile-resolution-service/internal/system/utils"
)

// mergeFields lists the unified fields consolidated into a merged profile,
// in schema order.
var mergeFields = []string{
	constants.FieldCustomerID,
	constants.FieldFullName,
	constants.FieldFirstName,
	constants.FieldLastName,
	constants.FieldDOB,
	constants.FieldNationalID,
	constants.FieldEmail,
	constants.FieldPhone,
	constants.FieldAddress,
	constants.FieldCountry,
}

// Merge groups ranked candidates representing the top candidate's identity
// and consolidates them into one profile. The full ranked list is always
// returned unmodified alongside the profile.
func (e *Engine) Merge(ranked []model.ScoredCandidate) (*model.MergedProfile, []model.ScoredCandidate) {
	if len(ranked) == 0 {
		return nil, []model.ScoredCandidate{}
	}

	group := e.mergeGroup(ranked)
	profile := e.consolidate(group)
	return profile, ranked
}

// mergeGroup collects the candidates judged to be the same identity as the
// top-ranked candidate, in rank order. Membership comes from a shared
// customer_id or from a pairwise score against the top candidate at or
// above the merge-identity threshold.
func (e *Engine) mergeGroup(ranked []model.ScoredCandidate) []model.ScoredCandidate {
	top := ranked[0]
	group := []model.ScoredCandidate{top}

	topID := utils.NormalizeIdentifier(top.Record.CustomerID)
	for _, candidate := range ranked[1:] {
		if e.sameIdentity(topID, &top.Record, &candidate.Record) {
			group = append(group, candidate)
		}
	}
	return group
}

func (e *Engine) sameIdentity(topID string, top, candidate *model.UnifiedRecord) bool {
	if topID != "" && topID == utils.NormalizeIdentifier(candidate.CustomerID) {
		return true
	}
	pairwise := e.Evaluate(recordAsQuery(top), candidate)
	return pairwise.OverallScore >= e.cfg.MergeIdentityScore
}

// recordAsQuery projects a record's weighted identity fields into a query
// for pairwise rescoring.
func recordAsQuery(record *model.UnifiedRecord) model.Query {
	query := model.Query{}
	for _, field := range []string{
		constants.FieldFullName,
		constants.FieldDOB,
		constants.FieldNationalID,
		constants.FieldEmail,
		constants.FieldPhone,
	} {
		if value, ok := record.Field(field); ok && value != "" {
			query[field] = value
		}
	}
	return query
}

// consolidate builds the merged profile from a group ordered by rank. Each
// field takes the first non-empty value in rank order, so a lower ranked
// member never overrides a higher ranked one.
func (e *Engine) consolidate(group []model.ScoredCandidate) *model.MergedProfile {
	var merged model.UnifiedRecord
	for _, field := range mergeFields {
		for _, member := range group {
			if value, ok := member.Record.Field(field); ok && value != "" {
				setField(&merged, field, value)
				break
			}
		}
	}
	for _, member := range group {
		for name, value := range member.Record.Extra {
			if value == "" {
				continue
			}
			if merged.Extra == nil {
				merged.Extra = make(map[string]string)
			}
			if _, seen := merged.Extra[name]; !seen {
				merged.Extra[name] = value
			}
		}
	}

	sources := make([]string, 0, len(group))
	seen := make(map[string]struct{}, len(group))
	for _, member := range group {
		if _, ok := seen[member.Record.SourceName]; ok {
			continue
		}
		seen[member.Record.SourceName] = struct{}{}
		sources = append(sources, member.Record.SourceName)
	}
	merged.SourceName = sources[0]

	return &model.MergedProfile{
		ID:           uuid.New().String(),
		Profile:      merged,
		Sources:      sources,
		MatchCount:   len(group),
		MatchQuality: group[0].Quality,
		MergedAt:     time.Now().UTC(),
	}
}

func setField(record *model.UnifiedRecord, field, value string) {
	switch field {
	case constants.FieldCustomerID:
		record.CustomerID = value
	case constants.FieldFullName:
		record.FullName = value
	case constants.FieldFirstName:
		record.FirstName = value
	case constants.FieldLastName:
		record.LastName = value
	case constants.FieldDOB:
		record.DOB = value
	case constants.FieldNationalID:
		record.NationalID = value
	case constants.FieldEmail:
		record.Email = value
	case constants.FieldPhone:
		record.Phone = value
	case constants.FieldAddress:
		record.Address = value
	case constants.FieldCountry:
		record.Country = value
	}
}
