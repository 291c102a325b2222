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
	"sort"
	"strings"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/matching/scorer"
	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
)

// Engine evaluates, ranks and merges candidates against a query using a
// fixed configuration. Engine methods are pure and safe for concurrent use.
type Engine struct {
	cfg model.MatchConfig
}

// NewEngine creates a matching engine with the given configuration.
func NewEngine(cfg model.MatchConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() model.MatchConfig {
	return e.cfg
}

// Evaluate scores one candidate against the query. Only fields present in
// the query participate; their weights are renormalized to sum to one.
// Fields are visited in sorted order so the accumulated score is identical
// for identical inputs.
func (e *Engine) Evaluate(query model.Query, candidate *model.UnifiedRecord) model.MatchQuality {
	fields := make([]string, 0, len(query))
	for field := range query {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	fieldScores := make(map[string]float64)
	var weightedSum, weightTotal float64

	for _, field := range fields {
		queryValue := query[field]
		if strings.TrimSpace(queryValue) == "" {
			continue
		}
		candidateValue, _ := candidate.Field(field)
		score := scorer.Score(field, queryValue, candidateValue)
		fieldScores[field] = score

		weight := e.cfg.Weight(field)
		weightedSum += score * weight
		weightTotal += weight
	}

	quality := model.MatchQuality{FieldScores: fieldScores}
	if weightTotal > 0 {
		quality.OverallScore = weightedSum / weightTotal
	}
	quality.IsStrongMatch = e.isStrongMatch(quality)
	return quality
}

// isStrongMatch applies the strong-match gate. A strong match needs the
// overall bar plus a high-value field (national_id or dob) above its own
// threshold; without a queried high-value field the overall bar rises to
// the name-only level.
func (e *Engine) isStrongMatch(quality model.MatchQuality) bool {
	if quality.OverallScore < e.cfg.StrongMatchScore {
		return false
	}

	highValueQueried := false
	for _, field := range []string{constants.FieldNationalID, constants.FieldDOB} {
		score, queried := quality.FieldScores[field]
		if !queried {
			continue
		}
		highValueQueried = true
		if score >= e.cfg.HighValueFieldScore {
			return true
		}
	}
	if highValueQueried {
		return false
	}
	return quality.OverallScore >= e.cfg.NameOnlyStrongScore
}
