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

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
)

// Match ranks the pool against the query, merges the top identity group and
// derives the match summary.
func (e *Engine) Match(ctx context.Context, query model.Query, pool []model.UnifiedRecord) model.MatchResult {
	ranked := e.Rank(ctx, query, pool)
	profile, individual := e.Merge(ranked)

	return model.MatchResult{
		Profile:           profile,
		IndividualMatches: individual,
		MatchSummary:      summarize(individual),
	}
}

func summarize(matches []model.ScoredCandidate) model.MatchSummary {
	summary := model.MatchSummary{TotalMatches: len(matches)}

	sources := make(map[string]struct{})
	for _, match := range matches {
		sources[match.Record.SourceName] = struct{}{}
		if match.Quality.OverallScore > summary.HighestScore {
			summary.HighestScore = match.Quality.OverallScore
		}
		if match.Quality.IsStrongMatch {
			summary.HasStrongMatches = true
		}
	}
	summary.SourcesMatched = len(sources)
	return summary
}
