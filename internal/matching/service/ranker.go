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
	"sort"
	"sync"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
)

// Rank scores every pool record against the query, keeps candidates at or
// above MinScore and returns them sorted by descending overall score.
// Scoring runs on a bounded worker pool; the final sort restores a
// deterministic order regardless of completion order.
func (e *Engine) Rank(ctx context.Context, query model.Query, pool []model.UnifiedRecord) []model.ScoredCandidate {
	if len(pool) == 0 {
		return []model.ScoredCandidate{}
	}

	workers := e.cfg.MaxConcurrency
	if workers < 1 {
		workers = 1
	}
	if workers > len(pool) {
		workers = len(pool)
	}

	scored := make([]model.ScoredCandidate, len(pool))
	indexes := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				scored[i] = model.ScoredCandidate{
					Record:    pool[i],
					Quality:   e.Evaluate(query, &pool[i]),
					PoolIndex: i,
				}
			}
		}()
	}

	for i := range pool {
		select {
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return []model.ScoredCandidate{}
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	ranked := make([]model.ScoredCandidate, 0, len(scored))
	for _, candidate := range scored {
		if candidate.Quality.OverallScore >= e.cfg.MinScore {
			ranked = append(ranked, candidate)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quality.OverallScore != ranked[j].Quality.OverallScore {
			return ranked[i].Quality.OverallScore > ranked[j].Quality.OverallScore
		}
		if ranked[i].Quality.IsStrongMatch != ranked[j].Quality.IsStrongMatch {
			return ranked[i].Quality.IsStrongMatch
		}
		return ranked[i].PoolIndex < ranked[j].PoolIndex
	})
	return ranked
}
