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

// Package store holds the in-memory record pool.
package store

import (
	"sync"
	"time"

	matchmodel "github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/records/model"
)

// PoolStore keeps the unified record pool. Reads see a consistent snapshot;
// reloads swap the whole pool atomically, never mutate it in place.
type PoolStore struct {
	mu       sync.RWMutex
	pool     []matchmodel.UnifiedRecord
	loadedAt time.Time
}

// NewPoolStore creates an empty pool store.
func NewPoolStore() *PoolStore {
	return &PoolStore{pool: []matchmodel.UnifiedRecord{}}
}

// Swap replaces the pool with a new set of records.
func (s *PoolStore) Swap(records []matchmodel.UnifiedRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool = records
	s.loadedAt = time.Now().UTC()
}

// Snapshot returns the current pool. Callers must treat it as read-only.
func (s *PoolStore) Snapshot() []matchmodel.UnifiedRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pool
}

// Stats returns record counts per source for the current pool.
func (s *PoolStore) Stats() model.PoolStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, record := range s.pool {
		if _, seen := counts[record.SourceName]; !seen {
			order = append(order, record.SourceName)
		}
		counts[record.SourceName]++
	}

	sources := make([]model.SourceStats, 0, len(order))
	for _, name := range order {
		sources = append(sources, model.SourceStats{Name: name, RecordCount: counts[name]})
	}
	return model.PoolStats{
		TotalRecords: len(s.pool),
		Sources:      sources,
		LoadedAt:     s.loadedAt,
	}
}
