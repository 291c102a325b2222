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

// Package service loads and serves the unified record pool.
package service

import (
	"time"

	matchmodel "github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/records/loader"
	"github.com/wso2/identity-profile-resolution-service/internal/records/model"
	"github.com/wso2/identity-profile-resolution-service/internal/records/store"
	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

// MappingResolver resolves the column mapping for a record source. A nil
// mapping with no error means the source already uses unified field names.
type MappingResolver interface {
	ResolveMapping(sourceName string) (map[string]string, error)
}

// RecordServiceInterface defines the record pool operations.
type RecordServiceInterface interface {
	Reload() (*model.ReloadResult, error)
	Stats() model.PoolStats
	Pool() []matchmodel.UnifiedRecord
}

// RecordService loads configured sources into the pool store.
type RecordService struct {
	sources  []config.RecordSourceConfig
	store    *store.PoolStore
	mappings MappingResolver
	logger   *log.Logger
}

// NewRecordService creates a record service over the given pool store.
func NewRecordService(sources []config.RecordSourceConfig, poolStore *store.PoolStore, mappings MappingResolver) *RecordService {
	return &RecordService{
		sources:  sources,
		store:    poolStore,
		mappings: mappings,
		logger:   log.GetLogger().With(log.String("component", "RecordService")),
	}
}

// Reload reads every configured source and swaps the pool in one step.
// A source that fails to load fails the whole reload; the previous pool
// stays visible to readers.
func (s *RecordService) Reload() (*model.ReloadResult, error) {
	pool := make([]matchmodel.UnifiedRecord, 0)
	loaded := 0

	for _, source := range s.sources {
		mapping, err := s.mappings.ResolveMapping(source.Name)
		if err != nil {
			s.logger.Error("Failed to resolve mapping for source",
				log.String("source", source.Name), log.Error(err))
			return nil, svcerrors.NewServerError(svcerrors.ErrorWhileLoadingRecords,
				"Failed to load records", "Could not resolve the schema mapping for source "+source.Name+".")
		}

		records, err := loader.LoadSource(source.Name, source.Path, source.Format, mapping)
		if err != nil {
			s.logger.Error("Failed to load source",
				log.String("source", source.Name), log.Error(err))
			return nil, svcerrors.NewServerError(svcerrors.ErrorWhileLoadingRecords,
				"Failed to load records", "Could not read source "+source.Name+".")
		}

		s.logger.Info("Loaded record source",
			log.String("source", source.Name), log.Int("records", len(records)))
		pool = append(pool, records...)
		loaded++
	}

	s.store.Swap(pool)
	return &model.ReloadResult{
		TotalRecords:  len(pool),
		SourcesLoaded: loaded,
		ReloadedAt:    time.Now().UTC(),
	}, nil
}

// Stats returns the current pool statistics.
func (s *RecordService) Stats() model.PoolStats {
	return s.store.Stats()
}

// Pool returns a read-only snapshot of the current pool.
func (s *RecordService) Pool() []matchmodel.UnifiedRecord {
	return s.store.Snapshot()
}
