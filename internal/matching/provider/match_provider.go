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

// Package provider wires the matching engine to its collaborators and
// supplies the shared match service instance.
package provider

import (
	"sync"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/matching/service"
	profileprovider "github.com/wso2/identity-profile-resolution-service/internal/profiles/provider"
	recordservice "github.com/wso2/identity-profile-resolution-service/internal/records/service"
	recordstore "github.com/wso2/identity-profile-resolution-service/internal/records/store"
	mappingprovider "github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
	"github.com/wso2/identity-profile-resolution-service/internal/system/workers"
)

var (
	matchInstance  *service.MatchService
	recordInstance *recordservice.RecordService
	workerPool     *workers.Pool
	once           sync.Once
)

// MatchProvider supplies the match and record services.
type MatchProvider struct{}

// NewMatchProvider creates a match provider.
func NewMatchProvider() *MatchProvider {
	return &MatchProvider{}
}

// GetMatchService returns the shared match service instance.
func (p *MatchProvider) GetMatchService() service.MatchServiceInterface {
	p.initialize()
	return matchInstance
}

// GetRecordService returns the shared record service instance.
func (p *MatchProvider) GetRecordService() recordservice.RecordServiceInterface {
	p.initialize()
	return recordInstance
}

// StopWorkers drains and stops the background persistence workers.
func (p *MatchProvider) StopWorkers() {
	if workerPool != nil {
		workerPool.Stop()
	}
}

func (p *MatchProvider) initialize() {
	once.Do(func() {
		cfg := config.GetPRSRuntime().Config

		engine := service.NewEngine(engineConfig(cfg.Matching))
		recordInstance = recordservice.NewRecordService(
			cfg.Records.Sources,
			recordstore.NewPoolStore(),
			mappingprovider.NewSchemaMappingProvider().GetMappingService(),
		)
		workerPool = workers.StartPool("profile-persistence", 2, 64)

		matchInstance = service.NewMatchService(
			engine,
			recordInstance,
			profileprovider.NewProfileProvider().GetProfileService(),
			workerPool,
		)
	})
}

// engineConfig builds the engine configuration from the deployment
// configuration, falling back to engine defaults for unset values.
func engineConfig(cfg config.MatchingConfig) model.MatchConfig {
	engineCfg := model.DefaultMatchConfig()
	if cfg.MinScore > 0 {
		engineCfg.MinScore = cfg.MinScore
	}
	if cfg.StrongMatchScore > 0 {
		engineCfg.StrongMatchScore = cfg.StrongMatchScore
	}
	if cfg.HighValueFieldScore > 0 {
		engineCfg.HighValueFieldScore = cfg.HighValueFieldScore
	}
	if cfg.MergeIdentityScore > 0 {
		engineCfg.MergeIdentityScore = cfg.MergeIdentityScore
	}
	if cfg.NameOnlyStrongScore > 0 {
		engineCfg.NameOnlyStrongScore = cfg.NameOnlyStrongScore
	}
	if cfg.MaxConcurrency > 0 {
		engineCfg.MaxConcurrency = cfg.MaxConcurrency
	}
	if cfg.DefaultWeight > 0 {
		engineCfg.DefaultWeight = cfg.DefaultWeight
	}
	if len(cfg.FieldWeights) > 0 {
		weights := make(map[string]float64, len(cfg.FieldWeights))
		for field, weight := range cfg.FieldWeights {
			weights[field] = weight
		}
		engineCfg.FieldWeights = weights
	}
	return engineCfg
}
