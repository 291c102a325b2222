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

// Package provider supplies the schema mapping service instance.
package provider

import (
	"sync"
	"time"

	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/service"
	"github.com/wso2/identity-profile-resolution-service/internal/system/cache"
	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
)

var (
	instance *service.MappingService
	once     sync.Once
)

// SchemaMappingProvider supplies the schema mapping service.
type SchemaMappingProvider struct{}

// NewSchemaMappingProvider creates a schema mapping provider.
func NewSchemaMappingProvider() *SchemaMappingProvider {
	return &SchemaMappingProvider{}
}

// GetMappingService returns the shared mapping service instance.
func (p *SchemaMappingProvider) GetMappingService() service.MappingServiceInterface {
	once.Do(func() {
		ttl := time.Duration(config.GetPRSRuntime().Config.Cache.TTLSeconds) * time.Second
		instance = service.NewMappingService(cache.New(ttl))
	})
	return instance
}
