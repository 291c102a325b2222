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

// Package provider supplies the profile service instance, selecting the
// persistence backend from the database configuration.
package provider

import (
	"sync"

	"github.com/wso2/identity-profile-resolution-service/internal/profiles/service"
	"github.com/wso2/identity-profile-resolution-service/internal/profiles/store"
	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
	dbprovider "github.com/wso2/identity-profile-resolution-service/internal/system/database/provider"
)

var (
	instance *service.ProfileService
	once     sync.Once
)

// ProfileProvider supplies the profile service.
type ProfileProvider struct{}

// NewProfileProvider creates a profile provider.
func NewProfileProvider() *ProfileProvider {
	return &ProfileProvider{}
}

// GetProfileService returns the shared profile service instance.
func (p *ProfileProvider) GetProfileService() *service.ProfileService {
	once.Do(func() {
		var profileStore store.ProfileStoreInterface
		if config.GetPRSRuntime().Config.Database.Type == "mongodb" {
			profileStore = store.NewMongoProfileStore(dbprovider.GetMongoDatabase())
		} else {
			profileStore = store.NewPostgresProfileStore()
		}
		instance = service.NewProfileService(profileStore)
	})
	return instance
}
