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

package config

import (
	"fmt"
	"sync"
)

// PRSRuntime holds the runtime configuration of the profile resolution service.
type PRSRuntime struct {
	Config Config
}

var (
	instance *PRSRuntime
	once     sync.Once
	mu       sync.RWMutex
)

// InitializePRSRuntime initializes the runtime configuration singleton.
func InitializePRSRuntime(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		instance = &PRSRuntime{Config: *cfg}
	})
	return nil
}

// GetPRSRuntime returns the runtime configuration singleton.
func GetPRSRuntime() *PRSRuntime {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("PRS runtime is not initialized")
	}
	return instance
}

// OverridePRSRuntime replaces the runtime configuration. Intended for tests.
func OverridePRSRuntime(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = &PRSRuntime{Config: *cfg}
}
