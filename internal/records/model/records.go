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

// Package model defines the record pool statistics types.
package model

import "time"

// SourceStats describes one loaded record source.
type SourceStats struct {
	Name        string `json:"name"`
	RecordCount int    `json:"record_count"`
}

// PoolStats describes the currently loaded record pool.
type PoolStats struct {
	TotalRecords int           `json:"total_records"`
	Sources      []SourceStats `json:"sources"`
	LoadedAt     time.Time     `json:"loaded_at"`
}

// ReloadResult reports the outcome of a pool reload.
type ReloadResult struct {
	TotalRecords  int       `json:"total_records"`
	SourcesLoaded int       `json:"sources_loaded"`
	ReloadedAt    time.Time `json:"reloaded_at"`
}
