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

// Package handler exposes the service health endpoint.
package handler

import (
	"net/http"

	matchprovider "github.com/wso2/identity-profile-resolution-service/internal/matching/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/utils"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status      string `json:"status"`
	PoolRecords int    `json:"pool_records"`
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	provider *matchprovider.MatchProvider
}

// NewHealthHandler creates a health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{provider: matchprovider.NewMatchProvider()}
}

// HandleHealth reports service liveness and the loaded pool size.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	stats := h.provider.GetRecordService().Stats()
	utils.RespondJSON(w, http.StatusOK, HealthStatus{
		Status:      "ok",
		PoolRecords: stats.TotalRecords,
	})
}
