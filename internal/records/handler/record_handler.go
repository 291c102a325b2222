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

// Package handler exposes record pool management over HTTP.
package handler

import (
	"net/http"

	matchprovider "github.com/wso2/identity-profile-resolution-service/internal/matching/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
	"github.com/wso2/identity-profile-resolution-service/internal/system/utils"
)

// RecordHandler handles record pool API requests.
type RecordHandler struct {
	provider *matchprovider.MatchProvider
}

// NewRecordHandler creates a record handler.
func NewRecordHandler() *RecordHandler {
	return &RecordHandler{provider: matchprovider.NewMatchProvider()}
}

// HandleReloadRecords reloads every configured source and swaps the pool.
func (h *RecordHandler) HandleReloadRecords(w http.ResponseWriter, r *http.Request) {
	result, err := h.provider.GetRecordService().Reload()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		ActionID:      log.ActionReloadRecords,
		TargetType:    log.TargetTypeRecordSource,
		Data: map[string]interface{}{
			"total_records":  result.TotalRecords,
			"sources_loaded": result.SourcesLoaded,
		},
	})
	utils.RespondJSON(w, http.StatusOK, result)
}

// HandleRecordStats returns per-source counts for the current pool.
func (h *RecordHandler) HandleRecordStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.provider.GetRecordService().Stats())
}
