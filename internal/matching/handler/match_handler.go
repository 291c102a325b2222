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

// Package handler exposes profile search over HTTP.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/matching/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
	"github.com/wso2/identity-profile-resolution-service/internal/system/utils"
)

// SearchRequest is the profile search payload.
type SearchRequest struct {
	Query model.Query `json:"query"`
}

// MatchHandler handles profile search API requests.
type MatchHandler struct {
	provider *provider.MatchProvider
}

// NewMatchHandler creates a match handler.
func NewMatchHandler() *MatchHandler {
	return &MatchHandler{provider: provider.NewMatchProvider()}
}

// HandleSearchProfiles resolves a partial identity query into matching
// profiles.
func (h *MatchHandler) HandleSearchProfiles(w http.ResponseWriter, r *http.Request) {
	var request SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleDecodeError(w, err)
		return
	}

	result, err := h.provider.GetMatchService().SearchProfiles(r.Context(), request.Query)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Search responses carry personal data and must not be cached.
	w.Header().Set(constants.HeaderCacheControl, constants.CacheControlNoStore)
	utils.RespondJSON(w, http.StatusOK, result)
}
