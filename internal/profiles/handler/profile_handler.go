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

// Package handler exposes stored resolved profiles over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/wso2/identity-profile-resolution-service/internal/profiles/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
	"github.com/wso2/identity-profile-resolution-service/internal/system/utils"
)

const reportFileName = "resolved_profiles.xlsx"

// ProfileHandler handles resolved profile API requests.
type ProfileHandler struct {
	provider *provider.ProfileProvider
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{provider: provider.NewProfileProvider()}
}

// HandleListProfiles returns the most recently resolved profiles.
func (h *ProfileHandler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	profiles, err := h.provider.GetProfileService().ListProfiles(r.Context(), limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, profiles)
}

// HandleGetProfile returns one resolved profile by id.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.provider.GetProfileService().GetProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, profile)
}

// HandleExportReport streams the resolved profile report workbook.
func (h *ProfileHandler) HandleExportReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.provider.GetProfileService().ExportReport(r.Context(), 0)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set(constants.HeaderContentType, constants.ContentTypeSheet)
	w.Header().Set("Content-Disposition", "attachment; filename="+reportFileName)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report)
}
