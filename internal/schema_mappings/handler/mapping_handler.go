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

// Package handler exposes schema mapping management over HTTP.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/model"
	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
	"github.com/wso2/identity-profile-resolution-service/internal/system/utils"
)

// SchemaMappingHandler handles schema mapping API requests.
type SchemaMappingHandler struct {
	provider *provider.SchemaMappingProvider
}

// NewSchemaMappingHandler creates a schema mapping handler.
func NewSchemaMappingHandler() *SchemaMappingHandler {
	return &SchemaMappingHandler{provider: provider.NewSchemaMappingProvider()}
}

// HandleGetMappings lists all schema mappings.
func (h *SchemaMappingHandler) HandleGetMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.provider.GetMappingService().GetMappings()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, mappings)
}

// HandleGetMapping returns one mapping by source name.
func (h *SchemaMappingHandler) HandleGetMapping(w http.ResponseWriter, r *http.Request) {
	sourceName := r.PathValue("sourceName")

	mapping, err := h.provider.GetMappingService().GetMapping(sourceName)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, mapping)
}

// HandleCreateMapping registers a new schema mapping.
func (h *SchemaMappingHandler) HandleCreateMapping(w http.ResponseWriter, r *http.Request) {
	var request model.SchemaMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleDecodeError(w, err)
		return
	}

	mapping, err := h.provider.GetMappingService().CreateMapping(request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		ActionID:      log.ActionAddSchemaMapping,
		TargetID:      mapping.SourceName,
		TargetType:    log.TargetTypeSchemaMapping,
	})
	utils.RespondJSON(w, http.StatusCreated, mapping)
}

// HandleUpdateMapping replaces an existing schema mapping.
func (h *SchemaMappingHandler) HandleUpdateMapping(w http.ResponseWriter, r *http.Request) {
	sourceName := r.PathValue("sourceName")

	var request model.SchemaMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleDecodeError(w, err)
		return
	}

	mapping, err := h.provider.GetMappingService().UpdateMapping(sourceName, request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		ActionID:      log.ActionUpdateSchemaMapping,
		TargetID:      sourceName,
		TargetType:    log.TargetTypeSchemaMapping,
	})
	utils.RespondJSON(w, http.StatusOK, mapping)
}

// HandleDeleteMapping removes a schema mapping.
func (h *SchemaMappingHandler) HandleDeleteMapping(w http.ResponseWriter, r *http.Request) {
	sourceName := r.PathValue("sourceName")

	if err := h.provider.GetMappingService().DeleteMapping(sourceName); err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		ActionID:      log.ActionDeleteSchemaMapping,
		TargetID:      sourceName,
		TargetType:    log.TargetTypeSchemaMapping,
	})
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
