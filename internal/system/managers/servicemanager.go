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

// Package managers wires the feature handlers onto the HTTP multiplexer.
package managers

import (
	"net/http"

	healthhandler "github.com/wso2/identity-profile-resolution-service/internal/health/handler"
	matchhandler "github.com/wso2/identity-profile-resolution-service/internal/matching/handler"
	profilehandler "github.com/wso2/identity-profile-resolution-service/internal/profiles/handler"
	recordhandler "github.com/wso2/identity-profile-resolution-service/internal/records/handler"
	mappinghandler "github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/handler"
)

// RegisterServices mounts every API route on the multiplexer.
func RegisterServices(mux *http.ServeMux) {
	match := matchhandler.NewMatchHandler()
	mux.HandleFunc("POST /profiles/search", match.HandleSearchProfiles)

	profiles := profilehandler.NewProfileHandler()
	mux.HandleFunc("GET /profiles", profiles.HandleListProfiles)
	mux.HandleFunc("GET /profiles/report", profiles.HandleExportReport)
	mux.HandleFunc("GET /profiles/{id}", profiles.HandleGetProfile)

	records := recordhandler.NewRecordHandler()
	mux.HandleFunc("POST /records/reload", records.HandleReloadRecords)
	mux.HandleFunc("GET /records/stats", records.HandleRecordStats)

	mappings := mappinghandler.NewSchemaMappingHandler()
	mux.HandleFunc("GET /schema-mappings", mappings.HandleGetMappings)
	mux.HandleFunc("POST /schema-mappings", mappings.HandleCreateMapping)
	mux.HandleFunc("GET /schema-mappings/{sourceName}", mappings.HandleGetMapping)
	mux.HandleFunc("PUT /schema-mappings/{sourceName}", mappings.HandleUpdateMapping)
	mux.HandleFunc("DELETE /schema-mappings/{sourceName}", mappings.HandleDeleteMapping)

	health := healthhandler.NewHealthHandler()
	mux.HandleFunc("GET /health", health.HandleHealth)
}
