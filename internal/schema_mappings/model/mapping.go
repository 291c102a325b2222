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

// Package model defines the schema mapping types.
package model

import "time"

// SchemaMapping maps a source's raw column names onto unified field names.
// A column mapped to an empty string is dropped during loading.
type SchemaMapping struct {
	ID         string            `json:"id"`
	SourceName string            `json:"source_name"`
	Mapping    map[string]string `json:"mapping"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// SchemaMappingRequest is the create/update payload for a schema mapping.
type SchemaMappingRequest struct {
	SourceName string            `json:"source_name"`
	Mapping    map[string]string `json:"mapping"`
}
