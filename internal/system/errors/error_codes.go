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

package errors

const errorPrefix = "PRS-"

// Client error codes (1xxxx).
const (
	// ErrorInvalidRequestBody indicates the request payload could not be parsed.
	ErrorInvalidRequestBody = errorPrefix + "10001"
	// ErrorEmptyQuery indicates a search request with no usable query fields.
	ErrorEmptyQuery = errorPrefix + "10002"
	// ErrorSchemaMappingNotFound indicates the requested schema mapping does not exist.
	ErrorSchemaMappingNotFound = errorPrefix + "10003"
	// ErrorInvalidSchemaMapping indicates a malformed schema mapping payload.
	ErrorInvalidSchemaMapping = errorPrefix + "10004"
	// ErrorProfileNotFound indicates the requested resolved profile does not exist.
	ErrorProfileNotFound = errorPrefix + "10005"
)

// Server error codes (15xxx).
const (
	// ErrorWhileSearchingProfiles indicates the search aborted before ranking
	// completed.
	ErrorWhileSearchingProfiles = errorPrefix + "15001"
	// ErrorWhileLoadingRecords indicates a failure while loading source records.
	ErrorWhileLoadingRecords = errorPrefix + "15002"
	// ErrorWhileRetrievingSchemaMappings indicates a failure reading schema mappings.
	ErrorWhileRetrievingSchemaMappings = errorPrefix + "15003"
	// ErrorWhileStoringSchemaMapping indicates a failure persisting a schema mapping.
	ErrorWhileStoringSchemaMapping = errorPrefix + "15004"
	// ErrorWhileStoringProfile indicates a failure persisting a resolved profile.
	ErrorWhileStoringProfile = errorPrefix + "15005"
	// ErrorWhileRetrievingProfiles indicates a failure reading resolved profiles.
	ErrorWhileRetrievingProfiles = errorPrefix + "15006"
	// ErrorWhileExportingReport indicates a failure generating a match report.
	ErrorWhileExportingReport = errorPrefix + "15007"
	// ErrorInternalServerError indicates an unclassified internal failure.
	ErrorInternalServerError = errorPrefix + "15100"
)
