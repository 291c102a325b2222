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

// Package constants defines shared constant values used across the service.
package constants

// Unified schema field names.
const (
	FieldCustomerID = "customer_id"
	FieldFullName   = "full_name"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldDOB        = "dob"
	FieldNationalID = "national_id"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldAddress    = "address"
	FieldCountry    = "country"
	FieldSourceName = "source_name"
	FieldRawText    = "raw_text"
)

// Supported record source formats.
const (
	SourceFormatCSV  = "csv"
	SourceFormatJSON = "json"
	SourceFormatXLSX = "xlsx"
)

// HTTP header names.
const (
	HeaderContentType   = "Content-Type"
	HeaderTraceID       = "X-Trace-ID"
	ContentTypeJSON     = "application/json"
	ContentTypeSheet    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	HeaderCacheControl  = "Cache-Control"
	CacheControlNoStore = "no-store"
)

// DefaultRegion is the region used when parsing phone numbers without a
// country prefix.
const DefaultRegion = "US"
