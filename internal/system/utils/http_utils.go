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

// Package utils provides shared helpers for HTTP handling and value
// normalization.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

// RespondJSON writes the given payload as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.GetLogger().Error("Failed to encode response payload", log.Error(err))
	}
}

// HandleError maps a service error to the appropriate HTTP response.
func HandleError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *svcerrors.ClientError:
		statusCode := http.StatusBadRequest
		if e.Code == svcerrors.ErrorSchemaMappingNotFound || e.Code == svcerrors.ErrorProfileNotFound {
			statusCode = http.StatusNotFound
		}
		if e.TraceID != "" {
			w.Header().Set(constants.HeaderTraceID, e.TraceID)
		}
		RespondJSON(w, statusCode, e.ErrorMessage)
	case *svcerrors.ServerError:
		if e.TraceID != "" {
			w.Header().Set(constants.HeaderTraceID, e.TraceID)
		}
		RespondJSON(w, http.StatusInternalServerError, e.ErrorMessage)
	default:
		RespondJSON(w, http.StatusInternalServerError, svcerrors.ErrorMessage{
			Code:    svcerrors.ErrorInternalServerError,
			Message: "Internal server error",
		})
	}
}

// HandleDecodeError writes a bad request response for an unparseable payload.
func HandleDecodeError(w http.ResponseWriter, err error) {
	log.GetLogger().Debug("Failed to decode request payload", log.Error(err))
	RespondJSON(w, http.StatusBadRequest, svcerrors.ErrorMessage{
		Code:        svcerrors.ErrorInvalidRequestBody,
		Message:     "Invalid request payload",
		Description: "The request body could not be parsed as JSON.",
	})
}
