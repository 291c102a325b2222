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

// Package errors defines the service error types returned across layers.
package errors

// ErrorMessage is the wire format for API error responses.
type ErrorMessage struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	TraceID     string `json:"trace_id,omitempty"`
}

// ClientError represents an error caused by an invalid client request.
type ClientError struct {
	ErrorMessage
}

func (e *ClientError) Error() string {
	return e.Code + ": " + e.Message
}

// ServerError represents an internal failure while serving a request.
type ServerError struct {
	ErrorMessage
}

func (e *ServerError) Error() string {
	return e.Code + ": " + e.Message
}

// NewClientError creates a new ClientError with the given code, message and description.
func NewClientError(code, message, description string) *ClientError {
	return &ClientError{
		ErrorMessage: ErrorMessage{
			Code:        code,
			Message:     message,
			Description: description,
		},
	}
}

// NewServerError creates a new ServerError with the given code, message and description.
func NewServerError(code, message, description string) *ServerError {
	return &ServerError{
		ErrorMessage: ErrorMessage{
			Code:        code,
			Message:     message,
			Description: description,
		},
	}
}
