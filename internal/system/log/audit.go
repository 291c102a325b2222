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

package log

import (
	"encoding/json"
	"log/slog"
	"time"
)

// Audit action identifiers.
const (
	ActionSearchProfiles       = "search-profiles"
	ActionMergeProfiles        = "merge-profiles"
	ActionReloadRecords        = "reload-records"
	ActionAddSchemaMapping     = "add-schema-mapping"
	ActionUpdateSchemaMapping  = "update-schema-mapping"
	ActionDeleteSchemaMapping  = "delete-schema-mapping"
	ActionStoreResolvedProfile = "store-resolved-profile"
)

// Initiator types for audit events.
const (
	InitiatorTypeUser   = "user"
	InitiatorTypeSystem = "system"
	InitiatorTypeAdmin  = "admin"
)

// Target types for audit events.
const (
	TargetTypeProfile       = "profile"
	TargetTypeRecordSource  = "record-source"
	TargetTypeSchemaMapping = "schema-mapping"
)

// AuditEvent represents a single audit log entry.
type AuditEvent struct {
	RecordedAt    time.Time              `json:"recorded_at"`
	InitiatorID   string                 `json:"initiator_id"`
	InitiatorType string                 `json:"initiator_type"`
	TargetID      string                 `json:"target_id"`
	TargetType    string                 `json:"target_type"`
	ActionID      string                 `json:"action_id"`
	TraceID       string                 `json:"trace_id,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
}

// Audit emits an audit event through the structured logger.
func (l *Logger) Audit(event AuditEvent) {
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		l.Error("Failed to serialize audit event", Error(err))
		return
	}

	l.internal.Info("AUDIT", slog.String("audit_event", string(payload)))
}
