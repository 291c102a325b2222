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

// Package store persists resolved profiles. Postgres and MongoDB backends
// are supported; the backend is selected by the database configuration.
package store

import (
	"context"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
)

// ProfileStoreInterface defines resolved profile persistence operations.
type ProfileStoreInterface interface {
	Insert(ctx context.Context, profile model.MergedProfile) error
	List(ctx context.Context, limit int) ([]model.MergedProfile, error)
	GetByID(ctx context.Context, id string) (*model.MergedProfile, error)
}
