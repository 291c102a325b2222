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

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/model"
	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/service"
	"github.com/wso2/identity-profile-resolution-service/internal/system/cache"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
)

func newMappingService() *service.MappingService {
	return service.NewMappingService(cache.New(time.Minute))
}

func TestSchemaMappingLifecycle(t *testing.T) {
	svc := newMappingService()

	created, err := svc.CreateMapping(model.SchemaMappingRequest{
		SourceName: "legacy_crm",
		Mapping:    map[string]string{"cust_no": "customer_id", "name": "full_name"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	fetched, err := svc.GetMapping("legacy_crm")
	require.NoError(t, err)
	assert.Equal(t, "customer_id", fetched.Mapping["cust_no"])

	updated, err := svc.UpdateMapping("legacy_crm", model.SchemaMappingRequest{
		Mapping: map[string]string{"cust_no": "customer_id", "name": "full_name", "born": "dob"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dob", updated.Mapping["born"])

	all, err := svc.GetMappings()
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	require.NoError(t, svc.DeleteMapping("legacy_crm"))

	_, err = svc.GetMapping("legacy_crm")
	require.Error(t, err)
	clientErr, ok := err.(*svcerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, svcerrors.ErrorSchemaMappingNotFound, clientErr.Code)
}

func TestSchemaMappingDuplicateSourceRejected(t *testing.T) {
	svc := newMappingService()

	_, err := svc.CreateMapping(model.SchemaMappingRequest{
		SourceName: "dup_source",
		Mapping:    map[string]string{"a": "full_name"},
	})
	require.NoError(t, err)
	defer func() { _ = svc.DeleteMapping("dup_source") }()

	_, err = svc.CreateMapping(model.SchemaMappingRequest{
		SourceName: "dup_source",
		Mapping:    map[string]string{"b": "dob"},
	})
	require.Error(t, err)
}

func TestResolveMappingMissingSourceIsNotAnError(t *testing.T) {
	svc := newMappingService()

	mapping, err := svc.ResolveMapping("unmapped_source")
	require.NoError(t, err)
	assert.Nil(t, mapping)
}
