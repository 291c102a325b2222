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

package service

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/model"
	"github.com/wso2/identity-profile-resolution-service/internal/system/cache"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func newTestService() *MappingService {
	return NewMappingService(cache.New(time.Minute))
}

// ----------------------------------------------------------------------------
// Mapping validation
// ----------------------------------------------------------------------------

func TestCreateMappingRejectsUnknownUnifiedField(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateMapping(model.SchemaMappingRequest{
		SourceName: "crm",
		Mapping:    map[string]string{"name": "ful_nmae"},
	})
	require.Error(t, err)

	clientErr, ok := err.(*svcerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, svcerrors.ErrorInvalidSchemaMapping, clientErr.Code)
	assert.Contains(t, clientErr.Description, "ful_nmae")
}

func TestUpdateMappingRejectsUnknownUnifiedField(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateMapping("crm", model.SchemaMappingRequest{
		SourceName: "crm",
		Mapping:    map[string]string{"birth": "date_of_birth"},
	})
	require.Error(t, err)

	clientErr, ok := err.(*svcerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, svcerrors.ErrorInvalidSchemaMapping, clientErr.Code)
}

func TestCreateMappingRejectsEmptySourceName(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateMapping(model.SchemaMappingRequest{
		Mapping: map[string]string{"name": "full_name"},
	})
	require.Error(t, err)

	clientErr, ok := err.(*svcerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, svcerrors.ErrorInvalidSchemaMapping, clientErr.Code)
}

func TestValidateMappingAllowsDropTargets(t *testing.T) {
	assert.NoError(t, validateMapping(map[string]string{
		"cust_no":       "customer_id",
		"internal_flag": "",
	}))
}

func TestValidateMappingRejectsEmptyMap(t *testing.T) {
	assert.Error(t, validateMapping(map[string]string{}))
}
