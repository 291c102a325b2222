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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerBeforeInit(t *testing.T) {
	mu.Lock()
	logger = nil
	mu.Unlock()

	l := GetLogger()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info("message before init") })
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("NOISY"))
}

func TestInitSetsSingleton(t *testing.T) {
	require.NoError(t, Init("DEBUG"))
	assert.NotNil(t, GetLogger())
}
