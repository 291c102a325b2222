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
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
	dbprovider "github.com/wso2/identity-profile-resolution-service/internal/system/database/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
	"github.com/wso2/identity-profile-resolution-service/test/setup"
)

var postgres *setup.PostgresContainer

func TestMain(m *testing.M) {
	if os.Getenv("TEST_MODE") != "integration" {
		fmt.Println("Skipping integration tests, set TEST_MODE=integration to run them")
		os.Exit(0)
	}

	_ = log.Init("ERROR")

	ctx := context.Background()
	container, err := setup.StartPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start postgres container: %v\n", err)
		os.Exit(1)
	}
	postgres = container

	cfg := &config.Config{}
	cfg.Database.Type = "postgres"
	cfg.Cache.TTLSeconds = 60
	cfg.Log.Level = "ERROR"
	config.OverridePRSRuntime(cfg)
	dbprovider.SetTestDB(container.DB)

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}
