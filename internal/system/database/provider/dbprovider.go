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

// Package provider manages the shared database client instance.
package provider

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"

	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
	"github.com/wso2/identity-profile-resolution-service/internal/system/database/client"
)

var (
	dbClient *client.DBClient
	once     sync.Once
	mu       sync.RWMutex
)

// InitDBClient opens the database connection described by the runtime
// configuration and stores the shared client.
func InitDBClient() error {
	var initErr error
	once.Do(func() {
		cfg := config.GetPRSRuntime().Config.Database
		dsn := fmt.Sprintf(
			"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.Name, cfg.Username, cfg.Password, cfg.SSLMode,
		)

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			initErr = fmt.Errorf("error opening database connection: %w", err)
			return
		}
		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("error verifying database connection: %w", err)
			return
		}

		mu.Lock()
		defer mu.Unlock()
		dbClient = client.NewDBClient(db)
	})
	return initErr
}

// GetDBClient returns the shared database client.
func GetDBClient() *client.DBClient {
	mu.RLock()
	defer mu.RUnlock()
	if dbClient == nil {
		panic("database client is not initialized")
	}
	return dbClient
}

// SetTestDB overrides the shared client with a test database handle.
// Intended for integration tests.
func SetTestDB(db *sql.DB) {
	mu.Lock()
	defer mu.Unlock()
	dbClient = client.NewDBClient(db)
}
