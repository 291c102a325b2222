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

// Package setup provides database containers for integration tests.
package setup

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBName     = "profile_resolution_test"
	testDBUser     = "prs_test"
	testDBPassword = "prs_test"
)

// PostgresContainer wraps a disposable Postgres instance for tests.
type PostgresContainer struct {
	container testcontainers.Container
	DB        *sql.DB
}

// StartPostgres launches a Postgres container, applies the service schema
// and returns an open connection to it.
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	request := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       testDBName,
			"POSTGRES_USER":     testDBUser,
			"POSTGRES_PASSWORD": testDBPassword,
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("error starting postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("error resolving container port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		host, port.Int(), testDBName, testDBUser, testDBPassword)

	var db *sql.DB
	for attempt := 0; attempt < 10; attempt++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to test database: %w", err)
	}

	if err := applySchema(db); err != nil {
		return nil, err
	}
	return &PostgresContainer{container: container, DB: db}, nil
}

// Terminate stops the container and closes the connection.
func (c *PostgresContainer) Terminate(ctx context.Context) error {
	if c.DB != nil {
		_ = c.DB.Close()
	}
	return c.container.Terminate(ctx)
}

func applySchema(db *sql.DB) error {
	script, err := os.ReadFile(filepath.Join("..", "..", "internal", "system", "database", "scripts", "postgres.sql"))
	if err != nil {
		return fmt.Errorf("error reading schema script: %w", err)
	}
	if _, err := db.Exec(string(script)); err != nil {
		return fmt.Errorf("error applying schema script: %w", err)
	}
	return nil
}
