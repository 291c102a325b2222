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

// Package client provides a thin database client over database/sql.
package client

import (
	"database/sql"
	"fmt"
)

// DBClient wraps a sql.DB handle and exposes row-map based query helpers.
type DBClient struct {
	db *sql.DB
}

// NewDBClient creates a DBClient over an open database handle.
func NewDBClient(db *sql.DB) *DBClient {
	return &DBClient{db: db}
}

// ExecuteQuery runs a query and returns the result set as a slice of
// column-name keyed maps.
func (c *DBClient) ExecuteQuery(query string, args ...interface{}) ([]map[string]interface{}, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading result columns: %w", err)
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}
	return results, nil
}

// ExecuteStatement runs a statement and returns the number of affected rows.
func (c *DBClient) ExecuteStatement(statement string, args ...interface{}) (int64, error) {
	result, err := c.db.Exec(statement, args...)
	if err != nil {
		return 0, fmt.Errorf("error executing statement: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}
	return affected, nil
}

// Close closes the underlying database handle.
func (c *DBClient) Close() error {
	return c.db.Close()
}
