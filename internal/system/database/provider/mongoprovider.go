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

package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
)

var (
	mongoDatabase *mongo.Database
	mongoOnce     sync.Once
)

// InitMongoDatabase connects to MongoDB using the runtime configuration and
// stores the shared database handle.
func InitMongoDatabase() error {
	var initErr error
	mongoOnce.Do(func() {
		cfg := config.GetPRSRuntime().Config.Database

		uri := fmt.Sprintf("mongodb://%s:%d", cfg.Host, cfg.Port)
		if cfg.Username != "" {
			uri = fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = fmt.Errorf("error connecting to mongodb: %w", err)
			return
		}
		if err := mongoClient.Ping(ctx, nil); err != nil {
			initErr = fmt.Errorf("error verifying mongodb connection: %w", err)
			return
		}
		mongoDatabase = mongoClient.Database(cfg.Name)
	})
	return initErr
}

// GetMongoDatabase returns the shared MongoDB database handle.
func GetMongoDatabase() *mongo.Database {
	if mongoDatabase == nil {
		panic("mongodb database is not initialized")
	}
	return mongoDatabase
}
