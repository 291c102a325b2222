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

package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	matchprovider "github.com/wso2/identity-profile-resolution-service/internal/matching/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/config"
	dbprovider "github.com/wso2/identity-profile-resolution-service/internal/system/database/provider"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
	"github.com/wso2/identity-profile-resolution-service/internal/system/managers"
)

const defaultConfigPath = "config/deployment.yaml"

func main() {
	loadEnvFiles()

	configPath := os.Getenv("PRS_CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitializePRSRuntime(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime: %v\n", err)
		os.Exit(1)
	}
	if err := log.Init(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	if cfg.Database.Type == "mongodb" {
		if err := dbprovider.InitMongoDatabase(); err != nil {
			logger.Fatal("Failed to connect to MongoDB", log.Error(err))
		}
	} else {
		if err := dbprovider.InitDBClient(); err != nil {
			logger.Fatal("Failed to connect to the database", log.Error(err))
		}
	}

	provider := matchprovider.NewMatchProvider()
	defer provider.StopWorkers()

	if len(cfg.Records.Sources) > 0 {
		result, err := provider.GetRecordService().Reload()
		if err != nil {
			logger.Fatal("Failed to load record sources", log.Error(err))
		}
		logger.Info("Loaded record pool",
			log.Int("total_records", result.TotalRecords),
			log.Int("sources", result.SourcesLoaded))
	} else {
		logger.Warn("No record sources configured, the pool starts empty")
	}

	mux := http.NewServeMux()
	managers.RegisterServices(mux)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		logger.Fatal("Failed to bind listener", log.String("address", address), log.Error(err))
	}

	logger.Info("Profile resolution service started", log.String("address", address))
	server := &http.Server{Handler: enableCORS(mux)}
	if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server terminated unexpectedly", log.Error(err))
	}
}

// loadEnvFiles loads every .env file under config/ before the configuration
// is read, so the YAML can reference those variables.
func loadEnvFiles() {
	envFiles, err := filepath.Glob("config/*.env")
	if err != nil || len(envFiles) == 0 {
		return
	}
	_ = godotenv.Load(envFiles...)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
