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

// Package service implements schema mapping management.
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-profile-resolution-service/internal/records/loader"
	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/model"
	"github.com/wso2/identity-profile-resolution-service/internal/schema_mappings/store"
	"github.com/wso2/identity-profile-resolution-service/internal/system/cache"
	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

const cacheKeyPrefix = "schema_mapping:"

// MappingServiceInterface defines schema mapping operations.
type MappingServiceInterface interface {
	GetMappings() ([]model.SchemaMapping, error)
	GetMapping(sourceName string) (*model.SchemaMapping, error)
	CreateMapping(request model.SchemaMappingRequest) (*model.SchemaMapping, error)
	UpdateMapping(sourceName string, request model.SchemaMappingRequest) (*model.SchemaMapping, error)
	DeleteMapping(sourceName string) error
	ResolveMapping(sourceName string) (map[string]string, error)
}

// MappingService manages schema mappings with a read-through cache.
type MappingService struct {
	cache  *cache.Cache
	logger *log.Logger
}

// NewMappingService creates a mapping service backed by the given cache.
func NewMappingService(mappingCache *cache.Cache) *MappingService {
	return &MappingService{
		cache:  mappingCache,
		logger: log.GetLogger().With(log.String("component", "MappingService")),
	}
}

// GetMappings returns all stored schema mappings.
func (s *MappingService) GetMappings() ([]model.SchemaMapping, error) {
	mappings, err := store.GetMappings()
	if err != nil {
		s.logger.Error("Failed to retrieve schema mappings", log.Error(err))
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileRetrievingSchemaMappings,
			"Failed to retrieve schema mappings", "")
	}
	return mappings, nil
}

// GetMapping returns the mapping for a source.
func (s *MappingService) GetMapping(sourceName string) (*model.SchemaMapping, error) {
	if cached, ok := s.cache.Get(cacheKeyPrefix + sourceName); ok {
		mapping := cached.(model.SchemaMapping)
		return &mapping, nil
	}

	mapping, err := store.GetMappingBySource(sourceName)
	if err != nil {
		s.logger.Error("Failed to retrieve schema mapping",
			log.String("source", sourceName), log.Error(err))
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileRetrievingSchemaMappings,
			"Failed to retrieve schema mapping", "")
	}
	if mapping == nil {
		return nil, svcerrors.NewClientError(svcerrors.ErrorSchemaMappingNotFound,
			"Schema mapping not found", "No mapping is registered for source "+sourceName+".")
	}

	s.cache.Set(cacheKeyPrefix+sourceName, *mapping)
	return mapping, nil
}

// CreateMapping validates and stores a new schema mapping.
func (s *MappingService) CreateMapping(request model.SchemaMappingRequest) (*model.SchemaMapping, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	existing, err := store.GetMappingBySource(request.SourceName)
	if err != nil {
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileStoringSchemaMapping,
			"Failed to store schema mapping", "")
	}
	if existing != nil {
		return nil, svcerrors.NewClientError(svcerrors.ErrorInvalidSchemaMapping,
			"Schema mapping already exists",
			"A mapping for source "+request.SourceName+" is already registered.")
	}

	mapping := model.SchemaMapping{
		ID:         uuid.New().String(),
		SourceName: request.SourceName,
		Mapping:    request.Mapping,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := store.InsertMapping(mapping); err != nil {
		s.logger.Error("Failed to store schema mapping",
			log.String("source", request.SourceName), log.Error(err))
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileStoringSchemaMapping,
			"Failed to store schema mapping", "")
	}

	s.cache.Set(cacheKeyPrefix+mapping.SourceName, mapping)
	return &mapping, nil
}

// UpdateMapping replaces the mapping for an existing source.
func (s *MappingService) UpdateMapping(sourceName string, request model.SchemaMappingRequest) (*model.SchemaMapping, error) {
	if err := validateMapping(request.Mapping); err != nil {
		return nil, err
	}

	affected, err := store.UpdateMapping(sourceName, request.Mapping)
	if err != nil {
		s.logger.Error("Failed to update schema mapping",
			log.String("source", sourceName), log.Error(err))
		return nil, svcerrors.NewServerError(svcerrors.ErrorWhileStoringSchemaMapping,
			"Failed to update schema mapping", "")
	}
	if affected == 0 {
		return nil, svcerrors.NewClientError(svcerrors.ErrorSchemaMappingNotFound,
			"Schema mapping not found", "No mapping is registered for source "+sourceName+".")
	}

	s.cache.Invalidate(cacheKeyPrefix + sourceName)
	return s.GetMapping(sourceName)
}

// DeleteMapping removes the mapping for a source.
func (s *MappingService) DeleteMapping(sourceName string) error {
	affected, err := store.DeleteMapping(sourceName)
	if err != nil {
		s.logger.Error("Failed to delete schema mapping",
			log.String("source", sourceName), log.Error(err))
		return svcerrors.NewServerError(svcerrors.ErrorWhileStoringSchemaMapping,
			"Failed to delete schema mapping", "")
	}
	if affected == 0 {
		return svcerrors.NewClientError(svcerrors.ErrorSchemaMappingNotFound,
			"Schema mapping not found", "No mapping is registered for source "+sourceName+".")
	}

	s.cache.Invalidate(cacheKeyPrefix + sourceName)
	return nil
}

// ResolveMapping returns the column mapping for a source, or nil when the
// source has none registered and its columns are used as-is.
func (s *MappingService) ResolveMapping(sourceName string) (map[string]string, error) {
	mapping, err := s.GetMapping(sourceName)
	if err != nil {
		if clientErr, ok := err.(*svcerrors.ClientError); ok &&
			clientErr.Code == svcerrors.ErrorSchemaMappingNotFound {
			return nil, nil
		}
		return nil, err
	}
	return mapping.Mapping, nil
}

func validateRequest(request model.SchemaMappingRequest) error {
	if strings.TrimSpace(request.SourceName) == "" {
		return svcerrors.NewClientError(svcerrors.ErrorInvalidSchemaMapping,
			"Invalid schema mapping", "The source name cannot be empty.")
	}
	return validateMapping(request.Mapping)
}

// validateMapping rejects targets outside the unified field set. An empty
// target is allowed and drops the column at load time.
func validateMapping(mapping map[string]string) error {
	if len(mapping) == 0 {
		return svcerrors.NewClientError(svcerrors.ErrorInvalidSchemaMapping,
			"Invalid schema mapping", "The mapping cannot be empty.")
	}
	for column, field := range mapping {
		if field == "" {
			continue
		}
		if !loader.IsKnownField(field) {
			return svcerrors.NewClientError(svcerrors.ErrorInvalidSchemaMapping,
				"Invalid schema mapping",
				"Column "+column+" maps to unknown unified field "+field+".")
		}
	}
	return nil
}
