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

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
)

const profileCollection = "resolved_profiles"

// MongoProfileStore persists resolved profiles in MongoDB.
type MongoProfileStore struct {
	collection *mongo.Collection
}

// NewMongoProfileStore creates a Mongo backed profile store over the given
// database handle.
func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{collection: db.Collection(profileCollection)}
}

type profileDocument struct {
	ID           string              `bson:"_id"`
	Profile      model.UnifiedRecord `bson:"profile"`
	Sources      []string            `bson:"sources"`
	MatchCount   int                 `bson:"match_count"`
	MatchQuality model.MatchQuality  `bson:"match_quality"`
	MergedAt     int64               `bson:"merged_at"`
}

// Insert stores a resolved profile.
func (s *MongoProfileStore) Insert(ctx context.Context, profile model.MergedProfile) error {
	doc := profileDocument{
		ID:           profile.ID,
		Profile:      profile.Profile,
		Sources:      profile.Sources,
		MatchCount:   profile.MatchCount,
		MatchQuality: profile.MatchQuality,
		MergedAt:     profile.MergedAt.UnixMilli(),
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error inserting resolved profile: %w", err)
	}
	return nil
}

// List returns the most recently merged profiles.
func (s *MongoProfileStore) List(ctx context.Context, limit int) ([]model.MergedProfile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "merged_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing resolved profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := make([]model.MergedProfile, 0)
	for cursor.Next(ctx) {
		var doc profileDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding resolved profile: %w", err)
		}
		profiles = append(profiles, docToProfile(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resolved profiles: %w", err)
	}
	return profiles, nil
}

// GetByID returns a stored profile, or nil when absent.
func (s *MongoProfileStore) GetByID(ctx context.Context, id string) (*model.MergedProfile, error) {
	var doc profileDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving resolved profile: %w", err)
	}
	profile := docToProfile(doc)
	return &profile, nil
}

func docToProfile(doc profileDocument) model.MergedProfile {
	return model.MergedProfile{
		ID:           doc.ID,
		Profile:      doc.Profile,
		Sources:      doc.Sources,
		MatchCount:   doc.MatchCount,
		MatchQuality: doc.MatchQuality,
		MergedAt:     time.UnixMilli(doc.MergedAt).UTC(),
	}
}
