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

// Package model defines the data types of the profile matching engine.
package model

import (
	"strings"
	"time"

	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
)

// UnifiedRecord is a customer record mapped onto the unified schema.
// Known fields have typed slots; schema-evolved fields go into Extra.
// Records are immutable once added to the pool.
type UnifiedRecord struct {
	CustomerID string `json:"customer_id,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	DOB        string `json:"dob,omitempty"`
	NationalID string `json:"national_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Country    string `json:"country,omitempty"`
	RawText    string `json:"raw_text,omitempty"`
	SourceName string `json:"source_name"`

	Extra map[string]string `json:"extra,omitempty"`
}

// Field returns the value of a unified field by name, or false when the
// field is unknown to the record.
func (r *UnifiedRecord) Field(name string) (string, bool) {
	switch name {
	case constants.FieldCustomerID:
		return r.CustomerID, true
	case constants.FieldFullName:
		if r.FullName == "" && (r.FirstName != "" || r.LastName != "") {
			return strings.TrimSpace(r.FirstName + " " + r.LastName), true
		}
		return r.FullName, true
	case constants.FieldFirstName:
		return r.FirstName, true
	case constants.FieldLastName:
		return r.LastName, true
	case constants.FieldDOB:
		return r.DOB, true
	case constants.FieldNationalID:
		return r.NationalID, true
	case constants.FieldEmail:
		return r.Email, true
	case constants.FieldPhone:
		return r.Phone, true
	case constants.FieldAddress:
		return r.Address, true
	case constants.FieldCountry:
		return r.Country, true
	case constants.FieldRawText:
		return r.RawText, true
	case constants.FieldSourceName:
		return r.SourceName, true
	}
	if r.Extra != nil {
		if v, ok := r.Extra[name]; ok {
			return v, true
		}
	}
	return "", false
}

// Query is a partial identity lookup keyed by unified field name. Empty
// values are treated as not queried.
type Query map[string]string

// Fields returns the names of the non-empty query fields.
func (q Query) Fields() []string {
	fields := make([]string, 0, len(q))
	for name, value := range q {
		if strings.TrimSpace(value) != "" {
			fields = append(fields, name)
		}
	}
	return fields
}

// IsEmpty reports whether the query has no non-empty fields.
func (q Query) IsEmpty() bool {
	return len(q.Fields()) == 0
}

// MatchQuality describes how well a candidate matched a query.
type MatchQuality struct {
	OverallScore  float64            `json:"overall_score"`
	IsStrongMatch bool               `json:"is_strong_match"`
	FieldScores   map[string]float64 `json:"field_scores"`
}

// ScoredCandidate pairs a pool record with its match quality for one query.
type ScoredCandidate struct {
	Record  UnifiedRecord `json:"record"`
	Quality MatchQuality  `json:"quality"`

	// PoolIndex is the record's position in the pool, used as the final
	// sort tie-breaker so ranking stays deterministic.
	PoolIndex int `json:"-"`
}

// MergedProfile is the consolidated identity built from one merge group.
type MergedProfile struct {
	ID           string        `json:"id"`
	Profile      UnifiedRecord `json:"profile"`
	Sources      []string      `json:"sources"`
	MatchCount   int           `json:"match_count"`
	MatchQuality MatchQuality  `json:"match_quality"`
	MergedAt     time.Time     `json:"merged_at"`
}

// MatchSummary aggregates statistics over the individual matches.
type MatchSummary struct {
	TotalMatches     int     `json:"total_matches"`
	SourcesMatched   int     `json:"sources_matched"`
	HighestScore     float64 `json:"highest_score"`
	HasStrongMatches bool    `json:"has_strong_matches"`
}

// MatchResult is the full outcome of a match call.
type MatchResult struct {
	Profile           *MergedProfile    `json:"profile"`
	IndividualMatches []ScoredCandidate `json:"individual_matches"`
	MatchSummary      MatchSummary      `json:"match_summary"`
}

// MatchConfig holds the tunable thresholds and weights of the engine.
type MatchConfig struct {
	// MinScore is the inclusive lower bound for a candidate to rank.
	MinScore float64
	// StrongMatchScore is the overall score bar for a strong match.
	StrongMatchScore float64
	// HighValueFieldScore is the per-field bar a high-value field must
	// clear for strong-match gating.
	HighValueFieldScore float64
	// NameOnlyStrongScore is the overall bar when no high-value field
	// was queried.
	NameOnlyStrongScore float64
	// MergeIdentityScore is the pairwise score above which two candidates
	// are considered the same identity.
	MergeIdentityScore float64
	// FieldWeights maps unified field names to importance weights.
	FieldWeights map[string]float64
	// DefaultWeight applies to queried fields without an explicit weight.
	DefaultWeight float64
	// MaxConcurrency bounds the per-candidate scoring workers.
	MaxConcurrency int
}

// DefaultMatchConfig returns the engine defaults.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MinScore:            40,
		StrongMatchScore:    85,
		HighValueFieldScore: 90,
		NameOnlyStrongScore: 95,
		MergeIdentityScore:  90,
		FieldWeights: map[string]float64{
			constants.FieldNationalID: 0.15,
			constants.FieldFullName:   0.45,
			constants.FieldDOB:        0.25,
			constants.FieldEmail:      0.10,
			constants.FieldPhone:      0.05,
		},
		DefaultWeight:  0.05,
		MaxConcurrency: 8,
	}
}

// Weight returns the importance weight for a field.
func (c MatchConfig) Weight(field string) float64 {
	if w, ok := c.FieldWeights[field]; ok {
		return w
	}
	return c.DefaultWeight
}
