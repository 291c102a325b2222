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

// Package scorer computes per-field similarity scores between a query value
// and a candidate value. All functions are pure.
package scorer

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
	"github.com/wso2/identity-profile-resolution-service/internal/system/utils"
)

// Score computes a similarity score in [0,100] for one field. Absent or
// empty values on either side score 0.
func Score(field, queryValue, candidateValue string) float64 {
	queryValue = strings.TrimSpace(queryValue)
	candidateValue = strings.TrimSpace(candidateValue)
	if queryValue == "" || candidateValue == "" {
		return 0
	}
	if strings.EqualFold(normalizeFreeText(queryValue), normalizeFreeText(candidateValue)) {
		return 100
	}

	switch field {
	case constants.FieldFullName, constants.FieldFirstName, constants.FieldLastName:
		return nameScore(queryValue, candidateValue)
	case constants.FieldDOB:
		return dateScore(queryValue, candidateValue)
	case constants.FieldNationalID, constants.FieldCustomerID:
		return exactScore(utils.NormalizeIdentifier(queryValue), utils.NormalizeIdentifier(candidateValue))
	case constants.FieldEmail:
		return exactScore(utils.NormalizeEmail(queryValue), utils.NormalizeEmail(candidateValue))
	case constants.FieldPhone:
		return exactScore(utils.NormalizePhone(queryValue), utils.NormalizePhone(candidateValue))
	case constants.FieldAddress:
		return fuzzyScore(normalizeFreeText(queryValue), normalizeFreeText(candidateValue))
	default:
		return exactScore(strings.ToLower(queryValue), strings.ToLower(candidateValue))
	}
}

func exactScore(a, b string) float64 {
	if a != "" && a == b {
		return 100
	}
	return 0
}

// nameScore normalizes both names and takes the higher of token-overlap
// and edit-distance similarity.
func nameScore(query, candidate string) float64 {
	a := utils.NormalizeName(query)
	b := utils.NormalizeName(candidate)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	return fuzzyScore(a, b)
}

// dateScore gives full credit for the same calendar date and none
// otherwise. Unparseable values score 0.
func dateScore(query, candidate string) float64 {
	qd, ok := utils.ParseDate(query)
	if !ok {
		return 0
	}
	cd, ok := utils.ParseDate(candidate)
	if !ok {
		return 0
	}
	qy, qm, qday := qd.Date()
	cy, cm, cday := cd.Date()
	if qy == cy && qm == cm && qday == cday {
		return 100
	}
	return 0
}

func fuzzyScore(a, b string) float64 {
	token := tokenSimilarity(a, b)
	edit := editSimilarity(a, b)
	if token > edit {
		return token * 100
	}
	return edit * 100
}

// tokenSimilarity is the Jaccard similarity over whitespace tokens.
func tokenSimilarity(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(tokensA))
	for _, t := range tokensA {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tokensB))
	for _, t := range tokensB {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// editSimilarity converts Levenshtein distance to a similarity ratio.
func editSimilarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

func normalizeFreeText(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), " ")
}
