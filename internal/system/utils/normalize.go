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

package utils

import (
	"strings"
	"time"
	"unicode"

	"github.com/ttacon/libphonenumber"

	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
)

// nameAffixes are honorific prefixes and generational suffixes stripped
// during name normalization.
var nameAffixes = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {},
	"jr": {}, "sr": {}, "ii": {}, "iii": {},
}

// dateLayouts lists the accepted date formats, tried in order. Slash formats
// are interpreted as month first.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	time.RFC3339,
}

// NormalizeIdentifier lowercases an identifier and strips every
// non-alphanumeric character.
func NormalizeIdentifier(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeName lowercases a personal name, strips punctuation and removes
// honorific prefixes and generational suffixes.
func NormalizeName(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	tokens := strings.Fields(b.String())
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, isAffix := nameAffixes[token]; isAffix {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizePhone parses a phone number and returns its E.164 form. Numbers
// that cannot be parsed fall back to their bare digit sequence.
func NormalizePhone(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	parsed, err := libphonenumber.Parse(trimmed, constants.DefaultRegion)
	if err == nil && libphonenumber.IsValidNumber(parsed) {
		return libphonenumber.Format(parsed, libphonenumber.E164)
	}

	var digits strings.Builder
	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// ParseDate parses a date string against the accepted layouts and returns
// the parsed time, or false when no layout matches.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
