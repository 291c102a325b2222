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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "bank001", NormalizeIdentifier("BANK-001"))
	assert.Equal(t, "c100", NormalizeIdentifier("  C.100  "))
	assert.Equal(t, "", NormalizeIdentifier("---"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "john smith", NormalizeName("Dr. John Smith Jr."))
	assert.Equal(t, "leonardo dicaprio", NormalizeName("  LEONARDO   DiCaprio "))
	assert.Equal(t, "mary oconnor", NormalizeName("Mrs. Mary O'Connor III"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "leo@example.com", NormalizeEmail(" Leo@Example.COM "))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+13105550142", NormalizePhone("(310) 555-0142"))
	assert.Equal(t, "+13105550142", NormalizePhone("+1 310 555 0142"))
	// Invalid numbers fall back to their digits.
	assert.Equal(t, "123", NormalizePhone("ext. 123"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestParseDateLayouts(t *testing.T) {
	for _, value := range []string{"1974-11-11", "11/11/1974", "November 11, 1974", "Nov 11, 1974"} {
		parsed, ok := ParseDate(value)
		require.True(t, ok, "expected %q to parse", value)
		year, month, day := parsed.Date()
		assert.Equal(t, 1974, year)
		assert.Equal(t, 11, int(month))
		assert.Equal(t, 11, day)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, ok := ParseDate("not-a-date")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}
