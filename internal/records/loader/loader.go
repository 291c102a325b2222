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

// Package loader reads record source files and maps their rows onto the
// unified schema.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	matchmodel "github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
)

// knownFields is the closed set of typed unified schema fields.
var knownFields = map[string]struct{}{
	constants.FieldCustomerID: {},
	constants.FieldFullName:   {},
	constants.FieldFirstName:  {},
	constants.FieldLastName:   {},
	constants.FieldDOB:        {},
	constants.FieldNationalID: {},
	constants.FieldEmail:      {},
	constants.FieldPhone:      {},
	constants.FieldAddress:    {},
	constants.FieldCountry:    {},
	constants.FieldRawText:    {},
}

// LoadSource reads a source file and returns its rows as unified records.
// The mapping translates raw column names to unified field names; columns
// mapped to an empty name are dropped. A nil mapping keeps columns that
// already carry unified names.
func LoadSource(sourceName, path, format string, mapping map[string]string) ([]matchmodel.UnifiedRecord, error) {
	switch strings.ToLower(format) {
	case constants.SourceFormatCSV:
		return loadCSV(sourceName, path, mapping)
	case constants.SourceFormatJSON:
		return loadJSON(sourceName, path, mapping)
	case constants.SourceFormatXLSX:
		return loadXLSX(sourceName, path, mapping)
	default:
		return nil, errors.Errorf("unsupported source format: %s", format)
	}
}

func loadCSV(sourceName, path string, mapping map[string]string) ([]matchmodel.UnifiedRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening source file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "error reading csv source")
	}
	if len(rows) == 0 {
		return []matchmodel.UnifiedRecord{}, nil
	}

	header := rows[0]
	records := make([]matchmodel.UnifiedRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				raw[strings.TrimSpace(column)] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, toUnified(sourceName, raw, mapping))
	}
	return records, nil
}

func loadXLSX(sourceName, path string, mapping map[string]string) ([]matchmodel.UnifiedRecord, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening source file")
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return []matchmodel.UnifiedRecord{}, nil
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "error reading xlsx source")
	}
	if len(rows) == 0 {
		return []matchmodel.UnifiedRecord{}, nil
	}

	header := rows[0]
	records := make([]matchmodel.UnifiedRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				raw[strings.TrimSpace(column)] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, toUnified(sourceName, raw, mapping))
	}
	return records, nil
}

func loadJSON(sourceName, path string, mapping map[string]string) ([]matchmodel.UnifiedRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening source file")
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrap(err, "error reading json source")
	}

	records := make([]matchmodel.UnifiedRecord, 0, len(rows))
	for _, row := range rows {
		values := make(map[string]string, len(row))
		for column, value := range row {
			values[column] = stringify(value)
		}
		records = append(records, toUnified(sourceName, values, mapping))
	}
	return records, nil
}

// toUnified maps a raw row into a UnifiedRecord. Empty values stay unset so
// emptiness is decided here, not during scoring.
func toUnified(sourceName string, raw map[string]string, mapping map[string]string) matchmodel.UnifiedRecord {
	record := matchmodel.UnifiedRecord{SourceName: sourceName}
	for column, value := range raw {
		field := column
		if mapping != nil {
			mapped, known := mapping[column]
			if !known || mapped == "" {
				continue
			}
			field = mapped
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		setUnifiedField(&record, field, value)
	}
	return record
}

func setUnifiedField(record *matchmodel.UnifiedRecord, field, value string) {
	switch field {
	case constants.FieldCustomerID:
		record.CustomerID = value
	case constants.FieldFullName:
		record.FullName = value
	case constants.FieldFirstName:
		record.FirstName = value
	case constants.FieldLastName:
		record.LastName = value
	case constants.FieldDOB:
		record.DOB = value
	case constants.FieldNationalID:
		record.NationalID = value
	case constants.FieldEmail:
		record.Email = value
	case constants.FieldPhone:
		record.Phone = value
	case constants.FieldAddress:
		record.Address = value
	case constants.FieldCountry:
		record.Country = value
	case constants.FieldRawText:
		record.RawText = value
	case constants.FieldSourceName:
		// Source attribution comes from configuration, not file content.
	default:
		if record.Extra == nil {
			record.Extra = make(map[string]string)
		}
		record.Extra[field] = value
	}
}

// IsKnownField reports whether a field name belongs to the typed unified
// schema set.
func IsKnownField(name string) bool {
	_, ok := knownFields[name]
	return ok
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
