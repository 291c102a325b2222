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

package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	svcerrors "github.com/wso2/identity-profile-resolution-service/internal/system/errors"
	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

const reportSheet = "Resolved Profiles"

var reportHeader = []string{
	"Profile ID", "Customer ID", "Full Name", "DOB", "National ID",
	"Email", "Phone", "Sources", "Match Count", "Overall Score", "Strong Match", "Merged At",
}

// ExportReport renders the most recent resolved profiles as an xlsx
// workbook and returns its bytes.
func (s *ProfileService) ExportReport(ctx context.Context, limit int) ([]byte, error) {
	profiles, err := s.ListProfiles(ctx, limit)
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet, err := workbook.NewSheet(reportSheet)
	if err != nil {
		return nil, s.reportError(err)
	}
	workbook.SetActiveSheet(sheet)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, s.reportError(err)
	}

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, s.reportError(err)
		}
		if err := workbook.SetCellValue(reportSheet, cell, title); err != nil {
			return nil, s.reportError(err)
		}
	}

	for i, profile := range profiles {
		row := []interface{}{
			profile.ID,
			profile.Profile.CustomerID,
			profile.Profile.FullName,
			profile.Profile.DOB,
			profile.Profile.NationalID,
			profile.Profile.Email,
			profile.Profile.Phone,
			strings.Join(profile.Sources, ", "),
			profile.MatchCount,
			fmt.Sprintf("%.2f", profile.MatchQuality.OverallScore),
			profile.MatchQuality.IsStrongMatch,
			profile.MergedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, s.reportError(err)
		}
		if err := workbook.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, s.reportError(err)
		}
	}

	var buffer bytes.Buffer
	if err := workbook.Write(&buffer); err != nil {
		return nil, s.reportError(err)
	}
	return buffer.Bytes(), nil
}

func (s *ProfileService) reportError(err error) error {
	s.logger.Error("Failed to generate profile report", log.Error(err))
	return svcerrors.NewServerError(svcerrors.ErrorWhileExportingReport,
		"Failed to generate profile report", "")
}
