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

package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/wso2/identity-profile-resolution-service/internal/matching/model"
	"github.com/wso2/identity-profile-resolution-service/internal/matching/service"
	"github.com/wso2/identity-profile-resolution-service/internal/system/constants"
)

func syntheticPool(size int) []model.UnifiedRecord {
	pool := make([]model.UnifiedRecord, size)
	for i := range pool {
		pool[i] = model.UnifiedRecord{
			CustomerID: fmt.Sprintf("C%06d", i),
			FullName:   fmt.Sprintf("Customer Number%d Lastname%d", i, i%977),
			DOB:        fmt.Sprintf("%04d-%02d-%02d", 1950+i%60, 1+i%12, 1+i%28),
			NationalID: fmt.Sprintf("NID%06d", i),
			Email:      fmt.Sprintf("customer%d@example.com", i),
			SourceName: fmt.Sprintf("source_%d", i%5),
		}
	}
	return pool
}

func benchmarkRank(b *testing.B, poolSize int) {
	engine := service.NewEngine(model.DefaultMatchConfig())
	pool := syntheticPool(poolSize)
	query := model.Query{
		constants.FieldFullName:   "Customer Number42 Lastname42",
		constants.FieldDOB:        "1992-07-15",
		constants.FieldNationalID: "NID000042",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Rank(context.Background(), query, pool)
	}
}

func BenchmarkRank1K(b *testing.B)   { benchmarkRank(b, 1_000) }
func BenchmarkRank10K(b *testing.B)  { benchmarkRank(b, 10_000) }
func BenchmarkRank100K(b *testing.B) { benchmarkRank(b, 100_000) }

func BenchmarkEvaluate(b *testing.B) {
	engine := service.NewEngine(model.DefaultMatchConfig())
	query := model.Query{
		constants.FieldFullName:   "Leonardo DiCaprio",
		constants.FieldDOB:        "1974-11-11",
		constants.FieldNationalID: "BANK001",
	}
	candidate := model.UnifiedRecord{
		FullName:   "Leo DiCaprio",
		DOB:        "11/11/1974",
		NationalID: "BANK-001",
		SourceName: "bank_records",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Evaluate(query, &candidate)
	}
}
