// Copyright 2026 The Bridge-DB Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package migrator

import (
	"testing"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestQualifiedTableName(t *testing.T) {
	tests := []struct {
		name string
		kind engine.Kind
		want string
	}{
		{"mysql", engine.MySQL, "`salesdb`.`orders`"},
		{"postgres", engine.Postgres, `"public"."orders"`},
		{"oracle", engine.Oracle, "SALESDB.ORDERS"},
		{"sqlserver", engine.SQLServer, "[salesdb].[dbo].[orders]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := qualifiedTableName(tt.kind, "salesdb", "orders")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexOf(t *testing.T) {
	cols := []string{"id", "name", "active"}
	assert.Equal(t, 0, indexOf(cols, "id"))
	assert.Equal(t, 2, indexOf(cols, "active"))
	assert.Equal(t, -1, indexOf(cols, "missing"))
}

func TestMaxInt64(t *testing.T) {
	assert.Equal(t, int64(5), maxInt64(5, 3))
	assert.Equal(t, int64(5), maxInt64(3, 5))
	assert.Equal(t, int64(5), maxInt64(5, 5))
}
