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

package inspector

import (
	"strings"
	"testing"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleSchema() TableSchema {
	return TableSchema{
		TableName: "people",
		Columns: []Column{
			{Name: "id", NativeType: "int", Nullable: false},
			{Name: "name", NativeType: "varchar(50)", Nullable: true},
			{Name: "active", NativeType: "tinyint(1)", Nullable: false, Default: "1"},
		},
		PrimaryKeys: []string{"id"},
	}
}

func TestRenderCreateTableMySQLToPostgres(t *testing.T) {
	sql := RenderCreateTable(peopleSchema(), engine.MySQL, engine.Postgres, "", nil)

	assert.Contains(t, sql, "IF NOT EXISTS people")
	assert.Contains(t, sql, "id integer NOT NULL")
	assert.Contains(t, sql, "name varchar(50)")
	assert.Contains(t, sql, "active boolean NOT NULL DEFAULT 1")
	assert.Contains(t, sql, "PRIMARY KEY (id)")
	assert.NotContains(t, sql, "ENGINE=")
}

func TestRenderCreateTableOracleTargetOmitsIfNotExists(t *testing.T) {
	schema := TableSchema{
		TableName: "LOG",
		Columns: []Column{
			{Name: "msg", NativeType: "varchar2", Nullable: true},
			{Name: "ts", NativeType: "timestamp", Nullable: true},
		},
	}
	sql := RenderCreateTable(schema, engine.Oracle, engine.SQLServer, "", nil)

	assert.Contains(t, sql, "msg VARCHAR")
	assert.Contains(t, sql, "ts DATETIME")
	assert.NotContains(t, sql, "IF NOT EXISTS")
	assert.NotContains(t, sql, "ENGINE=")
}

func TestRenderCreateTableMySQLTargetAppendsEngineSuffix(t *testing.T) {
	sql := RenderCreateTable(peopleSchema(), engine.Postgres, engine.MySQL, "", nil)
	assert.True(t, strings.HasSuffix(sql, "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"))
}

func TestRenderCreateTableOmitsDefaultWhenEmptyOrNull(t *testing.T) {
	schema := TableSchema{
		TableName: "t",
		Columns: []Column{
			{Name: "a", NativeType: "int", Nullable: true, Default: ""},
			{Name: "b", NativeType: "int", Nullable: true, Default: "NULL"},
			{Name: "c", NativeType: "int", Nullable: true, Default: "0"},
		},
	}
	sql := RenderCreateTable(schema, engine.MySQL, engine.Postgres, "", nil)

	assert.NotContains(t, sql, "a integer DEFAULT")
	assert.NotContains(t, sql, "b integer DEFAULT")
	assert.Contains(t, sql, "c integer DEFAULT 0")
}

func TestRenderCreateTablePreservesColumnOrderAndTargetName(t *testing.T) {
	sql := RenderCreateTable(peopleSchema(), engine.MySQL, engine.Postgres, "SCHEMA.people", nil)
	require.True(t, strings.HasPrefix(sql, "CREATE TABLE IF NOT EXISTS SCHEMA.people ("))

	idIdx := strings.Index(sql, "id ")
	nameIdx := strings.Index(sql, "name ")
	activeIdx := strings.Index(sql, "active ")
	require.True(t, idIdx < nameIdx)
	require.True(t, nameIdx < activeIdx)
}
