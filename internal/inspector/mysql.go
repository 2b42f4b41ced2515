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
	"context"
	"database/sql"
	"fmt"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
)

func init() {
	register(engine.MySQL, engineInspector{
		introspect: introspectMySQLTable,
		sample:     sampleMySQL,
	})
}

func introspectMySQLTable(ctx context.Context, h connector.Handle, database, table string) (TableSchema, error) {
	db := h.(connector.SQLHandle).SQLDB()

	colRows, err := db.QueryContext(ctx, `
		SELECT column_name, column_type, is_nullable, COALESCE(column_default, '')
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ?
		ORDER BY ordinal_position`, database, table)
	if err != nil {
		return TableSchema{}, err
	}
	defer colRows.Close()

	var cols []Column
	for colRows.Next() {
		var name, nativeType, isNullable, def string
		if err := colRows.Scan(&name, &nativeType, &isNullable, &def); err != nil {
			return TableSchema{}, err
		}
		cols = append(cols, Column{Name: name, NativeType: nativeType, Nullable: isNullable == "YES", Default: def})
	}
	if err := colRows.Err(); err != nil {
		return TableSchema{}, err
	}

	pks, err := queryStringPairColumn(ctx, db, `
		SELECT column_name FROM information_schema.key_column_usage
		WHERE table_schema = ? AND table_name = ? AND constraint_name = 'PRIMARY'
		ORDER BY ordinal_position`, database, table)
	if err != nil {
		return TableSchema{}, err
	}

	idxRows, err := db.QueryContext(ctx, `
		SELECT index_name, column_name FROM information_schema.statistics
		WHERE table_schema = ? AND table_name = ? AND index_name != 'PRIMARY'
		ORDER BY index_name, seq_in_index`, database, table)
	if err != nil {
		return TableSchema{}, err
	}
	defer idxRows.Close()
	indexes, err := collectIndexes(idxRows)
	if err != nil {
		return TableSchema{}, err
	}

	return TableSchema{TableName: table, Columns: cols, PrimaryKeys: pks, Indexes: indexes}, nil
}

func sampleMySQL(ctx context.Context, h connector.Handle, database, table string, limit int) ([]Row, error) {
	db := h.(connector.SQLHandle).SQLDB()
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf("SELECT * FROM `%s`.`%s` LIMIT ?", database, table), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLRows(rows)
}

// queryStringPairColumn runs a single-column query and returns its results
// in order, for PK lookups shared by the mysql/oracle/sqlserver introspection.
func queryStringPairColumn(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// collectIndexes groups (index_name, column_name) pairs, already ordered
// by index name then column position, into Index values.
func collectIndexes(rows *sql.Rows) ([]Index, error) {
	var out []Index
	var cur *Index
	for rows.Next() {
		var idxName, colName string
		if err := rows.Scan(&idxName, &colName); err != nil {
			return nil, err
		}
		if cur == nil || cur.Name != idxName {
			out = append(out, Index{Name: idxName})
			cur = &out[len(out)-1]
		}
		cur.Columns = append(cur.Columns, colName)
	}
	return out, rows.Err()
}
