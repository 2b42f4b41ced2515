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
	"strings"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
)

func init() {
	register(engine.Oracle, engineInspector{
		introspect: introspectOracleTable,
		sample:     sampleOracle,
	})
}

// introspectOracleTable scopes every lookup by owner, the uppercased
// schema name Connector.list_tables already expects for Oracle.
func introspectOracleTable(ctx context.Context, h connector.Handle, database, table string) (TableSchema, error) {
	db := h.(connector.SQLHandle).SQLDB()
	owner := strings.ToUpper(database)
	tableName := strings.ToUpper(table)

	colRows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type, data_length, data_precision, data_scale, nullable, data_default
		FROM all_tab_columns
		WHERE owner = :1 AND table_name = :2
		ORDER BY column_id`, owner, tableName)
	if err != nil {
		return TableSchema{}, err
	}
	defer colRows.Close()

	var cols []Column
	for colRows.Next() {
		var name, dataType, nullable string
		var length int
		var precision, scale sql.NullInt64
		var def sql.NullString
		if err := colRows.Scan(&name, &dataType, &length, &precision, &scale, &nullable, &def); err != nil {
			return TableSchema{}, err
		}
		cols = append(cols, Column{
			Name:       name,
			NativeType: formatOracleType(dataType, length, precision, scale),
			Nullable:   nullable == "Y",
			Default:    strings.TrimSpace(def.String),
		})
	}
	if err := colRows.Err(); err != nil {
		return TableSchema{}, err
	}

	pks, err := queryStringPairColumn(ctx, db, `
		SELECT cols.column_name
		FROM all_constraints cons
		JOIN all_cons_columns cols ON cons.constraint_name = cols.constraint_name AND cons.owner = cols.owner
		WHERE cons.constraint_type = 'P' AND cons.owner = :1 AND cons.table_name = :2
		ORDER BY cols.position`, owner, tableName)
	if err != nil {
		return TableSchema{}, err
	}

	idxRows, err := db.QueryContext(ctx, `
		SELECT index_name, column_name
		FROM all_ind_columns
		WHERE table_owner = :1 AND table_name = :2
		  AND index_name NOT IN (
		    SELECT constraint_name FROM all_constraints
		    WHERE constraint_type = 'P' AND owner = :1 AND table_name = :2)
		ORDER BY index_name, column_position`, owner, tableName)
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

func formatOracleType(dataType string, length int, precision, scale sql.NullInt64) string {
	switch dataType {
	case "VARCHAR2", "CHAR", "NVARCHAR2", "RAW":
		return fmt.Sprintf("%s(%d)", dataType, length)
	case "NUMBER":
		if precision.Valid && scale.Valid {
			if scale.Int64 == 0 {
				return fmt.Sprintf("NUMBER(%d)", precision.Int64)
			}
			return fmt.Sprintf("NUMBER(%d,%d)", precision.Int64, scale.Int64)
		}
		return "NUMBER"
	default:
		return dataType
	}
}

func sampleOracle(ctx context.Context, h connector.Handle, database, table string, limit int) ([]Row, error) {
	db := h.(connector.SQLHandle).SQLDB()
	owner := strings.ToUpper(database)
	tableName := strings.ToUpper(table)
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf("SELECT * FROM %s.%s WHERE ROWNUM <= :1", owner, tableName), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLRows(rows)
}
