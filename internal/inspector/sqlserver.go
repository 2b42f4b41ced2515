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
	"fmt"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
)

func init() {
	register(engine.SQLServer, engineInspector{
		introspect: introspectSQLServerTable,
		sample:     sampleSQLServer,
	})
}

func introspectSQLServerTable(ctx context.Context, h connector.Handle, database, table string) (TableSchema, error) {
	db := h.(connector.SQLHandle).SQLDB()

	colRows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable, COALESCE(column_default, ''),
		       COALESCE(character_maximum_length, -1), COALESCE(numeric_precision, -1), COALESCE(numeric_scale, -1)
		FROM information_schema.columns
		WHERE table_catalog = @p1 AND table_name = @p2
		ORDER BY ordinal_position`, database, table)
	if err != nil {
		return TableSchema{}, err
	}
	defer colRows.Close()

	var cols []Column
	for colRows.Next() {
		var name, dataType, isNullable, def string
		var charLen, numPrecision, numScale int
		if err := colRows.Scan(&name, &dataType, &isNullable, &def, &charLen, &numPrecision, &numScale); err != nil {
			return TableSchema{}, err
		}
		cols = append(cols, Column{
			Name:       name,
			NativeType: formatSQLServerType(dataType, charLen, numPrecision, numScale),
			Nullable:   isNullable == "YES",
			Default:    def,
		})
	}
	if err := colRows.Err(); err != nil {
		return TableSchema{}, err
	}

	pks, err := queryStringPairColumn(ctx, db, `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name AND tc.table_catalog = kcu.table_catalog
		WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_catalog = @p1 AND tc.table_name = @p2
		ORDER BY kcu.ordinal_position`, database, table)
	if err != nil {
		return TableSchema{}, err
	}

	idxRows, err := db.QueryContext(ctx, `
		SELECT i.name AS index_name, c.name AS column_name
		FROM sys.indexes i
		JOIN sys.index_columns ic ON ic.object_id = i.object_id AND ic.index_id = i.index_id
		JOIN sys.columns c ON c.object_id = ic.object_id AND c.column_id = ic.column_id
		JOIN sys.tables t ON t.object_id = i.object_id
		WHERE t.name = @p1 AND i.is_primary_key = 0 AND i.name IS NOT NULL
		ORDER BY i.name, ic.key_ordinal`, table)
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

func formatSQLServerType(dataType string, charLen, numPrecision, numScale int) string {
	switch dataType {
	case "varchar", "nvarchar", "char", "nchar", "varbinary", "binary":
		if charLen == -1 {
			return fmt.Sprintf("%s(MAX)", dataType)
		}
		return fmt.Sprintf("%s(%d)", dataType, charLen)
	case "decimal", "numeric":
		if numPrecision >= 0 && numScale >= 0 {
			return fmt.Sprintf("%s(%d,%d)", dataType, numPrecision, numScale)
		}
	}
	return dataType
}

func sampleSQLServer(ctx context.Context, h connector.Handle, database, table string, limit int) ([]Row, error) {
	db := h.(connector.SQLHandle).SQLDB()
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf("SELECT TOP (%d) * FROM [%s].[dbo].[%s]", limit, database, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLRows(rows)
}
