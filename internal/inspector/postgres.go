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
	register(engine.Postgres, engineInspector{
		introspect: introspectPostgresTable,
		sample:     samplePostgres,
	})
}

func introspectPostgresTable(ctx context.Context, h connector.Handle, database, table string) (TableSchema, error) {
	pool := h.(connector.PGXHandle).PGXPool()

	colRows, err := pool.Query(ctx, `
		SELECT column_name, data_type, is_nullable, COALESCE(column_default, ''),
		       character_maximum_length, numeric_precision, numeric_scale
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position`, table)
	if err != nil {
		return TableSchema{}, err
	}

	var cols []Column
	for colRows.Next() {
		var name, dataType, isNullable, def string
		var charLen, numPrecision, numScale *int
		if err := colRows.Scan(&name, &dataType, &isNullable, &def, &charLen, &numPrecision, &numScale); err != nil {
			colRows.Close()
			return TableSchema{}, err
		}
		cols = append(cols, Column{
			Name:       name,
			NativeType: formatPostgresType(dataType, charLen, numPrecision, numScale),
			Nullable:   isNullable == "YES",
			Default:    def,
		})
	}
	colRows.Close()
	if err := colRows.Err(); err != nil {
		return TableSchema{}, err
	}

	pkRows, err := pool.Query(ctx, `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = 'public' AND tc.table_name = $1
		ORDER BY kcu.ordinal_position`, table)
	if err != nil {
		return TableSchema{}, err
	}
	var pks []string
	for pkRows.Next() {
		var s string
		if err := pkRows.Scan(&s); err != nil {
			pkRows.Close()
			return TableSchema{}, err
		}
		pks = append(pks, s)
	}
	pkRows.Close()
	if err := pkRows.Err(); err != nil {
		return TableSchema{}, err
	}

	idxRows, err := pool.Query(ctx, `
		SELECT ic.relname AS index_name, a.attname AS column_name
		FROM pg_index i
		JOIN pg_class ic ON ic.oid = i.indexrelid
		JOIN pg_class tc ON tc.oid = i.indrelid
		JOIN pg_namespace n ON n.oid = tc.relnamespace
		JOIN unnest(i.indkey) WITH ORDINALITY AS k(attnum, ord) ON true
		JOIN pg_attribute a ON a.attrelid = tc.oid AND a.attnum = k.attnum
		WHERE n.nspname = 'public' AND tc.relname = $1 AND NOT i.indisprimary
		ORDER BY ic.relname, k.ord`, table)
	if err != nil {
		return TableSchema{}, err
	}
	var indexes []Index
	var cur *Index
	for idxRows.Next() {
		var idxName, colName string
		if err := idxRows.Scan(&idxName, &colName); err != nil {
			idxRows.Close()
			return TableSchema{}, err
		}
		if cur == nil || cur.Name != idxName {
			indexes = append(indexes, Index{Name: idxName})
			cur = &indexes[len(indexes)-1]
		}
		cur.Columns = append(cur.Columns, colName)
	}
	idxRows.Close()
	if err := idxRows.Err(); err != nil {
		return TableSchema{}, err
	}

	return TableSchema{TableName: table, Columns: cols, PrimaryKeys: pks, Indexes: indexes}, nil
}

func formatPostgresType(dataType string, charLen, numPrecision, numScale *int) string {
	switch dataType {
	case "character varying", "character", "varchar", "char":
		if charLen != nil {
			return fmt.Sprintf("%s(%d)", dataType, *charLen)
		}
	case "numeric", "decimal":
		if numPrecision != nil && numScale != nil {
			return fmt.Sprintf("%s(%d,%d)", dataType, *numPrecision, *numScale)
		}
	}
	return dataType
}

func samplePostgres(ctx context.Context, h connector.Handle, database, table string, limit int) ([]Row, error) {
	pool := h.(connector.PGXHandle).PGXPool()
	rows, err := pool.Query(ctx, fmt.Sprintf(`SELECT * FROM "public"."%s" LIMIT $1`, table), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out = append(out, Row(vals))
	}
	return out, rows.Err()
}
