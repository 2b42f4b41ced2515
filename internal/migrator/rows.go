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
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/UjjwalKo/Bridge-DB/internal/inspector"
)

// execOnHandle runs a statement with no result set against either handle
// kind the Connector hands out.
func execOnHandle(ctx context.Context, h connector.Handle, stmt string) error {
	switch hh := h.(type) {
	case connector.SQLHandle:
		_, err := hh.SQLDB().ExecContext(ctx, stmt)
		return err
	case connector.PGXHandle:
		_, err := hh.PGXPool().Exec(ctx, stmt)
		return err
	default:
		return fmt.Errorf("migrator: unrecognized handle type %T", h)
	}
}

func estimateRowCount(ctx context.Context, h connector.Handle, kind engine.Kind, table, qualifiedName string) (int64, error) {
	if kind == engine.Postgres {
		pool := h.(connector.PGXHandle).PGXPool()
		var n int64
		err := pool.QueryRow(ctx, "SELECT COALESCE(reltuples::bigint, 0) FROM pg_class WHERE relname = $1", table).Scan(&n)
		if err != nil {
			return 0, err
		}
		if n < 0 {
			n = 0
		}
		return n, nil
	}

	db := h.(connector.SQLHandle).SQLDB()
	var n int64
	err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", qualifiedName)).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func readFullTable(ctx context.Context, h connector.Handle, kind engine.Kind, qualifiedName string, cols []string) ([]inspector.Row, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", columnList(kind, cols), qualifiedName)
	return runSelect(ctx, h, kind, query)
}

func readKeysetChunk(ctx context.Context, h connector.Handle, kind engine.Kind, qualifiedName string, cols []string, keysetCol string, lastPK any, limit int) ([]inspector.Row, error) {
	colList := columnList(kind, cols)
	var query string
	var args []any
	switch kind {
	case engine.MySQL, engine.Postgres:
		where := ""
		if lastPK != nil {
			where = fmt.Sprintf("WHERE %s > %s ", keysetCol, placeholder(kind, 1))
			args = append(args, lastPK)
		}
		query = fmt.Sprintf("SELECT %s FROM %s %sORDER BY %s LIMIT %d", colList, qualifiedName, where, keysetCol, limit)
	case engine.Oracle:
		where := ""
		if lastPK != nil {
			where = fmt.Sprintf("WHERE %s > :1 ", keysetCol)
			args = append(args, lastPK)
		}
		query = fmt.Sprintf("SELECT %s FROM %s %sORDER BY %s FETCH FIRST %d ROWS ONLY", colList, qualifiedName, where, keysetCol, limit)
	case engine.SQLServer:
		where := ""
		if lastPK != nil {
			where = fmt.Sprintf("WHERE %s > @p1 ", keysetCol)
			args = append(args, lastPK)
		}
		query = fmt.Sprintf("SELECT %s FROM %s %sORDER BY %s OFFSET 0 ROWS FETCH NEXT %d ROWS ONLY", colList, qualifiedName, where, keysetCol, limit)
	}
	return runSelect(ctx, h, kind, query, args...)
}

func readOffsetChunk(ctx context.Context, h connector.Handle, kind engine.Kind, qualifiedName string, cols []string, offset int64, limit int) ([]inspector.Row, error) {
	colList := columnList(kind, cols)
	var query string
	switch kind {
	case engine.MySQL, engine.Postgres:
		query = fmt.Sprintf("SELECT %s FROM %s LIMIT %d OFFSET %d", colList, qualifiedName, limit, offset)
	case engine.SQLServer:
		query = fmt.Sprintf("SELECT %s FROM %s ORDER BY (SELECT NULL) OFFSET %d ROWS FETCH NEXT %d ROWS ONLY", colList, qualifiedName, offset, limit)
	case engine.Oracle:
		// Nested ROWNUM window: rows (offset, offset+limit].
		query = fmt.Sprintf(
			"SELECT %s FROM (SELECT src.*, ROWNUM rn FROM (SELECT %s FROM %s) src WHERE ROWNUM <= %d) WHERE rn > %d",
			colList, colList, qualifiedName, offset+int64(limit), offset)
	}
	return runSelect(ctx, h, kind, query)
}

func columnList(kind engine.Kind, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		switch kind {
		case engine.MySQL:
			quoted[i] = fmt.Sprintf("`%s`", c)
		case engine.SQLServer:
			quoted[i] = fmt.Sprintf("[%s]", c)
		default:
			quoted[i] = c
		}
	}
	return strings.Join(quoted, ", ")
}

func placeholder(kind engine.Kind, n int) string {
	if kind == engine.Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func runSelect(ctx context.Context, h connector.Handle, kind engine.Kind, query string, args ...any) ([]inspector.Row, error) {
	if kind == engine.Postgres {
		pool := h.(connector.PGXHandle).PGXPool()
		rows, err := pool.Query(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		var out []inspector.Row
		for rows.Next() {
			vals, err := rows.Values()
			if err != nil {
				return nil, err
			}
			out = append(out, inspector.Row(vals))
		}
		return out, rows.Err()
	}

	db := h.(connector.SQLHandle).SQLDB()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLRows(rows)
}

func scanSQLRows(rows *sql.Rows) ([]inspector.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []inspector.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		out = append(out, inspector.Row(vals))
	}
	return out, rows.Err()
}
