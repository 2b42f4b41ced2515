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
	"github.com/jackc/pgx/v5"
	mssql "github.com/microsoft/go-mssqldb"
)

// mysqlInsertBatch bounds how many rows go into a single multi-row INSERT
// statement, independent of the outer chunk size.
const mysqlInsertBatch = 1000

// bulkLoad writes rows into targetName through target's fastest bulk-load
// path: COPY FROM for Postgres, batched multi-row INSERT for MySQL,
// array-bound INSERT for Oracle, and go-mssqldb's bulk copy for SQL
// Server.
func bulkLoad(ctx context.Context, h connector.Handle, kind engine.Kind, targetName string, cols []string, rows []inspector.Row) error {
	switch kind {
	case engine.Postgres:
		return bulkLoadPostgres(ctx, h, targetName, cols, rows)
	case engine.MySQL:
		return bulkLoadMySQL(ctx, h, targetName, cols, rows)
	case engine.Oracle:
		return bulkLoadOracle(ctx, h, targetName, cols, rows)
	case engine.SQLServer:
		return bulkLoadSQLServer(ctx, h, targetName, cols, rows)
	default:
		return fmt.Errorf("migrator: no bulk load path for engine %q", kind)
	}
}

func bulkLoadPostgres(ctx context.Context, h connector.Handle, targetName string, cols []string, rows []inspector.Row) error {
	pool := h.(connector.PGXHandle).PGXPool()
	// targetName is already schema-qualified as "public"."table"; pgx's
	// CopyFrom wants the table identifier split into its parts.
	ident := pgx.Identifier{"public", strings.Trim(strings.Split(targetName, ".")[1], `"`)}

	source := pgx.CopyFromRows(toAnyRows(rows))
	_, err := pool.CopyFrom(ctx, ident, cols, source)
	return err
}

func toAnyRows(rows []inspector.Row) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any(r)
	}
	return out
}

func bulkLoadMySQL(ctx context.Context, h connector.Handle, targetName string, cols []string, rows []inspector.Row) error {
	db := h.(connector.SQLHandle).SQLDB()
	for start := 0; start < len(rows); start += mysqlInsertBatch {
		end := start + mysqlInsertBatch
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		placeholders := make([]string, len(batch))
		args := make([]any, 0, len(batch)*len(cols))
		rowPlaceholder := "(" + strings.Repeat("?,", len(cols)-1) + "?)"
		for i, r := range batch {
			placeholders[i] = rowPlaceholder
			args = append(args, []any(r)...)
		}

		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
			targetName, quoteMySQLColumns(cols), strings.Join(placeholders, ","))
		if _, err := db.ExecContext(ctx, stmt, args...); err != nil {
			return err
		}
	}
	return nil
}

func quoteMySQLColumns(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("`%s`", c)
	}
	return strings.Join(quoted, ", ")
}

// bulkLoadOracle binds each column as its own positional slice parameter,
// relying on godror's array-DML support for []any-typed bind arguments.
func bulkLoadOracle(ctx context.Context, h connector.Handle, targetName string, cols []string, rows []inspector.Row) error {
	db := h.(connector.SQLHandle).SQLDB()

	placeholders := make([]string, len(cols))
	columnBinds := make([]any, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		column := make([]any, len(rows))
		for r := range rows {
			column[r] = rows[r][i]
		}
		columnBinds[i] = column
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		targetName, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	_, err := db.ExecContext(ctx, stmt, columnBinds...)
	return err
}

// bulkLoadSQLServer uses go-mssqldb's CopyIn statement, the driver's
// fast_executemany-equivalent bulk insert path, batching at 10,000 rows.
func bulkLoadSQLServer(ctx context.Context, h connector.Handle, targetName string, cols []string, rows []inspector.Row) error {
	const batchSize = 10_000
	db := h.(connector.SQLHandle).SQLDB()

	// CopyIn's bulk-insert protocol operates within the connection's
	// already-selected database, so the table name is schema-qualified
	// only, not database-qualified.
	bulkTarget := targetName
	if parts := strings.SplitN(targetName, "].[", 2); len(parts) == 2 {
		bulkTarget = "[" + parts[1]
	}

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := sqlServerBulkInsertBatch(ctx, db, bulkTarget, cols, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func sqlServerBulkInsertBatch(ctx context.Context, db *sql.DB, targetName string, cols []string, rows []inspector.Row) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, mssql.CopyIn(targetName, mssql.BulkOptions{}, cols...))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, []any(r)...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
