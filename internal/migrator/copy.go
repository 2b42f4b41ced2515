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
	"errors"
	"fmt"
	"strings"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/UjjwalKo/Bridge-DB/internal/inspector"
)

// errCancelled signals that a table copy stopped between chunks because the
// job's cancel flag was observed; it is not recorded as a table failure.
var errCancelled = errors.New("migrator: cancelled")

// tableCopy runs the per-table copy procedure for one table of one job.
type tableCopy struct {
	migrator     *Migrator
	job          *MigrationJob
	table        string
	sourceHandle connector.Handle
	targetHandle connector.Handle
	sourceKind   engine.Kind
	targetKind   engine.Kind
}

func (tc *tableCopy) run(ctx context.Context) error {
	m, job := tc.migrator, tc.job

	schema, err := m.insp.InspectTable(ctx, job.SourceConn, job.SourceDB, tc.table)
	if err != nil {
		return fmt.Errorf("introspect: %w", err)
	}

	targetName := qualifiedTableName(tc.targetKind, job.TargetDB, tc.table)
	ddl := m.insp.RenderCreateTable(ctx, schema, tc.sourceKind, tc.targetKind, targetName)
	if err := execOnHandle(ctx, tc.targetHandle, ddl); err != nil {
		m.logger.WarnContext(ctx, "create table failed, assuming already exists", "job_id", job.ID, "table", tc.table, "error", err)
	}

	rowCount := tc.estimateRowCount(ctx)
	job.setRowCounts(0, rowCount)
	job.emit()

	cols := schema.ColumnNames()
	sourceName := qualifiedTableName(tc.sourceKind, job.SourceDB, tc.table)

	if rowCount > ChunkThreshold {
		return tc.copyChunked(ctx, schema, cols, sourceName, targetName)
	}
	return tc.copySingleShot(ctx, cols, sourceName, targetName)
}

func (tc *tableCopy) copySingleShot(ctx context.Context, cols []string, sourceName, targetName string) error {
	if tc.targetKind == engine.MySQL || tc.targetKind == engine.SQLServer {
		// Fire-and-forget: the copy proceeds even if truncation fails.
		_ = execOnHandle(ctx, tc.targetHandle, fmt.Sprintf("TRUNCATE TABLE %s", targetName))
	}

	rows, err := readFullTable(ctx, tc.sourceHandle, tc.sourceKind, sourceName, cols)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if len(rows) == 0 {
		tc.job.setRowCounts(0, 0)
		tc.job.emit()
		return nil
	}
	if err := bulkLoad(ctx, tc.targetHandle, tc.targetKind, targetName, cols, rows); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	tc.job.setRowCounts(int64(len(rows)), int64(len(rows)))
	tc.job.emit()
	return nil
}

func (tc *tableCopy) copyChunked(ctx context.Context, schema inspector.TableSchema, cols []string, sourceName, targetName string) error {
	keysetCol := ""
	if len(schema.PrimaryKeys) == 1 {
		keysetCol = schema.PrimaryKeys[0]
	}

	var copied int64
	var lastPK any
	offset := int64(0)

	for {
		if tc.job.cancelRequested() {
			return errCancelled
		}

		var rows []inspector.Row
		var err error
		if keysetCol != "" {
			rows, err = readKeysetChunk(ctx, tc.sourceHandle, tc.sourceKind, sourceName, cols, keysetCol, lastPK, DefaultChunkSize)
		} else {
			rows, err = readOffsetChunk(ctx, tc.sourceHandle, tc.sourceKind, sourceName, cols, offset, DefaultChunkSize)
		}
		if err != nil {
			return fmt.Errorf("read chunk: %w", err)
		}
		if len(rows) == 0 {
			break
		}

		if err := bulkLoad(ctx, tc.targetHandle, tc.targetKind, targetName, cols, rows); err != nil {
			return fmt.Errorf("write chunk: %w", err)
		}

		copied += int64(len(rows))
		offset += int64(len(rows))
		if keysetCol != "" {
			pkIndex := indexOf(cols, keysetCol)
			lastPK = rows[len(rows)-1][pkIndex]
		}

		tc.job.setRowCounts(copied, maxInt64(copied, tc.job.snapshot().TotalRows))
		tc.job.emit()

		if len(rows) < DefaultChunkSize {
			break
		}
	}
	return nil
}

func (tc *tableCopy) estimateRowCount(ctx context.Context) int64 {
	name := qualifiedTableName(tc.sourceKind, tc.job.SourceDB, tc.table)
	n, err := estimateRowCount(ctx, tc.sourceHandle, tc.sourceKind, tc.table, name)
	if err != nil {
		return 0
	}
	return n
}

// qualifiedTableName renders table scoped to database the way each
// engine's own dialect expects it in a FROM/INTO clause.
func qualifiedTableName(kind engine.Kind, database, table string) string {
	switch kind {
	case engine.MySQL:
		return fmt.Sprintf("`%s`.`%s`", database, table)
	case engine.Postgres:
		return fmt.Sprintf(`"public"."%s"`, table)
	case engine.Oracle:
		return fmt.Sprintf("%s.%s", strings.ToUpper(database), strings.ToUpper(table))
	case engine.SQLServer:
		return fmt.Sprintf("[%s].[dbo].[%s]", database, table)
	default:
		return table
	}
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
