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
	"bytes"
	"os"
	"testing"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/UjjwalKo/Bridge-DB/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSchemaColumnNames(t *testing.T) {
	schema := peopleSchema()
	assert.Equal(t, []string{"id", "name", "active"}, schema.ColumnNames())
}

func TestRegisterPanicsOnDuplicateKind(t *testing.T) {
	const kind = engine.Kind("test-duplicate-inspector")
	register(kind, engineInspector{})
	defer delete(inspectorRegistry, kind)

	assert.Panics(t, func() {
		register(kind, engineInspector{})
	})
}

func TestDriverForUnknownKind(t *testing.T) {
	_, err := driverFor(engine.Kind("db2"))
	assert.Error(t, err)
}

func TestInspectTableUnknownConnection(t *testing.T) {
	logger, err := log.NewLogger("standard", log.Error, os.Stderr, os.Stderr)
	require.NoError(t, err)
	conn := connector.New(logger, nil)
	insp := New(conn, logger, nil)

	_, err = insp.InspectTable(nil, "missing", "db", "people")
	assert.Error(t, err)
}

func TestSampleUnknownConnection(t *testing.T) {
	logger, err := log.NewLogger("standard", log.Error, os.Stderr, os.Stderr)
	require.NoError(t, err)
	conn := connector.New(logger, nil)
	insp := New(conn, logger, nil)

	_, err = insp.Sample(nil, "missing", "db", "people", 10)
	assert.Error(t, err)
}

func TestInspectorRenderCreateTableLogsUnmappedType(t *testing.T) {
	var logs bytes.Buffer
	logger, err := log.NewLogger("standard", log.Warn, &logs, &logs)
	require.NoError(t, err)
	conn := connector.New(logger, nil)
	insp := New(conn, logger, nil)

	schema := TableSchema{
		TableName: "odd",
		Columns:   []Column{{Name: "loc", NativeType: "geography", Nullable: true}},
	}
	ddl := insp.RenderCreateTable(nil, schema, engine.SQLServer, engine.Postgres, "")
	assert.Contains(t, ddl, "loc geography")
	assert.Contains(t, logs.String(), "unmapped native type")
}
