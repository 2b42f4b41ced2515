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
	"github.com/UjjwalKo/Bridge-DB/internal/log"
	"go.opentelemetry.io/otel/trace"
)

// Row is one sampled data row, in the column order of the TableSchema it
// was sampled alongside.
type Row []any

type introspectFunc func(ctx context.Context, h connector.Handle, database, table string) (TableSchema, error)
type sampleFunc func(ctx context.Context, h connector.Handle, database, table string, limit int) ([]Row, error)

type engineInspector struct {
	introspect introspectFunc
	sample     sampleFunc
}

var inspectorRegistry = make(map[engine.Kind]engineInspector)

// register associates an engine.Kind with its introspection/sampling
// implementation. Each per-engine file calls this from its own init(), the
// same way internal/connector's per-engine files register a dialer.
func register(kind engine.Kind, ei engineInspector) {
	if _, exists := inspectorRegistry[kind]; exists {
		panic(fmt.Sprintf("inspector: engine kind %q already registered", kind))
	}
	inspectorRegistry[kind] = ei
}

func driverFor(kind engine.Kind) (engineInspector, error) {
	d, ok := inspectorRegistry[kind]
	if !ok {
		return engineInspector{}, fmt.Errorf("inspector: unsupported engine kind %q", kind)
	}
	return d, nil
}

// Inspector introspects tables through a Connector's live handles and
// synthesizes DDL for a different target engine. It holds no handles of
// its own.
type Inspector struct {
	conn   *connector.Connector
	logger log.Logger
	tracer trace.Tracer
}

// New creates an Inspector bound to conn. tracer may be nil.
func New(conn *connector.Connector, logger log.Logger, tracer trace.Tracer) *Inspector {
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("inspector")
	}
	return &Inspector{conn: conn, logger: logger, tracer: tracer}
}

// InspectTable describes one table: its columns (in declared order, with
// native types, nullability and defaults), primary key columns, and
// secondary indexes.
func (i *Inspector) InspectTable(ctx context.Context, connectionID, database, table string) (TableSchema, error) {
	c, err := i.conn.Get(connectionID)
	if err != nil {
		return TableSchema{}, err
	}
	drv, err := driverFor(c.Kind)
	if err != nil {
		return TableSchema{}, err
	}

	ctx, span := i.tracer.Start(ctx, "inspector.InspectTable")
	defer span.End()

	schema, err := drv.introspect(ctx, c.Handle, database, table)
	if err != nil {
		return TableSchema{}, err
	}
	return schema, nil
}

// Sample returns up to limit rows from table, in the column order
// InspectTable would report for it.
func (i *Inspector) Sample(ctx context.Context, connectionID, database, table string, limit int) ([]Row, error) {
	c, err := i.conn.Get(connectionID)
	if err != nil {
		return nil, err
	}
	drv, err := driverFor(c.Kind)
	if err != nil {
		return nil, err
	}

	ctx, span := i.tracer.Start(ctx, "inspector.Sample")
	defer span.End()

	return drv.sample(ctx, c.Handle, database, table, limit)
}

// RenderCreateTable translates schema's column types from sourceKind to
// targetKind and renders the resulting CREATE TABLE statement. Unmapped
// native types pass through unchanged and are logged as warnings rather
// than failing the render.
func (i *Inspector) RenderCreateTable(ctx context.Context, schema TableSchema, sourceKind, targetKind engine.Kind, targetTableName string) string {
	warn := func(nativeType, source, target string) {
		i.logger.WarnContext(ctx, "unmapped native type, passing through unchanged",
			"native_type", nativeType, "source_engine", source, "target_engine", target, "table", schema.TableName)
	}
	return RenderCreateTable(schema, sourceKind, targetKind, targetTableName, warn)
}
