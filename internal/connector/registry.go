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

package connector

import (
	"context"
	"fmt"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"go.opentelemetry.io/otel/trace"
)

// dialFunc opens and probes a handle for one engine kind. It is the only
// place that knows driver-level connection details for that engine.
type dialFunc func(ctx context.Context, tracer trace.Tracer, cfg engine.EndpointConfig) (Handle, error)

// listDatabasesFunc runs the engine's database/schema enumeration query.
type listDatabasesFunc func(ctx context.Context, h Handle) ([]string, error)

// listTablesFunc runs the engine's table enumeration query, scoped to a
// database (or, for Oracle, an uppercased schema owner).
type listTablesFunc func(ctx context.Context, h Handle, database string) ([]string, error)

type engineDriver struct {
	dial          dialFunc
	listDatabases listDatabasesFunc
	listTables    listTablesFunc

	// needsSubHandle is true for engines whose handle should not be shared
	// across concurrently running migration jobs (Oracle and SQL Server,
	// whose drivers bind positional/array parameters per-statement in a
	// way that is safer with a dedicated connection per job).
	needsSubHandle bool
}

var engineRegistry = make(map[engine.Kind]engineDriver)

// register associates an engine.Kind with its driver implementation. Each
// per-engine file (mysql.go, postgres.go, oracle.go, sqlserver.go) calls
// this from its own init() function.
func register(kind engine.Kind, d engineDriver) {
	if _, exists := engineRegistry[kind]; exists {
		panic(fmt.Sprintf("connector: engine kind %q already registered", kind))
	}
	engineRegistry[kind] = d
}

func driverFor(kind engine.Kind) (engineDriver, error) {
	d, ok := engineRegistry[kind]
	if !ok {
		return engineDriver{}, fmt.Errorf("unsupported engine kind %q", kind)
	}
	return d, nil
}
