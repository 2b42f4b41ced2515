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
	"database/sql"
	"fmt"
	"net/url"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	_ "github.com/microsoft/go-mssqldb"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	register(engine.SQLServer, engineDriver{
		dial:           dialSQLServer,
		listDatabases:  listSQLServerDatabases,
		listTables:     listSQLServerTables,
		needsSubHandle: true,
	})
}

// dialSQLServer assembles the documented "sqlserver://" URL form via
// net/url rather than string concatenation.
func dialSQLServer(ctx context.Context, tracer trace.Tracer, cfg engine.EndpointConfig) (Handle, error) {
	_, span := tracer.Start(ctx, "connector.dialSQLServer")
	defer span.End()

	u := url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}
	db, err := sql.Open("sqlserver", u.String())
	if err != nil {
		return nil, fmt.Errorf("sqlserver: open: %w", err)
	}
	return newSQLHandle(engine.SQLServer, db), nil
}

func listSQLServerDatabases(ctx context.Context, h Handle) ([]string, error) {
	db := h.(SQLHandle).SQLDB()
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sys.databases WHERE name NOT IN ('master','tempdb','model','msdb')")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func listSQLServerTables(ctx context.Context, h Handle, database string) ([]string, error) {
	db := h.(SQLHandle).SQLDB()
	rows, err := db.QueryContext(ctx,
		"SELECT table_name FROM information_schema.tables WHERE table_catalog = @p1 AND table_type = 'BASE TABLE'",
		database)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}
