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

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	mysqldriver "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	register(engine.MySQL, engineDriver{
		dial:          dialMySQL,
		listDatabases: listMySQLDatabases,
		listTables:    listMySQLTables,
	})
}

// dialMySQL builds a DSN with the driver's own Config/FormatDSN instead of
// string concatenation, so a password containing '@', '/' or ':' cannot
// corrupt the connection string.
func dialMySQL(ctx context.Context, tracer trace.Tracer, cfg engine.EndpointConfig) (Handle, error) {
	_, span := tracer.Start(ctx, "connector.dialMySQL")
	defer span.End()

	mc := mysqldriver.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.ParseTime = true
	mc.MultiStatements = true

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}
	return newSQLHandle(engine.MySQL, db), nil
}

func listMySQLDatabases(ctx context.Context, h Handle) ([]string, error) {
	db := h.(SQLHandle).SQLDB()
	rows, err := db.QueryContext(ctx, "SHOW DATABASES")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func listMySQLTables(ctx context.Context, h Handle, database string) ([]string, error) {
	db := h.(SQLHandle).SQLDB()
	rows, err := db.QueryContext(ctx,
		"SELECT table_name FROM information_schema.tables WHERE table_schema = ? AND table_type = 'BASE TABLE'",
		database)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
