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
	"net/url"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	register(engine.Postgres, engineDriver{
		dial:          dialPostgres,
		listDatabases: listPostgresDatabases,
		listTables:    listPostgresTables,
	})
}

// dialPostgres uses net/url to assemble the connection URL so that
// url.UserPassword escapes '@', '/' and ':' in the password, then hands
// the result to pgx's own structured config parser.
func dialPostgres(ctx context.Context, tracer trace.Tracer, cfg engine.EndpointConfig) (Handle, error) {
	_, span := tracer.Start(ctx, "connector.dialPostgres")
	defer span.End()

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/postgres",
	}
	pgxCfg, err := pgxpool.ParseConfig(u.String())
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}
	return newPGXHandle(pool), nil
}

func listPostgresDatabases(ctx context.Context, h Handle) ([]string, error) {
	pool := h.(PGXHandle).PGXPool()
	rows, err := pool.Query(ctx, "SELECT datname FROM pg_database WHERE datistemplate = false")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

func listPostgresTables(ctx context.Context, h Handle, database string) ([]string, error) {
	pool := h.(PGXHandle).PGXPool()
	rows, err := pool.Query(ctx,
		"SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_catalog = $1 AND table_type = 'BASE TABLE'",
		database)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
