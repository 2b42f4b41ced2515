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

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handle is a live, engine-specific database handle owned by a Connection.
// Inspector and Migrator never hold a Handle directly; they type-assert it
// to the narrow accessor interface they need (SQLHandle or PGXHandle),
// exposing exactly the pool type a given operation uses.
type Handle interface {
	EngineKind() engine.Kind
	Ping(ctx context.Context) error
	Close() error
}

// SQLHandle is implemented by every engine whose handle is a
// database/sql.DB: MySQL, Oracle (via godror) and SQL Server (via
// go-mssqldb). Inspector and Migrator code that only needs to run queries
// or execute DDL/DML works against this interface regardless of engine.
type SQLHandle interface {
	Handle
	SQLDB() *sql.DB
}

// PGXHandle is implemented by the PostgreSQL handle, which is a pgx
// connection pool rather than a database/sql.DB so that the Migrator can
// reach pgx's native CopyFrom bulk path.
type PGXHandle interface {
	Handle
	PGXPool() *pgxpool.Pool
}

type sqlHandle struct {
	kind engine.Kind
	db   *sql.DB
}

func newSQLHandle(kind engine.Kind, db *sql.DB) *sqlHandle {
	return &sqlHandle{kind: kind, db: db}
}

func (h *sqlHandle) EngineKind() engine.Kind { return h.kind }
func (h *sqlHandle) SQLDB() *sql.DB          { return h.db }
func (h *sqlHandle) Ping(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
func (h *sqlHandle) Close() error { return h.db.Close() }

var _ SQLHandle = (*sqlHandle)(nil)

type pgxHandle struct {
	pool *pgxpool.Pool
}

func newPGXHandle(pool *pgxpool.Pool) *pgxHandle {
	return &pgxHandle{pool: pool}
}

func (h *pgxHandle) EngineKind() engine.Kind { return engine.Postgres }
func (h *pgxHandle) PGXPool() *pgxpool.Pool  { return h.pool }
func (h *pgxHandle) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
func (h *pgxHandle) Close() error {
	h.pool.Close()
	return nil
}

var _ PGXHandle = (*pgxHandle)(nil)
