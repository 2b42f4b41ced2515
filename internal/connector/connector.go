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

// Package connector owns per-endpoint database handles keyed by an opaque
// connection id. It is the only component that knows driver-level
// specifics for connect/close; Inspector and Migrator only ever see a
// Handle (connector.Handle) obtained through it.
package connector

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/UjjwalKo/Bridge-DB/internal/dbbridgeerr"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/UjjwalKo/Bridge-DB/internal/log"
	"go.opentelemetry.io/otel/trace"
)

// Connection is a registered, live database endpoint.
type Connection struct {
	ID     string
	Kind   engine.Kind
	Config engine.EndpointConfig
	Handle Handle

	mu       sync.Mutex
	subHands map[string]Handle // keyed by job id, for engines that need a fresh sub-handle per job
}

// Connector is process-wide shared state: the handle registry. Mutation
// (connect/disconnect) is serialized against reads with a RWMutex, per the
// concurrency model's "shared resources" requirement.
type Connector struct {
	logger log.Logger
	tracer trace.Tracer

	mu    sync.RWMutex
	conns map[string]*Connection
}

// New creates a Connector. tracer may be nil, in which case spans are
// no-ops (trace.NewNoopTracerProvider().Tracer("connector")).
func New(logger log.Logger, tracer trace.Tracer) *Connector {
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("connector")
	}
	return &Connector{
		logger: logger,
		tracer: tracer,
		conns:  make(map[string]*Connection),
	}
}

// Connect opens a handle for (kind, cfg), probes it with a trivial round
// trip, and enumerates databases. Re-registering an existing connectionID
// disposes the prior handle once the new one is registered, per the data
// model's uniqueness invariant.
func (c *Connector) Connect(ctx context.Context, kind engine.Kind, cfg engine.EndpointConfig, connectionID string) ([]string, error) {
	if !kind.Valid() {
		return nil, dbbridgeerr.NewUnsupportedEngine(string(kind))
	}
	if err := cfg.Validate(kind); err != nil {
		return nil, fmt.Errorf("connector: invalid endpoint config: %w", err)
	}
	drv, err := driverFor(kind)
	if err != nil {
		return nil, dbbridgeerr.NewUnsupportedEngine(string(kind))
	}

	ctx, span := c.tracer.Start(ctx, "connector.Connect")
	defer span.End()

	handle, err := drv.dial(ctx, c.tracer, cfg)
	if err != nil {
		c.logger.WarnContext(ctx, "connect probe failed", "engine", kind, "connection_id", connectionID, "error", err)
		return nil, dbbridgeerr.NewConnectProbeFailed(err)
	}
	if err := handle.Ping(ctx); err != nil {
		_ = handle.Close()
		c.logger.WarnContext(ctx, "connect probe failed", "engine", kind, "connection_id", connectionID, "error", err)
		return nil, dbbridgeerr.NewConnectProbeFailed(err)
	}

	databases, err := drv.listDatabases(ctx, handle)
	if err != nil {
		_ = handle.Close()
		return nil, dbbridgeerr.NewQueryFailed(err)
	}
	sort.Strings(databases)

	conn := &Connection{
		ID:       connectionID,
		Kind:     kind,
		Config:   cfg,
		Handle:   handle,
		subHands: make(map[string]Handle),
	}

	c.mu.Lock()
	prior := c.conns[connectionID]
	c.conns[connectionID] = conn
	c.mu.Unlock()

	if prior != nil {
		c.disposeConnection(ctx, prior)
	}

	c.logger.InfoContext(ctx, "connected", "engine", kind, "connection_id", connectionID, "databases", len(databases))
	return databases, nil
}

// ListDatabases returns the databases/schemas visible on connectionID,
// re-running the engine's enumeration query.
func (c *Connector) ListDatabases(ctx context.Context, connectionID string) ([]string, error) {
	conn, err := c.get(connectionID)
	if err != nil {
		return nil, err
	}
	drv, err := driverFor(conn.Kind)
	if err != nil {
		return nil, err
	}
	databases, err := drv.listDatabases(ctx, conn.Handle)
	if err != nil {
		return nil, dbbridgeerr.NewQueryFailed(err)
	}
	sort.Strings(databases)
	return databases, nil
}

// ListTables enumerates tables in database (or, for Oracle, the
// uppercased schema owner named by database).
func (c *Connector) ListTables(ctx context.Context, connectionID, database string) ([]string, error) {
	conn, err := c.get(connectionID)
	if err != nil {
		return nil, err
	}
	drv, err := driverFor(conn.Kind)
	if err != nil {
		return nil, err
	}
	tables, err := drv.listTables(ctx, conn.Handle, database)
	if err != nil {
		return nil, dbbridgeerr.NewQueryFailed(err)
	}
	sort.Strings(tables)
	return tables, nil
}

// Disconnect is idempotent: it releases the handle and any per-job
// sub-handles cached for connectionID.
func (c *Connector) Disconnect(ctx context.Context, connectionID string) {
	c.mu.Lock()
	conn, ok := c.conns[connectionID]
	if ok {
		delete(c.conns, connectionID)
	}
	c.mu.Unlock()
	if !ok {
		return
	}
	c.disposeConnection(ctx, conn)
}

func (c *Connector) disposeConnection(ctx context.Context, conn *Connection) {
	conn.mu.Lock()
	subs := conn.subHands
	conn.subHands = nil
	conn.mu.Unlock()

	for _, h := range subs {
		if err := h.Close(); err != nil {
			c.logger.WarnContext(ctx, "error closing sub-handle", "connection_id", conn.ID, "error", err)
		}
	}
	if err := conn.Handle.Close(); err != nil {
		c.logger.WarnContext(ctx, "error closing handle", "connection_id", conn.ID, "error", err)
	}
}

// Get returns the registered Connection, or NoSuchConnection.
func (c *Connector) Get(connectionID string) (*Connection, error) {
	return c.get(connectionID)
}

func (c *Connector) get(connectionID string) (*Connection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	conn, ok := c.conns[connectionID]
	if !ok {
		return nil, dbbridgeerr.NewNoSuchConnection(connectionID)
	}
	return conn, nil
}

// JobHandle returns the handle a migration worker should use for this
// connection during job jobID. For engines whose driver handle is safe to
// share across concurrent jobs (the common case for a pooled
// database/sql.DB or pgxpool.Pool), this is just Connection.Handle. A
// per-engine driver may instead open a fresh sub-handle by overriding this
// behavior — see the needsSubHandle driver field.
func (c *Connector) JobHandle(ctx context.Context, connectionID, jobID string) (Handle, error) {
	conn, err := c.get(connectionID)
	if err != nil {
		return nil, err
	}
	drv, err := driverFor(conn.Kind)
	if err != nil {
		return nil, err
	}
	if !drv.needsSubHandle {
		return conn.Handle, nil
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()
	if h, ok := conn.subHands[jobID]; ok {
		return h, nil
	}
	h, err := drv.dial(ctx, c.tracer, conn.Config)
	if err != nil {
		return nil, dbbridgeerr.NewQueryFailed(err)
	}
	conn.subHands[jobID] = h
	return h, nil
}

// ReleaseJobHandle closes and forgets the per-job sub-handle opened by
// JobHandle, if one was opened. Safe to call even if none was.
func (c *Connector) ReleaseJobHandle(connectionID, jobID string) {
	conn, err := c.get(connectionID)
	if err != nil {
		return
	}
	conn.mu.Lock()
	h, ok := conn.subHands[jobID]
	if ok {
		delete(conn.subHands, jobID)
	}
	conn.mu.Unlock()
	if ok {
		_ = h.Close()
	}
}
