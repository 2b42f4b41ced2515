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
	"sync"
	"time"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/dbbridgeerr"
	"github.com/UjjwalKo/Bridge-DB/internal/inspector"
	"github.com/UjjwalKo/Bridge-DB/internal/log"
	"go.opentelemetry.io/otel/trace"
)

// DefaultChunkSize is the row count per chunk in the chunked copy path.
const DefaultChunkSize = 100_000

// ChunkThreshold is the row-count estimate above which a table is copied
// chunked rather than single-shot.
const ChunkThreshold = 1_000_000

// DefaultPoolSize is the default number of migration jobs that may run
// concurrently.
const DefaultPoolSize = 5

// Migrator runs migration jobs against connections obtained from a
// Connector, using an Inspector for schema introspection and DDL
// synthesis. It is the only component that touches the worker pool.
type Migrator struct {
	conn   *connector.Connector
	insp   *inspector.Inspector
	logger log.Logger
	tracer trace.Tracer

	sem chan struct{}

	mu   sync.Mutex
	jobs map[string]*MigrationJob
}

// New creates a Migrator with a worker pool of poolSize. poolSize <= 0
// defaults to DefaultPoolSize. tracer may be nil.
func New(conn *connector.Connector, insp *inspector.Inspector, logger log.Logger, tracer trace.Tracer, poolSize int) *Migrator {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("migrator")
	}
	return &Migrator{
		conn:   conn,
		insp:   insp,
		logger: logger,
		tracer: tracer,
		sem:    make(chan struct{}, poolSize),
		jobs:   make(map[string]*MigrationJob),
	}
}

// StartMigration admits a migration job to the worker pool and returns
// immediately; it never blocks on copy work. Returns JobExists if jobID
// already names a live job.
func (m *Migrator) StartMigration(ctx context.Context, sourceConn, targetConn, sourceDB, targetDB string, tables []string, sink ProgressSink, jobID string) (string, error) {
	m.mu.Lock()
	if existing, ok := m.jobs[jobID]; ok && !existing.snapshot().Status.terminal() {
		m.mu.Unlock()
		return "", dbbridgeerr.NewJobExists(jobID)
	}
	job := newJob(jobID, sourceConn, targetConn, sourceDB, targetDB, tables, sink)
	m.jobs[jobID] = job
	m.mu.Unlock()

	go m.run(job)

	return jobID, nil
}

// Cancel sets jobID's cooperative cancel flag. The flag is polled between
// tables and between chunks; cancellation is observable to the caller
// only once the currently-executing boundary returns.
func (m *Migrator) Cancel(jobID string) error {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("migrator: job %q not found", jobID)
	}
	job.requestCancel()
	return nil
}

// run executes job on a worker slot, blocking until one is free. The slot
// acquisition happens off the StartMigration call path so admission never
// blocks the caller.
func (m *Migrator) run(job *MigrationJob) {
	m.sem <- struct{}{}
	defer func() { <-m.sem }()

	job.startedAt = time.Now()
	ctx := context.Background()

	sourceHandle, err := m.conn.JobHandle(ctx, job.SourceConn, job.ID)
	if err != nil {
		m.finishError(job, fmt.Errorf("opening source connection: %w", err))
		return
	}
	defer m.conn.ReleaseJobHandle(job.SourceConn, job.ID)

	targetHandle, err := m.conn.JobHandle(ctx, job.TargetConn, job.ID)
	if err != nil {
		m.finishError(job, fmt.Errorf("opening target connection: %w", err))
		return
	}
	defer m.conn.ReleaseJobHandle(job.TargetConn, job.ID)

	sourceKindConn, err := m.conn.Get(job.SourceConn)
	if err != nil {
		m.finishError(job, err)
		return
	}
	targetKindConn, err := m.conn.Get(job.TargetConn)
	if err != nil {
		m.finishError(job, err)
		return
	}

	job.setStatus(InProgress)
	job.emit()

	for _, table := range job.Tables {
		if job.cancelRequested() {
			m.finishCancelled(job)
			return
		}

		job.setCurrentTable(table)
		tc := &tableCopy{
			migrator:     m,
			job:          job,
			table:        table,
			sourceHandle: sourceHandle,
			targetHandle: targetHandle,
			sourceKind:   sourceKindConn.Kind,
			targetKind:   targetKindConn.Kind,
		}
		if err := tc.run(ctx); err != nil {
			if errors.Is(err, errCancelled) {
				m.finishCancelled(job)
				return
			}
			job.recordTableFailure(table, err)
			m.logger.WarnContext(ctx, "table copy failed", "job_id", job.ID, "table", table, "error", err)
		} else {
			job.recordTableSuccess()
		}
		job.emit()

		if job.cancelRequested() {
			m.finishCancelled(job)
			return
		}
	}

	job.setStatus(Completed)
	job.emit()
}

func (m *Migrator) finishError(job *MigrationJob, err error) {
	job.setMessage(err.Error())
	job.setStatus(Error)
	job.emit()
	m.logger.ErrorContext(context.Background(), "migration aborted", "job_id", job.ID, "error", err)
}

func (m *Migrator) finishCancelled(job *MigrationJob) {
	job.setStatus(Cancelled)
	job.emit()
}
