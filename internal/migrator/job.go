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

// Package migrator orchestrates table-by-table copy jobs between two
// connections: introspecting each table, emitting DDL into the target,
// choosing a pagination strategy, and streaming chunks through the
// target's fastest bulk-load path.
package migrator

import (
	"sync"
	"sync/atomic"
	"time"
)

// Status is a MigrationJob's lifecycle state. Terminal states
// (Completed, Cancelled, Error) are absorbing.
type Status string

const (
	Started    Status = "started"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
	Cancelled  Status = "cancelled"
	Error      Status = "error"
)

func (s Status) terminal() bool {
	switch s {
	case Completed, Cancelled, Error:
		return true
	default:
		return false
	}
}

// TableFailure records one table's copy failure without aborting the job.
type TableFailure struct {
	Table    string
	ErrorMsg string
}

// JobReport is the running aggregate a ProgressSink observes. It is
// monotone in TablesCompleted, TablesFailed and ElapsedSeconds.
type JobReport struct {
	Status          Status
	CurrentTable    string
	TablesCompleted int
	TablesFailed    []TableFailure
	TotalTables     int
	CurrentRows     int64
	TotalRows       int64
	ElapsedSeconds  float64
	Message         string
}

func (r JobReport) clone() JobReport {
	out := r
	out.TablesFailed = append([]TableFailure(nil), r.TablesFailed...)
	return out
}

// ProgressSink receives JobReport snapshots during a migration. It is
// invoked zero or more times with an in_progress status and exactly once
// with a terminal status. Panics raised by the sink are recovered and
// discarded; they never abort the copy, and they are not logged.
type ProgressSink func(JobReport)

// MigrationJob is a single running or completed migration. It references
// but does not own its connections.
type MigrationJob struct {
	ID         string
	SourceConn string
	TargetConn string
	SourceDB   string
	TargetDB   string
	Tables     []string

	sink      ProgressSink
	cancelled atomic.Bool
	startedAt time.Time

	mu     sync.Mutex
	report JobReport
}

func newJob(id, sourceConn, targetConn, sourceDB, targetDB string, tables []string, sink ProgressSink) *MigrationJob {
	return &MigrationJob{
		ID:         id,
		SourceConn: sourceConn,
		TargetConn: targetConn,
		SourceDB:   sourceDB,
		TargetDB:   targetDB,
		Tables:     tables,
		sink:       sink,
		report: JobReport{
			Status:      Started,
			TotalTables: len(tables),
		},
	}
}

// requestCancel sets the cooperative cancel flag. It does not block and
// does not itself emit a snapshot.
func (j *MigrationJob) requestCancel() {
	j.cancelled.Store(true)
}

func (j *MigrationJob) cancelRequested() bool {
	return j.cancelled.Load()
}

// snapshot returns a deep copy of the current report plus the elapsed
// time since the job started.
func (j *MigrationJob) snapshot() JobReport {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.report.ElapsedSeconds = time.Since(j.startedAt).Seconds()
	return j.report.clone()
}

// emit publishes the current snapshot to the sink synchronously, on the
// calling goroutine, recovering from and discarding any panic the
// caller-supplied sink raises.
func (j *MigrationJob) emit() {
	if j.sink == nil {
		return
	}
	snap := j.snapshot()
	func() {
		defer func() {
			_ = recover()
		}()
		j.sink(snap)
	}()
}

func (j *MigrationJob) setStatus(s Status) {
	j.mu.Lock()
	j.report.Status = s
	j.mu.Unlock()
}

func (j *MigrationJob) setCurrentTable(table string) {
	j.mu.Lock()
	j.report.CurrentTable = table
	j.report.CurrentRows = 0
	j.report.TotalRows = 0
	j.mu.Unlock()
}

func (j *MigrationJob) setRowCounts(current, total int64) {
	j.mu.Lock()
	j.report.CurrentRows = current
	if total >= 0 {
		j.report.TotalRows = total
	}
	j.mu.Unlock()
}

func (j *MigrationJob) recordTableSuccess() {
	j.mu.Lock()
	j.report.TablesCompleted++
	j.mu.Unlock()
}

func (j *MigrationJob) recordTableFailure(table string, err error) {
	j.mu.Lock()
	j.report.TablesFailed = append(j.report.TablesFailed, TableFailure{Table: table, ErrorMsg: err.Error()})
	j.mu.Unlock()
}

func (j *MigrationJob) setMessage(msg string) {
	j.mu.Lock()
	j.report.Message = msg
	j.mu.Unlock()
}
