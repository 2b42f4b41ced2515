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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTerminal(t *testing.T) {
	assert.False(t, Started.terminal())
	assert.False(t, InProgress.terminal())
	assert.True(t, Completed.terminal())
	assert.True(t, Cancelled.terminal())
	assert.True(t, Error.terminal())
}

func TestNewJobInitialReport(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", []string{"a", "b", "c"}, nil)
	snap := job.snapshot()
	assert.Equal(t, Started, snap.Status)
	assert.Equal(t, 3, snap.TotalTables)
	assert.Equal(t, 0, snap.TablesCompleted)
	assert.Empty(t, snap.TablesFailed)
}

func TestJobRecordSuccessAndFailure(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", []string{"a", "b"}, nil)
	job.recordTableSuccess()
	job.recordTableFailure("b", errors.New("boom"))

	snap := job.snapshot()
	assert.Equal(t, 1, snap.TablesCompleted)
	require.Len(t, snap.TablesFailed, 1)
	assert.Equal(t, "b", snap.TablesFailed[0].Table)
	assert.Equal(t, "boom", snap.TablesFailed[0].ErrorMsg)
}

func TestJobSnapshotClonesTableFailures(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", []string{"a"}, nil)
	job.recordTableFailure("a", errors.New("boom"))

	snap := job.snapshot()
	snap.TablesFailed[0].Table = "mutated"

	again := job.snapshot()
	assert.Equal(t, "a", again.TablesFailed[0].Table, "mutating a returned snapshot must not affect the job's internal state")
}

func TestJobCancelRequested(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", nil, nil)
	assert.False(t, job.cancelRequested())
	job.requestCancel()
	assert.True(t, job.cancelRequested())
}

func TestJobEmitRecoversFromSinkPanic(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", nil, func(JobReport) {
		panic("sink exploded")
	})
	assert.NotPanics(t, func() {
		job.emit()
	})
}

func TestJobEmitWithNilSinkIsNoop(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", nil, nil)
	assert.NotPanics(t, func() {
		job.emit()
	})
}

func TestJobEmitDeliversSnapshotToSink(t *testing.T) {
	received := make(chan JobReport, 1)
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", []string{"a"}, func(r JobReport) {
		received <- r
	})
	job.setStatus(InProgress)
	job.emit()

	select {
	case r := <-received:
		assert.Equal(t, InProgress, r.Status)
	case <-time.After(time.Second):
		t.Fatal("sink was never invoked")
	}
}

func TestJobSetCurrentTableResetsRowCounts(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", []string{"a", "b"}, nil)
	job.setRowCounts(50, 100)
	job.setCurrentTable("b")

	snap := job.snapshot()
	assert.Equal(t, "b", snap.CurrentTable)
	assert.Equal(t, int64(0), snap.CurrentRows)
	assert.Equal(t, int64(0), snap.TotalRows)
}

func TestJobSetRowCountsIgnoresNegativeTotal(t *testing.T) {
	job := newJob("job-1", "src", "tgt", "srcdb", "tgtdb", []string{"a"}, nil)
	job.setRowCounts(10, 1000)
	job.setRowCounts(20, -1)

	snap := job.snapshot()
	assert.Equal(t, int64(20), snap.CurrentRows)
	assert.Equal(t, int64(1000), snap.TotalRows, "a negative total is a sentinel for 'unknown', not a reset to zero")
}
