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
	"os"
	"testing"

	"github.com/UjjwalKo/Bridge-DB/internal/dbbridgeerr"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/UjjwalKo/Bridge-DB/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

// fakeHandle is a minimal Handle used to exercise Connector lifecycle logic
// without dialing a real database.
type fakeHandle struct {
	kind   engine.Kind
	closed bool
}

func (h *fakeHandle) EngineKind() engine.Kind   { return h.kind }
func (h *fakeHandle) Ping(ctx context.Context) error { return nil }
func (h *fakeHandle) Close() error {
	h.closed = true
	return nil
}

func testLogger(t *testing.T) log.Logger {
	t.Helper()
	l, err := log.NewLogger("standard", log.Warn, os.Stderr, os.Stderr)
	require.NoError(t, err)
	return l
}

func TestConnectorGetUnknownConnection(t *testing.T) {
	c := New(testLogger(t), nil)
	_, err := c.Get("missing")
	require.Error(t, err)
	kind, ok := dbbridgeerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, dbbridgeerr.NoSuchConnection, kind)
}

func TestConnectorDisconnectClosesHandleAndSubHandles(t *testing.T) {
	c := New(testLogger(t), nil)
	h := &fakeHandle{kind: engine.MySQL}
	sub := &fakeHandle{kind: engine.MySQL}

	conn := &Connection{
		ID:       "conn-1",
		Kind:     engine.MySQL,
		Handle:   h,
		subHands: map[string]Handle{"job-1": sub},
	}
	c.mu.Lock()
	c.conns["conn-1"] = conn
	c.mu.Unlock()

	c.Disconnect(context.Background(), "conn-1")

	assert.True(t, h.closed)
	assert.True(t, sub.closed)
	_, err := c.Get("conn-1")
	assert.Error(t, err)
}

func TestConnectorDisconnectIsIdempotent(t *testing.T) {
	c := New(testLogger(t), nil)
	assert.NotPanics(t, func() {
		c.Disconnect(context.Background(), "never-registered")
	})
}

func TestJobHandleSharesHandleWhenNoSubHandleNeeded(t *testing.T) {
	c := New(testLogger(t), nil)
	h := &fakeHandle{kind: engine.MySQL}
	conn := &Connection{ID: "conn-1", Kind: engine.MySQL, Handle: h, subHands: map[string]Handle{}}
	c.mu.Lock()
	c.conns["conn-1"] = conn
	c.mu.Unlock()

	got, err := c.JobHandle(context.Background(), "conn-1", "job-1")
	require.NoError(t, err)
	assert.Same(t, Handle(h), got)
}

func TestJobHandleDialsAndCachesSubHandle(t *testing.T) {
	const testKind = engine.Kind("test-needs-sub")
	dialCount := 0
	register(testKind, engineDriver{
		dial: func(ctx context.Context, tracer trace.Tracer, cfg engine.EndpointConfig) (Handle, error) {
			dialCount++
			return &fakeHandle{kind: testKind}, nil
		},
		needsSubHandle: true,
	})
	defer delete(engineRegistry, testKind)

	c := New(testLogger(t), nil)
	primary := &fakeHandle{kind: testKind}
	conn := &Connection{ID: "conn-1", Kind: testKind, Handle: primary, subHands: map[string]Handle{}}
	c.mu.Lock()
	c.conns["conn-1"] = conn
	c.mu.Unlock()

	h1, err := c.JobHandle(context.Background(), "conn-1", "job-1")
	require.NoError(t, err)
	assert.NotSame(t, Handle(primary), h1)

	h2, err := c.JobHandle(context.Background(), "conn-1", "job-1")
	require.NoError(t, err)
	assert.Same(t, h1, h2, "a second call for the same job id must reuse the cached sub-handle")
	assert.Equal(t, 1, dialCount)

	c.ReleaseJobHandle("conn-1", "job-1")
	assert.True(t, h1.(*fakeHandle).closed)

	h3, err := c.JobHandle(context.Background(), "conn-1", "job-1")
	require.NoError(t, err)
	assert.NotSame(t, h1, h3, "releasing the sub-handle must force a fresh dial next time")
}

func TestReleaseJobHandleOnUnknownConnectionIsNoop(t *testing.T) {
	c := New(testLogger(t), nil)
	assert.NotPanics(t, func() {
		c.ReleaseJobHandle("missing", "job-1")
	})
}

func TestConnectRejectsUnknownEngineKindAsUnsupportedEngine(t *testing.T) {
	c := New(testLogger(t), nil)
	_, err := c.Connect(context.Background(), engine.Kind("nosql"), engine.EndpointConfig{
		Host: "db.example.com", Port: 5432, Username: "app",
	}, "conn-1")
	require.Error(t, err)
	kind, ok := dbbridgeerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, dbbridgeerr.UnsupportedEngine, kind)
}

// A valid engine kind with an invalid field (missing host) must not be
// reported as UnsupportedEngine: that kind is reserved for engine_kind
// outside the fixed set, and a caller branching on it to decide whether
// the engine itself is supported would get a false positive on a plain
// config typo.
func TestConnectRejectsInvalidConfigWithoutUnsupportedEngine(t *testing.T) {
	c := New(testLogger(t), nil)
	_, err := c.Connect(context.Background(), engine.MySQL, engine.EndpointConfig{
		Port: 3306, Username: "app",
	}, "conn-1")
	require.Error(t, err)
	kind, ok := dbbridgeerr.KindOf(err)
	if ok {
		assert.NotEqual(t, dbbridgeerr.UnsupportedEngine, kind)
	}
}
