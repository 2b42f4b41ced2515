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
	"testing"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestColumnListQuotesPerEngine(t *testing.T) {
	cols := []string{"id", "name"}
	assert.Equal(t, "`id`, `name`", columnList(engine.MySQL, cols))
	assert.Equal(t, "[id], [name]", columnList(engine.SQLServer, cols))
	assert.Equal(t, "id, name", columnList(engine.Postgres, cols))
	assert.Equal(t, "id, name", columnList(engine.Oracle, cols))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", placeholder(engine.Postgres, 1))
	assert.Equal(t, "?", placeholder(engine.MySQL, 1))
	assert.Equal(t, "?", placeholder(engine.Oracle, 1))
	assert.Equal(t, "?", placeholder(engine.SQLServer, 1))
}

func TestExecOnHandleRejectsUnrecognizedHandle(t *testing.T) {
	err := execOnHandle(context.Background(), unrecognizedHandle{}, "SELECT 1")
	assert.Error(t, err)
}

type unrecognizedHandle struct{}

func (unrecognizedHandle) EngineKind() engine.Kind             { return engine.Kind("nonsense") }
func (unrecognizedHandle) Ping(ctx context.Context) error { return nil }
func (unrecognizedHandle) Close() error                        { return nil }
