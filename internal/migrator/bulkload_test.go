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
	"github.com/UjjwalKo/Bridge-DB/internal/inspector"
	"github.com/stretchr/testify/assert"
)

func TestQuoteMySQLColumns(t *testing.T) {
	got := quoteMySQLColumns([]string{"id", "name"})
	assert.Equal(t, "`id`, `name`", got)
}

func TestToAnyRows(t *testing.T) {
	rows := []inspector.Row{{1, "a"}, {2, "b"}}
	got := toAnyRows(rows)
	assert.Equal(t, [][]any{{1, "a"}, {2, "b"}}, got)
}

func TestBulkLoadRejectsUnsupportedEngine(t *testing.T) {
	err := bulkLoad(context.Background(), unrecognizedHandle{}, engine.Kind("db2"), "t", []string{"id"}, nil)
	assert.Error(t, err)
}
