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
	"testing"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestRegisterPanicsOnDuplicateKind(t *testing.T) {
	const kind = engine.Kind("test-duplicate")
	register(kind, engineDriver{})
	defer delete(engineRegistry, kind)

	assert.Panics(t, func() {
		register(kind, engineDriver{})
	})
}

func TestDriverForUnknownKind(t *testing.T) {
	_, err := driverFor(engine.Kind("db2"))
	assert.Error(t, err)
}

func TestDriverForKnownKinds(t *testing.T) {
	for _, kind := range engine.All {
		_, err := driverFor(kind)
		assert.NoError(t, err, "engine %s should be registered by its init()", kind)
	}
}
