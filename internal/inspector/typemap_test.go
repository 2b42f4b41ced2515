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

package inspector

import (
	"testing"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestMapTypeRepresentativePairs(t *testing.T) {
	tests := []struct {
		name       string
		nativeType string
		source     engine.Kind
		target     engine.Kind
		want       string
	}{
		{"mysql int to postgres", "int", engine.MySQL, engine.Postgres, "integer"},
		{"mysql tinyint(1) to postgres", "tinyint(1)", engine.MySQL, engine.Postgres, "boolean"},
		{"mysql datetime to oracle", "datetime", engine.MySQL, engine.Oracle, "TIMESTAMP"},
		{"postgres boolean to mysql", "boolean", engine.Postgres, engine.MySQL, "TINYINT(1)"},
		{"postgres text to oracle", "text", engine.Postgres, engine.Oracle, "CLOB"},
		{"oracle number(10) to mysql", "number(10)", engine.Oracle, engine.MySQL, "INT"},
		{"oracle varchar2 to postgres", "varchar2", engine.Oracle, engine.Postgres, "VARCHAR"},
		{"sqlserver bit to postgres", "bit", engine.SQLServer, engine.Postgres, "BOOLEAN"},
		{"sqlserver datetime to oracle", "datetime", engine.SQLServer, engine.Oracle, "TIMESTAMP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapType(tt.nativeType, tt.source, tt.target, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapTypeIdentityWhenSourceEqualsTarget(t *testing.T) {
	for _, kind := range engine.All {
		for _, native := range []string{"varchar(255)", "NUMBER(10,2)", "geography"} {
			assert.Equal(t, native, MapType(native, kind, kind, nil))
		}
	}
}

func TestMapTypePreservesPrecisionSuffix(t *testing.T) {
	got := MapType("varchar(255)", engine.MySQL, engine.Postgres, nil)
	assert.Equal(t, "varchar(255)", got)

	got = MapType("decimal(10,2)", engine.MySQL, engine.Postgres, nil)
	assert.Equal(t, "numeric(10,2)", got)
}

func TestMapTypeFallbackWarnsAndPassesThrough(t *testing.T) {
	var warned []string
	warn := func(nativeType, source, target string) {
		warned = append(warned, nativeType+":"+source+":"+target)
	}

	got := MapType("geography", engine.SQLServer, engine.Postgres, warn)

	assert.Equal(t, "geography", got)
	assert.Equal(t, []string{"geography:sqlserver:postgres"}, warned)
}

func TestMapTypeCaseInsensitiveLookup(t *testing.T) {
	got := MapType("TINYINT(1)", engine.MySQL, engine.Postgres, nil)
	assert.Equal(t, "boolean", got)

	got = MapType("INT", engine.MySQL, engine.Postgres, nil)
	assert.Equal(t, "integer", got)
}
