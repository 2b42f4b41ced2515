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
	"fmt"
	"strings"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
)

// RenderCreateTable translates schema's column types from sourceKind to
// targetKind via MapType and renders a CREATE TABLE statement for
// targetKind. If targetTableName is empty, schema.TableName is used.
//
// IF NOT EXISTS is emitted only for targets that actually support the
// clause (MySQL, Postgres) and omitted for Oracle and SQL Server; the
// ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 suffix is appended only when the
// target is MySQL; a DEFAULT clause is omitted when the source default is
// empty or the case-insensitive literal "null". Column order and the
// primary-key clause's column order both mirror schema exactly.
func RenderCreateTable(schema TableSchema, sourceKind, targetKind engine.Kind, targetTableName string, warn WarnFunc) string {
	name := targetTableName
	if name == "" {
		name = schema.TableName
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	if targetKind == engine.MySQL || targetKind == engine.Postgres {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(name)
	b.WriteString(" (\n")

	lines := make([]string, 0, len(schema.Columns)+1)
	for _, col := range schema.Columns {
		mapped := MapType(col.NativeType, sourceKind, targetKind, warn)
		line := fmt.Sprintf("  %s %s", col.Name, mapped)
		if !col.Nullable {
			line += " NOT NULL"
		}
		if d := strings.TrimSpace(col.Default); d != "" && !strings.EqualFold(d, "null") {
			line += " DEFAULT " + d
		}
		lines = append(lines, line)
	}
	if len(schema.PrimaryKeys) > 0 {
		lines = append(lines, fmt.Sprintf("  PRIMARY KEY (%s)", strings.Join(schema.PrimaryKeys, ", ")))
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n)")

	if targetKind == engine.MySQL {
		b.WriteString(" ENGINE=InnoDB DEFAULT CHARSET=utf8mb4")
	}
	return b.String()
}
