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

// Package inspector introspects a table on one engine, translates its
// column types to another engine, and synthesizes DDL. It never mutates
// anything; Migrator is the only caller that executes the DDL it renders.
package inspector

// Column is one table column in the source's declared order. NativeType is
// the engine's own textual type (e.g. "VARCHAR(255)", "NUMBER(10)"),
// preserved verbatim rather than canonicalized.
type Column struct {
	Name       string
	NativeType string
	Nullable   bool
	Default    string // empty string means "no default"
}

// Index is a secondary index; column order is the index's declared order.
type Index struct {
	Name    string
	Columns []string
}

// TableSchema is the normalized description Inspector.InspectTable
// returns. Columns, PrimaryKeys and each Index's Columns preserve the
// source's declared order; PrimaryKeys is a subset of the column names and
// may be empty.
type TableSchema struct {
	TableName   string
	Columns     []Column
	PrimaryKeys []string
	Indexes     []Index
}

// ColumnNames returns the schema's column names in declared order.
func (s TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
