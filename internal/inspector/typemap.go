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
	"regexp"
	"strings"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
)

type typeMapKey struct {
	source engine.Kind
	target engine.Kind
	base   string
}

// typeMap is the fixed, compile-time-known lookup behind MapType, covering
// all 12 ordered pairs among {mysql, postgres, oracle, sqlserver}. It is
// not a runtime-populated dictionary, per the "dynamic config -> enumerated
// options" design note.
var typeMap = map[typeMapKey]string{
	// tinyint(1) is a literal full key, matched before precision stripping.
	{engine.MySQL, engine.Postgres, "tinyint(1)"}: "boolean",
	{engine.MySQL, engine.Oracle, "tinyint(1)"}:   "NUMBER(1)",
	{engine.MySQL, engine.SQLServer, "tinyint(1)"}: "BIT",

	// mysql -> postgres
	{engine.MySQL, engine.Postgres, "int"}:         "integer",
	{engine.MySQL, engine.Postgres, "tinyint"}:     "smallint",
	{engine.MySQL, engine.Postgres, "smallint"}:    "smallint",
	{engine.MySQL, engine.Postgres, "mediumint"}:   "integer",
	{engine.MySQL, engine.Postgres, "bigint"}:      "bigint",
	{engine.MySQL, engine.Postgres, "varchar"}:     "varchar",
	{engine.MySQL, engine.Postgres, "char"}:        "char",
	{engine.MySQL, engine.Postgres, "text"}:        "text",
	{engine.MySQL, engine.Postgres, "mediumtext"}:  "text",
	{engine.MySQL, engine.Postgres, "longtext"}:    "text",
	{engine.MySQL, engine.Postgres, "datetime"}:    "timestamp",
	{engine.MySQL, engine.Postgres, "timestamp"}:   "timestamp",
	{engine.MySQL, engine.Postgres, "date"}:        "date",
	{engine.MySQL, engine.Postgres, "time"}:        "time",
	{engine.MySQL, engine.Postgres, "decimal"}:     "numeric",
	{engine.MySQL, engine.Postgres, "float"}:       "real",
	{engine.MySQL, engine.Postgres, "double"}:      "double precision",
	{engine.MySQL, engine.Postgres, "blob"}:        "bytea",
	{engine.MySQL, engine.Postgres, "varbinary"}:   "bytea",

	// mysql -> oracle
	{engine.MySQL, engine.Oracle, "int"}:        "NUMBER(10)",
	{engine.MySQL, engine.Oracle, "tinyint"}:    "NUMBER(3)",
	{engine.MySQL, engine.Oracle, "smallint"}:   "NUMBER(5)",
	{engine.MySQL, engine.Oracle, "bigint"}:     "NUMBER(19)",
	{engine.MySQL, engine.Oracle, "varchar"}:    "VARCHAR2",
	{engine.MySQL, engine.Oracle, "char"}:       "CHAR",
	{engine.MySQL, engine.Oracle, "text"}:       "CLOB",
	{engine.MySQL, engine.Oracle, "longtext"}:   "CLOB",
	{engine.MySQL, engine.Oracle, "datetime"}:   "TIMESTAMP",
	{engine.MySQL, engine.Oracle, "timestamp"}:  "TIMESTAMP",
	{engine.MySQL, engine.Oracle, "date"}:       "DATE",
	{engine.MySQL, engine.Oracle, "decimal"}:    "NUMBER",
	{engine.MySQL, engine.Oracle, "float"}:      "BINARY_FLOAT",
	{engine.MySQL, engine.Oracle, "double"}:     "BINARY_DOUBLE",
	{engine.MySQL, engine.Oracle, "blob"}:       "BLOB",
	{engine.MySQL, engine.Oracle, "varbinary"}:  "RAW",

	// mysql -> sqlserver
	{engine.MySQL, engine.SQLServer, "int"}:       "INT",
	{engine.MySQL, engine.SQLServer, "tinyint"}:   "TINYINT",
	{engine.MySQL, engine.SQLServer, "smallint"}:  "SMALLINT",
	{engine.MySQL, engine.SQLServer, "bigint"}:    "BIGINT",
	{engine.MySQL, engine.SQLServer, "varchar"}:   "VARCHAR",
	{engine.MySQL, engine.SQLServer, "char"}:      "CHAR",
	{engine.MySQL, engine.SQLServer, "text"}:      "VARCHAR(MAX)",
	{engine.MySQL, engine.SQLServer, "longtext"}:  "VARCHAR(MAX)",
	{engine.MySQL, engine.SQLServer, "datetime"}:  "DATETIME2",
	{engine.MySQL, engine.SQLServer, "timestamp"}: "DATETIME2",
	{engine.MySQL, engine.SQLServer, "date"}:      "DATE",
	{engine.MySQL, engine.SQLServer, "decimal"}:   "DECIMAL",
	{engine.MySQL, engine.SQLServer, "float"}:     "REAL",
	{engine.MySQL, engine.SQLServer, "double"}:    "FLOAT",
	{engine.MySQL, engine.SQLServer, "blob"}:      "VARBINARY(MAX)",
	{engine.MySQL, engine.SQLServer, "varbinary"}: "VARBINARY",

	// postgres -> mysql
	{engine.Postgres, engine.MySQL, "boolean"}:           "TINYINT(1)",
	{engine.Postgres, engine.MySQL, "integer"}:           "INT",
	{engine.Postgres, engine.MySQL, "smallint"}:          "SMALLINT",
	{engine.Postgres, engine.MySQL, "bigint"}:            "BIGINT",
	{engine.Postgres, engine.MySQL, "varchar"}:           "VARCHAR",
	{engine.Postgres, engine.MySQL, "character varying"}: "VARCHAR",
	{engine.Postgres, engine.MySQL, "char"}:               "CHAR",
	{engine.Postgres, engine.MySQL, "text"}:               "TEXT",
	{engine.Postgres, engine.MySQL, "timestamp"}:                          "DATETIME",
	{engine.Postgres, engine.MySQL, "timestamp without time zone"}:        "DATETIME",
	{engine.Postgres, engine.MySQL, "date"}:                               "DATE",
	{engine.Postgres, engine.MySQL, "time"}:                               "TIME",
	{engine.Postgres, engine.MySQL, "numeric"}:                            "DECIMAL",
	{engine.Postgres, engine.MySQL, "real"}:                               "FLOAT",
	{engine.Postgres, engine.MySQL, "double precision"}:                   "DOUBLE",
	{engine.Postgres, engine.MySQL, "bytea"}:                              "BLOB",

	// postgres -> oracle
	{engine.Postgres, engine.Oracle, "boolean"}:                    "NUMBER(1)",
	{engine.Postgres, engine.Oracle, "integer"}:                    "NUMBER(10)",
	{engine.Postgres, engine.Oracle, "smallint"}:                   "NUMBER(5)",
	{engine.Postgres, engine.Oracle, "bigint"}:                     "NUMBER(19)",
	{engine.Postgres, engine.Oracle, "varchar"}:                    "VARCHAR2",
	{engine.Postgres, engine.Oracle, "character varying"}:          "VARCHAR2",
	{engine.Postgres, engine.Oracle, "char"}:                       "CHAR",
	{engine.Postgres, engine.Oracle, "text"}:                       "CLOB",
	{engine.Postgres, engine.Oracle, "timestamp"}:                  "TIMESTAMP",
	{engine.Postgres, engine.Oracle, "timestamp without time zone"}: "TIMESTAMP",
	{engine.Postgres, engine.Oracle, "date"}:                       "DATE",
	{engine.Postgres, engine.Oracle, "numeric"}:                    "NUMBER",
	{engine.Postgres, engine.Oracle, "real"}:                       "BINARY_FLOAT",
	{engine.Postgres, engine.Oracle, "double precision"}:           "BINARY_DOUBLE",
	{engine.Postgres, engine.Oracle, "bytea"}:                      "BLOB",

	// postgres -> sqlserver
	{engine.Postgres, engine.SQLServer, "boolean"}:                   "BOOLEAN",
	{engine.Postgres, engine.SQLServer, "integer"}:                   "INT",
	{engine.Postgres, engine.SQLServer, "smallint"}:                  "SMALLINT",
	{engine.Postgres, engine.SQLServer, "bigint"}:                    "BIGINT",
	{engine.Postgres, engine.SQLServer, "varchar"}:                   "VARCHAR",
	{engine.Postgres, engine.SQLServer, "character varying"}:         "VARCHAR",
	{engine.Postgres, engine.SQLServer, "char"}:                      "CHAR",
	{engine.Postgres, engine.SQLServer, "text"}:                      "VARCHAR(MAX)",
	{engine.Postgres, engine.SQLServer, "timestamp"}:                 "DATETIME2",
	{engine.Postgres, engine.SQLServer, "timestamp without time zone"}: "DATETIME2",
	{engine.Postgres, engine.SQLServer, "date"}:                      "DATE",
	{engine.Postgres, engine.SQLServer, "numeric"}:                   "DECIMAL",
	{engine.Postgres, engine.SQLServer, "real"}:                      "REAL",
	{engine.Postgres, engine.SQLServer, "double precision"}:          "FLOAT",
	{engine.Postgres, engine.SQLServer, "bytea"}:                     "VARBINARY(MAX)",

	// oracle -> mysql
	{engine.Oracle, engine.MySQL, "number(10)"}: "INT",
	{engine.Oracle, engine.MySQL, "number(5)"}:  "SMALLINT",
	{engine.Oracle, engine.MySQL, "number(1)"}:  "TINYINT(1)",
	{engine.Oracle, engine.MySQL, "number(19)"}: "BIGINT",
	{engine.Oracle, engine.MySQL, "number"}:     "DECIMAL",
	{engine.Oracle, engine.MySQL, "varchar2"}:   "VARCHAR",
	{engine.Oracle, engine.MySQL, "char"}:       "CHAR",
	{engine.Oracle, engine.MySQL, "clob"}:       "LONGTEXT",
	{engine.Oracle, engine.MySQL, "timestamp"}:  "DATETIME",
	{engine.Oracle, engine.MySQL, "date"}:       "DATETIME",
	{engine.Oracle, engine.MySQL, "binary_float"}:  "FLOAT",
	{engine.Oracle, engine.MySQL, "binary_double"}: "DOUBLE",
	{engine.Oracle, engine.MySQL, "blob"}:          "LONGBLOB",
	{engine.Oracle, engine.MySQL, "raw"}:           "VARBINARY",

	// oracle -> postgres
	{engine.Oracle, engine.Postgres, "number(10)"}: "integer",
	{engine.Oracle, engine.Postgres, "number(5)"}:  "smallint",
	{engine.Oracle, engine.Postgres, "number(1)"}:  "boolean",
	{engine.Oracle, engine.Postgres, "number(19)"}: "bigint",
	{engine.Oracle, engine.Postgres, "number"}:     "numeric",
	{engine.Oracle, engine.Postgres, "varchar2"}:   "VARCHAR",
	{engine.Oracle, engine.Postgres, "char"}:       "char",
	{engine.Oracle, engine.Postgres, "clob"}:       "text",
	{engine.Oracle, engine.Postgres, "timestamp"}:  "timestamp without time zone",
	{engine.Oracle, engine.Postgres, "date"}:       "timestamp without time zone",
	{engine.Oracle, engine.Postgres, "binary_float"}:  "real",
	{engine.Oracle, engine.Postgres, "binary_double"}: "double precision",
	{engine.Oracle, engine.Postgres, "blob"}:          "bytea",
	{engine.Oracle, engine.Postgres, "raw"}:           "bytea",

	// oracle -> sqlserver
	{engine.Oracle, engine.SQLServer, "number(10)"}: "INT",
	{engine.Oracle, engine.SQLServer, "number(5)"}:  "SMALLINT",
	{engine.Oracle, engine.SQLServer, "number(1)"}:  "BIT",
	{engine.Oracle, engine.SQLServer, "number(19)"}: "BIGINT",
	{engine.Oracle, engine.SQLServer, "number"}:     "DECIMAL",
	{engine.Oracle, engine.SQLServer, "varchar2"}:   "VARCHAR",
	{engine.Oracle, engine.SQLServer, "char"}:       "CHAR",
	{engine.Oracle, engine.SQLServer, "clob"}:       "VARCHAR(MAX)",
	{engine.Oracle, engine.SQLServer, "timestamp"}:  "DATETIME",
	{engine.Oracle, engine.SQLServer, "date"}:       "DATETIME",
	{engine.Oracle, engine.SQLServer, "binary_float"}:  "REAL",
	{engine.Oracle, engine.SQLServer, "binary_double"}: "FLOAT",
	{engine.Oracle, engine.SQLServer, "blob"}:          "VARBINARY(MAX)",
	{engine.Oracle, engine.SQLServer, "raw"}:           "VARBINARY",

	// sqlserver -> mysql
	{engine.SQLServer, engine.MySQL, "bit"}:           "TINYINT(1)",
	{engine.SQLServer, engine.MySQL, "int"}:           "INT",
	{engine.SQLServer, engine.MySQL, "smallint"}:      "SMALLINT",
	{engine.SQLServer, engine.MySQL, "tinyint"}:       "TINYINT",
	{engine.SQLServer, engine.MySQL, "bigint"}:        "BIGINT",
	{engine.SQLServer, engine.MySQL, "varchar"}:       "VARCHAR",
	{engine.SQLServer, engine.MySQL, "nvarchar"}:      "VARCHAR",
	{engine.SQLServer, engine.MySQL, "char"}:          "CHAR",
	{engine.SQLServer, engine.MySQL, "datetime"}:      "DATETIME",
	{engine.SQLServer, engine.MySQL, "datetime2"}:     "DATETIME",
	{engine.SQLServer, engine.MySQL, "date"}:          "DATE",
	{engine.SQLServer, engine.MySQL, "decimal"}:       "DECIMAL",
	{engine.SQLServer, engine.MySQL, "real"}:          "FLOAT",
	{engine.SQLServer, engine.MySQL, "float"}:         "DOUBLE",
	{engine.SQLServer, engine.MySQL, "varbinary"}:     "VARBINARY",

	// sqlserver -> postgres
	{engine.SQLServer, engine.Postgres, "bit"}:       "BOOLEAN",
	{engine.SQLServer, engine.Postgres, "int"}:       "integer",
	{engine.SQLServer, engine.Postgres, "smallint"}:  "smallint",
	{engine.SQLServer, engine.Postgres, "tinyint"}:   "smallint",
	{engine.SQLServer, engine.Postgres, "bigint"}:    "bigint",
	{engine.SQLServer, engine.Postgres, "varchar"}:   "VARCHAR",
	{engine.SQLServer, engine.Postgres, "nvarchar"}:  "VARCHAR",
	{engine.SQLServer, engine.Postgres, "char"}:      "char",
	{engine.SQLServer, engine.Postgres, "datetime"}:  "timestamp without time zone",
	{engine.SQLServer, engine.Postgres, "datetime2"}: "timestamp without time zone",
	{engine.SQLServer, engine.Postgres, "date"}:      "date",
	{engine.SQLServer, engine.Postgres, "decimal"}:   "numeric",
	{engine.SQLServer, engine.Postgres, "real"}:      "real",
	{engine.SQLServer, engine.Postgres, "float"}:     "double precision",
	{engine.SQLServer, engine.Postgres, "varbinary"}: "bytea",

	// sqlserver -> oracle
	{engine.SQLServer, engine.Oracle, "bit"}:       "NUMBER(1)",
	{engine.SQLServer, engine.Oracle, "int"}:       "NUMBER(10)",
	{engine.SQLServer, engine.Oracle, "smallint"}:  "NUMBER(5)",
	{engine.SQLServer, engine.Oracle, "tinyint"}:   "NUMBER(3)",
	{engine.SQLServer, engine.Oracle, "bigint"}:    "NUMBER(19)",
	{engine.SQLServer, engine.Oracle, "varchar"}:   "VARCHAR2",
	{engine.SQLServer, engine.Oracle, "nvarchar"}:  "NVARCHAR2",
	{engine.SQLServer, engine.Oracle, "char"}:      "CHAR",
	{engine.SQLServer, engine.Oracle, "datetime"}:  "TIMESTAMP",
	{engine.SQLServer, engine.Oracle, "datetime2"}: "TIMESTAMP",
	{engine.SQLServer, engine.Oracle, "date"}:      "DATE",
	{engine.SQLServer, engine.Oracle, "decimal"}:   "NUMBER",
	{engine.SQLServer, engine.Oracle, "real"}:      "BINARY_FLOAT",
	{engine.SQLServer, engine.Oracle, "float"}:     "BINARY_DOUBLE",
	{engine.SQLServer, engine.Oracle, "varbinary"}: "RAW",
}

var precisionSuffix = regexp.MustCompile(`^(.*?)(\([0-9]+(?:,\s*[0-9]+)?\))$`)

// WarnFunc is called by MapType when a native type falls back unmapped.
// Inspector.RenderCreateTable wires this to the logger's Warn channel.
type WarnFunc func(nativeType, source, target string)

// MapType implements §4.2's pure mapping algorithm: identity for
// source==target, then a case-insensitive lookup of the full type as a
// literal key, then by (source, target, base) with the precision suffix
// reattached to the mapped base type. Unmapped
// types pass through unchanged and warn is invoked (non-fatal).
func MapType(nativeType string, source, target engine.Kind, warn WarnFunc) string {
	if source == target {
		return nativeType
	}

	lower := strings.ToLower(strings.TrimSpace(nativeType))

	// Literal full keys such as tinyint(1) or number(10) are checked before
	// precision stripping.
	if mapped, ok := typeMap[typeMapKey{source, target, lower}]; ok {
		return mapped
	}

	base := lower
	suffix := ""
	if m := precisionSuffix.FindStringSubmatch(lower); m != nil {
		base = m[1]
		suffix = m[2]
	}

	if mapped, ok := typeMap[typeMapKey{source, target, base}]; ok {
		if suffix != "" {
			return mapped + suffix
		}
		return mapped
	}

	if warn != nil {
		warn(nativeType, string(source), string(target))
	}
	return nativeType
}
