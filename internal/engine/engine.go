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

// Package engine defines the fixed set of database engines the migration
// core knows how to talk to, and the typed endpoint configuration used to
// reach one of them.
package engine

import "fmt"

// Kind is one of the four engines this module bridges between.
type Kind string

const (
	MySQL     Kind = "mysql"
	Postgres  Kind = "postgres"
	Oracle    Kind = "oracle"
	SQLServer Kind = "sqlserver"
)

// All is the fixed, ordered set of supported engine kinds.
var All = []Kind{MySQL, Postgres, Oracle, SQLServer}

// Valid reports whether k is one of the four supported engines.
func (k Kind) Valid() bool {
	switch k {
	case MySQL, Postgres, Oracle, SQLServer:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// EndpointConfig is a typed replacement for the open string-keyed config
// bags a dynamic implementation would accept. ServiceName is required when
// Kind is Oracle and forbidden otherwise; Database names a schema/database
// per Connector.list_tables semantics rather than living on the config
// itself, since one endpoint is reused across databases.
type EndpointConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	ServiceName string // required iff Kind == Oracle
}

// Validate enforces the service_name requirement from the data model:
// required for Oracle, forbidden for every other engine.
func (c EndpointConfig) Validate(k Kind) error {
	if !k.Valid() {
		return fmt.Errorf("unsupported engine kind %q", k)
	}
	if c.Host == "" {
		return fmt.Errorf("endpoint config: host is required")
	}
	if c.Port <= 0 {
		return fmt.Errorf("endpoint config: port must be positive")
	}
	if c.Username == "" {
		return fmt.Errorf("endpoint config: username is required")
	}
	switch k {
	case Oracle:
		if c.ServiceName == "" {
			return fmt.Errorf("endpoint config: service_name is required for oracle")
		}
	default:
		if c.ServiceName != "" {
			return fmt.Errorf("endpoint config: service_name is not valid for %s", k)
		}
	}
	return nil
}
