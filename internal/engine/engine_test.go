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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindValid(t *testing.T) {
	for _, k := range All {
		assert.True(t, k.Valid())
	}
	assert.False(t, Kind("db2").Valid())
}

func TestEndpointConfigValidate(t *testing.T) {
	base := EndpointConfig{Host: "db.internal", Port: 1521, Username: "admin"}

	tests := []struct {
		name    string
		kind    Kind
		cfg     EndpointConfig
		wantErr bool
	}{
		{"mysql without service name is valid", MySQL, base, false},
		{"postgres without service name is valid", Postgres, base, false},
		{"sqlserver without service name is valid", SQLServer, base, false},
		{"oracle requires service name", Oracle, base, true},
		{"oracle with service name is valid", Oracle, withService(base, "ORCLPDB1"), false},
		{"mysql rejects service name", MySQL, withService(base, "ORCLPDB1"), true},
		{"missing host", MySQL, EndpointConfig{Port: 3306, Username: "root"}, true},
		{"missing port", MySQL, EndpointConfig{Host: "db.internal", Username: "root"}, true},
		{"missing username", MySQL, EndpointConfig{Host: "db.internal", Port: 3306}, true},
		{"unsupported engine kind", Kind("db2"), base, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func withService(cfg EndpointConfig, svc string) EndpointConfig {
	cfg.ServiceName = svc
	return cfg
}
