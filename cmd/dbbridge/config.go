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

package main

import (
	"fmt"
	"os"

	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// endpointYAML is the on-disk shape of one connection endpoint within a
// job config file.
type endpointYAML struct {
	Engine      string `yaml:"engine"`
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	ServiceName string `yaml:"service_name"`
	Database    string `yaml:"database"`
}

func (e endpointYAML) toEndpointConfig() engine.EndpointConfig {
	return engine.EndpointConfig{
		Host:        e.Host,
		Port:        e.Port,
		Username:    e.Username,
		Password:    e.Password,
		ServiceName: e.ServiceName,
	}
}

// jobConfigYAML is the top-level shape a `dbbridge migrate -f job.yaml`
// invocation decodes.
type jobConfigYAML struct {
	JobID  string       `yaml:"job_id"`
	Source endpointYAML `yaml:"source"`
	Target endpointYAML `yaml:"target"`
	Tables []string     `yaml:"tables"`
}

func loadJobConfig(path string) (jobConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jobConfigYAML{}, fmt.Errorf("reading job config: %w", err)
	}
	var cfg jobConfigYAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return jobConfigYAML{}, fmt.Errorf("parsing job config: %w", err)
	}
	if cfg.JobID == "" {
		cfg.JobID = uuid.NewString()
	}
	if len(cfg.Tables) == 0 {
		return jobConfigYAML{}, fmt.Errorf("job config: tables is required and must be non-empty")
	}
	return cfg, nil
}
