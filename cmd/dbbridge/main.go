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

// Command dbbridge is the CLI surface over the migration core: it wires a
// Connector, Inspector and Migrator together and drives them from a job
// config file.
package main

import (
	"fmt"
	"os"

	"github.com/UjjwalKo/Bridge-DB/internal/log"
	"github.com/spf13/cobra"
)

var (
	logFormat string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "dbbridge",
	Short: "Cross-engine schema and data migration core",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "standard", "logging format: standard or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.Info, "logging level: DEBUG, INFO, WARN, or ERROR")
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(inspectCmd)
}

func newLogger() (log.Logger, error) {
	return log.NewLogger(logFormat, logLevel, os.Stdout, os.Stderr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
