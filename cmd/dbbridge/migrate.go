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
	"context"
	"fmt"

	"github.com/UjjwalKo/Bridge-DB/internal/connector"
	"github.com/UjjwalKo/Bridge-DB/internal/engine"
	"github.com/UjjwalKo/Bridge-DB/internal/inspector"
	"github.com/UjjwalKo/Bridge-DB/internal/migrator"
	"github.com/spf13/cobra"
)

var migrateConfigPath string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run a migration job described by a job config file",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateConfigPath, "file", "f", "", "path to a job config YAML file")
	_ = migrateCmd.MarkFlagRequired("file")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadJobConfig(migrateConfigPath)
	if err != nil {
		return err
	}

	sourceKind := engine.Kind(cfg.Source.Engine)
	targetKind := engine.Kind(cfg.Target.Engine)

	conn := connector.New(logger, nil)
	insp := inspector.New(conn, logger, nil)
	mig := migrator.New(conn, insp, logger, nil, migrator.DefaultPoolSize)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := conn.Connect(ctx, sourceKind, cfg.Source.toEndpointConfig(), cfg.JobID+"-source"); err != nil {
		return fmt.Errorf("connecting source: %w", err)
	}
	defer conn.Disconnect(ctx, cfg.JobID+"-source")

	if _, err := conn.Connect(ctx, targetKind, cfg.Target.toEndpointConfig(), cfg.JobID+"-target"); err != nil {
		return fmt.Errorf("connecting target: %w", err)
	}
	defer conn.Disconnect(ctx, cfg.JobID+"-target")

	done := make(chan migrator.JobReport, 1)
	sink := func(report migrator.JobReport) {
		logger.InfoContext(ctx, "migration progress",
			"job_id", cfg.JobID,
			"status", report.Status,
			"current_table", report.CurrentTable,
			"tables_completed", report.TablesCompleted,
			"total_tables", report.TotalTables,
			"current_rows", report.CurrentRows,
			"total_rows", report.TotalRows,
			"elapsed_seconds", report.ElapsedSeconds)
		if report.Status == migrator.Completed || report.Status == migrator.Cancelled || report.Status == migrator.Error {
			done <- report
		}
	}

	if _, err := mig.StartMigration(ctx, cfg.JobID+"-source", cfg.JobID+"-target",
		cfg.Source.Database, cfg.Target.Database, cfg.Tables, sink, cfg.JobID); err != nil {
		return fmt.Errorf("starting migration: %w", err)
	}

	final := <-done
	for _, f := range final.TablesFailed {
		logger.WarnContext(ctx, "table migration failed", "job_id", cfg.JobID, "table", f.Table, "error", f.ErrorMsg)
	}
	if final.Status == migrator.Error {
		return fmt.Errorf("migration %s ended with status error: %s", cfg.JobID, final.Message)
	}
	return nil
}
