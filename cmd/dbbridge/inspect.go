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
	"github.com/spf13/cobra"
)

var (
	inspectEngine      string
	inspectHost        string
	inspectPort        int
	inspectUser        string
	inspectPassword    string
	inspectServiceName string
	inspectDatabase    string
	inspectTable       string
	inspectTargetKind  string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Introspect a table and print its schema and rendered DDL",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectEngine, "engine", "", "source engine: mysql, postgres, oracle, or sqlserver")
	inspectCmd.Flags().StringVar(&inspectHost, "host", "", "source host")
	inspectCmd.Flags().IntVar(&inspectPort, "port", 0, "source port")
	inspectCmd.Flags().StringVar(&inspectUser, "username", "", "source username")
	inspectCmd.Flags().StringVar(&inspectPassword, "password", "", "source password")
	inspectCmd.Flags().StringVar(&inspectServiceName, "service-name", "", "source service name (Oracle only)")
	inspectCmd.Flags().StringVar(&inspectDatabase, "database", "", "database (or, for Oracle, schema owner)")
	inspectCmd.Flags().StringVar(&inspectTable, "table", "", "table name")
	inspectCmd.Flags().StringVar(&inspectTargetKind, "target-engine", "", "if set, also render CREATE TABLE for this target engine")
	for _, f := range []string{"engine", "host", "username", "database", "table"} {
		_ = inspectCmd.MarkFlagRequired(f)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	conn := connector.New(logger, nil)
	insp := inspector.New(conn, logger, nil)

	kind := engine.Kind(inspectEngine)
	cfg := engine.EndpointConfig{
		Host:        inspectHost,
		Port:        inspectPort,
		Username:    inspectUser,
		Password:    inspectPassword,
		ServiceName: inspectServiceName,
	}
	const connID = "inspect"
	if _, err := conn.Connect(ctx, kind, cfg, connID); err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer conn.Disconnect(ctx, connID)

	schema, err := insp.InspectTable(ctx, connID, inspectDatabase, inspectTable)
	if err != nil {
		return fmt.Errorf("inspecting table: %w", err)
	}

	fmt.Printf("table %s: %d columns, primary key %v\n", schema.TableName, len(schema.Columns), schema.PrimaryKeys)
	for _, c := range schema.Columns {
		fmt.Printf("  %s %s nullable=%t default=%q\n", c.Name, c.NativeType, c.Nullable, c.Default)
	}
	for _, idx := range schema.Indexes {
		fmt.Printf("  index %s on %v\n", idx.Name, idx.Columns)
	}

	if inspectTargetKind != "" {
		ddl := insp.RenderCreateTable(ctx, schema, kind, engine.Kind(inspectTargetKind), "")
		fmt.Println()
		fmt.Println(ddl)
	}
	return nil
}
