// Package migrations embeds the PostgreSQL schema for users and stations.
package migrations

import "embed"

// Dir is the directory within FS holding the migration files.
const Dir = "sql"

// FS contains the numbered up/down migration files.
//
//go:embed sql/*.sql
var FS embed.FS
