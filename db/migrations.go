// Package db carries the embedded schema migrations. Builds tagged
// embed_migrations compile them into the binary; other builds read them from
// db/migrations on disk.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
