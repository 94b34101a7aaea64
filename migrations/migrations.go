// Package migrations embeds the SQL schema migrations.
package migrations

import "embed"

// FS holds every *.sql migration, named per golang-migrate conventions.
//
//go:embed *.sql
var FS embed.FS
