// Package migrations embeds the goose SQL migrations so the binary can
// bring the schema up to date at startup.
package migrations

import "embed"

//go:embed *.sql
var MigrationsFS embed.FS
