// Package migrations embeds the sqlite schema of the CLI session database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
