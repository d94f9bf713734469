// Package migrations embeds the SQL schema so the server, the migrator and the e2e tests apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
