// Package migrations embeds the goose SQL migrations so the binaries and the
// integration tests apply the same schema without touching the filesystem.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
