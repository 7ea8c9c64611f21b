// Package migrations embeds the goose schema migrations for both supported
// engines. The logical schema is identical; only column types differ.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Embed embed.FS
