// Package portal exposes the embedded SQL migrations to the commands that run
// them.
package portal

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
