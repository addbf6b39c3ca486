// Package db embeds the SQL migrations applied by "talenthub db migrate".
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
