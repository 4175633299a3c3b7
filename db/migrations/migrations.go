package migrations

import "embed"

// FS embeds the SQL migrations for the request store. The
// golang-migrate library will read these files via the iofs driver when
// applying migrations.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
