// Package migrations embeds the schema of the campaign store: advertisers,
// campaigns and the append-only campaign_clicks table.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the binaries expect.
const Version uint = 2
