package docs

import "embed"

// FS contains long-form Markdown docs bundled with the sqltrace binary.
//
//go:embed guide
var FS embed.FS
