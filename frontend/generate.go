package frontend

import "embed"

//go:embed dist/index.html
var Index embed.FS
