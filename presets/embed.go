package presets

import "embed"

// FS contains the bundled inheritance chain presets shipped with the binary.
//
//go:embed *.yaml
var FS embed.FS
