// Package fixtures embeds recorded backend responses used by the fixture
// transport and by mapper tests.
package fixtures

import "embed"

// FS holds every *.json fixture in this directory.
//
//go:embed *.json
var FS embed.FS
