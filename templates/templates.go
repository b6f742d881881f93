// Package templates ships the default devcontainer JSONC templates. The
// configure wizard uses them whenever the target .devcontainer directory
// has no templates/ of its own, so the binary works standalone.
package templates

import "embed"

//go:embed *.jsonc
var FS embed.FS
