// Package assets embeds the demo scenes shipped with the engine.
package assets

import (
	_ "embed"
)

// DemoScene is a small scene source exercising the scheduler, the lock
// manager and the presentation opcodes. Loadable with the reserved
// scene name "demo".
//
//go:embed demo.gs
var DemoScene string
