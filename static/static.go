// Package static embeds the browser front-end.
package static

import "embed"

//go:embed index.html app.js style.css
var Files embed.FS
