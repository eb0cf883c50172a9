// Package static embeds the stylesheet and script served under /static.
package static

import "embed"

//go:embed app.css app.js
var FS embed.FS
