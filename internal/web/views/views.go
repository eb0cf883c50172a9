// Package views holds the page templates and the engine that renders them.
package views

import (
	"embed"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"

	"github.com/chynybekuuludastan/adstudio/internal/web/content"
	"github.com/chynybekuuludastan/adstudio/internal/web/ui"
)

// Layout is the page layout every view is rendered into
const Layout = "layouts/main"

//go:embed layouts/*.html partials/*.html *.html
var files embed.FS

// NewEngine creates the template engine with the page helpers registered
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"buttonClass": ui.ButtonClass,
		"cardClass":   ui.CardClass,
		"timestamp":   ui.Timestamp,
		"clock":       ui.Clock,
		"percent":     ui.Percent,
		"maxValue":    content.Max,
		"join":        strings.Join,
		"inc":         func(i int) int { return i + 1 },
	})
	return engine
}
