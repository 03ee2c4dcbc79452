package ui

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed content/methodology.md
var methodologyMD []byte

// handleAbout renders the methodology notes shipped with the binary
func (a *App) handleAbout(w http.ResponseWriter, r *http.Request) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(methodologyMD)

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.Render(doc, renderer)

	a.renderTemplate(w, "about.html", map[string]interface{}{
		"Title":   "About LaborLens",
		"Content": template.HTML(rendered),
	})
}
