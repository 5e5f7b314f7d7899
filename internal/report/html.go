package report

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"randomcheck/domain/verdict"
)

// BuildHTML renders the markdown report to HTML for the web surface.
func BuildHTML(result *verdict.EvaluationResult, meta Meta) []byte {
	md := BuildMarkdown(result, meta)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
