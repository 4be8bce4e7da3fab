package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"graphbook/internal/contextutil"
	"graphbook/internal/service"
)

// NodePageHandler serves a node's markdown content as a rendered HTML page.
type NodePageHandler struct {
	service  service.GraphService
	parser   goldmark.Markdown
	template *template.Template
}

// nodePageData holds template data for rendered node pages.
type nodePageData struct {
	Title   string
	Tags    string
	Content template.HTML
}

// NewNodePageHandler creates a new handler for serving node pages.
func NewNodePageHandler(svc service.GraphService) *NodePageHandler {
	tmpl := template.Must(template.New("node").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid #ddd;
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      font-size: 2rem;
    }
    .meta {
      color: #667;
      font-size: 0.95rem;
    }
    pre {
      background: #f4f4f8;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 8px;
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
      background: #f0f0f6;
      padding: 2px 5px;
      border-radius: 4px;
    }
    pre code {
      background: transparent;
      padding: 0;
    }
    blockquote {
      border-left: 4px solid #69b3a2;
      padding-left: 1rem;
      margin-left: 0;
      color: #556;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    {{if .Tags}}<p class="meta">Tags: {{.Tags}}</p>{{end}}
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &NodePageHandler{
		service: svc,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.Typographer,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested node as an HTML page.
func (h *NodePageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	node, err := h.service.GetNode(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get node")
		return
	}

	htmlContent, err := h.renderMarkdown([]byte(node.Content))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "node_id", node.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render node")
		return
	}

	pageData := nodePageData{
		Title:   node.Title,
		Tags:    strings.Join(node.Tags, ", "),
		Content: template.HTML(htmlContent),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute node template", "node_id", node.ID, "error", err)
	}
}

func (h *NodePageHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
