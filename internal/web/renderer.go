package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{"search", "product", "cart", "error"}

// Renderer executes the embedded page templates. Pages are parsed once at
// startup; execution goes through a buffer so a template failure can still
// produce a clean 500 instead of a half-written page.
type Renderer struct {
	pages  map[string]*template.Template
	policy *bluemonday.Policy
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"imageURL": imageURL,
	}

	pages := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s page template: %w", name, err)
		}

		pages[name] = tmpl
	}

	return &Renderer{
		pages:  pages,
		policy: bluemonday.UGCPolicy(),
	}, nil
}

func (r *Renderer) HTML(w http.ResponseWriter, statusCode int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		slog.Error("unknown page template", slog.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		slog.Error("failed to render page", slog.String("page", page), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}

// TrustHTML sanitizes backend-supplied rich text before it is rendered
// unescaped. The backend is trusted, the sanitizer guards against a
// compromised catalog entry reaching the browser.
func (r *Renderer) TrustHTML(s string) template.HTML {
	return template.HTML(r.policy.Sanitize(s))
}

// imageURL routes a remote image through the local proxy endpoint.
func imageURL(src string) string {
	if src == "" {
		return ""
	}

	return "/api/image?src=" + url.QueryEscape(src)
}
