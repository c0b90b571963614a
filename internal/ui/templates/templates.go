// Package templates renders the server-side HTML pages from embedded
// html/template files. Each page file pairs with the shared layout.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed *.html
var files embed.FS

// Flash is a one-shot message shown at the top of the next page.
type Flash struct {
	Level   string // success, danger, warning, info
	Message string
}

// Page is the data passed to every page template.
type Page struct {
	Title   string
	Active  string // nav item to highlight
	HasData bool
	Source  string
	Flashes []Flash
	Data    any
}

var funcs = template.FuncMap{
	"fmtFloat": func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"fmtMB":    func(b int64) string { return fmt.Sprintf("%.2f MB", float64(b)/(1<<20)) },
}

var pages = map[string]*template.Template{}

func init() {
	names := []string{"home.html", "dashboard.html", "cleaning.html", "transform.html"}
	for _, name := range names {
		pages[name] = template.Must(
			template.New("layout.html").Funcs(funcs).ParseFS(files, "layout.html", name),
		)
	}
}

// Render writes the named page wrapped in the layout.
func Render(w http.ResponseWriter, name string, page Page) error {
	t, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, "layout.html", page)
}
