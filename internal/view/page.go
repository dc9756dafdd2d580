package view

import (
	"embed"
	"html/template"
	"io"
	"net/url"
)

const PageTitle = "Proxy Dashboard"

//go:embed templates/*.html
var templates embed.FS

var page = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{"pathescape": url.PathEscape}).
		ParseFS(templates, "templates/dashboard.html"),
)

type pageData struct {
	Title string
	Visit string
	Rows  []Row
}

// Render writes the dashboard page for the current snapshot.
func (v *View) Render(w io.Writer, r Renderer) error {
	return page.Execute(w, pageData{
		Title: PageTitle,
		Visit: v.token,
		Rows:  r.Rows(v.Records()),
	})
}
