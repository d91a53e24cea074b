package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded pages. Each page is addressed by its file
// name, e.g. "dashboard.html".
func Templates() *template.Template {
	return template.Must(
		template.New("").
			Funcs(template.FuncMap{"join": strings.Join}).
			ParseFS(files, "templates/*.html"),
	)
}
