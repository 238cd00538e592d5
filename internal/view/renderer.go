package view

import (
	"embed"
	"html/template"
	"io"
	"slices"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded HTML templates.
// Templates are addressed by file base name, e.g. "venues.html".
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every embedded template once at startup.
func NewRenderer() (*Renderer, error) {
	t := template.New("").Funcs(template.FuncMap{
		"datetime": FormatDateTime,
		"has": func(list []string, s string) bool {
			return slices.Contains(list, s)
		},
		// checked dereferences the tri-state checkbox fields of the
		// form types; nil renders unchecked.
		"checked": func(b *bool) bool {
			return b != nil && *b
		},
	})
	t, err := t.ParseFS(templateFS,
		"templates/partials/*.html",
		"templates/pages/*.html",
		"templates/forms/*.html",
		"templates/errors/*.html",
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
