package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

const siteTitle = "Gentlemen Club"

type pageData struct {
	Title        string
	ThankYouPath string
}

// Pages renders the server-side HTML pages.
type Pages struct {
	tmpl *template.Template
}

// MustLoadPages parses the embedded templates and panics if they are broken.
func MustLoadPages() *Pages {
	return &Pages{tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

// Landing godoc
//
//	@Summary		Landing Page
//	@Description	Registration form. Submits JSON to POST / and redirects to /thank-you on success.
//	@Tags			Pages
//	@Produce		html
//	@Success		200	{string}	string	"HTML page"
//	@Router			/ [get].
func (p *Pages) Landing() http.HandlerFunc {
	return p.render("index.html")
}

// ThankYou godoc
//
//	@Summary		Thank You Page
//	@Description	Static confirmation shown after a successful registration.
//	@Tags			Pages
//	@Produce		html
//	@Success		200	{string}	string	"HTML page"
//	@Router			/thank-you [get].
func (p *Pages) ThankYou() http.HandlerFunc {
	return p.render("thank_you.html")
}

func (p *Pages) render(name string) http.HandlerFunc {
	data := pageData{Title: siteTitle, ThankYouPath: "/thank-you"}

	return func(w http.ResponseWriter, r *http.Request) {
		// Render into a buffer so a template error can still become a 500.
		var buf bytes.Buffer
		if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			slogx.FromContext(r.Context()).Error("failed to render page",
				slog.String("template", name),
				slog.Any("error", err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		httpx.WriteHTML(w, http.StatusOK, buf.Bytes())
	}
}
