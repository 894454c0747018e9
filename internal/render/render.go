package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/joseph-ayodele/homepage/internal/entity"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer fills the home and about templates.
type Renderer struct {
	home  *template.Template
	about *template.Template
}

// New parses the embedded templates once.
func New() (*Renderer, error) {
	home, err := template.ParseFS(templateFS, "templates/layout.gohtml", "templates/home.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse home template: %w", err)
	}
	about, err := template.ParseFS(templateFS, "templates/layout.gohtml", "templates/about.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse about template: %w", err)
	}
	return &Renderer{home: home, about: about}, nil
}

type homeData struct {
	Profile entity.Profile
	Entries []*entity.Entry
}

type aboutData struct {
	Profile entity.Profile
}

// Home renders the profile page with the guestbook entries.
func (r *Renderer) Home(w io.Writer, profile entity.Profile, entries []*entity.Entry) error {
	return r.home.ExecuteTemplate(w, "home.gohtml", homeData{Profile: profile, Entries: entries})
}

// About renders the profile only.
func (r *Renderer) About(w io.Writer, profile entity.Profile) error {
	return r.about.ExecuteTemplate(w, "about.gohtml", aboutData{Profile: profile})
}
