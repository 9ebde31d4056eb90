// Package view renders the promenade page: a hero, the qualifications
// timeline, the philosophy grid and the contact footer, in that order.
//
// A [Renderer] owns a validated copy of the resume and the motion preset
// table. It is immutable once built and safe for concurrent use. The same
// parsed template set is handed to gin through [Renderer.Template] so the
// HTTP handler and [Renderer.Render] produce identical markup.
package view

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/biancatraining/promenade/internal/icons"
	"github.com/biancatraining/promenade/internal/motion"
	"github.com/biancatraining/promenade/internal/resume"
)

const (
	// TemplateName is the entry template of the page.
	TemplateName = "index.html"

	// QualificationsAnchor is the id of the timeline section.
	QualificationsAnchor = "path"

	// AssetPrefix is where the embedded static assets are mounted.
	AssetPrefix = "/static"
)

// Renderer builds and renders the page.
type Renderer struct {
	resume  resume.Resume
	presets motion.Table
	clock   func() time.Time
	tmpl    *template.Template
	css     template.CSS
}

// Option customizes a [Renderer].
type Option func(*Renderer)

// WithClock replaces time.Now, which drives the copyright year.
func WithClock(clock func() time.Time) Option {
	return func(r *Renderer) { r.clock = clock }
}

// WithPresets replaces the default motion preset table.
func WithPresets(t motion.Table) Option {
	return func(r *Renderer) { r.presets = t }
}

// New validates the resume and prepares the templates.
func New(res resume.Resume, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		resume:  res.Clone(),
		presets: motion.Defaults,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := errors.Join(r.resume.Validate(), validateIcons(r.resume)); err != nil {
		return nil, err
	}

	if err := r.presets.Require(
		motion.FadeUp, motion.Bloom, motion.SlideLeft, motion.SlideRight,
		motion.StaggerContainer, motion.HeroFade, motion.HeroRise, motion.Bob,
	); err != nil {
		return nil, err
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	r.css = template.CSS(r.presets.Stylesheet())

	return r, nil
}

func validateIcons(res resume.Resume) error {
	var errs []error
	for i, p := range res.Philosophies {
		if p.Icon != "" && !icons.Has(p.Icon) {
			errs = append(errs, fmt.Errorf("%w: philosophy %d: unknown icon %q (known: %s)",
				resume.ErrInvalidResume, i, p.Icon, strings.Join(icons.Names(), ", ")))
		}
	}
	return errors.Join(errs...)
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"icon": icons.SVG}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if tmpl.Lookup(TemplateName) == nil {
		return nil, fmt.Errorf("template %s not found", TemplateName)
	}
	return tmpl, nil
}

// Page builds the page model for the current clock reading.
func (r *Renderer) Page() Page {
	return r.build(r.clock())
}

// Render writes the full page to w.
func (r *Renderer) Render(w io.Writer) error {
	if err := r.tmpl.ExecuteTemplate(w, TemplateName, r.Page()); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Template returns the parsed template set, entry point [TemplateName].
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Resume returns a copy of the rendered record.
func (r *Renderer) Resume() resume.Resume {
	return r.resume.Clone()
}
