package cover

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/go-pdf/fpdf"

	"github.com/meridian-libraries/disseminate/config"
	"github.com/meridian-libraries/disseminate/metadata"
)

// TemplateRenderer substitutes item parameters into an HTML cover
// template and converts the result to a PDF page. The template is
// parsed once at construction; a missing or broken template is a hard
// error, never a silent fallback to the drawing strategy.
type TemplateRenderer struct {
	cfg          *config.Config
	tmpl         *template.Template
	contributors []Contributor
}

// NewTemplateRenderer parses the configured cover template.
func NewTemplateRenderer(cfg *config.Config, contributors ...Contributor) (*TemplateRenderer, error) {
	tmpl, err := template.New(filepath.Base(cfg.TemplatePath)).Funcs(templateFuncs()).ParseFiles(cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("loading cover template %s: %w", cfg.TemplatePath, err)
	}
	return &TemplateRenderer{cfg: cfg, tmpl: tmpl, contributors: contributors}, nil
}

// templateFuncs exposes parameter lookups to templates. "field"
// resolves a single placeholder or a "a|b" fallback list against the
// parameter set passed as the template data.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"field": func(p Params, name string) string {
			return p.Lookup(name)
		},
	}
}

// Render substitutes the item's parameters into the template and
// converts the resulting HTML to a one-page PDF.
func (r *TemplateRenderer) Render(item *metadata.Item, crumb Breadcrumb) ([]byte, error) {
	params := BuildParams(item, crumb, r.cfg, r.contributors...)

	var html bytes.Buffer
	if err := r.tmpl.Execute(&html, params); err != nil {
		return nil, fmt.Errorf("executing cover template: %w", err)
	}

	pdf := fpdf.New("P", "pt", pageSize(r.cfg.PageFormat), "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetMargins(drawMarginX, drawTopY, drawMarginX)
	pdf.SetFont("Helvetica", "", fontDefault)

	writer := pdf.HTMLBasicNew()
	writer.Write(fontDefault+4, html.String())

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("converting cover template to PDF: %w", err)
	}
	return out.Bytes(), nil
}
