// Package cover renders the one-page PDF cover document that gets
// stitched onto a disseminated file. Two interchangeable strategies
// implement the same contract: a programmatic drawing renderer and an
// HTML template renderer, selected by configuration.
package cover

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/meridian-libraries/disseminate/config"
	"github.com/meridian-libraries/disseminate/metadata"
)

// Breadcrumb carries the names of the item's owning community and
// collection. A missing community is represented by a single space so
// layouts keep their shape.
type Breadcrumb struct {
	Community  string
	Collection string
}

// Renderer produces a one-page PDF cover document for an item. A
// failure anywhere (template lookup, layout, PDF generation) fails the
// whole operation; no partial output is ever returned.
type Renderer interface {
	Render(item *metadata.Item, crumb Breadcrumb) ([]byte, error)
}

// New selects the renderer strategy named by the configuration.
func New(cfg *config.Config) (Renderer, error) {
	switch cfg.Renderer {
	case config.RendererDraw:
		return NewDrawRenderer(cfg), nil
	case config.RendererTemplate:
		return NewTemplateRenderer(cfg, DefaultContributors()...)
	default:
		return nil, fmt.Errorf("unknown cover renderer %q", cfg.Renderer)
	}
}

// Params maps template placeholder names to string values.
type Params map[string]string

// Contributor hooks add or override parameters after the metadata
// flattening pass (computed titles, truncated author lists).
type Contributor func(item *metadata.Item, crumb Breadcrumb, cfg *config.Config, p Params)

// BuildParams flattens an item's place-zero metadata values into
// template parameters, keyed by composite field name, then applies the
// contributor hooks. Unmapped/absent fields are simply not present
// (strict dropping; the citation builder's lenient note folding does
// not apply here).
func BuildParams(item *metadata.Item, crumb Breadcrumb, cfg *config.Config, contributors ...Contributor) Params {
	p := make(Params)

	for _, field := range item.Fields() {
		value := item.First(field)
		if strings.TrimSpace(value) == "" {
			continue
		}
		if cfg.IsHTMLField(field) {
			value = StripMarkup(value)
		}
		p[field] = value
	}

	p["community"] = crumb.Community
	p["collection"] = crumb.Collection

	for _, c := range contributors {
		c(item, crumb, cfg, p)
	}
	return p
}

// Lookup resolves a placeholder name. Names may be a "a|b|c" fallback
// list; the first name with a non-empty value wins.
func (p Params) Lookup(name string) string {
	for _, part := range strings.Split(name, "|") {
		if v, ok := p[strings.TrimSpace(part)]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// DefaultContributors returns the standard computed parameters.
func DefaultContributors() []Contributor {
	return []Contributor{TitleWithSubtitle, AuthorList}
}

// TitleWithSubtitle overrides the title parameter with a "title:
// subtitle" concatenation when an alternative title is present.
func TitleWithSubtitle(item *metadata.Item, _ Breadcrumb, _ *config.Config, p Params) {
	title := item.First("dc.title")
	subtitle := item.First("dc.title.alternative")
	if title == "" || subtitle == "" {
		return
	}
	p["dc.title"] = title + ": " + subtitle
}

// AuthorList adds an "authors" parameter: all author values joined
// with "; ", truncated to the configured limit with the configured
// ellipsis marker.
func AuthorList(item *metadata.Item, _ Breadcrumb, cfg *config.Config, p Params) {
	var names []string
	for _, field := range []string{"dc.contributor.author", "dc.creator"} {
		for _, t := range item.ByField(field) {
			if strings.TrimSpace(t.Value) != "" {
				names = append(names, t.Value)
			}
		}
		if len(names) > 0 {
			break
		}
	}
	if len(names) == 0 {
		return
	}

	truncated := false
	if cfg.MaxAuthors > 0 && len(names) > cfg.MaxAuthors {
		names = names[:cfg.MaxAuthors]
		truncated = true
	}

	joined := strings.Join(names, "; ")
	if truncated {
		joined += " " + cfg.AuthorEllipsis
	}
	p["authors"] = joined
}

var markupTagRegex = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes HTML tags from a metadata value and unescapes
// entities, for fields configured as HTML-bearing.
func StripMarkup(s string) string {
	s = markupTagRegex.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}
