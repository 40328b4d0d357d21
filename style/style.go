// Package style defines the pluggable citation style engine. Styles
// register themselves in a registry, mirroring how output formats are
// discovered, and render a bibliographic record into a formatted
// citation string.
package style

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/meridian-libraries/disseminate/bib"
)

// OutputFormat selects the markup of a rendered citation.
type OutputFormat string

const (
	Text OutputFormat = "text"
	HTML OutputFormat = "html"
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(name)) {
	case Text:
		return Text, nil
	case HTML:
		return HTML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or html)", name)
	}
}

// Style renders a record into one formatted citation.
type Style interface {
	// Name returns the style identifier (e.g. "apa", "ieee")
	Name() string

	// Description returns a human-readable style description
	Description() string

	// Render formats the record. A style that cannot produce output
	// (rather than producing a sparse citation) returns an error.
	Render(rec *bib.Record, format OutputFormat) (string, error)
}

// Registry holds registered styles.
type Registry struct {
	styles map[string]Style
}

// DefaultRegistry is the global style registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new style registry.
func NewRegistry() *Registry {
	return &Registry{styles: make(map[string]Style)}
}

// Register adds a style to the registry.
func (r *Registry) Register(s Style) {
	r.styles[s.Name()] = s
}

// Get retrieves a style by name.
func (r *Registry) Get(name string) (Style, bool) {
	s, ok := r.styles[strings.ToLower(name)]
	return s, ok
}

// List returns all registered style names, sorted alphabetically.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a style to the default registry.
func Register(s Style) {
	DefaultRegistry.Register(s)
}

// Get retrieves a style from the default registry.
func Get(name string) (Style, bool) {
	return DefaultRegistry.Get(name)
}

// Styles returns the supported style names, sorted alphabetically.
func Styles() []string {
	return DefaultRegistry.List()
}

// Bibliography pairs a style name with its formatted citation.
type Bibliography struct {
	Style     string
	Formatted string
}

// Bibliographies renders one citation per requested style. An unknown
// style or a style rendering failure fails the whole call; partial
// bibliographies are never returned.
func Bibliographies(rec *bib.Record, styleNames []string, format OutputFormat) ([]Bibliography, error) {
	out := make([]Bibliography, 0, len(styleNames))
	for _, name := range styleNames {
		s, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown citation style %q", name)
		}
		formatted, err := s.Render(rec, format)
		if err != nil {
			return nil, fmt.Errorf("rendering style %s: %w", name, err)
		}
		out = append(out, Bibliography{Style: name, Formatted: formatted})
	}
	return out, nil
}

// Markup abstracts the text/HTML differences styles care about.
type Markup struct {
	format OutputFormat
}

// NewMarkup returns markup helpers for an output format.
func NewMarkup(format OutputFormat) Markup {
	return Markup{format: format}
}

// Escape makes a raw value safe for the output format.
func (m Markup) Escape(s string) string {
	if m.format == HTML {
		return html.EscapeString(s)
	}
	return s
}

// Italic emphasizes a span (container titles, volume names).
func (m Markup) Italic(s string) string {
	if m.format == HTML {
		return "<i>" + html.EscapeString(s) + "</i>"
	}
	return s
}

// Entry wraps a finished citation for the output format.
func (m Markup) Entry(s string) string {
	if m.format == HTML {
		return `<div class="citation">` + s + "</div>"
	}
	return s
}

// Initials renders given names as initials ("Jane Q" -> "J. Q.").
func Initials(given string) string {
	parts := strings.Fields(given)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		r := []rune(p)
		if len(r) == 0 {
			continue
		}
		out = append(out, string(r[0])+".")
	}
	return strings.Join(out, " ")
}

// JoinNames joins rendered names with commas and a final conjunction.
func JoinNames(names []string, conjunction string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " " + conjunction + " " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", " + conjunction + " " + names[len(names)-1]
	}
}
