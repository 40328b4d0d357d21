// Package ieee renders citations in IEEE reference form.
package ieee

import (
	"fmt"
	"strings"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func init() {
	style.Register(&Style{})
}

// Style renders IEEE citations.
type Style struct{}

// Name returns the style identifier.
func (s *Style) Name() string { return "ieee" }

// Description returns the style description.
func (s *Style) Description() string { return "IEEE reference format" }

// Render formats the record.
func (s *Style) Render(rec *bib.Record, format style.OutputFormat) (string, error) {
	m := style.NewMarkup(format)
	var parts []string

	if authors := formatAuthors(rec.Author); authors != "" {
		parts = append(parts, m.Escape(authors))
	}

	if rec.Title != "" {
		parts = append(parts, fmt.Sprintf("%q", m.Escape(strings.TrimSuffix(strings.TrimSpace(rec.Title), "."))))
	}

	if rec.ContainerTitle != "" {
		parts = append(parts, m.Italic(rec.ContainerTitle))
		if rec.Volume != "" {
			parts = append(parts, "vol. "+m.Escape(rec.Volume))
		}
		if rec.Issue != "" {
			parts = append(parts, "no. "+m.Escape(rec.Issue))
		}
		if pages := rec.Pages(); pages != "" {
			parts = append(parts, "pp. "+m.Escape(pages))
		}
	} else if rec.Publisher != "" {
		parts = append(parts, m.Escape(rec.Publisher))
	}

	if d := rec.PrimaryDate(); !d.IsZero() {
		parts = append(parts, fmt.Sprintf("%d", d.Year))
	}

	if rec.DOI != "" {
		parts = append(parts, "doi: "+m.Escape(rec.DOI))
	}

	if len(parts) == 0 {
		return "", nil
	}
	return m.Entry(strings.Join(parts, ", ") + "."), nil
}

// formatAuthors renders "G. Family, G. Family, and G. Family", with
// seven or more authors collapsed to the first followed by "et al."
func formatAuthors(authors []bib.Person) string {
	if len(authors) == 0 {
		return ""
	}
	if len(authors) >= 7 {
		return formatAuthor(authors[0]) + " et al."
	}

	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, formatAuthor(a))
	}
	return style.JoinNames(names, "and")
}

func formatAuthor(p bib.Person) string {
	if p.Given == "" {
		return p.Family
	}
	return style.Initials(p.Given) + " " + p.Family
}
