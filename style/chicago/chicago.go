// Package chicago renders citations in Chicago author-date form.
package chicago

import (
	"fmt"
	"strings"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func init() {
	style.Register(&Style{})
}

// Style renders Chicago author-date citations.
type Style struct{}

// Name returns the style identifier.
func (s *Style) Name() string { return "chicago" }

// Description returns the style description.
func (s *Style) Description() string { return "Chicago Manual of Style author-date" }

// Render formats the record.
func (s *Style) Render(rec *bib.Record, format style.OutputFormat) (string, error) {
	m := style.NewMarkup(format)
	var sb strings.Builder

	if authors := formatAuthors(rec.Author); authors != "" {
		sb.WriteString(m.Escape(authors))
		sb.WriteString(". ")
	}

	if d := rec.PrimaryDate(); !d.IsZero() {
		fmt.Fprintf(&sb, "%d. ", d.Year)
	} else {
		sb.WriteString("n.d. ")
	}

	if rec.Title != "" {
		fmt.Fprintf(&sb, "%q ", m.Escape(strings.TrimSuffix(strings.TrimSpace(rec.Title), ".")+"."))
	}

	if rec.ContainerTitle != "" {
		sb.WriteString(m.Italic(rec.ContainerTitle))
		if rec.Volume != "" {
			sb.WriteString(" ")
			sb.WriteString(m.Escape(rec.Volume))
		}
		if rec.Issue != "" {
			fmt.Fprintf(&sb, " (%s)", m.Escape(rec.Issue))
		}
		if pages := rec.Pages(); pages != "" {
			fmt.Fprintf(&sb, ": %s", m.Escape(pages))
		}
		sb.WriteString(". ")
	} else if rec.Publisher != "" {
		if rec.PublisherPlace != "" {
			fmt.Fprintf(&sb, "%s: ", m.Escape(rec.PublisherPlace))
		}
		sb.WriteString(m.Escape(rec.Publisher))
		sb.WriteString(". ")
	}

	if rec.DOI != "" {
		sb.WriteString(m.Escape("https://doi.org/" + rec.DOI + "."))
	}

	return m.Entry(strings.TrimSpace(sb.String())), nil
}

// formatAuthors renders the first author inverted and the rest in
// direct order: "Family, Given, and Given Family".
func formatAuthors(authors []bib.Person) string {
	if len(authors) == 0 {
		return ""
	}

	names := make([]string, 0, len(authors))
	for i, a := range authors {
		if i == 0 {
			names = append(names, a.String())
			continue
		}
		if a.Given == "" {
			names = append(names, a.Family)
		} else {
			names = append(names, a.Given+" "+a.Family)
		}
	}
	return style.JoinNames(names, "and")
}
