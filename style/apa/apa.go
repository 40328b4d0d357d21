// Package apa renders citations in APA (7th edition) author-date form.
package apa

import (
	"fmt"
	"strings"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func init() {
	style.Register(&Style{})
}

// Style renders APA author-date citations.
type Style struct{}

// Name returns the style identifier.
func (s *Style) Name() string { return "apa" }

// Description returns the style description.
func (s *Style) Description() string { return "APA 7th edition author-date" }

// Render formats the record.
func (s *Style) Render(rec *bib.Record, format style.OutputFormat) (string, error) {
	m := style.NewMarkup(format)
	var sb strings.Builder

	if authors := formatAuthors(rec.Author); authors != "" {
		sb.WriteString(m.Escape(authors))
		sb.WriteString(" ")
	}

	if d := rec.PrimaryDate(); !d.IsZero() {
		fmt.Fprintf(&sb, "(%d). ", d.Year)
	} else {
		sb.WriteString("(n.d.). ")
	}

	if rec.Title != "" {
		sb.WriteString(m.Escape(ensurePeriod(rec.Title)))
		sb.WriteString(" ")
	}

	if rec.ContainerTitle != "" {
		sb.WriteString(m.Italic(rec.ContainerTitle))
		if rec.Volume != "" {
			sb.WriteString(", ")
			sb.WriteString(m.Italic(rec.Volume))
			if rec.Issue != "" {
				fmt.Fprintf(&sb, "(%s)", m.Escape(rec.Issue))
			}
		}
		if pages := rec.Pages(); pages != "" {
			sb.WriteString(", ")
			sb.WriteString(m.Escape(pages))
		}
		sb.WriteString(". ")
	} else if rec.Publisher != "" {
		sb.WriteString(m.Escape(ensurePeriod(rec.Publisher)))
		sb.WriteString(" ")
	}

	switch {
	case rec.DOI != "":
		sb.WriteString(m.Escape("https://doi.org/" + rec.DOI))
	case rec.URL != "":
		sb.WriteString(m.Escape(rec.URL))
	}

	return m.Entry(strings.TrimSpace(sb.String())), nil
}

// formatAuthors renders "Family, G. G., & Family, G." with the APA
// 21-author cutoff collapsed to an ellipsis plus the final author.
func formatAuthors(authors []bib.Person) string {
	if len(authors) == 0 {
		return ""
	}

	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, formatAuthor(a))
	}

	const cutoff = 21
	if len(names) > cutoff {
		head := names[:cutoff-2]
		return strings.Join(head, ", ") + ", ... " + names[len(names)-1] + "."
	}

	switch len(names) {
	case 1:
		return names[0] + "."
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1] + "."
	}
}

func formatAuthor(p bib.Person) string {
	if p.Given == "" {
		return p.Family
	}
	return p.Family + ", " + style.Initials(p.Given)
}

func ensurePeriod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") || strings.HasSuffix(s, "?") || strings.HasSuffix(s, "!") {
		return s
	}
	return s + "."
}
