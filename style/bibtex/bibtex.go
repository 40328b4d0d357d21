// Package bibtex renders a record as a BibTeX entry. It is a citation
// style in the loose sense: the "citation" is the entry text itself,
// which browsers then display verbatim (or as escaped HTML).
package bibtex

import (
	"fmt"
	"html"
	"strings"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func init() {
	style.Register(&Style{})
}

// Style renders BibTeX entries.
type Style struct{}

// Name returns the style identifier.
func (s *Style) Name() string { return "bibtex" }

// Description returns the style description.
func (s *Style) Description() string { return "BibTeX entry" }

// Render formats the record.
func (s *Style) Render(rec *bib.Record, format style.OutputFormat) (string, error) {
	entry := serialize(rec)
	if format == style.HTML {
		return "<pre>" + html.EscapeString(entry) + "</pre>", nil
	}
	return entry, nil
}

// entryTypes maps work types to BibTeX entry types.
var entryTypes = map[string]string{
	"article-journal":   "article",
	"article-magazine":  "article",
	"article-newspaper": "article",
	"book":              "book",
	"chapter":           "incollection",
	"paper-conference":  "inproceedings",
	"thesis":            "phdthesis",
	"report":            "techreport",
	"dataset":           "misc",
	"software":          "misc",
	"speech":            "misc",
	"patent":            "misc",
	"document":          "misc",
}

func entryType(workType string) string {
	if t, ok := entryTypes[workType]; ok {
		return t
	}
	return "misc"
}

func serialize(rec *bib.Record) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "@%s{%s,\n", entryType(rec.Type), citationKey(rec))

	if rec.Title != "" {
		fmt.Fprintf(&sb, "  title = {%s},\n", escape(rec.Title))
	}
	if len(rec.Author) > 0 {
		fmt.Fprintf(&sb, "  author = {%s},\n", formatPersons(rec.Author))
	}
	if len(rec.Editor) > 0 {
		fmt.Fprintf(&sb, "  editor = {%s},\n", formatPersons(rec.Editor))
	}
	if d := rec.PrimaryDate(); !d.IsZero() {
		fmt.Fprintf(&sb, "  year = {%d},\n", d.Year)
		if d.Month > 0 {
			fmt.Fprintf(&sb, "  month = %s,\n", monthAbbrev(d.Month))
		}
	}
	if rec.ContainerTitle != "" {
		if entryType(rec.Type) == "article" {
			fmt.Fprintf(&sb, "  journal = {%s},\n", escape(rec.ContainerTitle))
		} else {
			fmt.Fprintf(&sb, "  booktitle = {%s},\n", escape(rec.ContainerTitle))
		}
	}
	if rec.Publisher != "" {
		fmt.Fprintf(&sb, "  publisher = {%s},\n", escape(rec.Publisher))
	}
	if rec.PublisherPlace != "" {
		fmt.Fprintf(&sb, "  address = {%s},\n", escape(rec.PublisherPlace))
	}
	if rec.Volume != "" {
		fmt.Fprintf(&sb, "  volume = {%s},\n", rec.Volume)
	}
	if rec.Issue != "" {
		fmt.Fprintf(&sb, "  number = {%s},\n", rec.Issue)
	}
	if pages := rec.Pages(); pages != "" {
		fmt.Fprintf(&sb, "  pages = {%s},\n", pages)
	}
	if rec.CollectionTitle != "" {
		fmt.Fprintf(&sb, "  series = {%s},\n", escape(rec.CollectionTitle))
	}
	if rec.Edition != "" {
		fmt.Fprintf(&sb, "  edition = {%s},\n", escape(rec.Edition))
	}
	if rec.DOI != "" {
		fmt.Fprintf(&sb, "  doi = {%s},\n", rec.DOI)
	}
	if rec.ISBN != "" {
		fmt.Fprintf(&sb, "  isbn = {%s},\n", rec.ISBN)
	}
	if rec.ISSN != "" {
		fmt.Fprintf(&sb, "  issn = {%s},\n", rec.ISSN)
	}
	if rec.URL != "" {
		fmt.Fprintf(&sb, "  url = {%s},\n", rec.URL)
	}
	if rec.Keyword != "" {
		fmt.Fprintf(&sb, "  keywords = {%s},\n", escape(rec.Keyword))
	}
	if rec.Abstract != "" {
		fmt.Fprintf(&sb, "  abstract = {%s},\n", escape(rec.Abstract))
	}
	if len(rec.Notes) > 0 {
		fmt.Fprintf(&sb, "  note = {%s},\n", escape(strings.Join(rec.Notes, "; ")))
	}
	if rec.Language != "" {
		fmt.Fprintf(&sb, "  language = {%s},\n", rec.Language)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// citationKey derives a key from the first author's family name and the
// primary year, e.g. "rivera2021".
func citationKey(rec *bib.Record) string {
	author := "unknown"
	if len(rec.Author) > 0 && rec.Author[0].Family != "" {
		author = strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				return r
			}
			return -1
		}, rec.Author[0].Family)
		if author == "" {
			author = "unknown"
		}
	}

	year := "nd"
	if d := rec.PrimaryDate(); !d.IsZero() {
		year = fmt.Sprintf("%d", d.Year)
	}

	return strings.ToLower(author) + year
}

func formatPersons(persons []bib.Person) string {
	names := make([]string, 0, len(persons))
	for _, p := range persons {
		names = append(names, escape(p.String()))
	}
	return strings.Join(names, " and ")
}

func monthAbbrev(month int) string {
	months := []string{"", "jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
	if month >= 1 && month <= 12 {
		return months[month]
	}
	return ""
}

// escape escapes BibTeX special characters.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "\\&")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "$", "\\$")
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
