package bibtex

import (
	"strings"
	"testing"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func TestRenderArticleEntry(t *testing.T) {
	rec := &bib.Record{
		Type: "article-journal",
		Author: []bib.Person{
			{Family: "Rivera", Given: "Alex"},
			{Family: "Lee", Given: "Jordan"},
		},
		Issued:         bib.Date{Year: 2020, Month: 6},
		Title:          "On test fixtures",
		ContainerTitle: "Journal X",
		Volume:         "12",
		Issue:          "3",
		PageFirst:      "100",
		PageLast:       "110",
	}

	got, err := (&Style{}).Render(rec, style.Text)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	checks := []string{
		"@article{rivera2020,",
		"  title = {On test fixtures},",
		"  author = {Rivera, Alex and Lee, Jordan},",
		"  year = {2020},",
		"  month = jun,",
		"  journal = {Journal X},",
		"  volume = {12},",
		"  number = {3},",
		"  pages = {100-110},",
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Fatalf("entry missing %q:\n%s", want, got)
		}
	}
}

func TestEntryTypeMapping(t *testing.T) {
	tests := []struct {
		workType string
		want     string
	}{
		{"article-journal", "article"},
		{"thesis", "phdthesis"},
		{"paper-conference", "inproceedings"},
		{"something-unheard-of", "misc"},
	}
	for _, tt := range tests {
		if got := entryType(tt.workType); got != tt.want {
			t.Fatalf("entryType(%q) = %q, want %q", tt.workType, got, tt.want)
		}
	}
}

func TestCitationKeyFallbacks(t *testing.T) {
	if got := citationKey(&bib.Record{}); got != "unknownnd" {
		t.Fatalf("citationKey(empty) = %q, want unknownnd", got)
	}

	rec := &bib.Record{
		Author: []bib.Person{{Family: "O'Brien-Smith"}},
		Issued: bib.Date{Year: 2021},
	}
	if got := citationKey(rec); got != "obriensmith2021" {
		t.Fatalf("citationKey = %q, want obriensmith2021", got)
	}
}

func TestHTMLOutputEscaped(t *testing.T) {
	rec := &bib.Record{Type: "book", Title: "Less <than>"}
	got, err := (&Style{}).Render(rec, style.HTML)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(got, "<pre>") || strings.Contains(got, "<than>") {
		t.Fatalf("HTML output not escaped: %q", got)
	}
}
