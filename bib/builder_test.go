package bib

import (
	"testing"

	"github.com/meridian-libraries/disseminate/bibmap"
	"github.com/meridian-libraries/disseminate/metadata"
)

func testProfile() *bibmap.Profile {
	return &bibmap.Profile{
		Name: "test",
		Fields: map[string]string{
			"dc.title":                 "title",
			"dc.contributor.author":    "author",
			"dc.date.issued":           "issued",
			"dc.type":                  "type",
			"dc.identifier.citation":   "container-title",
			"dc.identifier.volume":     "volume",
			"dc.identifier.issue":      "issue",
			"dc.identifier.startpage":  "page-first",
			"dc.identifier.endpage":    "page-last",
			"dc.description.sponsors":  "nonsense-target",
		},
		Types: map[string]string{
			"ARTICLE": "article-journal",
		},
		DefaultType: "document",
	}
}

func TestBuildRecordJournalFields(t *testing.T) {
	item := &metadata.Item{
		Values: []metadata.Tuple{
			{Schema: "dc", Element: "title", Value: "On Test Fixtures"},
			{Schema: "dc", Element: "contributor", Qualifier: "author", Value: "Rivera, Alex"},
			{Schema: "dc", Element: "contributor", Qualifier: "author", Value: "Lee, Jordan"},
			{Schema: "dc", Element: "date", Qualifier: "issued", Value: "2020-06-01"},
			{Schema: "dc", Element: "type", Value: "Article"},
			{Schema: "dc", Element: "identifier", Qualifier: "citation", Value: "Journal X"},
			{Schema: "dc", Element: "identifier", Qualifier: "volume", Value: "12"},
			{Schema: "dc", Element: "identifier", Qualifier: "issue", Value: "3"},
			{Schema: "dc", Element: "identifier", Qualifier: "startpage", Value: "100"},
			{Schema: "dc", Element: "identifier", Qualifier: "endpage", Value: "110"},
		},
	}

	rec := BuildRecord(item, testProfile())

	if rec.Title != "On Test Fixtures" {
		t.Fatalf("Title = %q", rec.Title)
	}
	if rec.Type != "article-journal" {
		t.Fatalf("Type = %q, want article-journal", rec.Type)
	}
	if len(rec.Author) != 2 {
		t.Fatalf("author count = %d, want 2", len(rec.Author))
	}
	if rec.Author[0].Family != "Rivera" || rec.Author[1].Family != "Lee" {
		t.Fatalf("authors out of encounter order: %+v", rec.Author)
	}
	if rec.Issued != (Date{Year: 2020, Month: 6, Day: 1}) {
		t.Fatalf("Issued = %+v", rec.Issued)
	}
	if rec.ContainerTitle != "Journal X" || rec.Volume != "12" || rec.Issue != "3" {
		t.Fatalf("journal fields = %q %q %q", rec.ContainerTitle, rec.Volume, rec.Issue)
	}
	if got := rec.Pages(); got != "100-110" {
		t.Fatalf("Pages() = %q, want 100-110", got)
	}
}

func TestBuildRecordLenientFallbacks(t *testing.T) {
	item := &metadata.Item{
		Values: []metadata.Tuple{
			// Not in the profile at all.
			{Schema: "local", Element: "embargo", Value: "2025"},
			// Mapped to a target the vocabulary does not know.
			{Schema: "dc", Element: "description", Qualifier: "sponsors", Value: "Acme Grant 42"},
			// Type with no mapping.
			{Schema: "dc", Element: "type", Value: "Interpretive Dance"},
			// Unparseable date and blank name are skipped.
			{Schema: "dc", Element: "date", Qualifier: "issued", Value: "undated"},
			{Schema: "dc", Element: "contributor", Qualifier: "author", Value: "  "},
		},
	}

	rec := BuildRecord(item, testProfile())

	if rec.Type != "document" {
		t.Fatalf("Type = %q, want fallback document", rec.Type)
	}
	if len(rec.Notes) != 2 {
		t.Fatalf("notes = %v, want the unmapped and unknown-target values", rec.Notes)
	}
	if rec.Notes[0] != "2025" || rec.Notes[1] != "Acme Grant 42" {
		t.Fatalf("notes = %v", rec.Notes)
	}
	if !rec.Issued.IsZero() {
		t.Fatalf("Issued = %+v, want zero", rec.Issued)
	}
	if len(rec.Author) != 0 {
		t.Fatalf("author count = %d, want 0", len(rec.Author))
	}
}

func TestBuildRecordDefaultsTypeWhenAbsent(t *testing.T) {
	rec := BuildRecord(&metadata.Item{}, testProfile())
	if rec.Type != "document" {
		t.Fatalf("Type = %q, want document", rec.Type)
	}
}
