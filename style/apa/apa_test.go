package apa

import (
	"fmt"
	"strings"
	"testing"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func TestRenderJournalArticle(t *testing.T) {
	rec := &bib.Record{
		Author: []bib.Person{
			{Family: "Rivera", Given: "Alex"},
			{Family: "Lee", Given: "Jordan Q"},
		},
		Issued:         bib.Date{Year: 2020},
		Title:          "On test fixtures",
		ContainerTitle: "Journal X",
		Volume:         "12",
		Issue:          "3",
		PageFirst:      "100",
		PageLast:       "110",
		DOI:            "10.1000/xyz",
	}

	got, err := (&Style{}).Render(rec, style.Text)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "Rivera, A., & Lee, J. Q. (2020). On test fixtures. Journal X, 12(3), 100-110. https://doi.org/10.1000/xyz"
	if got != want {
		t.Fatalf("Render = %q\nwant       %q", got, want)
	}
}

func TestRenderNoDate(t *testing.T) {
	rec := &bib.Record{Title: "Untitled report"}
	got, err := (&Style{}).Render(rec, style.Text)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(got, "(n.d.).") {
		t.Fatalf("Render = %q, want (n.d.) prefix", got)
	}
}

func TestAuthorCutoff(t *testing.T) {
	var authors []bib.Person
	for i := 0; i < 25; i++ {
		authors = append(authors, bib.Person{Family: fmt.Sprintf("Fam%02d", i), Given: "A"})
	}

	got := formatAuthors(authors)
	if !strings.Contains(got, ", ... ") {
		t.Fatalf("formatAuthors = %q, want ellipsis for over-long lists", got)
	}
	if !strings.Contains(got, "Fam24") {
		t.Fatalf("formatAuthors = %q, want final author kept", got)
	}
	if strings.Contains(got, "Fam20") {
		t.Fatalf("formatAuthors = %q, middle authors should be dropped", got)
	}
}
