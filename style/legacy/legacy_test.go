package legacy

import (
	"testing"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func TestRenderJournalCitation(t *testing.T) {
	rec := &bib.Record{
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
	if got != "Journal X, 12 (3): 100-110" {
		t.Fatalf("Render = %q, want %q", got, "Journal X, 12 (3): 100-110")
	}
}

func TestRenderOmitsMissingParts(t *testing.T) {
	tests := []struct {
		name string
		rec  bib.Record
		want string
	}{
		{"journal only", bib.Record{ContainerTitle: "Journal X"}, "Journal X"},
		{"no issue", bib.Record{ContainerTitle: "Journal X", Volume: "12", PageFirst: "5"}, "Journal X, 12: 5"},
		{"empty record", bib.Record{Title: "Unrelated"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&Style{}).Render(&tt.rec, style.Text)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}
