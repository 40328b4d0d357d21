package style

import (
	"errors"
	"testing"

	"github.com/meridian-libraries/disseminate/bib"
)

type fakeStyle struct {
	name string
	out  string
	err  error
}

func (f *fakeStyle) Name() string        { return f.name }
func (f *fakeStyle) Description() string { return "fake" }
func (f *fakeStyle) Render(*bib.Record, OutputFormat) (string, error) {
	return f.out, f.err
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeStyle{name: "zeta"})
	r.Register(&fakeStyle{name: "alpha"})
	r.Register(&fakeStyle{name: "mid"})

	got := r.List()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBibliographiesFailsOnUnknownStyle(t *testing.T) {
	rec := &bib.Record{Title: "T"}
	if _, err := Bibliographies(rec, []string{"no-such-style"}, Text); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestBibliographiesFailsWhole(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeStyle{name: "good", out: "ok"})
	r.Register(&fakeStyle{name: "bad", err: errors.New("boom")})

	old := DefaultRegistry
	DefaultRegistry = r
	defer func() { DefaultRegistry = old }()

	if _, err := Bibliographies(&bib.Record{}, []string{"good", "bad"}, Text); err == nil {
		t.Fatal("expected rendering failure to fail the whole call")
	}

	out, err := Bibliographies(&bib.Record{}, []string{"good"}, Text)
	if err != nil {
		t.Fatalf("Bibliographies failed: %v", err)
	}
	if len(out) != 1 || out[0].Formatted != "ok" {
		t.Fatalf("out = %v", out)
	}
}

func TestMarkup(t *testing.T) {
	text := NewMarkup(Text)
	if got := text.Italic("Journal & Co"); got != "Journal & Co" {
		t.Fatalf("text italic = %q", got)
	}

	h := NewMarkup(HTML)
	if got := h.Italic("Journal & Co"); got != "<i>Journal &amp; Co</i>" {
		t.Fatalf("html italic = %q", got)
	}
	if got := h.Entry("x"); got != `<div class="citation">x</div>` {
		t.Fatalf("html entry = %q", got)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		given string
		want  string
	}{
		{"Alex", "A."},
		{"Alex Quinn", "A. Q."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Initials(tt.given); got != tt.want {
			t.Fatalf("Initials(%q) = %q, want %q", tt.given, got, tt.want)
		}
	}
}

func TestJoinNames(t *testing.T) {
	if got := JoinNames([]string{"A"}, "and"); got != "A" {
		t.Fatalf("one name = %q", got)
	}
	if got := JoinNames([]string{"A", "B"}, "and"); got != "A and B" {
		t.Fatalf("two names = %q", got)
	}
	if got := JoinNames([]string{"A", "B", "C"}, "and"); got != "A, B, and C" {
		t.Fatalf("three names = %q", got)
	}
}
