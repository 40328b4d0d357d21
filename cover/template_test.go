package cover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meridian-libraries/disseminate/config"
)

const coverTemplate = `<center><b>{{field . "dc.title"}}</b></center>
<br>{{field . "authors"}}
<br>{{field . "dc.identifier.citation|dc.relation.ispartof"}}
<br>{{field . "community"}} / {{field . "collection"}}
`

func templateConfig(t *testing.T, tmpl string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cover.html")
	if err := os.WriteFile(path, []byte(tmpl), 0o644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	cfg := config.Default()
	cfg.Renderer = config.RendererTemplate
	cfg.TemplatePath = path
	return cfg
}

func TestTemplateRendererProducesPDF(t *testing.T) {
	cfg := templateConfig(t, coverTemplate)

	r, err := NewTemplateRenderer(cfg, DefaultContributors()...)
	if err != nil {
		t.Fatalf("NewTemplateRenderer failed: %v", err)
	}

	out, err := r.Render(testItem(), Breadcrumb{Community: "College of Science", Collection: "Faculty Publications"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(out) < 4 || string(out[:4]) != "%PDF" {
		t.Fatalf("output is not a PDF (%d bytes)", len(out))
	}
}

func TestTemplateRendererMissingTemplate(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer = config.RendererTemplate
	cfg.TemplatePath = filepath.Join(t.TempDir(), "missing.html")

	if _, err := NewTemplateRenderer(cfg); err == nil {
		t.Fatal("expected error for missing template file")
	}
}

func TestTemplateRendererBrokenTemplate(t *testing.T) {
	cfg := templateConfig(t, `{{field}}`)

	r, err := NewTemplateRenderer(cfg)
	if err == nil {
		// Argument-count errors can surface at execution rather than
		// parse time depending on the expression.
		if _, err = r.Render(testItem(), Breadcrumb{}); err == nil {
			t.Fatal("expected error for broken template")
		}
	}
}

func TestNewSelectsRenderer(t *testing.T) {
	cfg := config.Default()
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := r.(*DrawRenderer); !ok {
		t.Fatalf("renderer = %T, want *DrawRenderer", r)
	}

	cfg.Renderer = "letterpress"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}
