// Package config holds the citation-page module configuration. It is
// loaded once at process start, treated as immutable afterwards, and
// passed by reference into every render call. There is no lazy
// initialization; request dispatch must not begin before Load returns.
package config

import (
	"fmt"
	"strings"
)

// Renderer strategy names.
const (
	RendererDraw     = "draw"
	RendererTemplate = "template"
)

// Page format names.
const (
	PageFormatLetter = "LETTER"
	PageFormatA4     = "A4"
)

// Config is the citation-page module configuration.
type Config struct {
	// EnableGlobally turns citation interception on for every
	// collection. Default false.
	EnableGlobally bool `yaml:"enable_globally" env:"CITATION_PAGE_ENABLE_GLOBALLY"`

	// CitationAsFirstPage places the citation page before the source
	// document instead of after it. Default true.
	CitationAsFirstPage bool `yaml:"citation_as_first_page" env:"CITATION_PAGE_AS_FIRST_PAGE"`

	// EnabledCollections is the allow-list of collection handles for
	// which interception is on.
	EnabledCollections []string `yaml:"enabled_collections"`

	// EnabledCommunities lists community handles; every collection
	// under an enabled community is treated as enabled.
	EnabledCommunities []string `yaml:"enabled_communities"`

	// Renderer selects the cover page strategy: "draw" or "template".
	Renderer string `yaml:"renderer" env:"CITATION_PAGE_RENDERER"`

	// PageFormat is LETTER (default) or A4. Unknown values log a
	// warning and fall back to LETTER.
	PageFormat string `yaml:"page_format"`

	// Header1 and Header2 are the two header rows drawn at the top of
	// a drawn cover page (institution name, repository name/URL).
	Header1 []string `yaml:"header1"`
	Header2 []string `yaml:"header2"`

	// Fields is the ordered list of metadata fields drawn on the
	// cover page. The sentinel "_line_" draws a horizontal rule.
	Fields []string `yaml:"fields"`

	// Footer is drawn at the bottom of the cover page.
	Footer string `yaml:"footer"`

	// TemplatePath points at the HTML cover template used by the
	// template renderer.
	TemplatePath string `yaml:"template_path" env:"CITATION_PAGE_TEMPLATE_PATH"`

	// HTMLFields lists fields whose values carry markup that must be
	// stripped before rendering.
	HTMLFields []string `yaml:"html_fields"`

	// Label is the synthetic page label given to the inserted page.
	Label string `yaml:"label"`

	// TempDir is where request-scoped temp files are created. Empty
	// means the system default.
	TempDir string `yaml:"temp_dir" env:"CITATION_PAGE_TEMP_DIR"`

	// MaxAuthors truncates joined author lists on cover pages; 0
	// means no limit. Truncated lists end with AuthorEllipsis.
	MaxAuthors     int    `yaml:"max_authors"`
	AuthorEllipsis string `yaml:"author_ellipsis"`

	// Styles lists the citation styles rendered by default.
	Styles []string `yaml:"styles"`

	// CitationProfile optionally points at a custom citation mapping
	// profile; empty selects the embedded Dublin Core profile.
	CitationProfile string `yaml:"citation_profile" env:"CITATION_PAGE_PROFILE"`
}

// FieldRule is the cover-page sentinel that draws a horizontal rule in
// place of a metadata field.
const FieldRule = "_line_"

// Validate checks the parts of the configuration that cannot degrade
// silently.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererDraw, RendererTemplate:
	default:
		return fmt.Errorf("unknown renderer %q (want %s or %s)", c.Renderer, RendererDraw, RendererTemplate)
	}
	if c.Renderer == RendererTemplate && c.TemplatePath == "" {
		return fmt.Errorf("renderer %q requires template_path", RendererTemplate)
	}
	return nil
}

// IsHTMLField reports whether a field's values need markup stripped.
func (c *Config) IsHTMLField(field string) bool {
	for _, f := range c.HTMLFields {
		if strings.TrimSpace(f) == field {
			return true
		}
	}
	return false
}
