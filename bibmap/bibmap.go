// Package bibmap provides the configuration that maps repository
// metadata fields into the citation vocabulary: field name mappings,
// document type mappings, and the fallback type for unmapped documents.
package bibmap

import "strings"

// Profile is a complete citation mapping configuration. It is loaded
// once at startup and read-only during request processing.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Fields maps composite metadata field names (schema.element or
	// schema.element.qualifier) to citation field names.
	Fields map[string]string `yaml:"fields" json:"fields"`

	// Types maps normalized repository document types to work types.
	// Keys are normalized with NormalizeType before lookup.
	Types map[string]string `yaml:"types,omitempty" json:"types,omitempty"`

	// DefaultType is the work type used when a document type has no
	// mapping. Defaults to "article" when unset.
	DefaultType string `yaml:"default_type,omitempty" json:"default_type,omitempty"`
}

// Target returns the citation field name for a metadata field key, or
// false if the field is unmapped. Lookup is exact: "dc.date" and
// "dc.date.issued" are distinct keys and an unqualified field never
// matches a qualified mapping.
func (p *Profile) Target(field string) (string, bool) {
	t, ok := p.Fields[field]
	return t, ok
}

// WorkType resolves a raw repository document type to a work type,
// reporting whether the type was mapped. Callers substitute DefaultType
// (never an error) when unmapped.
func (p *Profile) WorkType(raw string) (string, bool) {
	t, ok := p.Types[NormalizeType(raw)]
	return t, ok
}

// FallbackType returns the configured default work type.
func (p *Profile) FallbackType() string {
	if p.DefaultType == "" {
		return "article"
	}
	return p.DefaultType
}

// NormalizeType canonicalizes a raw document type for table lookup:
// spaces and hyphens become underscores and the result is upper-cased.
func NormalizeType(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ToUpper(s)
}
