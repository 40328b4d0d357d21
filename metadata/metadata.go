// Package metadata models the flat descriptive metadata of a repository
// item: an ordered list of (schema, element, qualifier, language, value)
// tuples. Ordering within a field is significant; the first value of a
// field is its primary ("place zero") value.
package metadata

import (
	"fmt"
	"strings"
)

// Any matches any qualifier or language in metadata lookups. It is a
// wildcard sentinel and is distinct from the empty string, which means
// "unqualified" (e.g. dc.date, not dc.date.*).
const Any = "*"

// Tuple is a single metadata value.
type Tuple struct {
	Schema    string
	Element   string
	Qualifier string
	Language  string
	Value     string
}

// FieldName returns the composite field key, "schema.element" for
// unqualified fields and "schema.element.qualifier" otherwise.
func (t Tuple) FieldName() string {
	return FieldName(t.Schema, t.Element, t.Qualifier)
}

// FieldName composes a field key from its parts.
func FieldName(schema, element, qualifier string) string {
	var sb strings.Builder
	sb.WriteString(schema)
	sb.WriteByte('.')
	sb.WriteString(element)
	if qualifier != "" {
		sb.WriteByte('.')
		sb.WriteString(qualifier)
	}
	return sb.String()
}

// ParseFieldName splits a "schema.element[.qualifier]" key into its parts.
func ParseFieldName(field string) (schema, element, qualifier string, err error) {
	parts := strings.Split(field, ".")
	switch len(parts) {
	case 2:
		return parts[0], parts[1], "", nil
	case 3:
		return parts[0], parts[1], parts[2], nil
	default:
		return "", "", "", fmt.Errorf("invalid metadata field name %q: want schema.element or schema.element.qualifier", field)
	}
}

// Item is a repository object carrying descriptive metadata. Values keep
// the order they were read from the repository.
type Item struct {
	Handle           string
	OwningCollection Container
	Communities      []Container
	Values           []Tuple
}

// Container is an owning collection or community.
type Container struct {
	Handle string
	Name   string
}

// Metadata returns all tuples matching the given parts, in encounter
// order. Qualifier and language may be Any. An empty qualifier matches
// only unqualified tuples.
func (it *Item) Metadata(schema, element, qualifier, language string) []Tuple {
	var out []Tuple
	for _, t := range it.Values {
		if t.Schema != schema || t.Element != element {
			continue
		}
		if qualifier != Any && t.Qualifier != qualifier {
			continue
		}
		if language != Any && t.Language != language {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ByField returns all tuples for a composite field key, in encounter order.
func (it *Item) ByField(field string) []Tuple {
	var out []Tuple
	for _, t := range it.Values {
		if t.FieldName() == field {
			out = append(out, t)
		}
	}
	return out
}

// First returns the place-zero value for a field, or "" if the field has
// no values.
func (it *Item) First(field string) string {
	for _, t := range it.Values {
		if t.FieldName() == field {
			return t.Value
		}
	}
	return ""
}

// AllSeparated joins every non-blank value of a field with "; ".
func (it *Item) AllSeparated(field string) string {
	var vals []string
	for _, t := range it.ByField(field) {
		if strings.TrimSpace(t.Value) != "" {
			vals = append(vals, t.Value)
		}
	}
	return strings.Join(vals, "; ")
}

// FirstNonEmpty returns the place-zero value of the first field in the
// list that has one. Field lists come from template placeholders of the
// form "a|b|c".
func (it *Item) FirstNonEmpty(fields []string) string {
	for _, f := range fields {
		if v := it.First(strings.TrimSpace(f)); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Fields returns the distinct field keys present on the item, in first
// encounter order.
func (it *Item) Fields() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range it.Values {
		name := t.FieldName()
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
