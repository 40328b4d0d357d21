// Package legacy implements the simple journal citation format carried
// over from older repository deployments: the journal name followed by
// volume, issue, and page range, e.g. "Journal X, 12 (3): 100-110".
package legacy

import (
	"fmt"
	"strings"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/style"
)

func init() {
	style.Register(&Style{})
}

// Style renders the legacy journal citation.
type Style struct{}

// Name returns the style identifier.
func (s *Style) Name() string { return "legacy" }

// Description returns the style description.
func (s *Style) Description() string {
	return "Legacy journal citation (journal, volume (issue): pages)"
}

// Render formats the record. Fields that are absent are omitted along
// with their punctuation; a record with none of the journal fields
// renders as an empty string rather than failing.
func (s *Style) Render(rec *bib.Record, format style.OutputFormat) (string, error) {
	m := style.NewMarkup(format)

	var sb strings.Builder
	if rec.ContainerTitle != "" {
		sb.WriteString(m.Escape(rec.ContainerTitle))
	}
	if rec.Volume != "" {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.Escape(rec.Volume))
	}
	if rec.Issue != "" {
		fmt.Fprintf(&sb, " (%s)", m.Escape(rec.Issue))
	}
	if pages := rec.Pages(); pages != "" {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}
		sb.WriteString(m.Escape(pages))
	}

	if sb.Len() == 0 {
		return "", nil
	}
	return m.Entry(sb.String()), nil
}
