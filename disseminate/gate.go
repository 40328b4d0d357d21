package disseminate

import (
	"strings"

	"github.com/meridian-libraries/disseminate/config"
	"github.com/meridian-libraries/disseminate/metadata"
)

// pdfMimeTypes is the whitelist of source formats the cover pipeline
// can process.
var pdfMimeTypes = map[string]bool{
	"application/pdf":   true,
	"application/x-pdf": true,
}

// IsPDF reports whether a MIME type names a PDF.
func IsPDF(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return pdfMimeTypes[mt]
}

// Eligible decides whether a download gets a citation cover page. The
// decision is pure: configuration, item placement, bitstream type and
// the caller's admin flag go in, a boolean comes out.
//
// Administrators always receive the stored original. Non-PDF content is
// never intercepted. Otherwise interception applies when enabled
// globally or when the item's owning collection is on the allow-list,
// directly or through one of its communities.
func Eligible(cfg *config.Config, item *metadata.Item, bs Bitstream, admin bool) bool {
	if admin {
		return false
	}
	if !IsPDF(bs.MimeType) {
		return false
	}
	if cfg.EnableGlobally {
		return true
	}
	if len(cfg.EnabledCollections) == 0 && len(cfg.EnabledCommunities) == 0 {
		return false
	}

	for _, h := range cfg.EnabledCollections {
		if h == item.OwningCollection.Handle {
			return true
		}
	}
	for _, h := range cfg.EnabledCommunities {
		for _, c := range item.Communities {
			if h == c.Handle {
				return true
			}
		}
	}
	return false
}
