// Package disseminate orchestrates the citation pipeline: it decides
// whether a download gets a cover page, renders the page, merges it
// onto the source document and hands the result back to the caller.
package disseminate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/meridian-libraries/disseminate/assemble"
	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/bibmap"
	"github.com/meridian-libraries/disseminate/config"
	"github.com/meridian-libraries/disseminate/cover"
	"github.com/meridian-libraries/disseminate/metadata"
	"github.com/meridian-libraries/disseminate/style"
)

// Bitstream describes a stored file attached to an item.
type Bitstream struct {
	Name      string
	MimeType  string
	SizeBytes int64
}

// ContentSource retrieves the stored bytes of a bitstream.
type ContentSource interface {
	Content(ctx context.Context, item *metadata.Item, bs Bitstream) ([]byte, error)
}

// FileSource reads bitstream content from the local filesystem,
// treating the bitstream name as a path relative to Root.
type FileSource struct {
	Root string
}

// Content reads the bitstream's file.
func (s FileSource) Content(_ context.Context, _ *metadata.Item, bs Bitstream) ([]byte, error) {
	path := bs.Name
	if s.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bitstream: %w", err)
	}
	return data, nil
}

// Service wires the renderer, the assembler and the citation styles
// behind one entry point per dissemination request.
type Service struct {
	cfg       *config.Config
	profile   *bibmap.Profile
	renderer  cover.Renderer
	assembler *assemble.Assembler
	source    ContentSource
}

// NewService builds the pipeline from configuration. All collaborators
// are constructed eagerly; a broken template or profile fails here, not
// on the first request.
func NewService(cfg *config.Config, source ContentSource) (*Service, error) {
	profile := bibmap.Default()
	if cfg.CitationProfile != "" {
		p, err := bibmap.Load(cfg.CitationProfile)
		if err != nil {
			return nil, fmt.Errorf("loading citation profile: %w", err)
		}
		profile = p
	}

	renderer, err := cover.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		profile:   profile,
		renderer:  renderer,
		assembler: assemble.New(cfg),
		source:    source,
	}, nil
}

// Eligible applies the interception gate for this service's
// configuration.
func (s *Service) Eligible(item *metadata.Item, bs Bitstream, admin bool) bool {
	return Eligible(s.cfg, item, bs, admin)
}

// MakeCitedDocument renders the item's cover page and merges it onto
// the source document. The source bytes are never modified; any
// failure returns an error and no partial output.
func (s *Service) MakeCitedDocument(item *metadata.Item, source []byte) ([]byte, error) {
	coverPDF, err := s.renderer.Render(item, s.breadcrumb(item))
	if err != nil {
		return nil, fmt.Errorf("rendering cover page: %w", err)
	}
	merged, err := s.assembler.Assemble(coverPDF, source)
	if err != nil {
		return nil, fmt.Errorf("assembling cited document: %w", err)
	}
	return merged, nil
}

// Disseminate fetches the bitstream and, when the gate passes, returns
// the cited document. Render or merge failures fall open: the stored
// original is served with a logged warning, never an error page. The
// boolean reports whether a cover page was actually attached.
func (s *Service) Disseminate(ctx context.Context, item *metadata.Item, bs Bitstream, admin bool) ([]byte, bool, error) {
	source, err := s.source.Content(ctx, item, bs)
	if err != nil {
		return nil, false, err
	}

	if !s.Eligible(item, bs, admin) {
		return source, false, nil
	}

	cited, err := s.MakeCitedDocument(item, source)
	if err != nil {
		slog.Warn("citation pipeline failed, serving original",
			"handle", item.Handle, "bitstream", bs.Name, "error", err)
		return source, false, nil
	}
	return cited, true, nil
}

// Citations renders the item's bibliography in each configured style.
func (s *Service) Citations(item *metadata.Item, format style.OutputFormat) ([]style.Bibliography, error) {
	rec := bib.BuildRecord(item, s.profile)
	return style.Bibliographies(rec, s.cfg.Styles, format)
}

// Record maps the item's metadata into a bibliographic record.
func (s *Service) Record(item *metadata.Item) *bib.Record {
	return bib.BuildRecord(item, s.profile)
}

// breadcrumb resolves the hierarchy names shown on the cover page. An
// item with no community keeps a single-space placeholder so the
// header row holds its shape; a collection without a name degrades to
// its handle.
func (s *Service) breadcrumb(item *metadata.Item) cover.Breadcrumb {
	crumb := cover.Breadcrumb{Community: " "}
	if len(item.Communities) > 0 && strings.TrimSpace(item.Communities[0].Name) != "" {
		crumb.Community = item.Communities[0].Name
	}
	switch {
	case strings.TrimSpace(item.OwningCollection.Name) != "":
		crumb.Collection = item.OwningCollection.Name
	case item.OwningCollection.Handle != "":
		crumb.Collection = item.OwningCollection.Handle
	default:
		crumb.Collection = "collection unavailable"
	}
	return crumb
}

// WriteTemp writes a request-scoped copy of data under the configured
// temp directory with a collision-free name. The caller removes the
// file when the response is finished.
func (s *Service) WriteTemp(data []byte) (string, error) {
	dir := s.cfg.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("citation-%s.pdf", uuid.NewString()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing temp document: %w", err)
	}
	return path, nil
}
