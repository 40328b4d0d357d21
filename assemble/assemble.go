// Package assemble stitches a rendered cover page onto a source PDF.
// Inputs are treated as immutable byte slices; the merged document is
// always a new buffer, so a failure mid-assembly can never corrupt the
// stored original.
package assemble

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/meridian-libraries/disseminate/config"
)

// ErrEncrypted is returned for password-protected source documents,
// which cannot be merged.
var ErrEncrypted = errors.New("source PDF is encrypted")

// Assembler merges cover and source PDFs and rewrites page labels so
// viewers keep showing the source's own page numbering.
type Assembler struct {
	conf       *model.Configuration
	label      string
	coverFirst bool
}

// New returns an assembler bound to the configuration.
func New(cfg *config.Config) *Assembler {
	return &Assembler{
		conf:       model.NewDefaultConfiguration(),
		label:      cfg.Label,
		coverFirst: cfg.CitationAsFirstPage,
	}
}

// Assemble merges the cover page and the source document into a single
// PDF, cover first or last per configuration, and carries the source's
// page labels over with a synthetic label for the inserted page.
func (a *Assembler) Assemble(cover, source []byte) ([]byte, error) {
	coverCtx, err := a.read(cover)
	if err != nil {
		return nil, fmt.Errorf("cover page: %w", err)
	}
	sourceCtx, err := a.read(source)
	if err != nil {
		return nil, fmt.Errorf("source document: %w", err)
	}

	sourceLabels, err := readPageLabels(sourceCtx)
	if err != nil {
		return nil, fmt.Errorf("reading source page labels: %w", err)
	}

	parts := []io.ReadSeeker{bytes.NewReader(cover), bytes.NewReader(source)}
	if !a.coverFirst {
		parts = []io.ReadSeeker{bytes.NewReader(source), bytes.NewReader(cover)}
	}

	var merged bytes.Buffer
	if err := api.MergeRaw(parts, &merged, false, a.conf); err != nil {
		return nil, fmt.Errorf("merging PDFs: %w", err)
	}

	mergedCtx, err := a.read(merged.Bytes())
	if err != nil {
		return nil, fmt.Errorf("merged document: %w", err)
	}

	entries := shiftLabels(sourceLabels, sourceCtx.PageCount, coverCtx.PageCount, a.coverFirst, a.label)
	if err := writePageLabels(mergedCtx, entries); err != nil {
		return nil, fmt.Errorf("writing page labels: %w", err)
	}

	var out bytes.Buffer
	if err := api.WriteContext(mergedCtx, &out); err != nil {
		return nil, fmt.Errorf("serializing merged PDF: %w", err)
	}
	return out.Bytes(), nil
}

// Validate reports whether data is a well-formed, unencrypted PDF that
// the assembler can work with.
func (a *Assembler) Validate(data []byte) error {
	_, err := a.read(data)
	return err
}

func (a *Assembler) read(data []byte) (*model.Context, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), a.conf)
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	if ctx.XRefTable.Encrypt != nil {
		return nil, ErrEncrypted
	}
	return ctx, nil
}
