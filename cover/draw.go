package cover

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/meridian-libraries/disseminate/config"
	"github.com/meridian-libraries/disseminate/metadata"
)

// Drawing layout constants, in points.
const (
	drawMarginX   = 30.0
	drawTopY      = 32.0
	drawGapY      = 20.0
	drawFooterPad = 40.0

	fontTitle   = 26.0
	fontCreator = 16.0
	fontDefault = 11.0
	fontHeader  = 12.0
)

// DrawRenderer paints the cover page directly with vector drawing
// calls: two header rows, a breadcrumb row, then the configured
// metadata fields top to bottom, and a footer.
type DrawRenderer struct {
	cfg *config.Config
}

// NewDrawRenderer returns a drawing renderer bound to the
// configuration.
func NewDrawRenderer(cfg *config.Config) *DrawRenderer {
	return &DrawRenderer{cfg: cfg}
}

// Render produces the cover page PDF.
func (r *DrawRenderer) Render(item *metadata.Item, crumb Breadcrumb) ([]byte, error) {
	pdf := fpdf.New("P", "pt", pageSize(r.cfg.PageFormat), "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	wrapWidth := pageW - 2*drawMarginX
	y := drawTopY

	y = r.drawHeaderRow(pdf, r.cfg.Header1, pageW, y)
	y = r.drawHeaderRow(pdf, r.cfg.Header2, pageW, y)
	y = drawRule(pdf, pageW, y)
	y = r.drawHeaderRow(pdf, []string{crumb.Community, crumb.Collection}, pageW, y)
	y = drawRule(pdf, pageW, y)
	y += drawGapY / 2

	for _, field := range r.cfg.Fields {
		if field == config.FieldRule {
			y = drawRule(pdf, pageW, y)
			continue
		}
		value := item.AllSeparated(field)
		if strings.TrimSpace(value) == "" {
			continue
		}
		style, size := fieldFont(field)
		pdf.SetFont("Helvetica", style, size)
		for _, line := range WrapText(value, wrapWidth, pdf.GetStringWidth) {
			y += size
			pdf.Text(drawMarginX, y, line)
		}
		y += drawGapY
	}

	if r.cfg.Footer != "" {
		pdf.SetFont("Helvetica", "I", fontDefault)
		pdf.Text(drawMarginX, pageH-drawFooterPad, r.cfg.Footer)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("drawing cover page: %w", err)
	}
	return buf.Bytes(), nil
}

// drawHeaderRow paints up to two cell values on one row, the first
// left-aligned and the second right-aligned.
func (r *DrawRenderer) drawHeaderRow(pdf *fpdf.Fpdf, cells []string, pageW, y float64) float64 {
	pdf.SetFont("Helvetica", "B", fontHeader)
	y += fontHeader
	if len(cells) > 0 && cells[0] != "" {
		pdf.Text(drawMarginX, y, cells[0])
	}
	if len(cells) > 1 && cells[1] != "" {
		w := pdf.GetStringWidth(cells[1])
		pdf.Text(pageW-drawMarginX-w, y, cells[1])
	}
	return y + drawGapY/2
}

func drawRule(pdf *fpdf.Fpdf, pageW, y float64) float64 {
	pdf.SetLineWidth(0.7)
	pdf.Line(drawMarginX, y, pageW-drawMarginX, y)
	return y + drawGapY/2
}

// fieldFont selects the font style and size for a metadata field on
// the drawn page. Titles are large, names medium, everything else the
// body size.
func fieldFont(field string) (style string, size float64) {
	switch {
	case strings.Contains(field, "title"):
		return "B", fontTitle
	case strings.Contains(field, "creator"), strings.Contains(field, "contributor"):
		return "", fontCreator
	default:
		return "", fontDefault
	}
}

// pageSize maps the configured page format to an fpdf size name.
func pageSize(format string) string {
	if format == config.PageFormatA4 {
		return "A4"
	}
	return "Letter"
}
