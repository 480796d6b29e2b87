package report

import (
	"io"
	"time"

	"project/backend/models"

	gofpdf "github.com/go-pdf/fpdf"
)

// Config controls the rendered PDF. All fields are optional.
type Config struct {
	// LogoPath, when set, is drawn on the cover page. A missing or
	// unreadable file fails the whole render rather than producing a
	// partial document.
	LogoPath string
}

// Composer renders assembled documents as PDF byte streams.
type Composer struct {
	cfg Config
}

func NewComposer(cfg Config) *Composer {
	return &Composer{cfg: cfg}
}

// Compose assembles and renders the report for a scored submission in one
// step. The inputs are read-only.
func (c *Composer) Compose(w io.Writer, result *models.SubmissionResult, recommendation string, tools []models.ToolSuggestion, lang models.Language) error {
	doc := BuildDocument(result, recommendation, tools, lang, time.Now())
	return c.Render(w, doc)
}

// Render draws doc page by page and writes the PDF to w.
func (c *Composer) Render(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	// Core fonts are cp1252; the translator maps the accented Portuguese
	// text onto it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		switch page.Kind {
		case PageCover:
			c.drawCover(pdf, tr, page)
		default:
			c.drawSection(pdf, tr, page)
		}
	}

	return pdf.Output(w)
}

func (c *Composer) drawCover(pdf *gofpdf.Fpdf, tr func(string) string, page Page) {
	if c.cfg.LogoPath != "" {
		pdf.ImageOptions(c.cfg.LogoPath, 80, 30, 50, 0, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetY(100)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 41, 59)
	pdf.MultiCell(0, 12, tr(page.Title), "", "C", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(80, 80, 80)
	for _, line := range page.Lines {
		pdf.MultiCell(0, 8, tr(line), "", "C", false)
	}
}

func (c *Composer) drawSection(pdf *gofpdf.Fpdf, tr func(string) string, page Page) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 12, tr(page.Title), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(60, 60, 60)
	for _, line := range page.Lines {
		pdf.MultiCell(0, 7, tr(line), "", "L", false)
		pdf.Ln(1)
	}

	for _, group := range page.Groups {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(30, 41, 59)
		pdf.MultiCell(0, 8, tr(group.Heading), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(60, 60, 60)
		for _, bullet := range group.Bullets {
			pdf.MultiCell(0, 6, tr("- "+bullet), "", "L", false)
		}
		pdf.Ln(4)
	}
}
