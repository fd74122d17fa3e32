package contractgen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry for the in-process engine, in millimetres (US Letter, 1in margins).
const (
	gofpdfMargin     = 25.4
	gofpdfBodySize   = 11
	gofpdfLineHeight = 5.5
)

var (
	numberedItemPattern = regexp.MustCompile(`^\d+\.\s`)
	italicPattern       = regexp.MustCompile(`(^|\s)\*([^*]+)\*(\s|$)`)
	inlineCodePattern   = regexp.MustCompile("`([^`]+)`")
	linkPattern         = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// gofpdfEngine lays out the Markdown as a plain PDF without external tools.
// It understands headings, paragraphs, lists, and code blocks; inline
// formatting is stripped.
type gofpdfEngine struct{}

// Compile-time interface check.
var _ PDFEngine = (*gofpdfEngine)(nil)

func newGofpdfEngine() *gofpdfEngine {
	return &gofpdfEngine{}
}

func (e *gofpdfEngine) Name() string        { return EngineGofpdf }
func (e *gofpdfEngine) NeedsHTML() bool     { return false }
func (e *gofpdfEngine) Requirement() string { return "" }

func (e *gofpdfEngine) Render(ctx context.Context, job PDFJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(gofpdfMargin, gofpdfMargin, gofpdfMargin)
	pdf.SetAutoPageBreak(true, gofpdfMargin)
	pdf.SetTitle(job.Title, true)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	layoutMarkdown(pdf, tr, job.Markdown)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("%w: gofpdf: %v", ErrPDFGeneration, err)
	}
	if err := pdf.OutputFileAndClose(job.PDFPath); err != nil {
		return fmt.Errorf("%w: gofpdf: %v", ErrPDFGeneration, err)
	}
	return nil
}

// layoutMarkdown writes the document line by line.
func layoutMarkdown(pdf *gofpdf.Fpdf, tr func(string) string, markdown string) {
	inCodeBlock := false

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(trimmed, "# "))), level)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Times", "", gofpdfBodySize)
			pdf.MultiCell(0, gofpdfLineHeight, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
		case numberedItemPattern.MatchString(trimmed):
			pdf.SetFont("Times", "", gofpdfBodySize)
			pdf.MultiCell(0, gofpdfLineHeight, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			pdf.SetFont("Times", "", gofpdfBodySize)
			pdf.MultiCell(0, gofpdfLineHeight, tr(cleanInlineMarkdown(line)), "", "J", false)
		}
	}
}

// renderHeading sets the font size from the heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 14, 3: 12}
	size, ok := sizes[level]
	if !ok {
		size = gofpdfBodySize
	}
	align := "L"
	if level == 1 {
		align = "C"
	}
	pdf.Ln(4)
	pdf.SetFont("Times", "B", size)
	pdf.MultiCell(0, size*0.5, text, "", align, false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicPattern.ReplaceAllString(text, "$1$2$3")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
