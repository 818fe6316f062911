package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"kanakku/internal/i18n"
)

// Page layout constants, A4 portrait in millimeters.
const (
	pdfMarginLeft  = 14.0
	pdfTableTop    = 30.0
	pdfRowHeight   = 8.0
	pdfPageBreakY  = 250.0
	pdfSectionGap  = 10.0
	pdfHeadingStep = 10.0
	pdfResetTop    = 20.0
)

// header fill matches the app accent color.
var headFill = [3]int{238, 193, 0}

// WritePDF renders a single-period table as a paginated document.
func WritePDF(w io.Writer, t Table) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(pdfMarginLeft, 22, tr(t.Title))

	pdf.SetY(pdfTableTop)
	drawTable(pdf, tr, t, 10)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// WriteAllPDF renders the multi-period report: app heading, subtitle,
// then one table per month with a manual page break whenever the
// running cursor passes the page-fill threshold.
func WriteAllPDF(w io.Writer, sections []MonthSection, locale i18n.Locale) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 22)
	pdf.Text(pdfMarginLeft, 20, tr(i18n.T("appName", locale, nil)))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pdfMarginLeft, 30, tr(i18n.T("exportAllData", locale, nil)))

	y := 40.0
	for _, section := range sections {
		if y > pdfPageBreakY {
			pdf.AddPage()
			y = pdfResetTop
		}
		pdf.SetFont("Helvetica", "", 16)
		pdf.Text(pdfMarginLeft, y, tr(section.Label))
		y += pdfHeadingStep

		pdf.SetY(y)
		drawTable(pdf, tr, section.Table, 9)
		y = pdf.GetY() + pdfSectionGap
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// drawTable renders header, body and total rows starting at the
// current Y. Column widths scale the Table hints to the printable
// width. fpdf's auto page break handles long bodies.
func drawTable(pdf *fpdf.Fpdf, tr func(string) string, t Table, fontSize float64) {
	pageW, _ := pdf.GetPageSize()
	printable := pageW - 2*pdfMarginLeft

	var hintSum float64
	for _, w := range t.ColWidths {
		hintSum += w
	}
	widths := make([]float64, len(t.ColWidths))
	for i, w := range t.ColWidths {
		widths[i] = w / hintSum * printable
	}

	// Header row.
	pdf.SetX(pdfMarginLeft)
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(headFill[0], headFill[1], headFill[2])
	for i, col := range t.Columns {
		pdf.CellFormat(widths[i], pdfRowHeight, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Body rows, amount column currency-prefixed.
	pdf.SetFont("Helvetica", "", fontSize)
	for _, row := range t.Rows {
		pdf.SetX(pdfMarginLeft)
		for i, cell := range row {
			if i == amountColumn {
				cell = t.Currency + cell
			}
			pdf.CellFormat(widths[i], pdfRowHeight, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Total row: label spans the date and type columns, amount in the
	// amount column, the remaining cells empty.
	pdf.SetX(pdfMarginLeft)
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.CellFormat(widths[0]+widths[1], pdfRowHeight, tr(t.Total.Label), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[amountColumn], pdfRowHeight, tr(t.Currency+t.Total.Amount), "1", 0, "L", false, 0, "")
	var rest float64
	for i := amountColumn + 1; i < len(widths); i++ {
		rest += widths[i]
	}
	if rest > 0 {
		pdf.CellFormat(rest, pdfRowHeight, "", "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
