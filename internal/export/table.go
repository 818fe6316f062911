// Package export turns expense collections into tabular reports and
// serializes them as a printable PDF or a spreadsheet workbook.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kanakku/internal/core"
	"kanakku/internal/dates"
	"kanakku/internal/i18n"
	"kanakku/internal/report"
)

// amountColumn is the fixed index of the amount column in both table
// variants; the PDF serializer prefixes the currency symbol there.
const amountColumn = 2

// sheetNameLimit is the spreadsheet-format sheet name cap.
const sheetNameLimit = 31

// TotalRow is the trailing grand-total row. Amount is a bare
// two-decimal string; serializers decide whether to add the symbol.
type TotalRow struct {
	Label  string
	Amount string
}

// Table is a report independent of its file encoding: a header of
// translated column labels, body rows in caller order and a total row.
type Table struct {
	Title     string
	Currency  string
	Columns   []string
	Rows      [][]string
	Total     TotalRow
	ColWidths []float64
}

// MonthSection is one month's table inside the all-data report.
type MonthSection struct {
	Year  int
	Month time.Month
	Label string
	Sheet string
	Table Table
}

var singleColWidths = []float64{20, 15, 10, 30, 15, 30}
var monthlyColWidths = []float64{15, 15, 10, 30, 15}

// BuildTable builds the single-period, six-column report. Rows keep the
// caller-supplied order. Zero input still yields a header plus a 0.00
// total row; callers are expected to pre-check and skip the export.
func BuildTable(expenses []core.Expense, title string, locale i18n.Locale) Table {
	t := Table{
		Title:    title,
		Currency: i18n.T("rupeeSymbol", locale, nil),
		Columns: []string{
			i18n.T("date", locale, nil),
			i18n.T("type", locale, nil),
			i18n.T("amount", locale, nil),
			i18n.T("purpose", locale, nil),
			i18n.T("paymentMethod", locale, nil),
			i18n.T("optionalNotes", locale, nil),
		},
		ColWidths: singleColWidths,
	}

	for _, e := range expenses {
		t.Rows = append(t.Rows, []string{
			dates.FormatLong(e.Date, locale, dates.DateOnly),
			i18n.T(string(e.Type), locale, nil),
			formatAmount(e.Amount),
			e.Purpose,
			methodLabel(e.Method, locale),
			e.Notes,
		})
	}

	t.Total = TotalRow{
		Label:  i18n.T("grandTotal", locale, nil),
		Amount: formatAmount(report.SumByType(expenses).Grand),
	}
	return t
}

// BuildMonthlyTables groups the whole collection by month and builds
// the five-column (no notes) table per group, chronologically
// ascending. Sheet names are sanitized for workbook compatibility.
func BuildMonthlyTables(expenses []core.Expense, locale i18n.Locale) []MonthSection {
	groups := report.GroupByMonth(expenses, locale)
	sections := make([]MonthSection, 0, len(groups))
	seen := map[string]bool{}
	for _, g := range groups {
		sections = append(sections, MonthSection{
			Year:  g.Year,
			Month: g.Month,
			Label: g.Label,
			Sheet: uniqueSheetName(g, seen),
			Table: buildMonthlyTable(g, locale),
		})
	}
	return sections
}

// uniqueSheetName sanitizes the group label and keeps the result unique
// within one workbook. A month name written entirely outside
// [A-Za-z0-9_ ] (the Tamil labels) sanitizes down to the bare year, so
// every month of that year would collide; those fall back to the
// numeric "MM YYYY" form. Any remaining collision gets a numeric
// suffix.
func uniqueSheetName(g report.MonthGroup, seen map[string]bool) string {
	name := SanitizeSheetName(g.Label)
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || (g.Month != 0 && trimmed == strconv.Itoa(g.Year)) {
		name = fmt.Sprintf("%02d %d", int(g.Month), g.Year)
	}
	base := name
	for n := 2; seen[name]; n++ {
		suffix := fmt.Sprintf(" %d", n)
		if len(base)+len(suffix) > sheetNameLimit {
			name = base[:sheetNameLimit-len(suffix)] + suffix
		} else {
			name = base + suffix
		}
	}
	seen[name] = true
	return name
}

func buildMonthlyTable(g report.MonthGroup, locale i18n.Locale) Table {
	t := Table{
		Title:    g.Label,
		Currency: i18n.T("rupeeSymbol", locale, nil),
		Columns: []string{
			i18n.T("date", locale, nil),
			i18n.T("type", locale, nil),
			i18n.T("amount", locale, nil),
			i18n.T("purpose", locale, nil),
			i18n.T("paymentMethod", locale, nil),
		},
		ColWidths: monthlyColWidths,
	}
	for _, e := range g.Expenses {
		t.Rows = append(t.Rows, []string{
			dates.FormatLong(e.Date, locale, dates.ShortDate),
			i18n.T(string(e.Type), locale, nil),
			formatAmount(e.Amount),
			e.Purpose,
			methodLabel(e.Method, locale),
		})
	}
	t.Total = TotalRow{
		Label:  i18n.T("grandTotal", locale, nil),
		Amount: formatAmount(report.SumByType(g.Expenses).Grand),
	}
	return t
}

// SanitizeSheetName strips characters outside [A-Za-z0-9_ ] and caps
// the result at the 31-character sheet-name limit.
func SanitizeSheetName(label string) string {
	var b strings.Builder
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ' ':
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > sheetNameLimit {
		s = s[:sheetNameLimit]
	}
	return s
}

// SlugFilename reduces a report title to a filename-safe base name by
// dropping every non-alphanumeric character.
func SlugFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AllDataBaseName is the fixed base name of the all-data artifacts.
func AllDataBaseName(now time.Time) string {
	return "all_expenses_report_" + now.Format("2006-01-02")
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func methodLabel(m core.PaymentMethod, locale i18n.Locale) string {
	key := strings.ToLower(string(m))
	if s := i18n.T(key, locale, nil); s != key {
		return s
	}
	return string(m)
}
