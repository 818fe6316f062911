package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"kanakku/internal/core"
	"kanakku/internal/export"
	"kanakku/internal/i18n"
	"kanakku/internal/log"
	"kanakku/internal/notify"
)

// ErrNoEntries signals that an export was requested for an empty
// period; the informational notification has already been shown and no
// files are produced.
var ErrNoEntries = errors.New("no entries for this period")

// ExportService produces the PDF and workbook artifacts. Both
// encodings are rendered to memory first and written only on success,
// so a failure leaves no partial file.
type ExportService struct {
	dir    string
	notify *notify.Center
	logger *log.Logger
}

func NewExportService(dir string, center *notify.Center, logger *log.Logger) *ExportService {
	return &ExportService{
		dir:    dir,
		notify: center,
		logger: logger.WithComponent(log.ComponentExport),
	}
}

// ExportPeriod writes <slug>.pdf and <slug>.xlsx for one period's
// expenses (typically a month), in the caller-supplied row order.
func (s *ExportService) ExportPeriod(ctx context.Context, locale i18n.Locale, expenses []core.Expense, title string) (pdfPath, xlsxPath string, err error) {
	if len(expenses) == 0 {
		s.notify.Info(i18n.T("noEntries", locale, nil))
		return "", "", ErrNoEntries
	}

	table := export.BuildTable(expenses, title, locale)
	base := export.SlugFilename(title)

	var pdfBuf, xlsxBuf bytes.Buffer
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return export.WritePDF(&pdfBuf, table) })
	g.Go(func() error { return export.WriteWorkbookSheet(&xlsxBuf, table) })
	if err := g.Wait(); err != nil {
		s.fail(ctx, locale, err)
		return "", "", fmt.Errorf("export period %q: %w", title, err)
	}

	pdfPath, xlsxPath, err = s.writeFiles(base, pdfBuf.Bytes(), xlsxBuf.Bytes())
	if err != nil {
		s.fail(ctx, locale, err)
		return "", "", err
	}

	s.logger.InfoContext(ctx, "Period exported",
		log.FieldOperation, log.OpExport,
		log.FieldCount, len(expenses),
		log.FieldFile, base)
	s.notify.Success(i18n.T("dataExported", locale, nil))
	return pdfPath, xlsxPath, nil
}

// ExportAll writes the month-partitioned all-data report under the
// fixed all_expenses_report_<date> name.
func (s *ExportService) ExportAll(ctx context.Context, locale i18n.Locale, expenses []core.Expense, now time.Time) (pdfPath, xlsxPath string, err error) {
	if len(expenses) == 0 {
		s.notify.Info(i18n.T("noEntries", locale, nil))
		return "", "", ErrNoEntries
	}

	sections := export.BuildMonthlyTables(expenses, locale)
	base := export.AllDataBaseName(now)

	var pdfBuf, xlsxBuf bytes.Buffer
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return export.WriteAllPDF(&pdfBuf, sections, locale) })
	g.Go(func() error { return export.WriteWorkbook(&xlsxBuf, sections) })
	if err := g.Wait(); err != nil {
		s.fail(ctx, locale, err)
		return "", "", fmt.Errorf("export all data: %w", err)
	}

	pdfPath, xlsxPath, err = s.writeFiles(base, pdfBuf.Bytes(), xlsxBuf.Bytes())
	if err != nil {
		s.fail(ctx, locale, err)
		return "", "", err
	}

	s.logger.InfoContext(ctx, "All data exported",
		log.FieldOperation, log.OpExport,
		log.FieldCount, len(expenses),
		log.FieldFile, base)
	s.notify.Success(i18n.T("dataExported", locale, nil))
	return pdfPath, xlsxPath, nil
}

func (s *ExportService) writeFiles(base string, pdf, xlsx []byte) (string, string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", "", fmt.Errorf("create export directory: %w", err)
	}
	pdfPath := filepath.Join(s.dir, base+".pdf")
	xlsxPath := filepath.Join(s.dir, base+".xlsx")

	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", pdfPath, err)
	}
	if err := os.WriteFile(xlsxPath, xlsx, 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", xlsxPath, err)
	}
	return pdfPath, xlsxPath, nil
}

func (s *ExportService) fail(ctx context.Context, locale i18n.Locale, err error) {
	s.logger.ErrorContext(ctx, "Export failed",
		log.FieldOperation, log.OpExport, log.FieldError, err.Error())
	s.notify.Error(i18n.T("errorExportingData", locale, nil))
}
