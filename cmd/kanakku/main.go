package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"kanakku/internal/cli"
	"kanakku/internal/core"
	"kanakku/internal/dates"
	"kanakku/internal/i18n"
	"kanakku/internal/log"
	"kanakku/internal/notify"
	"kanakku/internal/repository"
	"kanakku/internal/services"
)

const recentCount = 5

type app struct {
	locale   i18n.Locale
	settings *repository.Settings
	repo     *repository.Repository
	center   *notify.Center
	expenses *services.ExpenseService
	summary  *services.SummaryService
	exporter *services.ExportService
	logger   *log.Logger
}

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(log.ComponentCLI)
	cfg := cli.LoadAndValidateConfig(logger)

	kv := cli.OpenStore(logger, cfg.DBPath)
	defer kv.Close()

	ctx := context.Background()
	repo := repository.New(kv, logger)
	if _, err := repo.Load(ctx); err != nil {
		logger.Error("Failed to load expenses", log.FieldError, err.Error())
		os.Exit(1)
	}

	settings := repository.NewSettings(kv)
	center := notify.NewCenter()
	a := &app{
		locale:   cli.ResolveLocale(ctx, settings, cfg, logger),
		settings: settings,
		repo:     repo,
		center:   center,
		expenses: services.NewExpenseService(repo, center, logger),
		summary:  services.NewSummaryService(repo),
		exporter: services.NewExportService(cfg.ExportDir, center, logger),
		logger:   logger,
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "add":
		err = a.cmdAdd(ctx, os.Args[2:])
	case "list":
		err = a.cmdList(os.Args[2:])
	case "today":
		err = a.cmdToday()
	case "summary":
		err = a.cmdSummary(os.Args[2:])
	case "export":
		err = a.cmdExport(ctx, os.Args[2:])
	case "export-all":
		err = a.cmdExportAll(ctx)
	case "update":
		err = a.cmdUpdate(ctx, os.Args[2:])
	case "delete":
		err = a.cmdDelete(ctx, os.Args[2:])
	case "clear":
		err = a.cmdClear(ctx, os.Args[2:])
	case "set-locale":
		err = a.cmdSetLocale(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	a.flushNotification()
	if err != nil {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: kanakku <command> [flags]

commands:
  add         record an expense
  list        list expenses, optionally by type
  today       today's total
  summary     monthly dashboard totals
  export      export one month (PDF + XLSX)
  export-all  export everything, one section per month
  update      change fields of an expense by id
  delete      remove an expense by id
  clear       remove all data
  set-locale  choose display language (en|ta)`)
}

// flushNotification prints whatever the last operation reported, once.
func (a *app) flushNotification() {
	if n, ok := a.center.Current(); ok {
		fmt.Printf("[%s] %s\n", n.Kind, n.Message)
	}
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	typ := fs.String("type", string(core.TypeDaily), "expense type: daily|credit|special")
	amount := fs.Float64("amount", 0, "amount, must be positive")
	purpose := fs.String("purpose", "", "purpose / category")
	method := fs.String("method", string(core.MethodCash), "payment method: Cash|Card|UPI")
	notes := fs.String("notes", "", "optional notes")
	date := fs.String("date", "", "date and time (RFC 3339 or YYYY-MM-DD), default now")
	remind := fs.Bool("remind", false, "remind me later")
	fs.Parse(args)

	when := time.Now()
	if *date != "" {
		parsed, err := parseWhen(*date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -date: %v\n", err)
			return err
		}
		when = parsed
	}

	e := core.Expense{
		Type:        core.ExpenseType(*typ),
		Amount:      *amount,
		Date:        when,
		Purpose:     *purpose,
		Method:      core.PaymentMethod(*method),
		Notes:       *notes,
		RemindLater: *remind,
	}
	added, err := a.expenses.Add(ctx, a.locale, e)
	if err != nil {
		return err
	}
	fmt.Println(added.ID)
	return nil
}

func (a *app) cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	typ := fs.String("type", "", "filter by type: daily|credit|special")
	fs.Parse(args)

	var items []core.Expense
	if *typ != "" {
		items = a.summary.ByType(core.ExpenseType(*typ))
	} else {
		items = a.repo.All()
	}
	if len(items) == 0 {
		fmt.Println(i18n.T("noTransactionsYet", a.locale, nil))
		return nil
	}

	symbol := i18n.T("rupeeSymbol", a.locale, nil)
	now := time.Now()
	for _, e := range items {
		fmt.Printf("%-36s  %-10s  %s%9.2f  %-12s  %s\n",
			e.ID,
			i18n.T(string(e.Type), a.locale, nil),
			symbol, e.Amount,
			dates.RelativeDayLabel(e.Date, now, a.locale),
			e.Purpose)
	}
	return nil
}

func (a *app) cmdToday() error {
	symbol := i18n.T("rupeeSymbol", a.locale, nil)
	now := time.Now()
	fmt.Printf("%s: %s%.2f\n", i18n.T("today", a.locale, nil), symbol, a.summary.TodayTotal(now))
	fmt.Printf("%s: %s%.2f\n", i18n.T("thisMonth", a.locale, nil), symbol, a.summary.MonthTotal(now.Year(), now.Month()))
	return nil
}

func (a *app) cmdSummary(args []string) error {
	year, month, err := a.parseYearMonth(args)
	if err != nil {
		return err
	}

	label := dates.MonthYear(time.Date(year, month, 1, 0, 0, 0, 0, time.Local), a.locale)
	totals := a.summary.Dashboard(year, month)
	if totals.Grand == 0 && len(a.summary.MonthExpenses(year, month)) == 0 {
		fmt.Println(i18n.T("noDataForMonth", a.locale, nil))
		return nil
	}

	symbol := i18n.T("rupeeSymbol", a.locale, nil)
	fmt.Println(i18n.T("monthlySummaryForMonth", a.locale, map[string]string{"month": label}))
	fmt.Printf("%s: %s%.2f\n", i18n.T("totalDailyExpenses", a.locale, nil), symbol, totals.Daily)
	fmt.Printf("%s: %s%.2f\n", i18n.T("totalCreditCardExpenses", a.locale, nil), symbol, totals.Credit)
	fmt.Printf("%s: %s%.2f\n", i18n.T("totalSpecialExpenses", a.locale, nil), symbol, totals.Special)
	fmt.Printf("%s: %s%.2f\n", i18n.T("grandTotal", a.locale, nil), symbol, totals.Grand)

	if recent := a.summary.Recent(recentCount); len(recent) > 0 {
		fmt.Println()
		fmt.Println(i18n.T("recentTransactions", a.locale, nil))
		now := time.Now()
		for _, e := range recent {
			fmt.Printf("  %-10s  %s%9.2f  %-12s  %s\n",
				i18n.T(string(e.Type), a.locale, nil),
				symbol, e.Amount,
				dates.RelativeDayLabel(e.Date, now, a.locale),
				e.Purpose)
		}
	}
	return nil
}

func (a *app) cmdExport(ctx context.Context, args []string) error {
	year, month, err := a.parseYearMonth(args)
	if err != nil {
		return err
	}

	label := dates.MonthYear(time.Date(year, month, 1, 0, 0, 0, 0, time.Local), a.locale)
	title := i18n.T("monthlySummaryForMonth", a.locale, map[string]string{"month": label})
	pdfPath, xlsxPath, err := a.exporter.ExportPeriod(ctx, a.locale, a.summary.MonthExpenses(year, month), title)
	if err != nil {
		return err
	}
	fmt.Println(pdfPath)
	fmt.Println(xlsxPath)
	return nil
}

func (a *app) cmdExportAll(ctx context.Context) error {
	pdfPath, xlsxPath, err := a.exporter.ExportAll(ctx, a.locale, a.repo.All(), time.Now())
	if err != nil {
		return err
	}
	fmt.Println(pdfPath)
	fmt.Println(xlsxPath)
	return nil
}

func (a *app) cmdUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "expense id")
	typ := fs.String("type", "", "expense type")
	amount := fs.Float64("amount", 0, "amount")
	purpose := fs.String("purpose", "", "purpose / category")
	method := fs.String("method", "", "payment method")
	notes := fs.String("notes", "", "notes")
	date := fs.String("date", "", "date and time")
	remind := fs.Bool("remind", false, "remind me later")
	fs.Parse(args)

	if *id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return fmt.Errorf("missing id")
	}

	var p repository.Patch
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			t := core.ExpenseType(*typ)
			p.Type = &t
		case "amount":
			p.Amount = amount
		case "purpose":
			p.Purpose = purpose
		case "method":
			m := core.PaymentMethod(*method)
			p.Method = &m
		case "notes":
			p.Notes = notes
		case "remind":
			p.RemindLater = remind
		case "date":
			when, err := parseWhen(*date)
			if err != nil {
				parseErr = err
				return
			}
			p.Date = &when
		}
	})
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "invalid -date: %v\n", parseErr)
		return parseErr
	}

	return a.expenses.Update(ctx, a.locale, *id, p)
}

func (a *app) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "expense id")
	fs.Parse(args)

	if *id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return fmt.Errorf("missing id")
	}
	return a.expenses.Delete(ctx, a.locale, *id)
}

func (a *app) cmdClear(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	yes := fs.Bool("yes", false, "confirm clearing all data")
	fs.Parse(args)

	if !*yes {
		fmt.Println(i18n.T("confirmClearAllData", a.locale, nil))
		fmt.Println("re-run with -yes to confirm")
		return nil
	}
	return a.expenses.Clear(ctx, a.locale)
}

func (a *app) cmdSetLocale(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: kanakku set-locale en|ta")
		return fmt.Errorf("missing locale")
	}
	loc := i18n.Locale(args[0])
	if !loc.Valid() {
		fmt.Fprintf(os.Stderr, "unknown locale %q\n", args[0])
		return fmt.Errorf("unknown locale")
	}
	if err := a.settings.SetLocale(ctx, loc); err != nil {
		a.logger.Error("Failed to store locale", log.FieldError, err.Error())
		return err
	}
	a.locale = loc
	fmt.Println(i18n.T("language", loc, nil) + ": " + string(loc))
	return nil
}

func (a *app) parseYearMonth(args []string) (int, time.Month, error) {
	fs := flag.NewFlagSet("period", flag.ExitOnError)
	now := time.Now()
	year := fs.Int("year", now.Year(), "calendar year")
	month := fs.Int("month", int(now.Month()), "calendar month 1-12")
	period := fs.String("period", "", `month label such as "May 2025", overrides -year/-month`)
	fs.Parse(args)

	if *period != "" {
		y, m, ok := dates.ParseMonthYear(*period, a.locale)
		if !ok {
			fmt.Fprintf(os.Stderr, "unrecognized -period %q\n", *period)
			return 0, 0, fmt.Errorf("invalid period")
		}
		return y, m, nil
	}
	if *month < 1 || *month > 12 {
		fmt.Fprintf(os.Stderr, "invalid -month %d\n", *month)
		return 0, 0, fmt.Errorf("invalid month")
	}
	return *year, time.Month(*month), nil
}

func parseWhen(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
