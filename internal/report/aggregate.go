// Package report computes derived views over expense collections:
// per-type totals, calendar filters and the monthly partition that
// feeds the dashboard and the exporters. All functions are pure.
package report

import (
	"sort"
	"time"

	"kanakku/internal/core"
	"kanakku/internal/dates"
	"kanakku/internal/i18n"
)

// Totals aggregates amounts per expense type plus the grand total.
type Totals struct {
	Daily   float64
	Credit  float64
	Special float64
	Grand   float64
}

// MonthGroup is one calendar month's worth of expenses. Year and Month
// are the true sort key; Label is display identity only.
type MonthGroup struct {
	Year     int
	Month    time.Month
	Label    string
	Expenses []core.Expense
}

// SumByType partitions by expense type and sums amounts per partition.
// The grand total equals the sum over the full input.
func SumByType(expenses []core.Expense) Totals {
	var t Totals
	for _, e := range expenses {
		switch e.Type {
		case core.TypeDaily:
			t.Daily += e.Amount
		case core.TypeCredit:
			t.Credit += e.Amount
		case core.TypeSpecial:
			t.Special += e.Amount
		}
		t.Grand += e.Amount
	}
	return t
}

// FilterByMonth keeps expenses whose local calendar year and month
// match exactly.
func FilterByMonth(expenses []core.Expense, year int, month time.Month) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// FilterByDay keeps expenses falling on the same local calendar day.
func FilterByDay(expenses []core.Expense, day time.Time) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if dates.SameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByType keeps expenses of a single classification.
func FilterByType(expenses []core.Expense, t core.ExpenseType) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// GroupByMonth partitions expenses by their locale month-year label and
// returns the groups sorted chronologically ascending. Every expense
// lands in exactly one group; within a group the input order is kept.
func GroupByMonth(expenses []core.Expense, locale i18n.Locale) []MonthGroup {
	index := map[string]int{}
	var groups []MonthGroup
	for _, e := range expenses {
		label := dates.MonthYear(e.Date, locale)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{
				Year:  e.Date.Year(),
				Month: e.Date.Month(),
				Label: label,
			})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
	}
	SortGroups(groups, locale)
	return groups
}

// SortGroups orders groups chronologically ascending. Groups carrying a
// zero (Year, Month) key are re-resolved from their label; labels that
// still fail to parse sort after resolvable groups, ordered lexically
// by label.
func SortGroups(groups []MonthGroup, locale i18n.Locale) {
	for i := range groups {
		if groups[i].Year == 0 || groups[i].Month == 0 {
			if year, month, ok := dates.ParseMonthYear(groups[i].Label, locale); ok {
				groups[i].Year = year
				groups[i].Month = month
			}
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		gi, gj := groups[i], groups[j]
		ri := gi.Year != 0 && gi.Month != 0
		rj := gj.Year != 0 && gj.Month != 0
		switch {
		case ri && rj:
			if gi.Year != gj.Year {
				return gi.Year < gj.Year
			}
			return gi.Month < gj.Month
		case ri:
			return true
		case rj:
			return false
		default:
			return gi.Label < gj.Label
		}
	})
}
