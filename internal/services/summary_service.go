package services

import (
	"time"

	"kanakku/internal/core"
	"kanakku/internal/report"
	"kanakku/internal/repository"
)

// SummaryService derives the home and dashboard figures. Everything is
// recomputed from the canonical collection on demand; nothing is
// cached.
type SummaryService struct {
	repo *repository.Repository
}

func NewSummaryService(repo *repository.Repository) *SummaryService {
	return &SummaryService{repo: repo}
}

// TodayTotal sums the expenses falling on now's calendar day.
func (s *SummaryService) TodayTotal(now time.Time) float64 {
	return report.SumByType(report.FilterByDay(s.repo.All(), now)).Grand
}

// MonthTotal sums the expenses of a calendar month.
func (s *SummaryService) MonthTotal(year int, month time.Month) float64 {
	return report.SumByType(report.FilterByMonth(s.repo.All(), year, month)).Grand
}

// Dashboard returns the per-type breakdown for a calendar month.
func (s *SummaryService) Dashboard(year int, month time.Month) report.Totals {
	return report.SumByType(report.FilterByMonth(s.repo.All(), year, month))
}

// MonthExpenses lists a month's entries in canonical (date-descending)
// order.
func (s *SummaryService) MonthExpenses(year int, month time.Month) []core.Expense {
	return report.FilterByMonth(s.repo.All(), year, month)
}

// Recent returns the newest n entries.
func (s *SummaryService) Recent(n int) []core.Expense {
	all := s.repo.All()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// ByType lists the entries of one classification.
func (s *SummaryService) ByType(t core.ExpenseType) []core.Expense {
	return report.FilterByType(s.repo.All(), t)
}
