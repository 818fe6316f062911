package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanakku/internal/core"
	"kanakku/internal/repository"
	"kanakku/internal/storage"
)

func seedRepo(t *testing.T, expenses ...core.Expense) *repository.Repository {
	t.Helper()
	repo := repository.New(storage.NewMemoryKV(), quietLogger())
	for _, e := range expenses {
		_, err := repo.Add(context.Background(), e)
		require.NoError(t, err)
	}
	return repo
}

func typedAt(tp core.ExpenseType, amount float64, date time.Time) core.Expense {
	return core.Expense{
		ID:      core.NewID(),
		Type:    tp,
		Amount:  amount,
		Date:    date,
		Purpose: "p",
		Method:  core.MethodCard,
	}
}

func TestTodayAndMonthTotals(t *testing.T) {
	now := time.Date(2025, 5, 29, 15, 0, 0, 0, time.Local)
	repo := seedRepo(t,
		typedAt(core.TypeDaily, 40, now.Add(-time.Hour)),
		typedAt(core.TypeCredit, 60, now.AddDate(0, 0, -3)),
		typedAt(core.TypeSpecial, 100, now.AddDate(0, -1, 0)),
	)
	svc := NewSummaryService(repo)

	assert.InDelta(t, 40, svc.TodayTotal(now), 1e-9)
	assert.InDelta(t, 100, svc.MonthTotal(2025, time.May), 1e-9)
	assert.InDelta(t, 100, svc.MonthTotal(2025, time.April), 1e-9)
	assert.Equal(t, 0.0, svc.MonthTotal(2023, time.May))
}

func TestDashboardBreakdown(t *testing.T) {
	may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)
	repo := seedRepo(t,
		typedAt(core.TypeDaily, 50, may),
		typedAt(core.TypeCredit, 150.5, may.AddDate(0, 0, 1)),
		typedAt(core.TypeDaily, 10, may.AddDate(0, 1, 0)), // June, excluded
	)
	svc := NewSummaryService(repo)

	totals := svc.Dashboard(2025, time.May)
	assert.InDelta(t, 50, totals.Daily, 1e-9)
	assert.InDelta(t, 150.5, totals.Credit, 1e-9)
	assert.Equal(t, 0.0, totals.Special)
	assert.InDelta(t, 200.5, totals.Grand, 1e-9)
}

func TestRecentKeepsCanonicalOrder(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	repo := seedRepo(t,
		typedAt(core.TypeDaily, 1, base),
		typedAt(core.TypeDaily, 2, base.AddDate(0, 0, 10)),
		typedAt(core.TypeDaily, 3, base.AddDate(0, 0, 5)),
	)
	svc := NewSummaryService(repo)

	recent := svc.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 2.0, recent[0].Amount)
	assert.Equal(t, 3.0, recent[1].Amount)

	assert.Len(t, svc.Recent(10), 3)
}

func TestByType(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	repo := seedRepo(t,
		typedAt(core.TypeSpecial, 1, base),
		typedAt(core.TypeDaily, 2, base.AddDate(0, 0, 1)),
		typedAt(core.TypeSpecial, 3, base.AddDate(0, 0, 2)),
	)
	svc := NewSummaryService(repo)

	got := svc.ByType(core.TypeSpecial)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, core.TypeSpecial, e.Type)
	}
}
