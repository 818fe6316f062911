package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanakku/internal/core"
	"kanakku/internal/i18n"
	"kanakku/internal/log"
	"kanakku/internal/notify"
	"kanakku/internal/repository"
	"kanakku/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func newFixture(t *testing.T) (*ExpenseService, *repository.Repository, *notify.Center) {
	t.Helper()
	repo := repository.New(storage.NewMemoryKV(), quietLogger())
	center := notify.NewCenter()
	return NewExpenseService(repo, center, quietLogger()), repo, center
}

func valid(day int) core.Expense {
	return core.Expense{
		Type:    core.TypeDaily,
		Amount:  25,
		Date:    time.Date(2025, 5, day, 8, 0, 0, 0, time.Local),
		Purpose: "Tea",
		Method:  core.MethodCash,
	}
}

func TestAddAssignsIDAndNotifies(t *testing.T) {
	svc, repo, center := newFixture(t)

	e, err := svc.Add(context.Background(), i18n.English, valid(5))
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Len(t, repo.All(), 1)

	n, ok := center.Current()
	require.True(t, ok)
	assert.Equal(t, core.NotifySuccess, n.Kind)
	assert.Equal(t, "Expense saved successfully!", n.Message)
}

func TestAddValidationAbortsBeforeWrite(t *testing.T) {
	svc, repo, center := newFixture(t)

	bad := valid(5)
	bad.Amount = -1
	_, err := svc.Add(context.Background(), i18n.English, bad)
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
	assert.Empty(t, repo.All(), "no partial write on validation failure")

	n, ok := center.Current()
	require.True(t, ok)
	assert.Equal(t, core.NotifyError, n.Kind)
	assert.Equal(t, "Amount must be a positive number.", n.Message)
}

func TestAddValidationMessageLocalized(t *testing.T) {
	svc, _, center := newFixture(t)

	bad := valid(5)
	bad.Purpose = ""
	_, err := svc.Add(context.Background(), i18n.Tamil, bad)
	assert.ErrorIs(t, err, core.ErrEmptyPurpose)

	n, ok := center.Current()
	require.True(t, ok)
	assert.Equal(t, "தேவையான அனைத்து புலங்களையும் சரியாக நிரப்பவும்.", n.Message)
}

func TestUpdateHappyPath(t *testing.T) {
	svc, repo, center := newFixture(t)
	ctx := context.Background()

	e, err := svc.Add(ctx, i18n.English, valid(5))
	require.NoError(t, err)

	amount := 99.99
	require.NoError(t, svc.Update(ctx, i18n.English, e.ID, repository.Patch{Amount: &amount}))

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.99, got.Amount)

	n, _ := center.Current()
	assert.Equal(t, "Expense updated successfully!", n.Message)
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	svc, repo, _ := newFixture(t)
	ctx := context.Background()

	e, err := svc.Add(ctx, i18n.English, valid(5))
	require.NoError(t, err)

	zero := 0.0
	err = svc.Update(ctx, i18n.English, e.ID, repository.Patch{Amount: &zero})
	assert.ErrorIs(t, err, core.ErrInvalidAmount)

	got, _ := repo.GetByID(e.ID)
	assert.Equal(t, 25.0, got.Amount, "invalid patch must not be applied")
}

func TestUpdateNotFoundNotifies(t *testing.T) {
	svc, _, center := newFixture(t)

	amount := 1.0
	err := svc.Update(context.Background(), i18n.English, "missing", repository.Patch{Amount: &amount})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, ok := center.Current()
	require.True(t, ok)
	assert.Equal(t, core.NotifyError, n.Kind)
}

func TestDeleteAndClear(t *testing.T) {
	svc, repo, center := newFixture(t)
	ctx := context.Background()

	e, err := svc.Add(ctx, i18n.English, valid(5))
	require.NoError(t, err)
	_, err = svc.Add(ctx, i18n.English, valid(6))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, i18n.English, e.ID))
	assert.Len(t, repo.All(), 1)
	n, _ := center.Current()
	assert.Equal(t, "Expense deleted successfully!", n.Message)

	require.NoError(t, svc.Clear(ctx, i18n.English))
	assert.Empty(t, repo.All())
	n, _ = center.Current()
	assert.Equal(t, "All data cleared successfully.", n.Message)
}

func TestGetMissingRedirectsWithNotification(t *testing.T) {
	svc, _, center := newFixture(t)

	_, err := svc.Get(i18n.English, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, ok := center.Current()
	assert.True(t, ok)
}
