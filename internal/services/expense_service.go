// Package services orchestrates repository, aggregation, export and
// notification flows on behalf of the user-facing surface.
package services

import (
	"context"
	"errors"
	"fmt"

	"kanakku/internal/core"
	"kanakku/internal/i18n"
	"kanakku/internal/log"
	"kanakku/internal/notify"
	"kanakku/internal/repository"
)

// ExpenseService applies validation before any mutation and reports
// outcomes through the notification center.
type ExpenseService struct {
	repo   *repository.Repository
	notify *notify.Center
	logger *log.Logger
}

func NewExpenseService(repo *repository.Repository, center *notify.Center, logger *log.Logger) *ExpenseService {
	return &ExpenseService{
		repo:   repo,
		notify: center,
		logger: logger.WithComponent(log.ComponentService),
	}
}

// Add validates and inserts a new expense, assigning its id. A
// validation failure aborts before any write.
func (s *ExpenseService) Add(ctx context.Context, locale i18n.Locale, e core.Expense) (core.Expense, error) {
	if e.ID == "" {
		e.ID = core.NewID()
	}
	if err := e.Validate(); err != nil {
		s.notify.Error(validationMessage(err, locale))
		return core.Expense{}, err
	}

	if _, err := s.repo.Add(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "Add failed",
			log.FieldOperation, log.OpAdd, log.FieldError, err.Error())
		s.notify.Error(i18n.T("errorSavingExpense", locale, nil))
		return core.Expense{}, fmt.Errorf("add expense: %w", err)
	}

	s.notify.Success(i18n.T("expenseSaved", locale, nil))
	return e, nil
}

// Update merges the patch into an existing expense. The patched result
// is re-validated before anything is written.
func (s *ExpenseService) Update(ctx context.Context, locale i18n.Locale, id string, p repository.Patch) error {
	current, err := s.repo.GetByID(id)
	if err != nil {
		s.notify.Error(i18n.T("errorUpdatingExpense", locale, nil))
		return err
	}

	preview := patched(current, p)
	if err := preview.Validate(); err != nil {
		s.notify.Error(validationMessage(err, locale))
		return err
	}

	if _, err := s.repo.Update(ctx, id, p); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Update failed",
				log.FieldOperation, log.OpUpdate,
				log.FieldExpenseID, id,
				log.FieldError, err.Error())
		}
		s.notify.Error(i18n.T("errorUpdatingExpense", locale, nil))
		return err
	}

	s.notify.Success(i18n.T("expenseUpdated", locale, nil))
	return nil
}

// Delete removes an expense by id.
func (s *ExpenseService) Delete(ctx context.Context, locale i18n.Locale, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.notify.Error(i18n.T("errorDeletingExpense", locale, nil))
		return err
	}
	s.notify.Success(i18n.T("expenseDeleted", locale, nil))
	return nil
}

// Clear wipes the whole collection.
func (s *ExpenseService) Clear(ctx context.Context, locale i18n.Locale) error {
	if err := s.repo.Clear(ctx); err != nil {
		s.notify.Error(i18n.T("errorClearingData", locale, nil))
		return err
	}
	s.notify.Success(i18n.T("dataCleared", locale, nil))
	return nil
}

// Get looks up one expense; the not-found notification guides the
// caller back to a safe view.
func (s *ExpenseService) Get(locale i18n.Locale, id string) (core.Expense, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		s.notify.Error(i18n.T("errorUpdatingExpense", locale, nil))
		return core.Expense{}, err
	}
	return e, nil
}

func validationMessage(err error, locale i18n.Locale) string {
	if errors.Is(err, core.ErrInvalidAmount) {
		return i18n.T("amountPositive", locale, nil)
	}
	return i18n.T("validationError", locale, nil)
}

func patched(e core.Expense, p repository.Patch) core.Expense {
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Purpose != nil {
		e.Purpose = *p.Purpose
	}
	if p.Method != nil {
		e.Method = *p.Method
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.RemindLater != nil {
		e.RemindLater = *p.RemindLater
	}
	return e
}
