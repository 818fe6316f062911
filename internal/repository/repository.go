// Package repository owns the canonical expense collection. The
// in-memory view is always sorted by date descending and every
// mutation writes the full collection back to the KV store before
// returning.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"kanakku/internal/core"
	"kanakku/internal/log"
	"kanakku/internal/storage"
)

var ErrNotFound = errors.New("expense not found")

// Patch carries the fields of an update; nil fields are left untouched.
type Patch struct {
	Type        *core.ExpenseType
	Amount      *float64
	Date        *time.Time
	Purpose     *string
	Method      *core.PaymentMethod
	Notes       *string
	RemindLater *bool
}

type Repository struct {
	mu       sync.Mutex
	store    storage.KV
	logger   *log.Logger
	expenses []core.Expense
}

func New(store storage.KV, logger *log.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger.WithComponent(log.ComponentRepository),
	}
}

// Load reads the persisted collection. Malformed stored JSON degrades
// to an empty collection: logged, never surfaced.
func (r *Repository) Load(ctx context.Context) ([]core.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(ctx, storage.KeyExpenses)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	if !ok || raw == "" {
		r.expenses = nil
		return nil, nil
	}

	var expenses []core.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		r.logger.WarnContext(ctx, "Stored expenses are malformed, starting empty",
			log.FieldOperation, log.OpLoad, log.FieldError, err.Error())
		r.expenses = nil
		return nil, nil
	}

	sortByDateDesc(expenses)
	r.expenses = expenses
	return r.snapshot(), nil
}

// All returns a copy of the canonical, date-descending collection.
func (r *Repository) All() []core.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Save replaces the collection and persists it.
func (r *Repository) Save(ctx context.Context, expenses []core.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := append([]core.Expense(nil), expenses...)
	sortByDateDesc(sorted)
	return r.persist(ctx, sorted)
}

// Add inserts the expense, re-sorts, persists and returns the updated
// collection.
func (r *Repository) Add(ctx context.Context, e core.Expense) ([]core.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(r.snapshot(), e)
	sortByDateDesc(next)
	if err := r.persist(ctx, next); err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "Expense added",
		log.FieldOperation, log.OpAdd,
		log.FieldExpenseID, e.ID,
		log.FieldType, string(e.Type),
		log.FieldAmount, e.Amount)
	return r.snapshot(), nil
}

// Update merges the patch into the matching entry and re-sorts; a
// patched date may reorder the collection.
func (r *Repository) Update(ctx context.Context, id string, p Patch) ([]core.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snapshot()
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}

	apply(&next[idx], p)
	sortByDateDesc(next)
	if err := r.persist(ctx, next); err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "Expense updated",
		log.FieldOperation, log.OpUpdate, log.FieldExpenseID, id)
	return r.snapshot(), nil
}

// Delete removes the matching entry.
func (r *Repository) Delete(ctx context.Context, id string) ([]core.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snapshot()
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}

	next = append(next[:idx], next[idx+1:]...)
	if err := r.persist(ctx, next); err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "Expense deleted",
		log.FieldOperation, log.OpDelete, log.FieldExpenseID, id)
	return r.snapshot(), nil
}

// Clear empties the collection.
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.persist(ctx, []core.Expense{}); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "All expenses cleared", log.FieldOperation, log.OpClear)
	return nil
}

// GetByID finds a single expense in the canonical collection.
func (r *Repository) GetByID(id string) (core.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Expense{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
}

func (r *Repository) snapshot() []core.Expense {
	return append([]core.Expense(nil), r.expenses...)
}

// persist serializes and writes the whole collection, then swaps the
// in-memory view. Callers hold the mutex.
func (r *Repository) persist(ctx context.Context, expenses []core.Expense) error {
	raw, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyExpenses, string(raw)); err != nil {
		return fmt.Errorf("persist expenses: %w", err)
	}
	r.expenses = expenses
	return nil
}

func apply(e *core.Expense, p Patch) {
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
}

func sortByDateDesc(expenses []core.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
}
