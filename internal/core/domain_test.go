package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:      NewID(),
		Type:    TypeDaily,
		Amount:  50,
		Date:    time.Date(2025, 5, 1, 10, 0, 0, 0, time.Local),
		Purpose: "Groceries",
		Method:  MethodCash,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		mutate func(*Expense)
		want   error
	}{
		{func(e *Expense) { e.Amount = 0 }, ErrInvalidAmount},
		{func(e *Expense) { e.Amount = -3.50 }, ErrInvalidAmount},
		{func(e *Expense) { e.Date = time.Time{} }, ErrMissingDate},
		{func(e *Expense) { e.Purpose = "  " }, ErrEmptyPurpose},
		{func(e *Expense) { e.Type = "weekly" }, ErrInvalidType},
		{func(e *Expense) { e.Method = "Cheque" }, ErrInvalidMethod},
	}
	for i, tc := range cases {
		e := good
		tc.mutate(&e)
		if err := e.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestExpenseValidateMinimumAmount(t *testing.T) {
	e := Expense{
		Type:    TypeSpecial,
		Amount:  0.01,
		Date:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		Purpose: "x",
		Method:  MethodUPI,
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("smallest positive amount should validate, got %v", err)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestExpenseJSONDate(t *testing.T) {
	e := Expense{
		ID:      "abc",
		Type:    TypeCredit,
		Amount:  150.5,
		Date:    time.Date(2025, 5, 29, 10, 0, 0, 0, time.UTC),
		Purpose: "Fuel",
		Method:  MethodCard,
	}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var back Expense
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Date.Equal(e.Date) {
		t.Fatalf("date round-trip mismatch: %v != %v", back.Date, e.Date)
	}
}
