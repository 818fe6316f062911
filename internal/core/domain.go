package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TypeDaily   ExpenseType = "daily"
	TypeCredit  ExpenseType = "credit"
	TypeSpecial ExpenseType = "special"
)

const (
	MethodCash PaymentMethod = "Cash"
	MethodCard PaymentMethod = "Card"
	MethodUPI  PaymentMethod = "UPI"
)

type (
	ExpenseType   string
	PaymentMethod string

	// Expense is a single recorded spend event. Date carries both the
	// calendar day and the time of day and serializes as RFC 3339.
	Expense struct {
		ID          string        `json:"id"`
		Type        ExpenseType   `json:"type"`
		Amount      float64       `json:"amount"`
		Date        time.Time     `json:"date"`
		Purpose     string        `json:"purpose"`
		Method      PaymentMethod `json:"method"`
		Notes       string        `json:"notes,omitempty"`
		RemindLater bool          `json:"remindLater,omitempty"`
	}
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrMissingDate   = errors.New("missing date")
	ErrEmptyPurpose  = errors.New("empty purpose")
	ErrInvalidType   = errors.New("invalid expense type")
	ErrInvalidMethod = errors.New("invalid payment method")
)

// NewID generates an opaque unique expense identifier.
func NewID() string {
	return uuid.NewString()
}

func (t ExpenseType) Valid() bool {
	switch t {
	case TypeDaily, TypeCredit, TypeSpecial:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI:
		return true
	}
	return false
}

func (e Expense) Validate() error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	if len(strings.TrimSpace(e.Purpose)) == 0 {
		return ErrEmptyPurpose
	}
	if !e.Type.Valid() {
		return ErrInvalidType
	}
	if !e.Method.Valid() {
		return ErrInvalidMethod
	}
	return nil
}
