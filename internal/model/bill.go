package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contas-dev/contas/internal/datekey"
)

// TypePaid is the one reserved value of Bill.Type: it marks a bill as
// settled and carries aggregation semantics. Every other value is a
// free-form category.
const TypePaid = "Pago"

// Urgency is the derived classification that drives row styling.
type Urgency string

const (
	UrgencyPaid        Urgency = "paid"
	UrgencyOverdue     Urgency = "overdue"
	UrgencyDueTomorrow Urgency = "due-tomorrow"
	UrgencyOnTime      Urgency = "on-time"
)

// ErrInvalidRecord reports a bill that fails field validation.
var ErrInvalidRecord = errors.New("invalid record")

// Bill is a single recurring obligation.
type Bill struct {
	ID           string
	Name         string
	DueDate      datekey.CalendarDate
	Type         string
	Value        decimal.Decimal
	Observations string
}

// NewID returns a stable identifier for a new bill. IDs survive list
// reordering; positional indices do not.
func NewID() string {
	return uuid.NewString()
}

// Paid reports whether the bill is marked as paid.
func (b Bill) Paid() bool {
	return b.Type == TypePaid
}

// Validate checks the invariants every stored bill must hold.
func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	}
	if _, err := datekey.New(b.DueDate.Year, b.DueDate.Month, b.DueDate.Day); err != nil {
		return fmt.Errorf("%w: due date: %v", ErrInvalidRecord, err)
	}
	if b.Value.IsNegative() {
		return fmt.Errorf("%w: negative value %s", ErrInvalidRecord, b.Value)
	}
	return nil
}
