// Package ledger owns the in-memory bill list and derives the
// render-ready month groupings from it.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/model"
)

// ErrIndexOutOfRange reports a positional index that does not name a
// current list slot. Indices are physical positions, not stable
// identifiers; callers holding a Bill.ID must re-resolve it after any
// mutation.
var ErrIndexOutOfRange = errors.New("index out of range")

// Ledger is the exclusive owner of the bill list. All access is
// single-goroutine: one mutation runs to completion before the caller
// persists the snapshot and re-renders.
type Ledger struct {
	bills []model.Bill
}

// New creates a Ledger over an initial list, typically the loaded
// store snapshot.
func New(bills []model.Bill) *Ledger {
	return &Ledger{bills: append([]model.Bill(nil), bills...)}
}

// Len returns the number of bills.
func (l *Ledger) Len() int {
	return len(l.bills)
}

// Bills returns a copy of the current list in insertion order.
func (l *Ledger) Bills() []model.Bill {
	return append([]model.Bill(nil), l.bills...)
}

// Get returns the bill at index.
func (l *Ledger) Get(index int) (model.Bill, error) {
	if index < 0 || index >= len(l.bills) {
		return model.Bill{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(l.bills))
	}
	return l.bills[index], nil
}

// Add validates and appends a bill.
func (l *Ledger) Add(b model.Bill) error {
	if err := b.Validate(); err != nil {
		return err
	}
	l.bills = append(l.bills, b)
	return nil
}

// Update validates and replaces the bill at index.
func (l *Ledger) Update(index int, b model.Bill) error {
	if index < 0 || index >= len(l.bills) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(l.bills))
	}
	if err := b.Validate(); err != nil {
		return err
	}
	l.bills[index] = b
	return nil
}

// Remove deletes the bill at index, shifting subsequent indices down.
func (l *Ledger) Remove(index int) error {
	if index < 0 || index >= len(l.bills) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(l.bills))
	}
	l.bills = append(l.bills[:index], l.bills[index+1:]...)
	return nil
}

// MonthBucket groups the bills due in one calendar month, with totals.
// Positions holds each bill's index in the full list, parallel to Bills,
// so callers can address records positionally from a grouped view.
type MonthBucket struct {
	Key            string // yyyy-mm
	Bills          []model.Bill
	Positions      []int
	TotalDue       decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalRemaining decimal.Decimal
}

// GroupByMonth partitions the bills by the due date's year and month.
// Buckets are emitted in first-seen order over the list; within a bucket
// bills keep insertion order. The buckets are derived fresh on every
// call and carry no identity between calls.
func (l *Ledger) GroupByMonth() []MonthBucket {
	byKey := make(map[string]int)
	var buckets []MonthBucket

	for pos, b := range l.bills {
		key := b.DueDate.MonthKey()
		i, seen := byKey[key]
		if !seen {
			i = len(buckets)
			byKey[key] = i
			buckets = append(buckets, MonthBucket{
				Key:       key,
				TotalDue:  decimal.Zero,
				TotalPaid: decimal.Zero,
			})
		}
		bucket := &buckets[i]
		bucket.Bills = append(bucket.Bills, b)
		bucket.Positions = append(bucket.Positions, pos)
		bucket.TotalDue = bucket.TotalDue.Add(b.Value)
		if b.Paid() {
			bucket.TotalPaid = bucket.TotalPaid.Add(b.Value)
		}
	}

	for i := range buckets {
		buckets[i].TotalRemaining = buckets[i].TotalDue.Sub(buckets[i].TotalPaid)
	}
	return buckets
}

// Classify derives the urgency of a bill relative to today. Paid status
// is checked first: a settled bill is never shown as overdue, no matter
// how far past its due date.
func Classify(b model.Bill, today datekey.CalendarDate) model.Urgency {
	if b.Paid() {
		return model.UrgencyPaid
	}
	switch days := datekey.DaysUntil(b.DueDate, today); {
	case days < 0:
		return model.UrgencyOverdue
	case days == 1:
		return model.UrgencyDueTomorrow
	default:
		return model.UrgencyOnTime
	}
}
