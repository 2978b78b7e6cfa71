// Package schedule computes discounted prices and installment payment
// schedules for orders.
package schedule

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/coursemarket/pkg/money"
)

type State string

const (
	StatePending  State = "pending"
	StatePaid     State = "paid"
	StateRefused  State = "refused"
	StateRefunded State = "refunded"
	StateCanceled State = "canceled"
)

var (
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrInvalidDiscount     = errors.New("invalid discount")
)

var hundred = decimal.NewFromInt(100)

type Installment struct {
	ID      uuid.UUID       `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
	State   State           `json:"state"`
}

type Schedule []Installment

// Discount holds either a fixed Amount or a Rate in (0, 1].
type Discount struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Rate   *decimal.Decimal `json:"rate,omitempty"`
}

func (d *Discount) Validate() error {
	if d == nil {
		return nil
	}
	if d.Amount != nil && d.Rate != nil {
		return ErrInvalidDiscount
	}
	if d.Amount != nil && d.Amount.IsNegative() {
		return ErrInvalidDiscount
	}
	if d.Rate != nil && (!d.Rate.IsPositive() || d.Rate.GreaterThan(decimal.NewFromInt(1))) {
		return ErrInvalidDiscount
	}
	return nil
}

func ApplyDiscount(price decimal.Decimal, d *Discount) decimal.Decimal {
	if d == nil {
		return price
	}
	discounted := price
	switch {
	case d.Amount != nil:
		discounted = price.Sub(*d.Amount)
	case d.Rate != nil:
		discounted = price.Mul(decimal.NewFromInt(1).Sub(*d.Rate))
	}
	discounted = money.Round(discounted)
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}

// Split divides total following percentages. Every amount but the last is
// rounded down to the cent and the last one takes the remainder, so the
// amounts sum to total and none is negative.
func Split(total decimal.Decimal, percentages []int) []decimal.Decimal {
	if len(percentages) == 0 {
		return nil
	}
	amounts := make([]decimal.Decimal, len(percentages))
	allocated := decimal.Zero
	for i, p := range percentages[:len(percentages)-1] {
		amounts[i] = money.Floor(total.Mul(decimal.NewFromInt(int64(p))).Div(hundred))
		allocated = allocated.Add(amounts[i])
	}
	amounts[len(amounts)-1] = total.Sub(allocated)
	return amounts
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// DueDates returns n monthly dates starting at start. Days that do not
// exist in a month are clamped to its last day.
func DueDates(start time.Time, n int) []time.Time {
	start = Day(start)
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = addMonths(start, i)
	}
	return dates
}

// FirstDueDate is the end of the withdrawal period, postponed to the course
// start when the course begins later.
func FirstDueDate(signedOn time.Time, courseStart *time.Time, withdrawalDays int) time.Time {
	due := Day(signedOn).AddDate(0, 0, withdrawalDays)
	if courseStart != nil && Day(*courseStart).After(due) {
		return Day(*courseStart)
	}
	return due
}

func Build(total decimal.Decimal, start time.Time, limits Limits) Schedule {
	if !total.IsPositive() {
		return nil
	}
	amounts := Split(total, limits.PercentagesFor(total))
	if slices.ContainsFunc(amounts, func(a decimal.Decimal) bool { return !a.IsPositive() }) {
		// too small to spread over the plan
		amounts = []decimal.Decimal{total}
	}
	dates := DueDates(start, len(amounts))
	s := make(Schedule, len(amounts))
	for i := range amounts {
		s[i] = Installment{
			ID:      uuid.New(),
			Amount:  amounts[i],
			DueDate: dates[i],
			State:   StatePending,
		}
	}
	return s
}

func (s Schedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, i := range s {
		total = total.Add(i.Amount)
	}
	return total
}

func (s Schedule) PaidAmount() decimal.Decimal {
	paid := decimal.Zero
	for _, i := range s {
		if i.State == StatePaid {
			paid = paid.Add(i.Amount)
		}
	}
	return paid
}

func (s Schedule) IsPaid() bool {
	if len(s) == 0 {
		return false
	}
	for _, i := range s {
		if i.State != StatePaid {
			return false
		}
	}
	return true
}

func (s Schedule) HasPaid() bool {
	for _, i := range s {
		if i.State == StatePaid {
			return true
		}
	}
	return false
}

func (s Schedule) HasRefused() bool {
	for _, i := range s {
		if i.State == StateRefused {
			return true
		}
	}
	return false
}

func (s Schedule) FirstRefused() bool {
	return len(s) > 0 && s[0].State == StateRefused
}

func (s Schedule) Find(id uuid.UUID) (*Installment, bool) {
	for i := range s {
		if s[i].ID == id {
			return &s[i], true
		}
	}
	return nil, false
}

func (s Schedule) SetState(id uuid.UUID, state State) error {
	installment, ok := s.Find(id)
	if !ok {
		return ErrInstallmentNotFound
	}
	installment.State = state
	return nil
}

// Next returns the first installment that is neither paid nor closed.
func (s Schedule) Next() *Installment {
	for i := range s {
		if s[i].State == StatePending || s[i].State == StateRefused {
			return &s[i]
		}
	}
	return nil
}

func (s Schedule) IsNextDue(id uuid.UUID, target time.Time) bool {
	next := s.Next()
	return next != nil && next.ID == id && SameDay(next.DueDate, target)
}

func (s Schedule) Due(on time.Time) []Installment {
	var due []Installment
	for _, i := range s {
		if i.State == StatePending && !Day(i.DueDate).After(Day(on)) {
			due = append(due, i)
		}
	}
	return due
}

// RetryRefused puts refused installments back in the debit queue and
// returns how many were reset.
func (s Schedule) RetryRefused() int {
	n := 0
	for i := range s {
		if s[i].State == StateRefused {
			s[i].State = StatePending
			n++
		}
	}
	return n
}

// CancelPending closes every installment still waiting for a payment.
func (s Schedule) CancelPending() {
	for i := range s {
		if s[i].State == StatePending || s[i].State == StateRefused {
			s[i].State = StateCanceled
		}
	}
}
