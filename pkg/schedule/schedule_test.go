package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount *Discount
		expected string
	}{
		{name: "No discount", price: "100.00", discount: nil, expected: "100.00"},
		{name: "Fixed amount", price: "100.00", discount: &Discount{Amount: decPtr("30")}, expected: "70.00"},
		{name: "Rate", price: "100.00", discount: &Discount{Rate: decPtr("0.25")}, expected: "75.00"},
		{name: "Rate rounds to cents", price: "99.99", discount: &Discount{Rate: decPtr("0.333")}, expected: "66.69"},
		{name: "Amount greater than price", price: "20.00", discount: &Discount{Amount: decPtr("50")}, expected: "0"},
		{name: "Full rate", price: "20.00", discount: &Discount{Rate: decPtr("1")}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscount(dec(tt.price), tt.discount)
			assert.True(t, dec(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestDiscount_Validate(t *testing.T) {
	tests := []struct {
		name      string
		discount  *Discount
		expectErr bool
	}{
		{name: "Nil discount", discount: nil},
		{name: "Empty discount", discount: &Discount{}},
		{name: "Amount", discount: &Discount{Amount: decPtr("10")}},
		{name: "Rate", discount: &Discount{Rate: decPtr("0.1")}},
		{name: "Both set", discount: &Discount{Amount: decPtr("10"), Rate: decPtr("0.1")}, expectErr: true},
		{name: "Negative amount", discount: &Discount{Amount: decPtr("-1")}, expectErr: true},
		{name: "Zero rate", discount: &Discount{Rate: decPtr("0")}, expectErr: true},
		{name: "Rate above one", discount: &Discount{Rate: decPtr("1.5")}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.discount.Validate()
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidDiscount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplit_SumsToTotal(t *testing.T) {
	plans := [][]int{{100}, {30, 70}, {30, 35, 35}, {30, 25, 25, 20}, {33, 33, 34}}
	totals := []string{"0.01", "1.00", "99.99", "100.00", "333.33", "1234.57", "9999.99"}

	for _, plan := range plans {
		for _, total := range totals {
			amounts := Split(dec(total), plan)
			require.Len(t, amounts, len(plan))
			sum := decimal.Zero
			for _, a := range amounts {
				assert.False(t, a.IsNegative())
				sum = sum.Add(a)
			}
			assert.True(t, dec(total).Equal(sum), "plan %v total %s sum %s", plan, total, sum)
		}
	}
}

func TestSplit(t *testing.T) {
	amounts := Split(dec("100.00"), []int{30, 35, 35})
	assert.True(t, dec("30").Equal(amounts[0]))
	assert.True(t, dec("35").Equal(amounts[1]))
	assert.True(t, dec("35").Equal(amounts[2]))

	assert.Nil(t, Split(dec("100.00"), nil))
}

func TestSplit_ManySmallInstallments(t *testing.T) {
	plan := make([]int, 20)
	for i := range plan {
		plan[i] = 5
	}

	amounts := Split(dec("0.10"), plan)
	require.Len(t, amounts, 20)
	sum := decimal.Zero
	for _, a := range amounts {
		assert.False(t, a.IsNegative(), "negative installment %s", a)
		sum = sum.Add(a)
	}
	assert.True(t, dec("0.10").Equal(sum))

	amounts = Split(dec("0.05"), []int{33, 33, 34})
	assert.True(t, dec("0.01").Equal(amounts[0]))
	assert.True(t, dec("0.01").Equal(amounts[1]))
	assert.True(t, dec("0.03").Equal(amounts[2]))
}

func TestBuild_TooSmallForPlan(t *testing.T) {
	limits := MustParseLimits("0:5,5,5,5,5,5,5,5,5,5,5,5,5,5,5,5,5,5,5,5")

	s := Build(dec("0.10"), date(2024, time.March, 17), limits)
	require.Len(t, s, 1)
	assert.True(t, dec("0.10").Equal(s[0].Amount))

	s = Build(dec("100"), date(2024, time.March, 17), limits)
	require.Len(t, s, 20)
	assert.True(t, dec("100").Equal(s.Total()))
}

func TestDueDates(t *testing.T) {
	dates := DueDates(time.Date(2024, time.January, 31, 15, 4, 5, 0, time.UTC), 4)

	assert.Equal(t, []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}, dates)
}

func TestFirstDueDate(t *testing.T) {
	signed := date(2024, time.March, 1)
	early := date(2024, time.February, 1)
	late := date(2024, time.May, 2)

	assert.Equal(t, date(2024, time.March, 17), FirstDueDate(signed, nil, 16))
	assert.Equal(t, date(2024, time.March, 17), FirstDueDate(signed, &early, 16))
	assert.Equal(t, late, FirstDueDate(signed, &late, 16))
}

func TestBuild(t *testing.T) {
	limits := MustParseLimits(DefaultLimits)

	tests := []struct {
		name         string
		total        string
		installments int
	}{
		{name: "Free order has no schedule", total: "0", installments: 0},
		{name: "Small price single installment", total: "150", installments: 1},
		{name: "Two installments", total: "200", installments: 2},
		{name: "Three installments", total: "999.99", installments: 3},
		{name: "Four installments", total: "1000", installments: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Build(dec(tt.total), date(2024, time.March, 17), limits)
			require.Len(t, s, tt.installments)
			if tt.installments == 0 {
				return
			}
			assert.True(t, dec(tt.total).Equal(s.Total()))
			for i, installment := range s {
				assert.Equal(t, StatePending, installment.State)
				assert.NotEqual(t, uuid.Nil, installment.ID)
				assert.Equal(t, date(2024, time.March+time.Month(i), 17), installment.DueDate)
			}
		})
	}
}

func newSchedule(states ...State) Schedule {
	s := make(Schedule, len(states))
	for i, state := range states {
		s[i] = Installment{
			ID:      uuid.New(),
			Amount:  dec("100"),
			DueDate: date(2024, time.January+time.Month(i), 10),
			State:   state,
		}
	}
	return s
}

func TestSchedule_States(t *testing.T) {
	tests := []struct {
		name         string
		schedule     Schedule
		isPaid       bool
		hasPaid      bool
		hasRefused   bool
		firstRefused bool
		paid         string
	}{
		{name: "Empty", schedule: Schedule{}, paid: "0"},
		{name: "All pending", schedule: newSchedule(StatePending, StatePending), paid: "0"},
		{name: "First paid", schedule: newSchedule(StatePaid, StatePending), hasPaid: true, paid: "100"},
		{name: "All paid", schedule: newSchedule(StatePaid, StatePaid), isPaid: true, hasPaid: true, paid: "200"},
		{name: "First refused", schedule: newSchedule(StateRefused, StatePending), hasRefused: true, firstRefused: true, paid: "0"},
		{name: "Second refused", schedule: newSchedule(StatePaid, StateRefused), hasPaid: true, hasRefused: true, paid: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isPaid, tt.schedule.IsPaid())
			assert.Equal(t, tt.hasPaid, tt.schedule.HasPaid())
			assert.Equal(t, tt.hasRefused, tt.schedule.HasRefused())
			assert.Equal(t, tt.firstRefused, tt.schedule.FirstRefused())
			assert.True(t, dec(tt.paid).Equal(tt.schedule.PaidAmount()))
		})
	}
}

func TestSchedule_SetState(t *testing.T) {
	s := newSchedule(StatePending, StatePending)

	require.NoError(t, s.SetState(s[1].ID, StatePaid))
	assert.Equal(t, StatePaid, s[1].State)

	assert.ErrorIs(t, s.SetState(uuid.New(), StatePaid), ErrInstallmentNotFound)
}

func TestSchedule_IsNextDue(t *testing.T) {
	s := newSchedule(StatePaid, StatePending, StatePending)

	assert.True(t, s.IsNextDue(s[1].ID, date(2024, time.February, 10).Add(13*time.Hour)))
	assert.False(t, s.IsNextDue(s[1].ID, date(2024, time.February, 9)))
	assert.False(t, s.IsNextDue(s[2].ID, date(2024, time.March, 10)))
	assert.False(t, s.IsNextDue(s[0].ID, date(2024, time.January, 10)))

	paid := newSchedule(StatePaid)
	assert.False(t, paid.IsNextDue(paid[0].ID, date(2024, time.January, 10)))
}

func TestSchedule_Due(t *testing.T) {
	s := newSchedule(StatePaid, StatePending, StateRefused, StatePending)

	due := s.Due(date(2024, time.March, 10))
	require.Len(t, due, 1)
	assert.Equal(t, s[1].ID, due[0].ID)

	assert.Empty(t, s.Due(date(2024, time.February, 9)))
}

func TestSchedule_CancelPending(t *testing.T) {
	s := newSchedule(StatePaid, StateRefused, StatePending)
	s.CancelPending()

	assert.Equal(t, StatePaid, s[0].State)
	assert.Equal(t, StateCanceled, s[1].State)
	assert.Equal(t, StateCanceled, s[2].State)
}

func TestSchedule_RetryRefused(t *testing.T) {
	s := newSchedule(StatePaid, StateRefused, StatePending, StateRefused)

	assert.Equal(t, 2, s.RetryRefused())
	assert.Equal(t, StatePaid, s[0].State)
	assert.Equal(t, StatePending, s[1].State)
	assert.Equal(t, StatePending, s[3].State)
	assert.False(t, s.HasRefused())
	assert.Len(t, s.Due(date(2024, time.April, 10)), 3)

	assert.Equal(t, 0, s.RetryRefused())
}
