package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
)

type mocks struct {
	payments *MockPayments
	orders   *MockOrderReaper
	batches  *MockBatchOrderReaper
	cards    *MockCardCleaner
}

var now = time.Date(2024, time.June, 3, 6, 0, 0, 0, time.UTC)

var settings = Settings{
	Interval:                   time.Hour,
	StuckOrderDelay:            24 * time.Hour,
	StuckCertificateOrderDelay: 72 * time.Hour,
	CardRetention:              720 * time.Hour,
	ReminderDays:               2,
}

func NewMock(t *testing.T) (*Runner, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		payments: NewMockPayments(ctrl),
		orders:   NewMockOrderReaper(ctrl),
		batches:  NewMockBatchOrderReaper(ctrl),
		cards:    NewMockCardCleaner(ctrl),
	}
	r := New(settings, m.payments, m.orders, m.batches, m.cards, NewWorkerPool(2))
	r.now = func() time.Time { return now }
	t.Cleanup(r.Close)
	return r, m
}

func TestRun_UnknownJob(t *testing.T) {
	r, _ := NewMock(t)
	assert.ErrorIs(t, r.Run(context.Background(), "send-newsletter"), ErrUnknownJob)
}

func TestNames(t *testing.T) {
	r, _ := NewMock(t)
	assert.Equal(t, []string{DebitInstallments, DeleteStuckOrders, DeleteUnusedCreditCard, InstallmentReminders}, r.Names())
}

func TestReap(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    ReapReport
		expectedErr bool
	}{
		{
			name: "Deletes stuck rows",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().DeleteStuck(gomock.Any(), domain.StuckOrderStates, now.Add(-24*time.Hour)).Return(int64(3), nil)
				m.orders.EXPECT().DeleteStuckCertificateOrders(gomock.Any(), domain.StuckCertificateOrderStates, now.Add(-72*time.Hour)).Return(int64(1), nil)
				m.batches.EXPECT().DeleteStuck(gomock.Any(), domain.StuckBatchOrderStates, now.Add(-24*time.Hour)).Return(int64(2), nil)
			},
			expected: ReapReport{Orders: 3, CertificateOrders: 1, BatchOrders: 2},
		},
		{
			name: "Stops on error",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().DeleteStuck(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := NewMock(t)
			tt.prepareMock(m)

			report, err := r.Reap(context.Background())
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, report)
		})
	}
}

func TestDebitInstallments(t *testing.T) {
	r, m := NewMock(t)
	orders := []domain.Order{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}

	m.payments.EXPECT().PayableOrders(gomock.Any()).Return(orders, nil)
	m.payments.EXPECT().DebitOrder(gomock.Any(), gomock.Any(), now).DoAndReturn(func(_ context.Context, o *domain.Order, _ time.Time) (int, error) {
		if o.ID == orders[2].ID {
			return 0, errors.New("provider down")
		}
		return 1, nil
	}).Times(3)

	assert.NoError(t, r.Run(context.Background(), DebitInstallments))

	// the processing guard is released once an order is handled
	_, busy := r.processing.Load(orders[0].ID)
	assert.False(t, busy)
}

func TestDebitInstallments_SkipsOrdersInProgress(t *testing.T) {
	r, m := NewMock(t)
	orders := []domain.Order{{ID: uuid.New()}, {ID: uuid.New()}}
	r.processing.Store(orders[0].ID, struct{}{})

	m.payments.EXPECT().PayableOrders(gomock.Any()).Return(orders, nil)
	m.payments.EXPECT().DebitOrder(gomock.Any(), &orders[1], now).Return(1, nil)

	assert.NoError(t, r.Run(context.Background(), DebitInstallments))
}

func TestInstallmentReminders(t *testing.T) {
	r, m := NewMock(t)
	orders := []domain.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	m.payments.EXPECT().PayableOrders(gomock.Any()).Return(orders, nil)
	m.payments.EXPECT().Remind(gomock.Any(), gomock.Any(), now.AddDate(0, 0, 2)).Return(true, nil).Times(2)

	assert.NoError(t, r.Run(context.Background(), InstallmentReminders))
}

func TestInstallmentReminders_FetchError(t *testing.T) {
	r, m := NewMock(t)
	m.payments.EXPECT().PayableOrders(gomock.Any()).Return(nil, errors.New("database error"))

	assert.Error(t, r.Run(context.Background(), InstallmentReminders))
}

func TestDeleteUnusedCreditCards(t *testing.T) {
	r, m := NewMock(t)
	m.cards.EXPECT().DeleteUnused(gomock.Any(), now.Add(-720*time.Hour)).Return(int64(4), nil)

	assert.NoError(t, r.Run(context.Background(), DeleteUnusedCreditCard))
}

func TestRunAll(t *testing.T) {
	t.Run("All succeed", func(t *testing.T) {
		r, m := NewMock(t)
		m.payments.EXPECT().PayableOrders(gomock.Any()).Return(nil, nil).Times(2)
		m.cards.EXPECT().DeleteUnused(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.orders.EXPECT().DeleteStuck(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.orders.EXPECT().DeleteStuckCertificateOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.batches.EXPECT().DeleteStuck(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		assert.NoError(t, r.RunAll(context.Background()))
	})

	t.Run("Failure is reported after the others ran", func(t *testing.T) {
		r, m := NewMock(t)
		dbErr := errors.New("database error")
		m.payments.EXPECT().PayableOrders(gomock.Any()).Return(nil, nil).Times(2)
		m.cards.EXPECT().DeleteUnused(gomock.Any(), gomock.Any()).Return(int64(0), dbErr)
		m.orders.EXPECT().DeleteStuck(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.orders.EXPECT().DeleteStuckCertificateOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.batches.EXPECT().DeleteStuck(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := r.RunAll(context.Background())
		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), DeleteUnusedCreditCard)
	})
}

func TestStart(t *testing.T) {
	r, _ := NewMock(t)
	r.settings.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}
