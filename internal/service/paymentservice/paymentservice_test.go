package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/events"
	"github.com/GlebRadaev/coursemarket/internal/provider"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

type mocks struct {
	orders    *MockOrderService
	repo      *MockOrderRepo
	batches   *MockBatchOrderService
	cards     *MockCardRepo
	payer     *MockPayer
	publisher *events.MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orders:    NewMockOrderService(ctrl),
		repo:      NewMockOrderRepo(ctrl),
		batches:   NewMockBatchOrderService(ctrl),
		cards:     NewMockCardRepo(ctrl),
		payer:     NewMockPayer(ctrl),
		publisher: events.NewMockPublisher(ctrl),
	}
	return New(m.orders, m.repo, m.batches, m.cards, m.payer, m.publisher), m
}

func date(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

func payingOrder(state domain.OrderState, states ...schedule.State) *domain.Order {
	owner := 1
	orgID := uuid.New()
	cardID := uuid.New()
	s := make(schedule.Schedule, len(states))
	for i, st := range states {
		s[i] = schedule.Installment{ID: uuid.New(), Amount: decimal.NewFromInt(50), DueDate: date(time.March+time.Month(i), 17), State: st}
	}
	return &domain.Order{
		ID:              uuid.New(),
		OwnerID:         &owner,
		OrganizationID:  &orgID,
		CreditCardID:    &cardID,
		State:           state,
		Total:           decimal.NewFromInt(int64(50 * len(states))),
		PaymentSchedule: s,
	}
}

func TestNotification_Validate(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name      string
		n         Notification
		expectErr bool
	}{
		{name: "Order payment", n: Notification{PaymentID: "pay_1", Type: TypePayment, State: StateSuccess, OrderID: &id, InstallmentID: &id}},
		{name: "Batch payment", n: Notification{PaymentID: "pay_1", Type: TypePayment, State: StateFailed, BatchOrderID: &id}},
		{name: "Batch refund", n: Notification{PaymentID: "pay_1", Type: TypeRefund, State: StateSuccess, BatchOrderID: &id}, expectErr: true},
		{name: "Unknown type", n: Notification{PaymentID: "pay_1", Type: "chargeback", State: StateSuccess, OrderID: &id, InstallmentID: &id}, expectErr: true},
		{name: "Unknown state", n: Notification{PaymentID: "pay_1", Type: TypePayment, State: "maybe", OrderID: &id, InstallmentID: &id}, expectErr: true},
		{name: "Missing installment", n: Notification{PaymentID: "pay_1", Type: TypePayment, State: StateSuccess, OrderID: &id}, expectErr: true},
		{name: "Missing payment id", n: Notification{Type: TypePayment, State: StateSuccess, OrderID: &id, InstallmentID: &id}, expectErr: true},
		{name: "Blank payment id", n: Notification{PaymentID: " ", Type: TypePayment, State: StateSuccess, BatchOrderID: &id}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidNotification)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotification_Key(t *testing.T) {
	orderID, first, second, batchID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	base := Notification{PaymentID: "pay_1", Type: TypePayment, State: StateSuccess, OrderID: &orderID, InstallmentID: &first}

	other := base
	other.InstallmentID = &second
	assert.NotEqual(t, base.Key(), other.Key())

	failed := base
	failed.State = StateFailed
	assert.NotEqual(t, base.Key(), failed.Key())

	batch := Notification{PaymentID: "pay_1", Type: TypePayment, State: StateSuccess, BatchOrderID: &batchID}
	assert.NotEqual(t, base.Key(), batch.Key())

	assert.Equal(t, "payment:pay_1:payment:success:order:"+orderID.String()+":"+first.String(), base.Key())
	assert.Equal(t, "payment:pay_1:payment:success:batch:"+batchID.String(), batch.Key())
}

func TestHandleNotification(t *testing.T) {
	tests := []struct {
		name          string
		order         *domain.Order
		notification  func(o *domain.Order) Notification
		prepareMock   func(m *mocks, o *domain.Order)
		expectedState domain.OrderState
		installment   schedule.State
	}{
		{
			name:  "First installment paid",
			order: payingOrder(domain.OrderStatePending, schedule.StatePending, schedule.StatePending),
			notification: func(o *domain.Order) Notification {
				return Notification{PaymentID: "pay_1", Type: TypePayment, State: StateSuccess, OrderID: &o.ID, InstallmentID: &o.PaymentSchedule[0].ID}
			},
			prepareMock: func(m *mocks, o *domain.Order) {
				m.orders.EXPECT().Find(gomock.Any(), o.ID).Return(o, nil)
				m.orders.EXPECT().Save(gomock.Any(), o, domain.OrderStatePending).Return(nil)
			},
			expectedState: domain.OrderStatePendingPayment,
			installment:   schedule.StatePaid,
		},
		{
			name:  "Last installment paid",
			order: payingOrder(domain.OrderStatePendingPayment, schedule.StatePaid, schedule.StatePending),
			notification: func(o *domain.Order) Notification {
				return Notification{PaymentID: "pay_2", Type: TypePayment, State: StateSuccess, OrderID: &o.ID, InstallmentID: &o.PaymentSchedule[1].ID}
			},
			prepareMock: func(m *mocks, o *domain.Order) {
				m.orders.EXPECT().Find(gomock.Any(), o.ID).Return(o, nil)
				m.orders.EXPECT().Save(gomock.Any(), o, domain.OrderStatePendingPayment).Return(nil)
			},
			expectedState: domain.OrderStateCompleted,
			installment:   schedule.StatePaid,
		},
		{
			name:  "First installment refused",
			order: payingOrder(domain.OrderStatePending, schedule.StatePending, schedule.StatePending),
			notification: func(o *domain.Order) Notification {
				return Notification{PaymentID: "pay_1", Type: TypePayment, State: StateFailed, OrderID: &o.ID, InstallmentID: &o.PaymentSchedule[0].ID}
			},
			prepareMock: func(m *mocks, o *domain.Order) {
				m.orders.EXPECT().Find(gomock.Any(), o.ID).Return(o, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
					assert.Equal(t, events.InstallmentDebitFailed, e.Type)
					return nil
				})
				m.orders.EXPECT().Save(gomock.Any(), o, domain.OrderStatePending).Return(nil)
			},
			expectedState: domain.OrderStateNoPayment,
			installment:   schedule.StateRefused,
		},
		{
			name:  "Duplicate payment notification",
			order: payingOrder(domain.OrderStatePendingPayment, schedule.StatePaid, schedule.StatePending),
			notification: func(o *domain.Order) Notification {
				return Notification{PaymentID: "pay_1", Type: TypePayment, State: StateSuccess, OrderID: &o.ID, InstallmentID: &o.PaymentSchedule[0].ID}
			},
			prepareMock: func(m *mocks, o *domain.Order) {
				m.orders.EXPECT().Find(gomock.Any(), o.ID).Return(o, nil)
			},
			expectedState: domain.OrderStatePendingPayment,
			installment:   schedule.StatePaid,
		},
		{
			name:  "Refund confirmed",
			order: payingOrder(domain.OrderStateRefunding, schedule.StatePaid, schedule.StateCanceled),
			notification: func(o *domain.Order) Notification {
				return Notification{PaymentID: "ref_1", Type: TypeRefund, State: StateSuccess, OrderID: &o.ID, InstallmentID: &o.PaymentSchedule[0].ID}
			},
			prepareMock: func(m *mocks, o *domain.Order) {
				m.orders.EXPECT().Find(gomock.Any(), o.ID).Return(o, nil)
				m.orders.EXPECT().Save(gomock.Any(), o, domain.OrderStateRefunding).Return(nil)
			},
			expectedState: domain.OrderStateRefunded,
			installment:   schedule.StateRefunded,
		},
		{
			name:  "Refund failed",
			order: payingOrder(domain.OrderStateRefunding, schedule.StatePaid),
			notification: func(o *domain.Order) Notification {
				return Notification{PaymentID: "ref_1", Type: TypeRefund, State: StateFailed, OrderID: &o.ID, InstallmentID: &o.PaymentSchedule[0].ID}
			},
			prepareMock: func(m *mocks, o *domain.Order) {
				m.orders.EXPECT().Find(gomock.Any(), o.ID).Return(o, nil)
			},
			expectedState: domain.OrderStateRefunding,
			installment:   schedule.StatePaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			n := tt.notification(tt.order)
			tt.prepareMock(m, tt.order)

			require.NoError(t, s.HandleNotification(context.Background(), n))
			assert.Equal(t, tt.expectedState, tt.order.State)
			installment, ok := tt.order.PaymentSchedule.Find(*n.InstallmentID)
			require.True(t, ok)
			assert.Equal(t, tt.installment, installment.State)
		})
	}
}

func TestHandleNotification_UnknownInstallment(t *testing.T) {
	s, m := NewMock(t)
	o := payingOrder(domain.OrderStatePending, schedule.StatePending)
	other := uuid.New()
	m.orders.EXPECT().Find(gomock.Any(), o.ID).Return(o, nil)

	err := s.HandleNotification(context.Background(), Notification{PaymentID: "pay_1", Type: TypePayment, State: StateSuccess, OrderID: &o.ID, InstallmentID: &other})
	assert.ErrorIs(t, err, schedule.ErrInstallmentNotFound)
}

func TestHandleNotification_BatchOrder(t *testing.T) {
	s, m := NewMock(t)
	id := uuid.New()
	m.batches.EXPECT().ApplyPayment(gomock.Any(), id, schedule.StateRefused).Return(&domain.BatchOrder{}, nil)

	require.NoError(t, s.HandleNotification(context.Background(), Notification{PaymentID: "pay_1", Type: TypePayment, State: StateFailed, BatchOrderID: &id}))
}

func TestDebitOrder(t *testing.T) {
	t.Run("Debits due installments", func(t *testing.T) {
		s, m := NewMock(t)
		o := payingOrder(domain.OrderStatePendingPayment, schedule.StatePaid, schedule.StatePending, schedule.StatePending)
		m.cards.EXPECT().FindByID(gomock.Any(), *o.CreditCardID).Return(&domain.CreditCard{ID: *o.CreditCardID, Token: "tok_1"}, nil)
		m.payer.EXPECT().CreateOneClickPayment(gomock.Any(), provider.PaymentRequest{
			OrderID:       o.ID,
			InstallmentID: o.PaymentSchedule[1].ID,
			Amount:        o.PaymentSchedule[1].Amount,
			CardToken:     "tok_1",
		}).Return(&provider.Payment{ID: "pay_2"}, nil)

		n, err := s.DebitOrder(context.Background(), o, date(time.April, 17))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Nothing due", func(t *testing.T) {
		s, _ := NewMock(t)
		o := payingOrder(domain.OrderStatePending, schedule.StatePending)

		n, err := s.DebitOrder(context.Background(), o, date(time.March, 16))
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("No card", func(t *testing.T) {
		s, _ := NewMock(t)
		o := payingOrder(domain.OrderStatePending, schedule.StatePending)
		o.CreditCardID = nil

		_, err := s.DebitOrder(context.Background(), o, date(time.March, 17))
		assert.ErrorIs(t, err, ErrNoPaymentMethod)
	})

	t.Run("Provider unavailable", func(t *testing.T) {
		s, m := NewMock(t)
		o := payingOrder(domain.OrderStatePending, schedule.StatePending)
		m.cards.EXPECT().FindByID(gomock.Any(), *o.CreditCardID).Return(&domain.CreditCard{Token: "tok_1"}, nil)
		m.payer.EXPECT().CreateOneClickPayment(gomock.Any(), gomock.Any()).Return(nil, provider.ErrUnavailable)

		n, err := s.DebitOrder(context.Background(), o, date(time.March, 17))
		assert.ErrorIs(t, err, provider.ErrUnavailable)
		assert.Zero(t, n)
	})
}

func TestRemind(t *testing.T) {
	s, m := NewMock(t)
	o := payingOrder(domain.OrderStatePendingPayment, schedule.StatePaid, schedule.StatePending)

	sent, err := s.Remind(context.Background(), o, date(time.April, 10))
	require.NoError(t, err)
	assert.False(t, sent)

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
		assert.Equal(t, events.InstallmentReminder, e.Type)
		assert.Equal(t, o.PaymentSchedule[1].ID, e.Payload["installment_id"])
		return nil
	})
	sent, err = s.Remind(context.Background(), o, date(time.April, 17))
	require.NoError(t, err)
	assert.True(t, sent)

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	_, err = s.Remind(context.Background(), o, date(time.April, 17))
	assert.Error(t, err)
}

func TestPayableOrders(t *testing.T) {
	s, m := NewMock(t)
	m.repo.EXPECT().FindByStates(gomock.Any(), domain.PayableOrderStates).Return([]domain.Order{{ID: uuid.New()}}, nil)

	orders, err := s.PayableOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
