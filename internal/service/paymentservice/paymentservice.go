// Package paymentservice applies payment provider notifications to orders
// and debits the installments that fall due.
package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/events"
	"github.com/GlebRadaev/coursemarket/internal/flow"
	"github.com/GlebRadaev/coursemarket/internal/provider"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

var (
	ErrInvalidNotification = errors.New("invalid payment notification")
	ErrNoPaymentMethod     = errors.New("order has no payment method")
)

const (
	TypePayment = "payment"
	TypeRefund  = "refund"

	StateSuccess = "success"
	StateFailed  = "failed"
)

type Notification struct {
	PaymentID     string     `json:"payment_id"`
	Type          string     `json:"type"`
	State         string     `json:"state"`
	OrderID       *uuid.UUID `json:"order_id,omitempty"`
	InstallmentID *uuid.UUID `json:"installment_id,omitempty"`
	BatchOrderID  *uuid.UUID `json:"batch_order_id,omitempty"`
}

func (n Notification) Validate() error {
	if strings.TrimSpace(n.PaymentID) == "" {
		return fmt.Errorf("%w: payment_id is required", ErrInvalidNotification)
	}
	if n.Type != TypePayment && n.Type != TypeRefund {
		return fmt.Errorf("%w: type %q", ErrInvalidNotification, n.Type)
	}
	if n.State != StateSuccess && n.State != StateFailed {
		return fmt.Errorf("%w: state %q", ErrInvalidNotification, n.State)
	}
	if n.BatchOrderID != nil {
		if n.Type != TypePayment {
			return fmt.Errorf("%w: batch orders are not refunded", ErrInvalidNotification)
		}
		return nil
	}
	if n.OrderID == nil || n.InstallmentID == nil {
		return fmt.Errorf("%w: order_id and installment_id are required", ErrInvalidNotification)
	}
	return nil
}

// Key identifies a delivery: the provider payment, its outcome and the
// installment or batch order it settles.
func (n Notification) Key() string {
	parts := []string{"payment", n.PaymentID, n.Type, n.State}
	if n.BatchOrderID != nil {
		parts = append(parts, "batch", n.BatchOrderID.String())
	} else {
		parts = append(parts, "order", idString(n.OrderID), idString(n.InstallmentID))
	}
	return strings.Join(parts, ":")
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

type OrderService interface {
	Find(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order, previous domain.OrderState) error
}

type OrderRepo interface {
	FindByStates(ctx context.Context, states []domain.OrderState) ([]domain.Order, error)
}

type BatchOrderService interface {
	ApplyPayment(ctx context.Context, id uuid.UUID, state schedule.State) (*domain.BatchOrder, error)
}

type CardRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error)
}

type Payer interface {
	CreateOneClickPayment(ctx context.Context, req provider.PaymentRequest) (*provider.Payment, error)
}

type Service struct {
	orders    OrderService
	repo      OrderRepo
	batches   BatchOrderService
	cards     CardRepo
	payer     Payer
	publisher events.Publisher
}

func New(orders OrderService, repo OrderRepo, batches BatchOrderService, cards CardRepo, payer Payer, publisher events.Publisher) *Service {
	return &Service{
		orders:    orders,
		repo:      repo,
		batches:   batches,
		cards:     cards,
		payer:     payer,
		publisher: publisher,
	}
}

// HandleNotification is idempotent: an installment already in the notified
// state is left untouched.
func (s *Service) HandleNotification(ctx context.Context, n Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.BatchOrderID != nil {
		state := schedule.StatePaid
		if n.State == StateFailed {
			state = schedule.StateRefused
		}
		_, err := s.batches.ApplyPayment(ctx, *n.BatchOrderID, state)
		return err
	}

	order, err := s.orders.Find(ctx, *n.OrderID)
	if err != nil {
		return err
	}
	installment, ok := order.PaymentSchedule.Find(*n.InstallmentID)
	if !ok {
		return schedule.ErrInstallmentNotFound
	}

	var target schedule.State
	switch {
	case n.Type == TypePayment && n.State == StateSuccess:
		target = schedule.StatePaid
	case n.Type == TypePayment:
		target = schedule.StateRefused
	case n.State == StateSuccess:
		target = schedule.StateRefunded
	default:
		zap.L().Error("refund failed", zap.String("order_id", order.ID.String()),
			zap.String("installment_id", installment.ID.String()), zap.String("payment_id", n.PaymentID))
		return nil
	}
	if installment.State == target {
		return nil
	}
	installment.State = target
	zap.L().Info("installment updated", zap.String("order_id", order.ID.String()),
		zap.String("installment_id", installment.ID.String()), zap.String("state", string(target)))

	if target == schedule.StateRefused {
		event := events.New(events.InstallmentDebitFailed, order.ID.String(), map[string]any{
			"order_id":       order.ID,
			"owner_id":       order.OwnerID,
			"installment_id": installment.ID,
			"amount":         installment.Amount,
		})
		if err := s.publisher.Publish(ctx, event); err != nil {
			zap.L().Error("failed to publish debit failure", zap.Error(err))
		}
	}

	previous := order.State
	flow.Update(order)
	return s.orders.Save(ctx, order, previous)
}

func (s *Service) PayableOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindByStates(ctx, domain.PayableOrderStates)
}

// DebitOrder asks the provider to debit every installment of the order due
// on the given day. It returns the number of requested payments.
func (s *Service) DebitOrder(ctx context.Context, order *domain.Order, on time.Time) (int, error) {
	due := order.PaymentSchedule.Due(on)
	if len(due) == 0 {
		return 0, nil
	}
	if order.CreditCardID == nil {
		return 0, ErrNoPaymentMethod
	}
	card, err := s.cards.FindByID(ctx, *order.CreditCardID)
	if err != nil {
		return 0, err
	}
	if card == nil {
		return 0, ErrNoPaymentMethod
	}

	requested := 0
	var errs []error
	for _, installment := range due {
		payment, err := s.payer.CreateOneClickPayment(ctx, provider.PaymentRequest{
			OrderID:       order.ID,
			InstallmentID: installment.ID,
			Amount:        installment.Amount,
			CardToken:     card.Token,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("installment %s: %w", installment.ID, err))
			continue
		}
		requested++
		zap.L().Info("installment debit requested", zap.String("order_id", order.ID.String()),
			zap.String("installment_id", installment.ID.String()), zap.String("payment_id", payment.ID))
	}
	return requested, errors.Join(errs...)
}

// Remind publishes a reminder when the next installment of the order falls
// due on the target day.
func (s *Service) Remind(ctx context.Context, order *domain.Order, target time.Time) (bool, error) {
	next := order.PaymentSchedule.Next()
	if next == nil || !order.PaymentSchedule.IsNextDue(next.ID, target) {
		return false, nil
	}
	event := events.New(events.InstallmentReminder, order.ID.String(), map[string]any{
		"order_id":       order.ID,
		"owner_id":       order.OwnerID,
		"installment_id": next.ID,
		"amount":         next.Amount,
		"due_date":       next.DueDate,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		return false, err
	}
	return true, nil
}
