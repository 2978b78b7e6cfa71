// Package signatureservice submits order contracts for signature and applies
// the notifications of the signature provider.
package signatureservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/flow"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

//go:generate mockgen -source=signatureservice.go -destination=mock_signatureservice.go -package=signatureservice

var (
	ErrNoContract       = errors.New("order has no contract to sign")
	ErrContractNotFound = errors.New("contract not found")
	ErrUnknownEvent     = errors.New("unknown signature event")
)

const (
	EventSigned  = "signed"
	EventRefused = "refused"
)

type Notification struct {
	EventType string `json:"event_type"`
	Reference string `json:"reference"`
}

type ContractRepo interface {
	FindByReference(ctx context.Context, reference string) (*domain.Contract, error)
	Save(ctx context.Context, c *domain.Contract) error
}

type OrderService interface {
	Find(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Get(ctx context.Context, userID int, id uuid.UUID) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order, previous domain.OrderState) error
	ScheduleFor(ctx context.Context, order *domain.Order, signedOn time.Time) (schedule.Schedule, error)
}

type BatchOrderService interface {
	Find(ctx context.Context, id uuid.UUID) (*domain.BatchOrder, error)
	Get(ctx context.Context, userID int, id uuid.UUID) (*domain.BatchOrder, error)
	Save(ctx context.Context, b *domain.BatchOrder, previous domain.BatchOrderState) error
}

type Service struct {
	contracts ContractRepo
	orders    OrderService
	batches   BatchOrderService
	backend   Backend
	now       func() time.Time
}

func New(contracts ContractRepo, orders OrderService, batches BatchOrderService, backend Backend) *Service {
	return &Service{
		contracts: contracts,
		orders:    orders,
		batches:   batches,
		backend:   backend,
		now:       time.Now,
	}
}

// submit refreshes the submission of the contract and returns the link the
// signer follows.
func (s *Service) submit(ctx context.Context, contract *domain.Contract) (string, error) {
	reference, err := s.backend.Submit(ctx, contract.ID)
	if err != nil {
		return "", fmt.Errorf("submit contract %s: %w", contract.ID, err)
	}
	now := s.now()
	contract.Reference = &reference
	contract.SubmittedForSignatureAt = &now
	contract.StudentSignedAt = nil
	if err := s.contracts.Save(ctx, contract); err != nil {
		return "", err
	}
	return s.backend.InvitationLink(ctx, reference)
}

func (s *Service) SubmitOrder(ctx context.Context, userID int, orderID uuid.UUID) (string, error) {
	order, err := s.orders.Get(ctx, userID, orderID)
	if err != nil {
		return "", err
	}
	if !order.HasContract {
		return "", ErrNoContract
	}
	if order.State != domain.OrderStateToSign && order.State != domain.OrderStateSigning {
		return "", fmt.Errorf("%w: order %s is %s", flow.ErrTransitionNotAllowed, order.ID, order.State)
	}
	if order.Contract == nil {
		order.Contract = &domain.Contract{ID: uuid.New(), OrderID: &order.ID}
	}
	link, err := s.submit(ctx, order.Contract)
	if err != nil {
		return "", err
	}

	previous := order.State
	if order.State == domain.OrderStateToSign {
		if err := flow.Transition(order, domain.OrderStateSigning); err != nil {
			return "", err
		}
	}
	if err := s.orders.Save(ctx, order, previous); err != nil {
		return "", err
	}
	zap.L().Info("order submitted for signature", zap.String("order_id", order.ID.String()))
	return link, nil
}

func (s *Service) SubmitBatchOrder(ctx context.Context, userID int, batchOrderID uuid.UUID) (string, error) {
	b, err := s.batches.Get(ctx, userID, batchOrderID)
	if err != nil {
		return "", err
	}
	if !b.HasContract {
		return "", ErrNoContract
	}
	if b.State != domain.BatchOrderStateToSign && b.State != domain.BatchOrderStateSigning {
		return "", fmt.Errorf("%w: batch order %s is %s", flow.ErrTransitionNotAllowed, b.ID, b.State)
	}
	if b.Contract == nil {
		b.Contract = &domain.Contract{ID: uuid.New(), BatchOrderID: &b.ID}
	}
	link, err := s.submit(ctx, b.Contract)
	if err != nil {
		return "", err
	}

	previous := b.State
	if b.State == domain.BatchOrderStateToSign {
		if err := flow.TransitionBatchOrder(b, domain.BatchOrderStateSigning); err != nil {
			return "", err
		}
	}
	if err := s.batches.Save(ctx, b, previous); err != nil {
		return "", err
	}
	return link, nil
}

// HandleNotification applies a signature provider callback to the contract
// and to the order it belongs to.
func (s *Service) HandleNotification(ctx context.Context, n Notification) error {
	if n.EventType != EventSigned && n.EventType != EventRefused {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, n.EventType)
	}
	contract, err := s.contracts.FindByReference(ctx, n.Reference)
	if err != nil {
		return err
	}
	if contract == nil {
		return ErrContractNotFound
	}

	switch n.EventType {
	case EventSigned:
		if contract.IsSigned() {
			return nil
		}
		now := s.now()
		contract.StudentSignedAt = &now
	case EventRefused:
		contract.Reference = nil
		contract.SubmittedForSignatureAt = nil
	}
	if err := s.contracts.Save(ctx, contract); err != nil {
		return err
	}
	zap.L().Info("signature notification applied", zap.String("contract_id", contract.ID.String()), zap.String("event", n.EventType))

	switch {
	case contract.OrderID != nil:
		return s.updateOrder(ctx, *contract.OrderID, contract)
	case contract.BatchOrderID != nil:
		return s.updateBatchOrder(ctx, *contract.BatchOrderID, contract)
	}
	return nil
}

func (s *Service) updateOrder(ctx context.Context, id uuid.UUID, contract *domain.Contract) error {
	order, err := s.orders.Find(ctx, id)
	if err != nil {
		return err
	}
	order.Contract = contract
	if contract.IsSigned() && !order.PaymentSchedule.HasPaid() {
		// due dates run from the signature
		sched, err := s.orders.ScheduleFor(ctx, order, *contract.StudentSignedAt)
		if err != nil {
			return err
		}
		order.PaymentSchedule = sched
	}
	previous := order.State
	flow.Update(order)
	return s.orders.Save(ctx, order, previous)
}

func (s *Service) updateBatchOrder(ctx context.Context, id uuid.UUID, contract *domain.Contract) error {
	b, err := s.batches.Find(ctx, id)
	if err != nil {
		return err
	}
	b.Contract = contract
	previous := b.State
	flow.UpdateBatchOrder(b)
	return s.batches.Save(ctx, b, previous)
}
