package orderservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/events"
	"github.com/GlebRadaev/coursemarket/internal/flow"
	"github.com/GlebRadaev/coursemarket/internal/provider"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrForbidden          = errors.New("order belongs to another user")
	ErrInvalidOrder       = errors.New("an order needs a product and either a course or an enrollment")
	ErrProductNotFound    = errors.New("product not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrNoOrganization     = errors.New("no organization sells this product")
	ErrCardNotFound       = errors.New("credit card not found")
	ErrVoucherNotFound    = errors.New("voucher not found")
	ErrVoucherUsed        = errors.New("voucher already used")
)

type Repo interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindByVoucher(ctx context.Context, voucher string) (*domain.Order, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type Catalog interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	FindEnrollment(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
}

type ContractRepo interface {
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Contract, error)
}

type CardRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error)
}

type Organizations interface {
	GetLeastActiveOrganization(ctx context.Context, productID, courseID uuid.UUID) (*uuid.UUID, error)
}

type Certificates interface {
	Issue(ctx context.Context, order *domain.Order) (*domain.Certificate, error)
}

type Refunder interface {
	Refund(ctx context.Context, req provider.RefundRequest) (*provider.Payment, error)
}

type Deps struct {
	Repo           Repo
	Catalog        Catalog
	Contracts      ContractRepo
	Cards          CardRepo
	Organizations  Organizations
	Certificates   Certificates
	Refunder       Refunder
	Publisher      events.Publisher
	Limits         schedule.Limits
	WithdrawalDays int
}

type Service struct {
	Deps
	now func() time.Time
}

func New(deps Deps) *Service {
	return &Service{
		Deps: deps,
		now:  time.Now,
	}
}

type CreateInput struct {
	ProductID    uuid.UUID
	CourseID     *uuid.UUID
	EnrollmentID *uuid.UUID
}

// Create records an order of the user, assigns it to the least busy
// organization and moves it to the first state waiting for the user.
func (s *Service) Create(ctx context.Context, userID int, in CreateInput) (*domain.Order, error) {
	if (in.CourseID == nil) == (in.EnrollmentID == nil) {
		return nil, ErrInvalidOrder
	}
	product, err := s.Catalog.FindProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	course, err := s.resolveCourse(ctx, userID, product, in)
	if err != nil {
		return nil, err
	}

	organizationID, err := s.Organizations.GetLeastActiveOrganization(ctx, product.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if organizationID == nil {
		return nil, ErrNoOrganization
	}

	order := &domain.Order{
		ID:             uuid.New(),
		OwnerID:        &userID,
		ProductID:      product.ID,
		CourseID:       in.CourseID,
		EnrollmentID:   in.EnrollmentID,
		OrganizationID: organizationID,
		State:          domain.OrderStateDraft,
		Total:          schedule.ApplyDiscount(product.Price, product.Discount),
		HasContract:    product.HasContract,
	}
	order.PaymentSchedule = s.buildSchedule(order, course, s.now())
	if err := flow.Init(order); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	zap.L().Info("order created", zap.String("order_id", order.ID.String()), zap.String("state", string(order.State)))
	s.afterSave(ctx, order, domain.OrderStateDraft)
	return order, nil
}

func (s *Service) resolveCourse(ctx context.Context, userID int, product *domain.Product, in CreateInput) (*domain.Course, error) {
	courseID := in.CourseID
	if in.EnrollmentID != nil {
		if product.Type != domain.ProductTypeCertificate {
			return nil, ErrInvalidOrder
		}
		enrollment, err := s.Catalog.FindEnrollment(ctx, *in.EnrollmentID)
		if err != nil {
			return nil, err
		}
		if enrollment == nil {
			return nil, ErrEnrollmentNotFound
		}
		if enrollment.UserID != userID {
			return nil, ErrForbidden
		}
		courseID = &enrollment.CourseID
	} else if product.Type == domain.ProductTypeCertificate {
		return nil, ErrInvalidOrder
	}

	course, err := s.Catalog.FindCourse(ctx, *courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

func (s *Service) buildSchedule(order *domain.Order, course *domain.Course, from time.Time) schedule.Schedule {
	start := schedule.FirstDueDate(from, course.StartDate, s.WithdrawalDays)
	return schedule.Build(order.Total, start, s.Limits)
}

// ScheduleFor computes the payment schedule of the order as if its contract
// was signed on the given day.
func (s *Service) ScheduleFor(ctx context.Context, order *domain.Order, signedOn time.Time) (schedule.Schedule, error) {
	courseID := order.CourseID
	if courseID == nil && order.EnrollmentID != nil {
		enrollment, err := s.Catalog.FindEnrollment(ctx, *order.EnrollmentID)
		if err != nil {
			return nil, err
		}
		if enrollment == nil {
			return nil, ErrEnrollmentNotFound
		}
		courseID = &enrollment.CourseID
	}
	if courseID == nil {
		return nil, ErrCourseNotFound
	}
	course, err := s.Catalog.FindCourse(ctx, *courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return s.buildSchedule(order, course, signedOn), nil
}

// Find loads an order and its contract regardless of its owner.
func (s *Service) Find(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.HasContract {
		contract, err := s.Contracts.FindByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Contract = contract
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, userID int, id uuid.UUID) (*domain.Order, error) {
	order, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.IsOwnedBy(userID) {
		zap.L().Info("order of another user requested", zap.Int("user_id", userID), zap.String("order_id", id.String()))
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.Repo.ListByOwner(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

var paymentMethodStates = []domain.OrderState{
	domain.OrderStateToSign,
	domain.OrderStateSigning,
	domain.OrderStateToSavePaymentMethod,
	domain.OrderStatePending,
	domain.OrderStatePendingPayment,
	domain.OrderStateFailedPayment,
	domain.OrderStateNoPayment,
}

// SetPaymentMethod attaches one of the user's cards to the order, which then
// moves on when it was waiting for it. On an order whose debits were refused
// the refused installments are debited again with the new card.
func (s *Service) SetPaymentMethod(ctx context.Context, userID int, orderID, cardID uuid.UUID) (*domain.Order, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(paymentMethodStates, order.State) {
		return nil, fmt.Errorf("%w: order %s is %s", flow.ErrTransitionNotAllowed, order.ID, order.State)
	}
	card, err := s.Cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil || card.OwnerID != userID {
		return nil, ErrCardNotFound
	}

	previous := order.State
	order.CreditCardID = &card.ID
	if order.State == domain.OrderStateFailedPayment || order.State == domain.OrderStateNoPayment {
		if n := order.PaymentSchedule.RetryRefused(); n > 0 {
			zap.L().Info("refused installments rescheduled", zap.String("order_id", order.ID.String()), zap.Int("count", n))
		}
	}
	flow.Update(order)
	if err := s.Save(ctx, order, previous); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel cancels the order and its pending installments. Paid installments
// are refunded; the order stays refunding until the provider confirms them.
func (s *Service) Cancel(ctx context.Context, userID int, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	previous := order.State
	if err := flow.Transition(order, domain.OrderStateCanceled); err != nil {
		return nil, err
	}
	order.PaymentSchedule.CancelPending()
	if flow.CanTransition(order, domain.OrderStateRefunding) {
		if err := flow.Transition(order, domain.OrderStateRefunding); err != nil {
			return nil, err
		}
		s.refund(ctx, order)
	}
	if err := s.Save(ctx, order, previous); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) refund(ctx context.Context, order *domain.Order) {
	for _, installment := range order.PaymentSchedule {
		if installment.State != schedule.StatePaid {
			continue
		}
		payment, err := s.Refunder.Refund(ctx, provider.RefundRequest{
			OrderID:       order.ID,
			InstallmentID: installment.ID,
			Amount:        installment.Amount,
		})
		if err != nil {
			zap.L().Error("failed to request refund", zap.String("order_id", order.ID.String()),
				zap.String("installment_id", installment.ID.String()), zap.Error(err))
			continue
		}
		zap.L().Info("refund requested", zap.String("order_id", order.ID.String()), zap.String("payment_id", payment.ID))
	}
}

// Claim gives the seat bought by a batch order behind the voucher to the user.
func (s *Service) Claim(ctx context.Context, userID int, voucher string) (*domain.Order, error) {
	order, err := s.Repo.FindByVoucher(ctx, voucher)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrVoucherNotFound
	}
	if order.State != domain.OrderStateToOwn || order.OwnerID != nil {
		return nil, ErrVoucherUsed
	}

	previous := order.State
	order.OwnerID = &userID
	flow.Update(order)
	if err := s.Save(ctx, order, previous); err != nil {
		return nil, err
	}
	return order, nil
}

// Save persists the order and runs the side effects of a state change.
func (s *Service) Save(ctx context.Context, order *domain.Order, previous domain.OrderState) error {
	if err := s.Repo.Update(ctx, order); err != nil {
		return err
	}
	s.afterSave(ctx, order, previous)
	return nil
}

func (s *Service) afterSave(ctx context.Context, order *domain.Order, previous domain.OrderState) {
	if order.State == previous {
		return
	}
	zap.L().Info("order state changed", zap.String("order_id", order.ID.String()),
		zap.String("from", string(previous)), zap.String("to", string(order.State)))

	event := events.New(events.OrderStateChanged, order.ID.String(), map[string]any{
		"order_id": order.ID,
		"owner_id": order.OwnerID,
		"from":     previous,
		"to":       order.State,
	})
	if err := s.Publisher.Publish(ctx, event); err != nil {
		zap.L().Error("failed to publish order event", zap.Error(err))
	}

	if order.State == domain.OrderStateCompleted {
		if _, err := s.Certificates.Issue(ctx, order); err != nil {
			zap.L().Error("failed to issue certificate", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}
}
