package batchorderservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/flow"
	"github.com/GlebRadaev/coursemarket/internal/pg"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

//go:generate mockgen -source=batchorderservice.go -destination=mock_batchorderservice.go -package=batchorderservice

var (
	ErrBatchOrderNotFound = errors.New("batch order not found")
	ErrForbidden          = errors.New("batch order belongs to another user")
	ErrInvalidBatchOrder  = errors.New("a batch order needs a company name and at least one seat")
	ErrProductNotFound    = errors.New("product not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrNoOrganization     = errors.New("no organization sells this product")
)

type Repo interface {
	Create(ctx context.Context, b *domain.BatchOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BatchOrder, error)
	Update(ctx context.Context, b *domain.BatchOrder) error
}

type SeatRepo interface {
	CreateSeats(ctx context.Context, seats []domain.Order) error
}

type Catalog interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

type ContractRepo interface {
	FindByBatchOrder(ctx context.Context, batchOrderID uuid.UUID) (*domain.Contract, error)
}

type Organizations interface {
	GetLeastActiveOrganization(ctx context.Context, productID, courseID uuid.UUID) (*uuid.UUID, error)
}

type Service struct {
	txManager     pg.TXManager
	repo          Repo
	seats         SeatRepo
	catalog       Catalog
	contracts     ContractRepo
	organizations Organizations
}

func New(txManager pg.TXManager, repo Repo, seats SeatRepo, catalog Catalog, contracts ContractRepo, organizations Organizations) *Service {
	return &Service{
		txManager:     txManager,
		repo:          repo,
		seats:         seats,
		catalog:       catalog,
		contracts:     contracts,
		organizations: organizations,
	}
}

type CreateInput struct {
	ProductID   uuid.UUID
	CourseID    uuid.UUID
	CompanyName string
	NbSeats     int
}

func (s *Service) Create(ctx context.Context, userID int, in CreateInput) (*domain.BatchOrder, error) {
	if in.NbSeats <= 0 || strings.TrimSpace(in.CompanyName) == "" {
		return nil, ErrInvalidBatchOrder
	}
	product, err := s.catalog.FindProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Type == domain.ProductTypeCertificate {
		return nil, ErrInvalidBatchOrder
	}
	course, err := s.catalog.FindCourse(ctx, in.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	organizationID, err := s.organizations.GetLeastActiveOrganization(ctx, product.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if organizationID == nil {
		return nil, ErrNoOrganization
	}

	unitPrice := schedule.ApplyDiscount(product.Price, product.Discount)
	b := &domain.BatchOrder{
		ID:             uuid.New(),
		OwnerID:        userID,
		ProductID:      product.ID,
		CourseID:       course.ID,
		OrganizationID: organizationID,
		CompanyName:    strings.TrimSpace(in.CompanyName),
		NbSeats:        in.NbSeats,
		Total:          unitPrice.Mul(decimal.NewFromInt(int64(in.NbSeats))),
		State:          domain.BatchOrderStateDraft,
		PaymentState:   schedule.StatePending,
		HasContract:    product.HasContract,
	}
	if err := flow.InitBatchOrder(b); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		zap.L().Error("can't save batch order", zap.Error(err))
		return nil, err
	}
	zap.L().Info("batch order created", zap.String("batch_order_id", b.ID.String()), zap.Int("seats", b.NbSeats))
	return b, nil
}

func (s *Service) Find(ctx context.Context, id uuid.UUID) (*domain.BatchOrder, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBatchOrderNotFound
	}
	if b.HasContract {
		contract, err := s.contracts.FindByBatchOrder(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		b.Contract = contract
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, userID int, id uuid.UUID) (*domain.BatchOrder, error) {
	b, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) Cancel(ctx context.Context, userID int, id uuid.UUID) (*domain.BatchOrder, error) {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	previous := b.State
	if err := flow.TransitionBatchOrder(b, domain.BatchOrderStateCanceled); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, b, previous); err != nil {
		return nil, err
	}
	return b, nil
}

// ApplyPayment records the outcome of the batch order payment.
func (s *Service) ApplyPayment(ctx context.Context, id uuid.UUID, state schedule.State) (*domain.BatchOrder, error) {
	b, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.PaymentState == state || b.State == domain.BatchOrderStateCompleted || b.State == domain.BatchOrderStateCanceled {
		return b, nil
	}
	previous := b.State
	b.PaymentState = state
	flow.UpdateBatchOrder(b)
	if err := s.Save(ctx, b, previous); err != nil {
		return nil, err
	}
	return b, nil
}

// Save persists the batch order. Completion hands out one seat order per
// bought seat, each claimable with its voucher. The state and the seats are
// committed together.
func (s *Service) Save(ctx context.Context, b *domain.BatchOrder, previous domain.BatchOrderState) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		if b.State == previous || b.State != domain.BatchOrderStateCompleted {
			return nil
		}
		return s.seats.CreateSeats(ctx, Seats(b))
	})
	if err != nil {
		zap.L().Error("failed to save batch order", zap.String("batch_order_id", b.ID.String()), zap.Error(err))
		return err
	}
	if b.State != previous {
		zap.L().Info("batch order state changed", zap.String("batch_order_id", b.ID.String()),
			zap.String("from", string(previous)), zap.String("to", string(b.State)))
	}
	return nil
}

func Seats(b *domain.BatchOrder) []domain.Order {
	seats := make([]domain.Order, b.NbSeats)
	for i := range seats {
		voucher := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		seats[i] = domain.Order{
			ID:             uuid.New(),
			ProductID:      b.ProductID,
			CourseID:       &b.CourseID,
			OrganizationID: b.OrganizationID,
			BatchOrderID:   &b.ID,
			State:          domain.OrderStateToOwn,
			Total:          decimal.Zero,
			Voucher:        &voucher,
		}
	}
	return seats
}
