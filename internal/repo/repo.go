package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
	batchorderrepo "github.com/GlebRadaev/coursemarket/internal/repo/batchorder-repo"
	catalogrepo "github.com/GlebRadaev/coursemarket/internal/repo/catalog-repo"
	certificaterepo "github.com/GlebRadaev/coursemarket/internal/repo/certificate-repo"
	contractrepo "github.com/GlebRadaev/coursemarket/internal/repo/contract-repo"
	creditcardrepo "github.com/GlebRadaev/coursemarket/internal/repo/creditcard-repo"
	orderrepo "github.com/GlebRadaev/coursemarket/internal/repo/order-repo"
	organizationrepo "github.com/GlebRadaev/coursemarket/internal/repo/organization-repo"
	userrepo "github.com/GlebRadaev/coursemarket/internal/repo/user-repo"
	"github.com/GlebRadaev/coursemarket/internal/service/authservice"
	"github.com/GlebRadaev/coursemarket/internal/service/certificateservice"
	"github.com/GlebRadaev/coursemarket/internal/service/organizationservice"
)

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=repo

// OrderRepo is every query run on orders, shared by the order service, the
// payment service, batch order seats and the cleanup jobs.
type OrderRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindByVoucher(ctx context.Context, voucher string) (*domain.Order, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.Order, error)
	FindByStates(ctx context.Context, states []domain.OrderState) ([]domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	CreateSeats(ctx context.Context, seats []domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	DeleteStuck(ctx context.Context, states []domain.OrderState, before time.Time) (int64, error)
	DeleteStuckCertificateOrders(ctx context.Context, states []domain.OrderState, before time.Time) (int64, error)
}

type BatchOrderRepo interface {
	Create(ctx context.Context, b *domain.BatchOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BatchOrder, error)
	Update(ctx context.Context, b *domain.BatchOrder) error
	DeleteStuck(ctx context.Context, states []domain.BatchOrderState, before time.Time) (int64, error)
}

type CatalogRepo interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	FindEnrollment(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
}

type ContractRepo interface {
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Contract, error)
	FindByBatchOrder(ctx context.Context, batchOrderID uuid.UUID) (*domain.Contract, error)
	FindByReference(ctx context.Context, reference string) (*domain.Contract, error)
	Save(ctx context.Context, c *domain.Contract) error
}

type CreditCardRepo interface {
	Create(ctx context.Context, card *domain.CreditCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.CreditCard, error)
	Promote(ctx context.Context, ownerID int, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	IsInUse(ctx context.Context, id uuid.UUID, states []domain.OrderState) (bool, error)
	DeleteUnused(ctx context.Context, before time.Time) (int64, error)
}

type Repositories struct {
	UserRepo         authservice.Repo
	OrderRepo        OrderRepo
	BatchOrderRepo   BatchOrderRepo
	CatalogRepo      CatalogRepo
	ContractRepo     ContractRepo
	CreditCardRepo   CreditCardRepo
	OrganizationRepo organizationservice.Repo
	CertificateRepo  certificateservice.Repo
	TxManager        pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		OrderRepo:        orderrepo.New(conn, txManager),
		BatchOrderRepo:   batchorderrepo.New(conn, txManager),
		CatalogRepo:      catalogrepo.New(conn),
		ContractRepo:     contractrepo.New(conn, txManager),
		CreditCardRepo:   creditcardrepo.New(conn, txManager),
		OrganizationRepo: organizationrepo.New(conn),
		CertificateRepo:  certificaterepo.New(conn),
		TxManager:        txManager,
	}
}
