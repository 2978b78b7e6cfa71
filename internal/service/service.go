package service

import (
	"github.com/GlebRadaev/coursemarket/internal/events"
	"github.com/GlebRadaev/coursemarket/internal/handlers/auth"
	"github.com/GlebRadaev/coursemarket/internal/handlers/batchorders"
	"github.com/GlebRadaev/coursemarket/internal/handlers/certificates"
	"github.com/GlebRadaev/coursemarket/internal/handlers/creditcards"
	"github.com/GlebRadaev/coursemarket/internal/handlers/orders"
	"github.com/GlebRadaev/coursemarket/internal/handlers/organizations"
	"github.com/GlebRadaev/coursemarket/internal/handlers/webhooks"
	"github.com/GlebRadaev/coursemarket/internal/jobs"
	"github.com/GlebRadaev/coursemarket/internal/repo"
	"github.com/GlebRadaev/coursemarket/internal/service/authservice"
	"github.com/GlebRadaev/coursemarket/internal/service/batchorderservice"
	"github.com/GlebRadaev/coursemarket/internal/service/certificateservice"
	"github.com/GlebRadaev/coursemarket/internal/service/creditcardservice"
	"github.com/GlebRadaev/coursemarket/internal/service/orderservice"
	"github.com/GlebRadaev/coursemarket/internal/service/organizationservice"
	"github.com/GlebRadaev/coursemarket/internal/service/paymentservice"
	"github.com/GlebRadaev/coursemarket/internal/service/signatureservice"
	pkgauth "github.com/GlebRadaev/coursemarket/pkg/auth"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

// Provider is the payment provider client: it debits installments and
// refunds them.
type Provider interface {
	orderservice.Refunder
	paymentservice.Payer
}

type SignatureService interface {
	orders.SignatureService
	batchorders.SignatureService
	webhooks.SignatureService
}

type PaymentService interface {
	webhooks.PaymentService
	jobs.Payments
}

// External holds what the services need besides the repositories.
type External struct {
	Provider       Provider
	Publisher      events.Publisher
	Backend        signatureservice.Backend
	JWTSecret      string
	Limits         schedule.Limits
	WithdrawalDays int
}

type Services struct {
	AuthService         auth.Service
	OrderService        orders.Service
	BatchOrderService   batchorders.Service
	CreditCardService   creditcards.Service
	OrganizationService organizations.Service
	CertificateService  certificates.Service
	SignatureService    SignatureService
	PaymentService      PaymentService
	JWTService          pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, ext External) *Services {
	jwtService := pkgauth.NewJWTService(ext.JWTSecret)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(0), jwtService)

	organizationService := organizationservice.New(repo.OrganizationRepo)
	certificateService := certificateservice.New(repo.CertificateRepo, repo.CatalogRepo, ext.Publisher)
	orderService := orderservice.New(orderservice.Deps{
		Repo:           repo.OrderRepo,
		Catalog:        repo.CatalogRepo,
		Contracts:      repo.ContractRepo,
		Cards:          repo.CreditCardRepo,
		Organizations:  organizationService,
		Certificates:   certificateService,
		Refunder:       ext.Provider,
		Publisher:      ext.Publisher,
		Limits:         ext.Limits,
		WithdrawalDays: ext.WithdrawalDays,
	})
	batchOrderService := batchorderservice.New(repo.TxManager, repo.BatchOrderRepo, repo.OrderRepo, repo.CatalogRepo, repo.ContractRepo, organizationService)
	signatureService := signatureservice.New(repo.ContractRepo, orderService, batchOrderService, ext.Backend)
	paymentService := paymentservice.New(orderService, repo.OrderRepo, batchOrderService, repo.CreditCardRepo, ext.Provider, ext.Publisher)

	return &Services{
		AuthService:         authService,
		OrderService:        orderService,
		BatchOrderService:   batchOrderService,
		CreditCardService:   creditcardservice.New(repo.CreditCardRepo),
		OrganizationService: organizationService,
		CertificateService:  certificateService,
		SignatureService:    signatureService,
		PaymentService:      paymentService,
		JWTService:          jwtService,
	}
}
