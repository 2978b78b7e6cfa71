package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/coursemarket/docs"
	authhandlers "github.com/GlebRadaev/coursemarket/internal/handlers/auth"
	batchordershandlers "github.com/GlebRadaev/coursemarket/internal/handlers/batchorders"
	certificateshandlers "github.com/GlebRadaev/coursemarket/internal/handlers/certificates"
	creditcardshandlers "github.com/GlebRadaev/coursemarket/internal/handlers/creditcards"
	ordershandlers "github.com/GlebRadaev/coursemarket/internal/handlers/orders"
	organizationshandlers "github.com/GlebRadaev/coursemarket/internal/handlers/organizations"
	webhookshandlers "github.com/GlebRadaev/coursemarket/internal/handlers/webhooks"
	"github.com/GlebRadaev/coursemarket/internal/idempotency"
	"github.com/GlebRadaev/coursemarket/internal/service"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
	"github.com/GlebRadaev/coursemarket/pkg/signature"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	SubmitForSignature(w http.ResponseWriter, r *http.Request)
	SetPaymentMethod(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	ClaimOrder(w http.ResponseWriter, r *http.Request)
}

type BatchOrderHandler interface {
	CreateBatchOrder(w http.ResponseWriter, r *http.Request)
	GetBatchOrder(w http.ResponseWriter, r *http.Request)
	SubmitForSignature(w http.ResponseWriter, r *http.Request)
	CancelBatchOrder(w http.ResponseWriter, r *http.Request)
}

type CreditCardHandler interface {
	CreateCreditCard(w http.ResponseWriter, r *http.Request)
	GetCreditCards(w http.ResponseWriter, r *http.Request)
	GetCreditCard(w http.ResponseWriter, r *http.Request)
	PromoteCreditCard(w http.ResponseWriter, r *http.Request)
	DeleteCreditCard(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandler interface {
	GetOrganizations(w http.ResponseWriter, r *http.Request)
}

type CertificateHandler interface {
	GetCertificates(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	PaymentNotification(w http.ResponseWriter, r *http.Request)
	SignatureNotification(w http.ResponseWriter, r *http.Request)
}

// Webhooks configures how provider notifications are authenticated and
// deduplicated.
type Webhooks struct {
	PaymentSecrets   []string
	SignatureSecrets []string
	Deduper          idempotency.Deduper
}

type Handlers struct {
	AuthHandler         AuthHandler
	OrderHandler        OrderHandler
	BatchOrderHandler   BatchOrderHandler
	CreditCardHandler   CreditCardHandler
	OrganizationHandler OrganizationHandler
	CertificateHandler  CertificateHandler
	WebhookHandler      WebhookHandler

	JWTService auth.JWTServiceInterface
}

func New(s *service.Services, hooks Webhooks) *Handlers {
	if hooks.Deduper == nil {
		hooks.Deduper = idempotency.NopDeduper{}
	}
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		OrderHandler:        ordershandlers.New(s.OrderService, s.SignatureService),
		BatchOrderHandler:   batchordershandlers.New(s.BatchOrderService, s.SignatureService),
		CreditCardHandler:   creditcardshandlers.New(s.CreditCardService),
		OrganizationHandler: organizationshandlers.New(s.OrganizationService),
		CertificateHandler:  certificateshandlers.New(s.CertificateService),
		WebhookHandler: webhookshandlers.New(
			s.PaymentService,
			s.SignatureService,
			signature.NewVerifier(hooks.PaymentSecrets),
			signature.NewVerifier(hooks.SignatureSecrets),
			hooks.Deduper,
		),
		JWTService: s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Post("/payments/notifications", h.WebhookHandler.PaymentNotification)
		r.Post("/signature/notifications", h.WebhookHandler.SignatureNotification)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWTService))
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Post("/claim", h.OrderHandler.ClaimOrder)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.OrderHandler.GetOrder)
					r.Post("/submit-for-signature", h.OrderHandler.SubmitForSignature)
					r.Post("/payment-method", h.OrderHandler.SetPaymentMethod)
					r.Post("/cancel", h.OrderHandler.CancelOrder)
				})
			})
			r.Route("/batch-orders", func(r chi.Router) {
				r.Post("/", h.BatchOrderHandler.CreateBatchOrder)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.BatchOrderHandler.GetBatchOrder)
					r.Post("/submit-for-signature", h.BatchOrderHandler.SubmitForSignature)
					r.Post("/cancel", h.BatchOrderHandler.CancelBatchOrder)
				})
			})
			r.Route("/credit-cards", func(r chi.Router) {
				r.Get("/", h.CreditCardHandler.GetCreditCards)
				r.Post("/", h.CreditCardHandler.CreateCreditCard)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.CreditCardHandler.GetCreditCard)
					r.Delete("/", h.CreditCardHandler.DeleteCreditCard)
					r.Post("/promote", h.CreditCardHandler.PromoteCreditCard)
				})
			})
			r.Get("/organizations", h.OrganizationHandler.GetOrganizations)
			r.Get("/certificates", h.CertificateHandler.GetCertificates)
		})
	})

	return r
}
