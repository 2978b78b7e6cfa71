package certificateservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/events"
)

//go:generate mockgen -source=certificateservice.go -destination=mock_certificateservice.go -package=certificateservice

var ErrOrderNotCompleted = errors.New("order is not completed")

type Repo interface {
	Create(ctx context.Context, certificate *domain.Certificate) (bool, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.Certificate, error)
}

type ProductFinder interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

type Service struct {
	repo      Repo
	products  ProductFinder
	publisher events.Publisher
}

func New(repo Repo, products ProductFinder, publisher events.Publisher) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		publisher: publisher,
	}
}

// Issue creates the certificate of a completed order whose product grants
// one. It returns nil when the product grants none or the order already holds
// its certificate.
func (s *Service) Issue(ctx context.Context, order *domain.Order) (*domain.Certificate, error) {
	if order.State != domain.OrderStateCompleted {
		return nil, ErrOrderNotCompleted
	}
	product, err := s.products.FindProduct(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.GrantsCertificate {
		return nil, nil
	}

	certificate := &domain.Certificate{
		ID:       uuid.New(),
		OrderID:  order.ID,
		IssuedAt: time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, certificate)
	if err != nil {
		return nil, err
	}
	if !created {
		zap.L().Info("certificate already issued", zap.String("order_id", order.ID.String()))
		return nil, nil
	}

	event := events.New(events.CertificateIssued, order.ID.String(), map[string]any{
		"certificate_id": certificate.ID,
		"order_id":       order.ID,
		"owner_id":       order.OwnerID,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		zap.L().Error("failed to publish certificate event", zap.Error(err))
	}
	zap.L().Info("certificate issued", zap.String("order_id", order.ID.String()), zap.String("certificate_id", certificate.ID.String()))
	return certificate, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Certificate, error) {
	certificates, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list certificates", zap.Error(err))
		return nil, err
	}
	return certificates, nil
}
