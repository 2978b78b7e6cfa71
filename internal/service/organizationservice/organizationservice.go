package organizationservice

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
)

//go:generate mockgen -source=organizationservice.go -destination=mock_organizationservice.go -package=organizationservice

type Repo interface {
	Loads(ctx context.Context, productID, courseID uuid.UUID, states []domain.OrderState) ([]domain.OrganizationLoad, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.Organization, error)
}

type Service struct {
	repo Repo
	// intn picks among organizations tied on load.
	intn func(n int) int
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		intn: rand.IntN,
	}
}

// GetLeastActiveOrganization returns the organization selling the product on
// the course with the fewest orders in binding states. Ties go to the course
// author, then to a random pick. It returns nil when no organization sells the
// product on this course.
func (s *Service) GetLeastActiveOrganization(ctx context.Context, productID, courseID uuid.UUID) (*uuid.UUID, error) {
	loads, err := s.repo.Loads(ctx, productID, courseID, domain.OrganizationLoadStates())
	if err != nil {
		return nil, err
	}
	if len(loads) == 0 {
		zap.L().Info("no organization sells the product",
			zap.String("product_id", productID.String()), zap.String("course_id", courseID.String()))
		return nil, nil
	}

	least := loads[0].Orders
	for _, load := range loads[1:] {
		least = min(least, load.Orders)
	}
	var candidates []domain.OrganizationLoad
	for _, load := range loads {
		if load.Orders != least {
			continue
		}
		if load.IsAuthor {
			return &load.OrganizationID, nil
		}
		candidates = append(candidates, load)
	}
	chosen := candidates[s.intn(len(candidates))].OrganizationID
	return &chosen, nil
}

func (s *Service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.Organization, error) {
	organizations, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		zap.L().Error("failed to list organizations", zap.Error(err))
		return nil, err
	}
	return organizations, nil
}
