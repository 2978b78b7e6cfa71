package organizationrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Loads returns every organization related to the product on the course with
// the number of its orders in the given states for that same product and
// course. Certificate orders count through the course of their enrollment.
func (r *Repository) Loads(ctx context.Context, productID, courseID uuid.UUID, states []domain.OrderState) ([]domain.OrganizationLoad, error) {
	query := `
		SELECT cpo.organization_id,
			COALESCE(c.author_organization_id = cpo.organization_id, FALSE) AS is_author,
			COUNT(o.id) AS orders
		FROM course_product_organizations cpo
		JOIN courses c ON c.id = cpo.course_id
		LEFT JOIN orders o ON o.organization_id = cpo.organization_id
			AND o.product_id = cpo.product_id
			AND o.state = ANY($3)
			AND (o.course_id = cpo.course_id
				OR o.enrollment_id IN (SELECT e.id FROM enrollments e WHERE e.course_id = cpo.course_id))
		WHERE cpo.product_id = $1 AND cpo.course_id = $2
		GROUP BY cpo.organization_id, c.author_organization_id
		ORDER BY cpo.organization_id
	`
	rows, err := r.db.Query(ctx, query, productID, courseID, domain.StateStrings(states))
	if err != nil {
		zap.L().Error("can't get organization loads", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loads []domain.OrganizationLoad
	for rows.Next() {
		var load domain.OrganizationLoad
		if err := rows.Scan(&load.OrganizationID, &load.IsAuthor, &load.Orders); err != nil {
			zap.L().Error("can't scan organization load", zap.Error(err))
			return nil, err
		}
		loads = append(loads, load)
	}
	return loads, rows.Err()
}

func (r *Repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.Organization, error) {
	query := `
		SELECT DISTINCT org.id, org.code, org.title, org.created_at
		FROM organizations org
		JOIN course_product_organizations cpo ON cpo.organization_id = org.id
		WHERE cpo.product_id = $1
		ORDER BY org.title
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		zap.L().Error("can't list organizations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var organizations []domain.Organization
	for rows.Next() {
		var org domain.Organization
		if err := rows.Scan(&org.ID, &org.Code, &org.Title, &org.CreatedAt); err != nil {
			zap.L().Error("can't scan organization", zap.Error(err))
			return nil, err
		}
		organizations = append(organizations, org)
	}
	return organizations, rows.Err()
}
