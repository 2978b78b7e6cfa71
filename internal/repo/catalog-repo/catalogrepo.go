// Package catalogrepo reads the products, courses and enrollments orders refer to.
package catalogrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
	"github.com/GlebRadaev/coursemarket/pkg/money"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	zap.L().Error("can't find "+what, zap.Error(err))
	return err
}

func (r *Repository) FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT id, type, title, price_cents, has_contract, grants_certificate, discount_amount_cents, discount_rate
		FROM products
		WHERE id = $1
	`
	var (
		p              domain.Product
		cents          int64
		discountAmount *int64
		discountRate   decimal.NullDecimal
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Type, &p.Title, &cents, &p.HasContract, &p.GrantsCertificate, &discountAmount, &discountRate,
	)
	if err != nil {
		return nil, notFound(err, "product")
	}
	p.Price = money.FromCents(cents)
	switch {
	case discountAmount != nil:
		amount := money.FromCents(*discountAmount)
		p.Discount = &schedule.Discount{Amount: &amount}
	case discountRate.Valid:
		rate := discountRate.Decimal
		p.Discount = &schedule.Discount{Rate: &rate}
	}
	return &p, nil
}

func (r *Repository) FindCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	query := `
		SELECT id, code, title, author_organization_id, start_date
		FROM courses
		WHERE id = $1
	`
	var c domain.Course
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Code, &c.Title, &c.AuthorOrganizationID, &c.StartDate)
	if err != nil {
		return nil, notFound(err, "course")
	}
	return &c, nil
}

func (r *Repository) FindEnrollment(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, created_at
		FROM enrollments
		WHERE id = $1
	`
	var e domain.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.UserID, &e.CourseID, &e.CreatedAt)
	if err != nil {
		return nil, notFound(err, "enrollment")
	}
	return &e, nil
}
