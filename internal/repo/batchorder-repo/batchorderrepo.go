package batchorderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
	"github.com/GlebRadaev/coursemarket/pkg/money"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, b *domain.BatchOrder) error {
	query := `
		INSERT INTO batch_orders (id, owner_id, product_id, course_id, organization_id, company_name, nb_seats,
			total_cents, state, payment_state, has_contract)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			b.ID, b.OwnerID, b.ProductID, b.CourseID, b.OrganizationID, b.CompanyName, b.NbSeats,
			money.ToCents(b.Total), string(b.State), string(b.PaymentState), b.HasContract,
		).Scan(&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			zap.L().Error("can't save batch order", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BatchOrder, error) {
	query := `
		SELECT id, owner_id, product_id, course_id, organization_id, company_name, nb_seats, total_cents,
			state, payment_state, has_contract, created_at, updated_at
		FROM batch_orders
		WHERE id = $1
	`
	var (
		b     domain.BatchOrder
		cents int64
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.OwnerID, &b.ProductID, &b.CourseID, &b.OrganizationID, &b.CompanyName, &b.NbSeats, &cents,
		&b.State, &b.PaymentState, &b.HasContract, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find batch order", zap.Error(err))
		return nil, err
	}
	b.Total = money.FromCents(cents)
	return &b, nil
}

func (r *Repository) Update(ctx context.Context, b *domain.BatchOrder) error {
	query := `
		UPDATE batch_orders
		SET organization_id = $1, state = $2, payment_state = $3, updated_at = NOW()
		WHERE id = $4
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, b.OrganizationID, string(b.State), string(b.PaymentState), b.ID)
		if err != nil {
			zap.L().Error("failed to update batch order", zap.String("batch_order_id", b.ID.String()), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) DeleteStuck(ctx context.Context, states []domain.BatchOrderState, before time.Time) (int64, error) {
	query := `
		DELETE FROM batch_orders
		WHERE state = ANY($1) AND updated_at < $2
	`
	tag, err := r.db.Exec(ctx, query, domain.StateStrings(states), before)
	if err != nil {
		zap.L().Error("can't delete stuck batch orders", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
