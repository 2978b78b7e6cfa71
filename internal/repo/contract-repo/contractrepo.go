package contractrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
)

const contractColumns = `id, order_id, batch_order_id, reference, submitted_for_signature_at, student_signed_at, created_at`

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

func (r *Repository) findOne(ctx context.Context, column string, arg any) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE ` + column + ` = $1`

	var c domain.Contract
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.OrderID, &c.BatchOrderID, &c.Reference, &c.SubmittedForSignatureAt, &c.StudentSignedAt, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find contract", zap.String("by", column), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Contract, error) {
	return r.findOne(ctx, "order_id", orderID)
}

func (r *Repository) FindByBatchOrder(ctx context.Context, batchOrderID uuid.UUID) (*domain.Contract, error) {
	return r.findOne(ctx, "batch_order_id", batchOrderID)
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Contract, error) {
	return r.findOne(ctx, "reference", reference)
}

// Save inserts the contract or refreshes its signature fields.
func (r *Repository) Save(ctx context.Context, c *domain.Contract) error {
	query := `
		INSERT INTO contracts (id, order_id, batch_order_id, reference, submitted_for_signature_at, student_signed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET reference = EXCLUDED.reference,
			submitted_for_signature_at = EXCLUDED.submitted_for_signature_at,
			student_signed_at = EXCLUDED.student_signed_at
		RETURNING created_at
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			c.ID, c.OrderID, c.BatchOrderID, c.Reference, c.SubmittedForSignatureAt, c.StudentSignedAt,
		).Scan(&c.CreatedAt)
		if err != nil {
			zap.L().Error("can't save contract", zap.String("contract_id", c.ID.String()), zap.Error(err))
			return err
		}
		return nil
	})
}
