package certificaterepo

import (
	"context"

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

// Create stores the certificate unless its order already holds one, and
// reports whether a row was written.
func (r *Repository) Create(ctx context.Context, c *domain.Certificate) (bool, error) {
	query := `
		INSERT INTO certificates (id, order_id, issued_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, c.ID, c.OrderID, c.IssuedAt)
	if err != nil {
		zap.L().Error("can't save certificate", zap.String("order_id", c.OrderID.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]domain.Certificate, error) {
	query := `
		SELECT c.id, c.order_id, c.issued_at
		FROM certificates c
		JOIN orders o ON o.id = c.order_id
		WHERE o.owner_id = $1
		ORDER BY c.issued_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't list certificates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var certificates []domain.Certificate
	for rows.Next() {
		var c domain.Certificate
		if err := rows.Scan(&c.ID, &c.OrderID, &c.IssuedAt); err != nil {
			zap.L().Error("can't scan certificate", zap.Error(err))
			return nil, err
		}
		certificates = append(certificates, c)
	}
	return certificates, rows.Err()
}
