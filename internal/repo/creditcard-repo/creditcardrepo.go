package creditcardrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
)

const cardColumns = `id, owner_id, token, title, brand, last_numbers, expiration_month, expiration_year, is_main, created_at`

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

func scanCard(row pgx.Row) (*domain.CreditCard, error) {
	var c domain.CreditCard
	err := row.Scan(&c.ID, &c.OwnerID, &c.Token, &c.Title, &c.Brand, &c.LastNumbers,
		&c.ExpirationMonth, &c.ExpirationYear, &c.IsMain, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) unsetMain(ctx context.Context, ownerID int) error {
	_, err := r.db.Exec(ctx, `UPDATE credit_cards SET is_main = FALSE WHERE owner_id = $1 AND is_main`, ownerID)
	return err
}

// Create stores the card. A main card demotes the previous main card of the owner.
func (r *Repository) Create(ctx context.Context, card *domain.CreditCard) error {
	query := `
		INSERT INTO credit_cards (id, owner_id, token, title, brand, last_numbers, expiration_month, expiration_year, is_main)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if card.IsMain {
			if err := r.unsetMain(ctx, card.OwnerID); err != nil {
				zap.L().Error("can't demote main credit card", zap.Error(err))
				return err
			}
		}
		err := r.db.QueryRow(ctx, query, card.ID, card.OwnerID, card.Token, card.Title, card.Brand, card.LastNumbers,
			card.ExpirationMonth, card.ExpirationYear, card.IsMain).Scan(&card.CreatedAt)
		if err != nil {
			zap.L().Error("can't save credit card", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error) {
	card, err := scanCard(r.db.QueryRow(ctx, `SELECT `+cardColumns+` FROM credit_cards WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find credit card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]domain.CreditCard, error) {
	query := `SELECT ` + cardColumns + `
		FROM credit_cards
		WHERE owner_id = $1
		ORDER BY is_main DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't list credit cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.CreditCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			zap.L().Error("can't scan credit card", zap.Error(err))
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

func (r *Repository) Promote(ctx context.Context, ownerID int, id uuid.UUID) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.unsetMain(ctx, ownerID); err != nil {
			zap.L().Error("can't demote main credit card", zap.Error(err))
			return err
		}
		_, err := r.db.Exec(ctx, `UPDATE credit_cards SET is_main = TRUE WHERE id = $1 AND owner_id = $2`, id, ownerID)
		if err != nil {
			zap.L().Error("can't promote credit card", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete credit card", zap.Error(err))
		return err
	}
	return nil
}

// IsInUse reports whether an order in one of the states pays with the card.
func (r *Repository) IsInUse(ctx context.Context, id uuid.UUID, states []domain.OrderState) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM orders WHERE credit_card_id = $1 AND state = ANY($2))`
	var used bool
	if err := r.db.QueryRow(ctx, query, id, domain.StateStrings(states)).Scan(&used); err != nil {
		zap.L().Error("can't check credit card usage", zap.Error(err))
		return false, err
	}
	return used, nil
}

// DeleteUnused removes cards created before the given time that no order references.
func (r *Repository) DeleteUnused(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM credit_cards c
		WHERE c.created_at < $1
			AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.credit_card_id = c.id)
	`
	tag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		zap.L().Error("can't delete unused credit cards", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
