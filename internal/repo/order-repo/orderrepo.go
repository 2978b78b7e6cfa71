package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
	"github.com/GlebRadaev/coursemarket/pkg/money"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

const orderColumns = `id, owner_id, product_id, course_id, enrollment_id, organization_id, batch_order_id,
	credit_card_id, state, total_cents, has_contract, payment_schedule, voucher, created_at, updated_at`

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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order   domain.Order
		cents   int64
		payload []byte
	)
	err := row.Scan(
		&order.ID, &order.OwnerID, &order.ProductID, &order.CourseID, &order.EnrollmentID,
		&order.OrganizationID, &order.BatchOrderID, &order.CreditCardID, &order.State, &cents,
		&order.HasContract, &payload, &order.Voucher, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Total = money.FromCents(cents)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &order.PaymentSchedule); err != nil {
			return nil, fmt.Errorf("can't decode payment schedule of order %s: %w", order.ID, err)
		}
	}
	return &order, nil
}

func marshalSchedule(s schedule.Schedule) ([]byte, error) {
	if s == nil {
		s = schedule.Schedule{}
	}
	return json.Marshal(s)
}

func (r *Repository) findOne(ctx context.Context, where string, arg any) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + where
	order, err := scanOrder(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.String("where", where), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.findOne(ctx, `id = $1`, id)
}

func (r *Repository) FindByVoucher(ctx context.Context, voucher string) (*domain.Order, error) {
	return r.findOne(ctx, `voucher = $1`, voucher)
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE owner_id = $1
		ORDER BY created_at DESC`
	return r.findMany(ctx, query, ownerID)
}

// FindByStates returns the orders in one of the given states, oldest first.
func (r *Repository) FindByStates(ctx context.Context, states []domain.OrderState) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE state = ANY($1)
		ORDER BY created_at ASC`
	return r.findMany(ctx, query, domain.StateStrings(states))
}

func (r *Repository) insert(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (id, owner_id, product_id, course_id, enrollment_id, organization_id, batch_order_id,
			credit_card_id, state, total_cents, has_contract, payment_schedule, voucher)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`
	payload, err := marshalSchedule(order.PaymentSchedule)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, query,
		order.ID, order.OwnerID, order.ProductID, order.CourseID, order.EnrollmentID, order.OrganizationID,
		order.BatchOrderID, order.CreditCardID, string(order.State), money.ToCents(order.Total),
		order.HasContract, payload, order.Voucher,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.String("order_id", order.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.insert(ctx, order)
	})
}

// CreateSeats stores the seat orders of a completed batch order in one transaction.
func (r *Repository) CreateSeats(ctx context.Context, seats []domain.Order) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range seats {
			if err := r.insert(ctx, &seats[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET owner_id = $1, organization_id = $2, credit_card_id = $3, state = $4, payment_schedule = $5, updated_at = NOW()
		WHERE id = $6
	`
	payload, err := marshalSchedule(order.PaymentSchedule)
	if err != nil {
		return err
	}
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.OwnerID, order.OrganizationID, order.CreditCardID, string(order.State), payload, order.ID)
		if err != nil {
			zap.L().Error("failed to update order", zap.String("order_id", order.ID.String()), zap.Error(err))
			return err
		}
		return nil
	})
}

// DeleteStuck removes orders left in one of the states since before the given time.
func (r *Repository) DeleteStuck(ctx context.Context, states []domain.OrderState, before time.Time) (int64, error) {
	query := `
		DELETE FROM orders
		WHERE state = ANY($1) AND updated_at < $2
	`
	tag, err := r.db.Exec(ctx, query, domain.StateStrings(states), before)
	if err != nil {
		zap.L().Error("can't delete stuck orders", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteStuckCertificateOrders removes certificate orders without any paid
// installment, left in one of the states since before the given time.
func (r *Repository) DeleteStuckCertificateOrders(ctx context.Context, states []domain.OrderState, before time.Time) (int64, error) {
	query := `
		DELETE FROM orders o
		USING products p
		WHERE o.product_id = p.id
			AND p.type = 'certificate'
			AND o.state = ANY($1)
			AND o.updated_at < $2
			AND NOT o.payment_schedule @> '[{"state": "paid"}]'
	`
	tag, err := r.db.Exec(ctx, query, domain.StateStrings(states), before)
	if err != nil {
		zap.L().Error("can't delete stuck certificate orders", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
