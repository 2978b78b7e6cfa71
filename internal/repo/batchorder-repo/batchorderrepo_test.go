package batchorderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func sampleBatchOrder() *domain.BatchOrder {
	org := uuid.New()
	return &domain.BatchOrder{
		ID:             uuid.New(),
		OwnerID:        3,
		ProductID:      uuid.New(),
		CourseID:       uuid.New(),
		OrganizationID: &org,
		CompanyName:    "ACME",
		NbSeats:        5,
		Total:          decimal.RequireFromString("500"),
		State:          domain.BatchOrderStatePending,
		PaymentState:   schedule.StatePending,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now().UTC()
	b := sampleBatchOrder()

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO batch_orders")).
			WithArgs(b.ID, 3, b.ProductID, b.CourseID, b.OrganizationID, "ACME", 5, int64(50000), "pending", "pending", false).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		return fn(ctx)
	})

	require.NoError(t, repo.Create(context.Background(), b))
	assert.Equal(t, now, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now().UTC()
	b := sampleBatchOrder()
	columns := []string{"id", "owner_id", "product_id", "course_id", "organization_id", "company_name", "nb_seats",
		"total_cents", "state", "payment_state", "has_contract", "created_at", "updated_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM batch_orders WHERE id = $1")).
					WithArgs(b.ID).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(
						b.ID, 3, b.ProductID, b.CourseID, b.OrganizationID, "ACME", 5, int64(50000),
						domain.BatchOrderStatePending, schedule.StatePending, false, now, now,
					))
			},
			found: true,
		},
		{
			name: "Not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM batch_orders WHERE id = $1")).
					WithArgs(b.ID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM batch_orders WHERE id = $1")).
					WithArgs(b.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), b.ID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if !tt.found {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, "ACME", result.CompanyName)
			assert.True(t, b.Total.Equal(result.Total))
			assert.Equal(t, b.OrganizationID, result.OrganizationID)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)
	b := sampleBatchOrder()
	b.State = domain.BatchOrderStateCompleted
	b.PaymentState = schedule.StatePaid

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE batch_orders SET organization_id = $1, state = $2, payment_state = $3")).
			WithArgs(b.OrganizationID, "completed", "paid", b.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return fn(ctx)
	})
	assert.NoError(t, repo.Update(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteStuck(t *testing.T) {
	repo, mock, _ := NewMock(t)
	before := time.Now().Add(-time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM batch_orders WHERE state = ANY($1) AND updated_at < $2")).
		WithArgs([]string{"to_sign", "signing"}, before).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.DeleteStuck(context.Background(), domain.StuckBatchOrderStates, before)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
