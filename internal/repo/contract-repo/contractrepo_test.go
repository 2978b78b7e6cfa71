package contractrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/pg"
)

var columns = []string{"id", "order_id", "batch_order_id", "reference", "submitted_for_signature_at", "student_signed_at", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_Find(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now().UTC()
	orderID := uuid.New()
	reference := "wfl_fake_dummy_1"
	contract := &domain.Contract{
		ID:                      uuid.New(),
		OrderID:                 &orderID,
		Reference:               &reference,
		SubmittedForSignatureAt: &now,
		CreatedAt:               now,
	}
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(columns).AddRow(
			contract.ID, contract.OrderID, (*uuid.UUID)(nil), contract.Reference,
			contract.SubmittedForSignatureAt, (*time.Time)(nil), contract.CreatedAt,
		)
	}

	tests := []struct {
		name      string
		find      func() (*domain.Contract, error)
		mockSetup func()
		expectErr bool
		result    *domain.Contract
	}{
		{
			name: "By order",
			find: func() (*domain.Contract, error) { return repo.FindByOrder(context.Background(), orderID) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM contracts WHERE order_id = $1")).
					WithArgs(orderID).
					WillReturnRows(row())
			},
			result: contract,
		},
		{
			name: "By reference",
			find: func() (*domain.Contract, error) { return repo.FindByReference(context.Background(), reference) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM contracts WHERE reference = $1")).
					WithArgs(reference).
					WillReturnRows(row())
			},
			result: contract,
		},
		{
			name: "By batch order not found",
			find: func() (*domain.Contract, error) { return repo.FindByBatchOrder(context.Background(), orderID) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM contracts WHERE batch_order_id = $1")).
					WithArgs(orderID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			find: func() (*domain.Contract, error) { return repo.FindByOrder(context.Background(), orderID) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM contracts WHERE order_id = $1")).
					WithArgs(orderID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := tt.find()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now().UTC()
	orderID := uuid.New()
	contract := &domain.Contract{ID: uuid.New(), OrderID: &orderID}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contracts")).
			WithArgs(contract.ID, contract.OrderID, contract.BatchOrderID, contract.Reference,
				contract.SubmittedForSignatureAt, contract.StudentSignedAt).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
		return fn(ctx)
	})
	require.NoError(t, repo.Save(context.Background(), contract))
	assert.Equal(t, now, contract.CreatedAt)

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE")).
			WillReturnError(errors.New("database error"))
		return fn(ctx)
	})
	assert.Error(t, repo.Save(context.Background(), contract))
	assert.NoError(t, mock.ExpectationsWereMet())
}
