package creditcardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	s := New(repo)
	s.now = func() time.Time { return time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC) }
	return s, repo
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateInput
		prepareMock func(repo *MockRepo)
		expectMain  bool
		expectedErr error
	}{
		{
			name:        "Luhn failure",
			input:       CreateInput{Number: "4242 4242 4242 4241", ExpirationMonth: 12, ExpirationYear: 2030},
			prepareMock: func(*MockRepo) {},
			expectedErr: ErrInvalidCard,
		},
		{
			name:        "Expired",
			input:       CreateInput{Number: "4242 4242 4242 4242", ExpirationMonth: 4, ExpirationYear: 2024},
			prepareMock: func(*MockRepo) {},
			expectedErr: ErrCardExpired,
		},
		{
			name:  "First card becomes main",
			input: CreateInput{Number: "4242 4242 4242 4242", Title: " Personal ", ExpirationMonth: 5, ExpirationYear: 2024},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ListByOwner(gomock.Any(), 1).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.CreditCard) error {
					assert.Equal(t, "4242", c.LastNumbers)
					assert.Equal(t, "visa", c.Brand)
					assert.Equal(t, "Personal", c.Title)
					assert.NotContains(t, c.Token, "4242424242424242")
					return nil
				})
			},
			expectMain: true,
		},
		{
			name:  "Second card",
			input: CreateInput{Number: "5555-5555-5555-4444", ExpirationMonth: 1, ExpirationYear: 2027},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ListByOwner(gomock.Any(), 1).Return([]domain.CreditCard{{ID: uuid.New(), IsMain: true}}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "Repository error",
			input: CreateInput{Number: "4242424242424242", ExpirationMonth: 1, ExpirationYear: 2027},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ListByOwner(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := NewMock(t)
			tt.prepareMock(repo)

			card, err := s.Create(context.Background(), 1, tt.input)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectMain, card.IsMain)
			assert.Equal(t, 1, card.OwnerID)
		})
	}
}

func TestGet(t *testing.T) {
	s, repo := NewMock(t)
	card := &domain.CreditCard{ID: uuid.New(), OwnerID: 1}

	repo.EXPECT().FindByID(gomock.Any(), card.ID).Return(card, nil).Times(2)
	got, err := s.Get(context.Background(), 1, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, got)

	_, err = s.Get(context.Background(), 2, card.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = s.Get(context.Background(), 1, uuid.New())
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestPromote(t *testing.T) {
	s, repo := NewMock(t)
	card := &domain.CreditCard{ID: uuid.New(), OwnerID: 1}

	repo.EXPECT().FindByID(gomock.Any(), card.ID).Return(card, nil)
	repo.EXPECT().Promote(gomock.Any(), 1, card.ID).Return(nil)

	got, err := s.Promote(context.Background(), 1, card.ID)
	require.NoError(t, err)
	assert.True(t, got.IsMain)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name        string
		card        *domain.CreditCard
		prepareMock func(repo *MockRepo, card *domain.CreditCard)
		expectedErr error
	}{
		{
			name: "In use",
			card: &domain.CreditCard{ID: uuid.New(), OwnerID: 1},
			prepareMock: func(repo *MockRepo, card *domain.CreditCard) {
				repo.EXPECT().FindByID(gomock.Any(), card.ID).Return(card, nil)
				repo.EXPECT().IsInUse(gomock.Any(), card.ID, domain.PayableOrderStates).Return(true, nil)
			},
			expectedErr: ErrCardInUse,
		},
		{
			name: "Secondary card",
			card: &domain.CreditCard{ID: uuid.New(), OwnerID: 1},
			prepareMock: func(repo *MockRepo, card *domain.CreditCard) {
				repo.EXPECT().FindByID(gomock.Any(), card.ID).Return(card, nil)
				repo.EXPECT().IsInUse(gomock.Any(), card.ID, domain.PayableOrderStates).Return(false, nil)
				repo.EXPECT().Delete(gomock.Any(), card.ID).Return(nil)
			},
		},
		{
			name: "Main card hands over",
			card: &domain.CreditCard{ID: uuid.New(), OwnerID: 1, IsMain: true},
			prepareMock: func(repo *MockRepo, card *domain.CreditCard) {
				next := uuid.New()
				repo.EXPECT().FindByID(gomock.Any(), card.ID).Return(card, nil)
				repo.EXPECT().IsInUse(gomock.Any(), card.ID, domain.PayableOrderStates).Return(false, nil)
				repo.EXPECT().Delete(gomock.Any(), card.ID).Return(nil)
				repo.EXPECT().ListByOwner(gomock.Any(), 1).Return([]domain.CreditCard{{ID: next}}, nil)
				repo.EXPECT().Promote(gomock.Any(), 1, next).Return(nil)
			},
		},
		{
			name: "Another user",
			card: &domain.CreditCard{ID: uuid.New(), OwnerID: 2},
			prepareMock: func(repo *MockRepo, card *domain.CreditCard) {
				repo.EXPECT().FindByID(gomock.Any(), card.ID).Return(card, nil)
			},
			expectedErr: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := NewMock(t)
			tt.prepareMock(repo, tt.card)

			err := s.Delete(context.Background(), 1, tt.card.ID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
