package creditcards

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/service/creditcardservice"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
)

func NewMock(t *testing.T) (*CreditCardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, body string, id string) *http.Request {
	r := httptest.NewRequest(method, "/api/v1/credit-cards", bytes.NewReader([]byte(body)))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func newCard(isMain bool) *domain.CreditCard {
	return &domain.CreditCard{
		ID:              uuid.New(),
		OwnerID:         1,
		Token:           "card_secret",
		Title:           "Personal",
		Brand:           "visa",
		LastNumbers:     "4242",
		ExpirationMonth: 12,
		ExpirationYear:  2030,
		IsMain:          isMain,
	}
}

func TestCreateCreditCard(t *testing.T) {
	handler, service := NewMock(t)
	card := newCard(true)
	body := `{"number":"4242 4242 4242 4242","title":"Personal","expiration_month":12,"expiration_year":2030}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Card registered",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, creditcardservice.CreateInput{
					Number:          "4242 4242 4242 4242",
					Title:           "Personal",
					ExpirationMonth: 12,
					ExpirationYear:  2030,
				}).Return(card, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing number",
			body:         `{"title":"Personal"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Luhn check failed",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, creditcardservice.ErrInvalidCard)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Expired",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, creditcardservice.ErrCardExpired)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateCreditCard(w, newRequest(http.MethodPost, tt.body, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				assert.NotContains(t, w.Body.String(), "card_secret")
				var resp dto.CreditCardResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "4242", resp.LastNumbers)
				assert.True(t, resp.IsMain)
			}
		})
	}
}

func TestGetCreditCards(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), 1).Return([]domain.CreditCard{*newCard(true), *newCard(false)}, nil)
	w := httptest.NewRecorder()
	handler.GetCreditCards(w, newRequest(http.MethodGet, "", ""))
	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.CreditCardResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)

	service.EXPECT().List(gomock.Any(), 1).Return(nil, nil)
	w = httptest.NewRecorder()
	handler.GetCreditCards(w, newRequest(http.MethodGet, "", ""))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().List(gomock.Any(), 1).Return(nil, errors.New("error"))
	w = httptest.NewRecorder()
	handler.GetCreditCards(w, newRequest(http.MethodGet, "", ""))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetCreditCard(t *testing.T) {
	handler, service := NewMock(t)
	card := newCard(false)

	service.EXPECT().Get(gomock.Any(), 1, card.ID).Return(card, nil)
	w := httptest.NewRecorder()
	handler.GetCreditCard(w, newRequest(http.MethodGet, "", card.ID.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().Get(gomock.Any(), 1, card.ID).Return(nil, creditcardservice.ErrForbidden)
	w = httptest.NewRecorder()
	handler.GetCreditCard(w, newRequest(http.MethodGet, "", card.ID.String()))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPromoteCreditCard(t *testing.T) {
	handler, service := NewMock(t)
	card := newCard(true)

	service.EXPECT().Promote(gomock.Any(), 1, card.ID).Return(card, nil)
	w := httptest.NewRecorder()
	handler.PromoteCreditCard(w, newRequest(http.MethodPost, "", card.ID.String()))
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.CreditCardResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.IsMain)
}

func TestDeleteCreditCard(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Deleted", expectedCode: http.StatusNoContent},
		{name: "Not found", err: creditcardservice.ErrCardNotFound, expectedCode: http.StatusNotFound},
		{name: "Used by an order", err: creditcardservice.ErrCardInUse, expectedCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().Delete(gomock.Any(), 1, id).Return(tt.err)
			w := httptest.NewRecorder()
			handler.DeleteCreditCard(w, newRequest(http.MethodDelete, "", id.String()))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
